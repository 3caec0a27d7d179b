package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"size": 256, "frames": 12, "fov": 120, "output_dir": "out"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 256 || cfg.Frames != 12 || cfg.FOV != 120 || cfg.OutputDir != "out" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{nope"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed JSON succeeded")
	}
}

func TestResolve_Defaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Size != 512 || cfg.Supersample != 2 || cfg.Frames != 60 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.FOV != 90 || cfg.OffsetZ != 240 {
		t.Errorf("camera defaults = %+v", cfg)
	}
	if cfg.Workers <= 0 {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if cfg.OutputDir != "frames" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{Size: 256, FOV: 70, OutputDir: "from-file"}
	cfg.Resolve(Flags{Size: 1024, OutputDir: "from-flag", OffsetX: -50})
	if cfg.Size != 1024 {
		t.Errorf("Size = %d; flag should win", cfg.Size)
	}
	if cfg.OutputDir != "from-flag" {
		t.Errorf("OutputDir = %q; flag should win", cfg.OutputDir)
	}
	if cfg.FOV != 70 {
		t.Errorf("FOV = %g; file value should survive", cfg.FOV)
	}
	if cfg.OffsetX != -50 {
		t.Errorf("OffsetX = %g", cfg.OffsetX)
	}
}
