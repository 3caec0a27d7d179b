package anim

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"vecdraw/internal/geom"
)

func testConfig(dir string) Config {
	return Config{
		OutputDir:   dir,
		Size:        32,
		Supersample: 1,
		Frames:      3,
		Workers:     2,
		FOV:         90,
		Offset:      geom.Vec3{Z: 240},
	}
}

func TestRun_WritesFrames(t *testing.T) {
	dir := t.TempDir()
	results := Run(testConfig(dir))

	if len(results) != 3 {
		t.Fatalf("got %d results; want 3", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Frame, r.Error)
		}
		st, err := os.Stat(r.File)
		if err != nil {
			t.Fatalf("frame file missing: %v", err)
		}
		if st.Size() == 0 {
			t.Errorf("frame %d is empty", r.Frame)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "0000.webp")); err != nil {
		t.Errorf("expected frame 0000.webp: %v", err)
	}
}

func TestRun_Supersampled(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Supersample = 2
	cfg.Frames = 1
	results := Run(cfg)
	if !results[0].Success {
		t.Fatalf("supersampled frame failed: %s", results[0].Error)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	results := Run(cfg)

	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, cfg, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if m.Frames != 3 || m.Size != 32 || len(m.Results) != 3 {
		t.Errorf("manifest = %+v", m)
	}
}
