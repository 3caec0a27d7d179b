// Package config loads render settings from a JSON file and resolves them
// against CLI flag overrides and defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings for the animation tools.
type Config struct {
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"` // optional backdrop image (PNG/JPEG/TGA)

	Size        int     `json:"size"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	Workers     int     `json:"workers"`
	FOV         float64 `json:"fov"`
	OffsetX     float64 `json:"offset_x"`
	OffsetY     float64 `json:"offset_y"`
	OffsetZ     float64 `json:"offset_z"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Size      int
	Frames    int
	Workers   int
	FOV       float64
	OffsetX   float64
	OffsetY   float64
	OffsetZ   float64
}

// Resolve applies flag overrides, then fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.OffsetX != 0 {
		c.OffsetX = flags.OffsetX
	}
	if flags.OffsetY != 0 {
		c.OffsetY = flags.OffsetY
	}
	if flags.OffsetZ != 0 {
		c.OffsetZ = flags.OffsetZ
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV <= 0 {
		c.FOV = 90
	}
	if c.OffsetZ == 0 {
		c.OffsetZ = 240
	}
}
