package anim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes a finished render for downstream tooling.
type Manifest struct {
	Frames  int      `json:"frames"`
	Size    int      `json:"size"`
	FOV     float64  `json:"fov"`
	Results []Result `json:"results"`
}

// WriteManifest writes the run manifest as indented JSON.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Frames:  cfg.Frames,
		Size:    cfg.Size,
		FOV:     cfg.FOV,
		Results: results,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("anim: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("anim: write manifest %s: %w", path, err)
	}
	return nil
}
