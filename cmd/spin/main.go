// Command spin renders a spinning-cube animation as numbered WebP frames.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"vecdraw/internal/anim"
	"vecdraw/internal/config"
	"vecdraw/internal/geom"
	"vecdraw/internal/imageio"
	"vecdraw/internal/log"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of frames for one full turn (default: 60)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	fov := flag.Float64("fov", 0, "Field of view in degrees, 60-170 (default: 90)")
	x := flag.Float64("x", 0, "Cube x offset, -200..200")
	y := flag.Float64("y", 0, "Cube y offset, -200..200")
	z := flag.Float64("z", 0, "Cube z offset, 80..400 (default: 240)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texture := flag.String("texture", "", "Optional backdrop image (PNG/JPEG/TGA)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	logFile := flag.String("log-file", "", "Optional rotated log file")

	flag.Parse()

	log.Init(log.Options{Level: *logLevel, File: *logFile})

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			slog.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texture,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		FOV:       *fov,
		OffsetX:   *x,
		OffsetY:   *y,
		OffsetZ:   *z,
	})

	var background *image.NRGBA
	if cfg.Texture != "" {
		var err error
		background, err = imageio.Load(cfg.Texture)
		if err != nil {
			slog.Error("loading backdrop", "err", err)
			os.Exit(1)
		}
	}

	slog.Info("spin render",
		"frames", cfg.Frames, "size", cfg.Size, "fov", cfg.FOV,
		"workers", cfg.Workers, "output", cfg.OutputDir)

	start := time.Now()

	results := anim.Run(anim.Config{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		FOV:         cfg.FOV,
		Offset:      geom.Vec3{X: cfg.OffsetX, Y: cfg.OffsetY, Z: cfg.OffsetZ},
		Background:  background,
	})

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			slog.Warn("frame failed", "frame", r.Frame, "err", r.Error)
		}
	}

	slog.Info("done",
		"rendered", fmt.Sprintf("%d/%d", success, len(results)),
		"elapsed", time.Since(start).Round(100*time.Millisecond))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := anim.WriteManifest(manifestPath, anim.Config{
		Frames: cfg.Frames, Size: cfg.Size, FOV: cfg.FOV,
	}, results); err != nil {
		slog.Warn("manifest write failed", "err", err)
	} else {
		slog.Info("manifest written", "path", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
