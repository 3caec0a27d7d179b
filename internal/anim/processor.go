// Package anim renders an animation as numbered WebP frames using a worker
// pool, one full canvas per worker iteration.
package anim

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"vecdraw/internal/canvas"
	"vecdraw/internal/geom"
	"vecdraw/internal/raster"
	"vecdraw/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	Workers     int
	FOV         float64
	Offset      geom.Vec3
	Background  *image.NRGBA
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int    `json:"frame"`
	File    string `json:"file"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run renders all frames using a worker pool and returns per-frame results.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					slog.Info("rendering",
						"done", p, "total", total,
						"rate", fmt.Sprintf("%.1f frames/sec", float64(p)/elapsed))
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, frame int) Result {
	res := Result{Frame: frame}

	renderSize := cfg.Size * cfg.Supersample
	c, err := canvas.New(renderSize, renderSize)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	angle := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
	scene.Draw(c, scene.Params{
		Offset:     cfg.Offset,
		FOV:        cfg.FOV,
		Angle:      angle,
		Background: cfg.Background,
	})

	img := c.Image()
	if cfg.Supersample > 1 {
		img = raster.Downsample(img, cfg.Size, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%04d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("webp encode: %v", err)
		return res
	}

	res.File = outPath
	res.Success = true
	return res
}
