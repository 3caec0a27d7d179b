// Command view opens a window with the spinning cube and live parameter
// controls: arrow keys move the cube, W/S push and pull it, [ and ] change
// the field of view, space pauses the spin.
package main

import (
	"flag"
	"image"
	"image/draw"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"vecdraw/internal/canvas"
	"vecdraw/internal/geom"
	"vecdraw/internal/imageio"
	"vecdraw/internal/log"
	"vecdraw/internal/scene"
)

const (
	offsetMin, offsetMax = -200.0, 200.0
	depthMin, depthMax   = 80.0, 400.0
	fovMin, fovMax       = 60.0, 170.0
)

func main() {
	size := flag.Int("size", 600, "Window size in pixels")
	texture := flag.String("texture", "", "Optional backdrop image (PNG/JPEG/TGA)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")

	flag.Parse()

	log.Init(log.Options{Level: *logLevel})

	cv, err := canvas.New(*size, *size)
	if err != nil {
		slog.Error("creating canvas", "err", err)
		os.Exit(1)
	}

	g := &game{
		cv: cv,
		params: scene.Params{
			Offset:    geom.Vec3{Z: 240},
			FOV:       90,
			ShowLabel: true,
		},
	}

	if *texture != "" {
		bg, err := imageio.Load(*texture)
		if err != nil {
			slog.Error("loading backdrop", "err", err)
			os.Exit(1)
		}
		g.params.Background = bg
	}

	ebiten.SetWindowTitle("vecdraw")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("window closed with error", "err", err)
		os.Exit(1)
	}
}

type game struct {
	cv     *canvas.Canvas
	rgba   *image.RGBA
	params scene.Params
	paused bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	const step = 2.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.params.Offset.X = clamp(g.params.Offset.X-step, offsetMin, offsetMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.params.Offset.X = clamp(g.params.Offset.X+step, offsetMin, offsetMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.params.Offset.Y = clamp(g.params.Offset.Y+step, offsetMin, offsetMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.params.Offset.Y = clamp(g.params.Offset.Y-step, offsetMin, offsetMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.params.Offset.Z = clamp(g.params.Offset.Z+step, depthMin, depthMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.params.Offset.Z = clamp(g.params.Offset.Z-step, depthMin, depthMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketLeft) {
		g.params.FOV = clamp(g.params.FOV-1, fovMin, fovMax)
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketRight) {
		g.params.FOV = clamp(g.params.FOV+1, fovMin, fovMax)
	}

	if !g.paused {
		g.params.Angle += 0.02
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	scene.Draw(g.cv, g.params)

	// WritePixels wants premultiplied RGBA; the canvas surface is NRGBA.
	src := g.cv.Image()
	if g.rgba == nil || g.rgba.Bounds() != src.Bounds() {
		g.rgba = image.NewRGBA(src.Bounds())
	}
	draw.Draw(g.rgba, g.rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	screen.WritePixels(g.rgba.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cv.Width(), g.cv.Height()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
