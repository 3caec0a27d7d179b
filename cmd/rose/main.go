// Command rose renders a rose curve with the 2D transform pipeline: points
// are built from polar coordinates and the petals are stamped by rotating a
// single traced arc around the center.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"vecdraw/internal/canvas"
	"vecdraw/internal/geom"
	"vecdraw/internal/log"
)

func main() {
	size := flag.Int("size", 600, "Image size in pixels")
	k := flag.Int("k", 5, "Rose petal count parameter")
	out := flag.String("out", "rose.webp", "Output file")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")

	flag.Parse()

	log.Init(log.Options{Level: *logLevel})

	c, err := canvas.New(*size, *size)
	if err != nil {
		slog.Error("creating canvas", "err", err)
		os.Exit(1)
	}

	c.FillRect(geom.Vec2{}, float64(*size), float64(*size), color.NRGBA{12, 12, 18, 255})

	center := c.Center()
	radius := float64(*size) * 0.4

	c.Translate(center.X, center.Y)

	// Construction circle behind the curve.
	c.Scoped(func() {
		c.SetStroke(color.NRGBA{70, 70, 90, 255})
		c.SetDash([]float64{6, 6})
		c.BeginPath()
		c.Circle(geom.Vec2{}, radius)
		c.Stroke()
	})

	// Trace r = R·cos(kθ) through one petal, then rotate the whole petal
	// into place 2k times. Each sample is a FromPolar point and each stamp
	// is a plain Vec2 rotation.
	petal := tracePetal(*k, radius)
	c.Scoped(func() {
		c.SetStroke(color.NRGBA{240, 110, 140, 255})
		c.SetLineWidth(2)
		stamps := 2 * *k
		for s := 0; s < stamps; s++ {
			angle := math.Pi * float64(s) / float64(*k)
			c.BeginPath()
			for i, p := range petal {
				q := p.Rotate(angle)
				if i == 0 {
					c.MoveTo(q)
				} else {
					c.LineTo(q)
				}
			}
			c.Stroke()
		}
	})

	c.Scoped(func() {
		c.SetFill(color.NRGBA{200, 200, 210, 255})
		c.Text(fmt.Sprintf("r = cos(%dθ)", *k), geom.Vec2{X: -center.X + 8, Y: center.Y - 8})
	})

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("creating output", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, c.Image(), nil); err != nil {
		slog.Error("encoding webp", "err", err)
		os.Exit(1)
	}
	slog.Info("wrote", "path", *out, "size", *size, "k", *k)
}

// tracePetal samples one petal of r = R·cos(kθ), spanning θ in
// [-π/2k, π/2k] where the radius stays non-negative.
func tracePetal(k int, R float64) []geom.Vec2 {
	const samples = 64
	span := math.Pi / float64(2*k)
	pts := make([]geom.Vec2, 0, samples+1)
	for i := 0; i <= samples; i++ {
		theta := -span + 2*span*float64(i)/samples
		r := R * math.Cos(float64(k)*theta)
		pts = append(pts, geom.FromPolar(theta, r))
	}
	return pts
}
