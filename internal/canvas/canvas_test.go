package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"vecdraw/internal/geom"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

func mustNew(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return c
}

func alphaAt(c *Canvas, x, y int) uint8 {
	img := c.Image()
	return img.Pix[img.PixOffset(x, y)+3]
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("New(0,10) succeeded; want error")
	}
	if _, err := New(10, -1); err == nil {
		t.Error("New(10,-1) succeeded; want error")
	}
}

func TestZeroValue_FailsOnFirstDraw(t *testing.T) {
	var c Canvas
	defer func() {
		if recover() == nil {
			t.Error("drawing on an unbound canvas did not panic")
		}
	}()
	c.Line(geom.Vec2{}, geom.Vec2{X: 5, Y: 5})
}

func TestAccessors(t *testing.T) {
	c := mustNew(t, 800, 400)
	if c.Width() != 800 || c.Height() != 400 {
		t.Errorf("size = %d×%d", c.Width(), c.Height())
	}
	if got := c.AspectRatio(); got != 2 {
		t.Errorf("AspectRatio = %g; want 2", got)
	}
	if got := c.Center(); got != (geom.Vec2{X: 400, Y: 200}) {
		t.Errorf("Center = %v; want (400,200)", got)
	}
}

func TestFillRectAndClear(t *testing.T) {
	c := mustNew(t, 20, 20)
	c.FillRect(geom.Vec2{X: 5, Y: 5}, 10, 10, red)
	if alphaAt(c, 10, 10) == 0 {
		t.Fatal("FillRect did not paint")
	}
	c.Clear()
	if alphaAt(c, 10, 10) != 0 {
		t.Error("Clear left pixels behind")
	}
}

func TestPathFillAndStroke(t *testing.T) {
	c := mustNew(t, 40, 40)
	c.SetFill(red)
	c.BeginPath()
	c.MoveTo(geom.Vec2{X: 5, Y: 5})
	c.LineTo(geom.Vec2{X: 35, Y: 5})
	c.LineTo(geom.Vec2{X: 20, Y: 35})
	c.ClosePath()
	c.Fill()
	if alphaAt(c, 20, 15) == 0 {
		t.Error("triangle interior not filled")
	}
	if alphaAt(c, 3, 30) != 0 {
		t.Error("outside of triangle was filled")
	}

	c.Clear()
	c.SetStroke(blue)
	c.Stroke()
	if alphaAt(c, 20, 5) == 0 {
		t.Error("top edge not stroked")
	}
	// ClosePath means the closing edge is drawn too.
	if alphaAt(c, 12, 20) == 0 && alphaAt(c, 13, 20) == 0 {
		t.Error("closing edge not stroked")
	}
}

func TestSaveRestore(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.SetFill(red)
	c.SetLineWidth(4)
	c.Save()
	c.SetFill(blue)
	c.SetLineWidth(9)
	c.Restore()
	if c.state.FillColor != red || c.state.LineWidth != 4 {
		t.Errorf("state after restore = %+v", c.state)
	}
	// Restore on an empty stack must not panic or change state.
	c.Restore()
	if c.state.FillColor != red {
		t.Error("empty-stack Restore changed state")
	}
}

func TestScopedRestoresOnPanic(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.SetFill(red)
	func() {
		defer func() { recover() }()
		c.Scoped(func() {
			c.SetFill(blue)
			panic("boom")
		})
	}()
	if c.state.FillColor != red {
		t.Error("Scoped did not restore state after panic")
	}
}

func TestTranslateAffectsDrawing(t *testing.T) {
	c := mustNew(t, 30, 30)
	c.Translate(10, 10)
	c.FillRect(geom.Vec2{}, 5, 5, red)
	if alphaAt(c, 12, 12) == 0 {
		t.Error("translated rect not at expected position")
	}
	if alphaAt(c, 2, 2) != 0 {
		t.Error("rect drawn at untranslated position")
	}
}

func TestRotateAffectsDrawing(t *testing.T) {
	c := mustNew(t, 40, 40)
	c.Translate(20, 20)
	c.Rotate(math.Pi / 2)
	// A point at user (10, 0) rotates to device-relative (0, 10).
	c.Line(geom.Vec2{}, geom.Vec2{X: 10, Y: 0})
	if alphaAt(c, 20, 25) == 0 {
		t.Error("rotated line not drawn along +y")
	}
	if alphaAt(c, 25, 20) != 0 {
		t.Error("line drawn along unrotated +x")
	}
}

func TestDashedLineHasGaps(t *testing.T) {
	c := mustNew(t, 60, 10)
	c.SetDash([]float64{4, 4})
	c.Line(geom.Vec2{X: 0, Y: 5}, geom.Vec2{X: 59, Y: 5})
	on, off := 0, 0
	for x := 0; x < 60; x++ {
		if alphaAt(c, x, 5) != 0 {
			on++
		} else {
			off++
		}
	}
	if on == 0 || off == 0 {
		t.Errorf("dashed line: %d on, %d off; want both nonzero", on, off)
	}
}

func TestCirclePath(t *testing.T) {
	c := mustNew(t, 40, 40)
	c.SetFill(red)
	c.BeginPath()
	c.Circle(geom.Vec2{X: 20, Y: 20}, 10)
	c.Fill()
	if alphaAt(c, 20, 20) == 0 {
		t.Error("circle interior not filled")
	}
	if alphaAt(c, 2, 2) != 0 {
		t.Error("outside circle was filled")
	}
}

func TestText(t *testing.T) {
	c := mustNew(t, 80, 20)
	c.SetFill(red)
	c.Text("hi", geom.Vec2{X: 5, Y: 14})
	painted := 0
	img := c.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("Text painted no pixels")
	}
}

func TestNonFinitePointsDrawNothing(t *testing.T) {
	c := mustNew(t, 20, 20)
	c.Line(geom.Vec2{X: math.NaN(), Y: 3}, geom.Vec2{X: 10, Y: 3})
	c.Text("x", geom.Vec2{X: math.Inf(1), Y: 5})
	c.BeginPath()
	c.MoveTo(geom.Vec2{X: math.NaN(), Y: math.NaN()})
	c.LineTo(geom.Vec2{X: 5, Y: 5})
	c.LineTo(geom.Vec2{X: 5, Y: 15})
	c.Fill()
	img := c.Image()
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("non-finite geometry painted pixels")
		}
	}
}

func TestDrawImage(t *testing.T) {
	c := mustNew(t, 20, 20)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
		src.Pix[i+3] = 255
	}
	c.DrawImage(src, geom.Vec2{X: 5, Y: 5}, 8, 8)
	if alphaAt(c, 9, 9) == 0 {
		t.Error("blitted image not visible")
	}
	if alphaAt(c, 2, 2) != 0 {
		t.Error("pixels outside the blit rect were written")
	}
}

func TestAlphaBlending(t *testing.T) {
	c := mustNew(t, 10, 10)
	c.SetAlpha(0.5)
	c.FillRect(geom.Vec2{}, 10, 10, red)
	a := alphaAt(c, 5, 5)
	if a < 120 || a > 135 {
		t.Errorf("alpha = %d; want ≈128", a)
	}
}
