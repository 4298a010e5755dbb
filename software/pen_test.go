package software

import (
	"image/color"
	"testing"

	"github.com/gopherstage/render/stage"
)

func TestPenClearResultsFullyTransparent(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	r.Init(st)

	r.PenDot(fakePenColor{r: 1, g: 0, b: 0, a: 1}, 10, 0, 0)
	r.PenClear()

	b := r.penSurface.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.penSurface.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) not transparent after PenClear", x, y)
			}
		}
	}
}

func TestPenDotProducesOpaquePixelAtCenter(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	r.Init(st)

	r.PenDot(fakePenColor{r: 1, g: 0, b: 0, a: 1}, 10, 0, 0)

	px, py := r.penPoint(0, 0)
	c := colorAt(r.penSurface, int(px), int(py))
	if c.A == 0 {
		t.Fatalf("expected opaque pixel at pen dot center, got %+v", c)
	}
	if c.R < 200 {
		t.Fatalf("expected red-dominant pixel, got %+v", c)
	}
}

func TestPenLineDrawsAlongSegment(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	r.Init(st)

	r.PenLine(fakePenColor{r: 0, g: 0, b: 1, a: 1}, 4, -50, 0, 50, 0)

	mx, my := r.penPoint(0, 0)
	c := colorAt(r.penSurface, int(mx), int(my))
	if c.A == 0 {
		t.Fatalf("expected opaque pixel at line midpoint, got %+v", c)
	}
}

func TestPenStampCompositesSpriteShape(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	sprite := newFakeSprite(st, 0, 0, 20, 20, color.RGBA{0, 255, 0, 255})
	r.Init(st)

	r.PenStamp(sprite)

	px, py := r.penPoint(0, 0)
	c := colorAt(r.penSurface, int(px), int(py))
	if c.A == 0 {
		t.Fatalf("expected stamped sprite pixel to be opaque, got %+v", c)
	}
}

func TestResizePenGrowsSurfaceImmediately(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	r.Init(st)

	r.resizePen(2)

	b := r.penSurface.Bounds()
	wantW, wantH := r.penSizeFor(2)
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("pen surface = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestResizePenDefersShrinkWhileDirty(t *testing.T) {
	r := New(stage.DefaultConfig())
	st := newFakeStage(480, 360, color.RGBA{0, 0, 0, 255})
	r.Init(st)

	r.resizePen(2)
	r.PenDot(fakePenColor{r: 1, g: 0, b: 0, a: 1}, 4, 0, 0)
	r.resizePen(1)

	b := r.penSurface.Bounds()
	growW, growH := r.penSizeFor(2)
	if b.Dx() != growW || b.Dy() != growH {
		t.Fatalf("expected shrink to be deferred, surface = %dx%d, want still %dx%d", b.Dx(), b.Dy(), growW, growH)
	}
	if r.pendingPenShrink == nil {
		t.Fatal("expected a pending pen shrink to be recorded")
	}

	r.PenClear()
	shrinkW, shrinkH := r.penSizeFor(1)
	b = r.penSurface.Bounds()
	if b.Dx() != shrinkW || b.Dy() != shrinkH {
		t.Fatalf("after PenClear surface = %dx%d, want %dx%d", b.Dx(), b.Dy(), shrinkW, shrinkH)
	}
}
