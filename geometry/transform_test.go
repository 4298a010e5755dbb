package geometry

import (
	"image"
	"testing"

	"github.com/gopherstage/render/effect"
	"github.com/gopherstage/render/stage"
)

type fakeLOD struct{ img *image.RGBA }

func (l *fakeLOD) Bitmap() *image.RGBA { return l.img }
func (l *fakeLOD) Width() int          { return l.img.Bounds().Dx() }
func (l *fakeLOD) Height() int         { return l.img.Bounds().Dy() }

type fakeCostume struct{ w, h int }

func (c fakeCostume) Width() int               { return c.w }
func (c fakeCostume) Height() int              { return c.h }
func (c fakeCostume) RotationCenterX() float64 { return float64(c.w) / 2 }
func (c fakeCostume) RotationCenterY() float64 { return float64(c.h) / 2 }
func (c fakeCostume) BitmapResolution() float64 { return 1 }
func (c fakeCostume) Scale() float64           { return 1 }
func (c fakeCostume) Get(float64) stage.LOD {
	return &fakeLOD{img: image.NewRGBA(image.Rect(0, 0, c.w, c.h))}
}

type fakeNode struct {
	x, y, dir, scale float64
	rotation         stage.RotationStyle
	costumes         []stage.Costume
	visible          bool
	filters          effect.Filters
}

func (n *fakeNode) IsStage() bool                      { return false }
func (n *fakeNode) Costumes() []stage.Costume          { return n.costumes }
func (n *fakeNode) CurrentCostumeIndex() int           { return 0 }
func (n *fakeNode) ScratchX() float64                  { return n.x }
func (n *fakeNode) ScratchY() float64                  { return n.y }
func (n *fakeNode) Direction() float64                 { return n.dir }
func (n *fakeNode) Scale() float64                     { return n.scale }
func (n *fakeNode) RotationStyle() stage.RotationStyle { return n.rotation }
func (n *fakeNode) Visible() bool                      { return n.visible }
func (n *fakeNode) Filters() effect.Filters            { return n.filters }
func (n *fakeNode) Stage() stage.Node                  { return nil }
func (n *fakeNode) Children() []stage.Node             { return nil }

func TestResolveCentersOnOrigin(t *testing.T) {
	n := &fakeNode{scale: 1, dir: 90, visible: true}
	c := fakeCostume{w: 10, h: 20}
	tr := Resolve(n, c, 1, stage.Config{Scale: 1})
	if tr.ScreenX != StageWidth/2 || tr.ScreenY != StageHeight/2 {
		t.Fatalf("ScreenX,ScreenY = (%v,%v), want stage center", tr.ScreenX, tr.ScreenY)
	}
	if tr.Angle != 0 {
		t.Fatalf("Angle = %v, want 0 for direction 90", tr.Angle)
	}
}

func TestResolveLeftRightMirrorsOnNegativeDirection(t *testing.T) {
	n := &fakeNode{scale: 1, dir: -45, rotation: stage.RotationLeftRight, visible: true}
	c := fakeCostume{w: 10, h: 10}
	tr := Resolve(n, c, 1, stage.Config{Scale: 1})
	if !tr.MirrorX {
		t.Fatalf("MirrorX = false, want true for negative direction")
	}
}

func TestRotatedBoundsContainsOrigin(t *testing.T) {
	n := &fakeNode{scale: 1, dir: 90, visible: true}
	c := fakeCostume{w: 10, h: 10}
	tr := Resolve(n, c, 1, stage.Config{Scale: 1})
	bounds := RotatedBounds(tr, 1)
	sx, sy := ToScreen(0, 0, 1)
	if !bounds.Contains(sx, sy) {
		t.Fatalf("bounds %+v does not contain sprite origin (%v,%v)", bounds, sx, sy)
	}
}

func TestRotatedBoundsExcludesFarPoint(t *testing.T) {
	n := &fakeNode{scale: 1, dir: 90, visible: true}
	c := fakeCostume{w: 10, h: 10}
	tr := Resolve(n, c, 1, stage.Config{Scale: 1})
	bounds := RotatedBounds(tr, 1)
	if bounds.Contains(0, 0) {
		t.Fatalf("bounds %+v should not contain top-left screen corner", bounds)
	}
}
