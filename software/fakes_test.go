package software

import (
	"image"
	"image/color"

	"github.com/gopherstage/render/effect"
	"github.com/gopherstage/render/stage"
)

type fakeLOD struct{ img *image.RGBA }

func (l *fakeLOD) Bitmap() *image.RGBA { return l.img }
func (l *fakeLOD) Width() int          { return l.img.Bounds().Dx() }
func (l *fakeLOD) Height() int         { return l.img.Bounds().Dy() }

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

type fakeCostume struct {
	w, h int
	lod  *fakeLOD
}

func newFakeCostume(w, h int, c color.RGBA) *fakeCostume {
	return &fakeCostume{w: w, h: h, lod: &fakeLOD{img: solidImage(w, h, c)}}
}

func (c *fakeCostume) Width() int                { return c.w }
func (c *fakeCostume) Height() int               { return c.h }
func (c *fakeCostume) RotationCenterX() float64  { return float64(c.w) / 2 }
func (c *fakeCostume) RotationCenterY() float64  { return float64(c.h) / 2 }
func (c *fakeCostume) BitmapResolution() float64 { return 1 }
func (c *fakeCostume) Scale() float64            { return 1 }
func (c *fakeCostume) Get(float64) stage.LOD     { return c.lod }

type fakeNode struct {
	isStage      bool
	x, y         float64
	dir          float64
	scale        float64
	rotation     stage.RotationStyle
	costumes     []stage.Costume
	costumeIndex int
	visible      bool
	filters      effect.Filters
	owner        stage.Node
	children     []stage.Node
}

func (n *fakeNode) IsStage() bool                      { return n.isStage }
func (n *fakeNode) Costumes() []stage.Costume          { return n.costumes }
func (n *fakeNode) CurrentCostumeIndex() int           { return n.costumeIndex }
func (n *fakeNode) ScratchX() float64                  { return n.x }
func (n *fakeNode) ScratchY() float64                  { return n.y }
func (n *fakeNode) Direction() float64                 { return n.dir }
func (n *fakeNode) Scale() float64                     { return n.scale }
func (n *fakeNode) RotationStyle() stage.RotationStyle { return n.rotation }
func (n *fakeNode) Visible() bool                      { return n.visible }
func (n *fakeNode) Filters() effect.Filters            { return n.filters }
func (n *fakeNode) Stage() stage.Node                  { return n.owner }
func (n *fakeNode) Children() []stage.Node             { return n.children }

func newFakeStage(w, h int, backdrop color.RGBA) *fakeNode {
	st := &fakeNode{isStage: true, dir: 90, scale: 1, visible: true,
		costumes: []stage.Costume{newFakeCostume(w, h, backdrop)}}
	st.owner = st
	return st
}

func newFakeSprite(owner stage.Node, x, y float64, w, h int, c color.RGBA) *fakeNode {
	return &fakeNode{x: x, y: y, scale: 1, dir: 90, visible: true, owner: owner,
		costumes: []stage.Costume{newFakeCostume(w, h, c)}}
}

type fakePenColor struct{ r, g, b, a float64 }

func (p fakePenColor) ToParts() (r, g, b, a float64) { return p.r, p.g, p.b, p.a }
func (p fakePenColor) ToCSS() string                 { return "" }
