package main

import (
	"image"
	"image/color"

	"github.com/gopherstage/render/effect"
	"github.com/gopherstage/render/stage"
)

// solidLOD is the simplest possible stage.LOD: a single decoded bitmap,
// generated once and reused at every requested scale. A real host would
// rasterize per scale; this demo doesn't need to.
type solidLOD struct{ bitmap *image.RGBA }

func (l *solidLOD) Bitmap() *image.RGBA { return l.bitmap }
func (l *solidLOD) Width() int          { return l.bitmap.Bounds().Dx() }
func (l *solidLOD) Height() int         { return l.bitmap.Bounds().Dy() }

func newSolidLOD(w, h int, c color.RGBA) *solidLOD {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return &solidLOD{bitmap: img}
}

// solidCostume is a fixed-size, fixed-color costume with one LOD; good
// enough to exercise the full transform/effect pipeline without an asset
// pipeline behind it (costume decoding is explicitly out of scope).
type solidCostume struct {
	w, h      int
	rcx, rcy  float64
	res       float64
	scale     float64
	lod       *solidLOD
}

func newSolidCostume(w, h int, c color.RGBA) *solidCostume {
	return &solidCostume{
		w: w, h: h,
		rcx: float64(w) / 2, rcy: float64(h) / 2,
		res: 1, scale: 1,
		lod: newSolidLOD(w, h, c),
	}
}

func (c *solidCostume) Width() int                 { return c.w }
func (c *solidCostume) Height() int                { return c.h }
func (c *solidCostume) RotationCenterX() float64    { return c.rcx }
func (c *solidCostume) RotationCenterY() float64    { return c.rcy }
func (c *solidCostume) BitmapResolution() float64   { return c.res }
func (c *solidCostume) Scale() float64              { return c.scale }
func (c *solidCostume) Get(desiredScale float64) stage.LOD { return c.lod }

// demoSprite is a minimal stage.Node: one costume, a movable position, and
// mutable filters, enough to drive the demo's animation loop.
type demoSprite struct {
	isStage  bool
	costumes []stage.Costume
	x, y     float64
	dir      float64
	scale    float64
	rotation stage.RotationStyle
	visible  bool
	filters  effect.Filters
	owner    stage.Node
}

func (s *demoSprite) IsStage() bool                    { return s.isStage }
func (s *demoSprite) Costumes() []stage.Costume        { return s.costumes }
func (s *demoSprite) CurrentCostumeIndex() int         { return 0 }
func (s *demoSprite) ScratchX() float64                { return s.x }
func (s *demoSprite) ScratchY() float64                { return s.y }
func (s *demoSprite) Direction() float64               { return s.dir }
func (s *demoSprite) Scale() float64                   { return s.scale }
func (s *demoSprite) RotationStyle() stage.RotationStyle { return s.rotation }
func (s *demoSprite) Visible() bool                    { return s.visible }
func (s *demoSprite) Filters() effect.Filters          { return s.filters }
func (s *demoSprite) Stage() stage.Node                { return s.owner }
func (s *demoSprite) Children() []stage.Node           { return nil }

// demoStage is the one stage.Node with IsStage()==true; it owns the
// sprite list DrawFrame iterates.
type demoStage struct {
	*demoSprite
	children []stage.Node
}

func (s *demoStage) Children() []stage.Node { return s.children }

func newDemoStage() *demoStage {
	backdrop := newSolidCostume(480, 360, color.RGBA{30, 30, 50, 255})
	st := &demoStage{demoSprite: &demoSprite{
		isStage: true, dir: 90, scale: 1, visible: true,
		costumes: []stage.Costume{backdrop},
	}}
	st.owner = st
	return st
}

func newDemoSprite(owner stage.Node, c color.RGBA) *demoSprite {
	s := &demoSprite{
		costumes: []stage.Costume{newSolidCostume(48, 48, c)},
		scale:    1, visible: true, owner: owner,
	}
	return s
}

// demoPenColor adapts color.RGBA to stage.PenColor.
type demoPenColor struct{ c color.RGBA }

func (p demoPenColor) ToParts() (r, g, b, a float64) {
	return float64(p.c.R) / 255, float64(p.c.G) / 255, float64(p.c.B) / 255, float64(p.c.A) / 255
}

func (p demoPenColor) ToCSS() string {
	return "#" + hex(p.c.R) + hex(p.c.G) + hex(p.c.B)
}

func hex(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0xf]})
}
