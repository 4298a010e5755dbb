// Package software implements the self-contained 2D-raster renderer
// backend: it never delegates, and is also what the GPU backend falls
// back to for queries it can't service itself (spec §4.6).
//
// It follows the teacher's RenderSprite (sprite_render.go:1104) for the
// "resolve params, then draw" shape and renderWithBlending (:994) for
// invoking a draw step under more than one configuration -- here,
// accurate vs. approximate filter application instead of blend-mode
// splitting. The affine blit itself uses golang.org/x/image/draw's
// Transform, which takes an affine matrix the same way the teacher's GL
// path uploads one as a uniform.
package software

import (
	"image"
	"image/color"
	"image/draw"

	ximage "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/mathkit"
	"github.com/gopherstage/render/stage"
)

// Renderer is the software SpriteCompositor + StageRenderer: both roles
// share one surface set, matching the teacher's own Renderer_GL, which
// holds sprite-, model-, and post-process state in a single type.
type Renderer struct {
	cfg  stage.Config
	zoom float64

	stage    stage.Node
	children []stage.Node

	spriteSurface *image.RGBA
	stageSurface  *image.RGBA
	penSurface    *image.RGBA

	// workingA/workingB are the two scratch rasters spec §4.3 calls
	// "working surfaces": instance state (not package globals), reused
	// across query calls, and documented non-reentrant (spec §5).
	workingA *image.RGBA
	workingB *image.RGBA

	lastStageCostume int
	penDirtySinceClr bool
	pendingPenShrink *float64
}

// New creates a software renderer with the given configuration. Call
// Init before drawing.
func New(cfg stage.Config) *Renderer {
	return &Renderer{cfg: cfg, zoom: 1, lastStageCostume: -1}
}

// Canvas returns the composited sprite surface; for compositing the full
// frame (stage + pen + sprites) callers draw all three surfaces in
// z-order, per spec §6's "three raster surfaces stacked."
func (r *Renderer) Canvas() any { return r.spriteSurface }

// StageSurface, PenSurface expose the other two output layers, since the
// software backend's contract is three stacked surfaces, not one.
func (r *Renderer) StageSurface() *image.RGBA { return r.stageSurface }
func (r *Renderer) PenSurface() *image.RGBA   { return r.penSurface }

func (r *Renderer) outputSize() (int, int) {
	scale := r.effectiveScale()
	w := int(geometry.StageWidth*scale + 0.5)
	h := int(geometry.StageHeight*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Reset (re)allocates the sprite surface to the current effective
// resolution, reallocating only on a dimension change, and otherwise
// just clears it -- per spec §4.3.
func (r *Renderer) Reset(scale int) {
	r.cfg.Scale = scale
	w, h := r.outputSize()
	r.spriteSurface = ensureSize(r.spriteSurface, w, h)
	clearRGBA(r.spriteSurface)
}

func ensureSize(img *image.RGBA, w, h int) *image.RGBA {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func clearRGBA(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// DrawChild renders a single sprite or the stage onto the sprite surface
// using the current effective scale. Missing-costume and degenerate-rect
// children are skipped silently (spec §7).
func (r *Renderer) DrawChild(n stage.Node) {
	r.drawChildOnto(r.spriteSurface, n, false)
}

// drawChildOnto draws n onto dst; noEffects disables ghost/color/
// brightness application (used by spriteTouchesColor's "draw everything
// else, then cut the sprite's own shape out with noEffects" step, spec
// §4.4).
func (r *Renderer) drawChildOnto(dst *image.RGBA, n stage.Node, noEffects bool) {
	costume := stage.CurrentCostume(n)
	if costume == nil {
		return
	}
	effectiveScale := r.effectiveScale()
	t := geometry.Resolve(n, costume, r.zoom, r.cfg)

	if float64(t.Width)*t.ObjectScale < 1 || float64(t.Height)*t.ObjectScale < 1 {
		return
	}

	lod := costume.Get(t.ObjectScale * r.zoom)
	if lod == nil {
		return
	}
	src := lod.Bitmap()
	if src == nil {
		return
	}

	filters := n.Filters()
	alpha := 1.0
	if !noEffects {
		alpha = filters.Opacity()
	}

	var prepared *image.RGBA
	switch {
	case noEffects:
		prepared = src
	case r.cfg.AccurateFilters:
		prepared = applyAccurateFilters(src, filters)
	default:
		prepared = applyApproximateFilters(src, filters)
	}

	m := geometry.Matrix(t, effectiveScale)
	aff := toAff3(m, src.Bounds())
	blit(dst, prepared, aff, alpha)
}

// DrawObjects iterates children bottom to top, skipping invisible ones,
// per spec §4.3.
func (r *Renderer) DrawObjects(children []stage.Node) {
	for _, c := range children {
		if !c.Visible() {
			continue
		}
		r.DrawChild(c)
	}
}

func colorAt(img *image.RGBA, x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= img.Bounds().Dx() || y >= img.Bounds().Dy() {
		return color.RGBA{}
	}
	return img.RGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
}

// toAff3 builds the golang.org/x/image/draw affine matrix mapping source
// LOD pixel space to destination pixel space, folding the costume's
// bitmap resolution (src bounds vs. logical width/height) into the unit
// square transform geometry.Matrix already produced.
func toAff3(m mathkit.Mat3, srcBounds image.Rectangle) f64.Aff3 {
	sw, sh := float64(srcBounds.Dx()), float64(srcBounds.Dy())
	if sw == 0 {
		sw = 1
	}
	if sh == 0 {
		sh = 1
	}
	// geometry.Matrix maps a unit square to screen pixels; scale that by
	// 1/srcSize first so it instead maps source-pixel space to screen.
	ox, oy := mathkit.Apply(m, 0, 0)
	ux, uy := mathkit.Apply(m, float32(1/sw), 0)
	vx, vy := mathkit.Apply(m, 0, float32(1/sh))
	return f64.Aff3{
		float64(ux - ox), float64(vx - ox), float64(ox),
		float64(uy - oy), float64(vy - oy), float64(oy),
	}
}

func blit(dst, src *image.RGBA, aff f64.Aff3, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		ximage.NearestNeighbor.Transform(dst, aff, src, src.Bounds(), draw.Over, nil)
		return
	}
	faded := applyGlobalAlpha(src, alpha)
	ximage.NearestNeighbor.Transform(dst, aff, faded, faded.Bounds(), draw.Over, nil)
}

func applyGlobalAlpha(src *image.RGBA, alpha float64) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			c.A = uint8(float64(c.A) * alpha)
			c.R = uint8(float64(c.R) * alpha)
			c.G = uint8(float64(c.G) * alpha)
			c.B = uint8(float64(c.B) * alpha)
			out.SetRGBA(x, y, c)
		}
	}
	return out
}
