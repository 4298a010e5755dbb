package software

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/stage"
)

// PenClear clears the pen surface and commits any pending zoom-driven
// shrink that Resize deferred (spec §4.4's resize policy).
func (r *Renderer) PenClear() {
	clearRGBA(r.penSurface)
	r.penDirtySinceClr = false
	if r.pendingPenShrink != nil {
		w, h := r.penSizeFor(*r.pendingPenShrink)
		r.penSurface = ensureSize(r.penSurface, w, h)
		r.pendingPenShrink = nil
	}
}

// PenDot fills a circle of diameter size centered at (240+x, 180-y).
func (r *Renderer) PenDot(c stage.PenColor, size, x, y float64) {
	px, py := r.penPoint(x, y)
	rad := size / 2 * r.effectiveScale()
	fillCircle(r.penSurface, px, py, rad, penColorRGBA(c))
	r.penDirtySinceClr = true
}

// PenLine strokes a round-capped line from (x1,y1) to (x2,y2). When pen
// zoom is 1 and size mod 2 lands in (0.5, 1.5) -- i.e. an odd integer
// width -- endpoints are nudged by -0.5 on each axis so the stroke lands
// exactly on one pixel row/column, matching Scratch's odd-width line
// convention (spec invariant 8).
func (r *Renderer) PenLine(c stage.PenColor, size, x1, y1, x2, y2 float64) {
	px1, py1 := r.penPoint(x1, y1)
	px2, py2 := r.penPoint(x2, y2)
	if r.zoom == 1 {
		m := math.Mod(size, 2)
		if m > 0.5 && m < 1.5 {
			px1 -= 0.5
			py1 -= 0.5
			px2 -= 0.5
			py2 -= 0.5
		}
	}
	rad := size / 2 * r.effectiveScale()
	strokeLine(r.penSurface, px1, py1, px2, py2, rad, penColorRGBA(c))
	r.penDirtySinceClr = true
}

// PenStamp composites sprite onto the pen surface through the same draw
// path DrawChild uses, effects honored.
func (r *Renderer) PenStamp(sprite stage.Node) {
	r.drawChildOnto(r.penSurface, sprite, false)
	r.penDirtySinceClr = true
}

func (r *Renderer) penPoint(x, y float64) (float64, float64) {
	return geometry.ToScreen(x, y, r.effectiveScale())
}

func (r *Renderer) effectiveScale() float64 {
	return r.zoom * float64(r.cfg.Scale)
}

func (r *Renderer) penSizeFor(zoom float64) (int, int) {
	scale := zoom * float64(r.cfg.Scale)
	w := int(math.Round(geometry.StageWidth * scale))
	h := int(math.Round(geometry.StageHeight * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func penColorRGBA(c stage.PenColor) color.RGBA {
	r, g, b, a := c.ToParts()
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: to8(a)}
}

// resizePen updates the stage zoom used by pen coordinates/sizing.
// Growing re-allocates upward immediately; shrinking is deferred to the
// next PenClear unless the pen surface has had nothing drawn into it
// since the last clear, per spec's resize policy (§4.4).
func (r *Renderer) resizePen(zoom float64) {
	r.zoom = zoom
	w, h := r.penSizeFor(zoom)
	cur := r.penSurface.Bounds()
	growing := w > cur.Dx() || h > cur.Dy()
	if growing {
		grown := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(grown, cur, r.penSurface, image.Point{}, draw.Src)
		r.penSurface = grown
		r.pendingPenShrink = nil
		return
	}
	if !r.penDirtySinceClr {
		r.penSurface = ensureSize(r.penSurface, w, h)
		r.pendingPenShrink = nil
		return
	}
	z := zoom
	r.pendingPenShrink = &z
}
