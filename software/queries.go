// Queries implement the four pixel-exact spatial tests (spec §4.4):
// SpriteTouchesPoint, SpritesIntersect, SpriteTouchesColor and
// SpriteColorTouchesColor. SpriteTouchesPoint and SpritesIntersect reject
// cheaply on rotated bounds before paying for pixel work; the two color
// queries scan the whole workingA/workingB scratch surfaces, which hold
// the images that must actually be compared pixel by pixel -- the
// software equivalent of the teacher's
// renderWithBlending (sprite_render.go:994) resolving draw parameters
// before issuing a draw call.
package software

import (
	"image"
	"image/color"

	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/mathkit"
	"github.com/gopherstage/render/stage"
)

// SpriteTouchesPoint reports whether (x,y), in stage coordinates, lands on
// a non-transparent pixel of sprite as it is currently drawn (post ghost/
// ignoring color-shift, which does not affect alpha).
func (r *Renderer) SpriteTouchesPoint(sprite stage.Node, x, y float64) bool {
	costume := stage.CurrentCostume(sprite)
	if costume == nil {
		return false
	}
	effectiveScale := r.effectiveScale()
	t := geometry.Resolve(sprite, costume, r.zoom, r.cfg)
	bounds := geometry.RotatedBounds(t, effectiveScale)
	sx, sy := geometry.ToScreen(x, y, effectiveScale)
	if !bounds.Contains(sx, sy) {
		return false
	}

	lod := costume.Get(t.ObjectScale * r.zoom)
	if lod == nil {
		return false
	}
	src := lod.Bitmap()
	if src == nil {
		return false
	}

	m := geometry.Matrix(t, effectiveScale)
	inv := mathkit.Invert(m)
	u, v := mathkit.Apply(inv, float32(sx), float32(sy))
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return false
	}

	b := src.Bounds()
	px := b.Min.X + int(u*float32(b.Dx()))
	py := b.Min.Y + int(v*float32(b.Dy()))
	a := src.RGBAAt(px, py).A
	if a == 0 {
		return false
	}
	return sprite.Filters().Opacity()*float64(a)/255 > 0
}

// SpritesIntersect reports whether sprite's drawn shape overlaps any
// member of others. Rotated-bounds rejection runs per candidate before
// any pixel work.
func (r *Renderer) SpritesIntersect(sprite stage.Node, others []stage.Node) bool {
	aBounds, ok := r.rotatedBoundsOf(sprite)
	if !ok {
		return false
	}
	w, h := r.outputSize()
	r.workingA = ensureSize(r.workingA, w, h)
	clearRGBA(r.workingA)
	r.drawChildOnto(r.workingA, sprite, true)

	for _, other := range others {
		bBounds, ok := r.rotatedBoundsOf(other)
		if !ok || !aBounds.Overlaps(bBounds) {
			continue
		}
		r.workingB = ensureSize(r.workingB, w, h)
		clearRGBA(r.workingB)
		r.drawChildOnto(r.workingB, other, true)

		overlap := aBounds.Intersect(bBounds)
		if masksOverlap(r.workingA, r.workingB, overlap) {
			return true
		}
	}
	return false
}

func (r *Renderer) rotatedBoundsOf(n stage.Node) (geometry.Rect, bool) {
	costume := stage.CurrentCostume(n)
	if costume == nil {
		return geometry.Rect{}, false
	}
	effectiveScale := r.effectiveScale()
	t := geometry.Resolve(n, costume, r.zoom, r.cfg)
	return geometry.RotatedBounds(t, effectiveScale), true
}

func masksOverlap(a, b *image.RGBA, rect geometry.Rect) bool {
	bounds := a.Bounds()
	minX := clampInt(int(rect.Left), bounds.Min.X, bounds.Max.X)
	maxX := clampInt(int(rect.Right)+1, bounds.Min.X, bounds.Max.X)
	minY := clampInt(int(rect.Top), bounds.Min.Y, bounds.Max.Y)
	maxY := clampInt(int(rect.Bottom)+1, bounds.Min.Y, bounds.Max.Y)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if a.RGBAAt(x, y).A != 0 && b.RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SpriteTouchesColor reports whether any currently-visible pixel of
// sprite lands on a stage pixel (everything else in the scene) matching
// color24 (packed 0xRRGGBB). The sprite mask itself is drawn with
// noEffects, per spec §4.4, so a fully-ghosted sprite still tests its full
// opaque shape rather than an invisible one.
func (r *Renderer) SpriteTouchesColor(sprite stage.Node, color24 uint32) bool {
	w, h := r.outputSize()
	r.workingA = ensureSize(r.workingA, w, h)
	r.workingB = ensureSize(r.workingB, w, h)
	clearRGBA(r.workingA)
	clearRGBA(r.workingB)

	r.renderSceneExcluding(r.workingA, sprite)
	r.drawChildOnto(r.workingB, sprite, true)

	target := color.RGBA{}
	tr, tg, tb := mathkit.UnpackRGB(color24)
	target.R, target.G, target.B = tr, tg, tb

	b := r.workingB.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.workingB.RGBAAt(x, y).A == 0 {
				continue
			}
			if colorMatches(r.workingA.RGBAAt(x, y), target) {
				return true
			}
		}
	}
	return false
}

// SpriteColorTouchesColor restricts the comparison to pixels where
// sprite's own rendered color matches spriteColor24, per spec §4.4.
func (r *Renderer) SpriteColorTouchesColor(sprite stage.Node, spriteColor24, otherColor24 uint32) bool {
	w, h := r.outputSize()
	r.workingA = ensureSize(r.workingA, w, h)
	r.workingB = ensureSize(r.workingB, w, h)
	clearRGBA(r.workingA)
	clearRGBA(r.workingB)

	r.renderSceneExcluding(r.workingA, sprite)
	r.drawChildOnto(r.workingB, sprite, false)

	wantSprite := color.RGBA{}
	wantSprite.R, wantSprite.G, wantSprite.B = mathkit.UnpackRGB(spriteColor24)
	wantOther := color.RGBA{}
	wantOther.R, wantOther.G, wantOther.B = mathkit.UnpackRGB(otherColor24)

	b := r.workingB.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sc := r.workingB.RGBAAt(x, y)
			if sc.A == 0 || !colorMatches(sc, wantSprite) {
				continue
			}
			if colorMatches(r.workingA.RGBAAt(x, y), wantOther) {
				return true
			}
		}
	}
	return false
}

func (r *Renderer) renderSceneExcluding(dst *image.RGBA, exclude stage.Node) {
	if r.stage != nil {
		r.drawChildOnto(dst, r.stage, false)
	}
	for _, c := range r.children {
		if c == exclude || !c.Visible() {
			continue
		}
		r.drawChildOnto(dst, c, false)
	}
}

// colorMatches compares the full 24-bit packed RGB, per spec §4.4 ("color
// comparison is exact on 24 bits") and mathkit.PackRGB's own contract for
// the exact-match color queries.
func colorMatches(c, target color.RGBA) bool {
	return c.R == target.R && c.G == target.G && c.B == target.B
}
