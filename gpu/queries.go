package gpu

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/stage"
)

// SpriteTouchesPoint reports whether (x,y), in stage coordinates, lands on
// a non-transparent pixel of sprite as it is currently drawn. When
// sprite's filters are shape-affecting (mosaic/pixelate/whirl/fisheye),
// the point test is only correct against the warped fragment the GPU
// would actually paint, so this draws the sprite alone into the query
// framebuffer with the shape-only shader variant and reads back the one
// pixel at the query point (spec §4.6). Otherwise it delegates to the
// software mirror, which samples the unwarped costume raster directly.
func (r *Renderer) SpriteTouchesPoint(sprite stage.Node, x, y float64) bool {
	if !sprite.Filters().ShapeAffecting() {
		return r.fallback.SpriteTouchesPoint(sprite, x, y)
	}

	costume := stage.CurrentCostume(sprite)
	if costume == nil {
		return false
	}
	effectiveScale := r.zoom * float64(r.cfg.Scale)
	t := geometry.Resolve(sprite, costume, r.zoom, r.cfg)
	bounds := geometry.RotatedBounds(t, effectiveScale)
	sx, sy := geometry.ToScreen(x, y, effectiveScale)
	if !bounds.Contains(sx, sy) {
		return false
	}

	px, py := geometry.ToReadbackPixel(x, y, effectiveScale)
	if px < 0 || py < 0 || px >= int(r.width) || py >= int(r.height) {
		return false
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.queryFBO)
	gl.Viewport(0, 0, r.width, r.height)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.drawChildInto(r.queryFBO, sprite, true)

	var pixel [4]uint8
	gl.ReadPixels(int32(px), int32(py), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixel[0]))
	return pixel[3] != 0
}

// SpritesIntersect, SpriteTouchesColor and SpriteColorTouchesColor
// delegate to the software fallback mirror, which this renderer keeps
// synchronized via every Init/DrawFrame/Resize/pen call (spec §4.6):
// they all require compositing the rest of the stage, which is more
// straightforward on the CPU and is not in the hot path.

func (r *Renderer) SpritesIntersect(sprite stage.Node, others []stage.Node) bool {
	return r.fallback.SpritesIntersect(sprite, others)
}

func (r *Renderer) SpriteTouchesColor(sprite stage.Node, color24 uint32) bool {
	return r.fallback.SpriteTouchesColor(sprite, color24)
}

func (r *Renderer) SpriteColorTouchesColor(sprite stage.Node, spriteColor24, otherColor24 uint32) bool {
	return r.fallback.SpriteColorTouchesColor(sprite, spriteColor24, otherColor24)
}
