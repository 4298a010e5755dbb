package gpu

import (
	"encoding/binary"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/mobile/exp/f32"

	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/stage"
)

// penQuad is a [-1,1]x[-1,1] unit square; pendot/penline scale and
// translate it in the vertex shader. Each pen draw uploads it into the
// shared quad VBO (bindPenQuad) and then puts the sprite quad back
// (restoreSpriteQuad).
var penQuad = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, -1,
	1, 1,
	-1, 1,
}

func (r *Renderer) penPoint(x, y float64) (float64, float64) {
	scale := r.zoom * float64(r.cfg.Scale)
	return geometry.ToScreen(x, y, scale)
}

func (r *Renderer) bindPenQuad(prog *Program) {
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	data := f32.Bytes(binary.LittleEndian, penQuad...)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	posLoc := prog.Attribute("position")
	if posLoc >= 0 {
		gl.EnableVertexAttribArray(uint32(posLoc))
		gl.VertexAttribPointerWithOffset(uint32(posLoc), 2, gl.FLOAT, false, 2*4, 0)
	}
}

// restoreSpriteQuad re-uploads the sprite quad geometry the pen draws
// above overwrote in the shared VBO.
func (r *Renderer) restoreSpriteQuad() {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	data := f32.Bytes(binary.LittleEndian, unitQuad...)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

// blitPenLayer draws the persistent pen texture as a full-screen,
// Y-flipped quad into whichever framebuffer is currently bound (the
// sprite framebuffer, from DrawFrame), per spec §4.6's "draw pen layer as
// a full-screen textured quad with Y flipped so it composites over the
// stage in stage coordinates."
func (r *Renderer) blitPenLayer() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	r.penBlitProg.Use()
	gl.Uniform1i(r.penBlitProg.Uniform("u_texture"), 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.penTex)

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	posLoc := r.penBlitProg.Attribute("position")
	uvLoc := r.penBlitProg.Attribute("uv")
	const stride = 4 * 4
	if posLoc >= 0 {
		gl.EnableVertexAttribArray(uint32(posLoc))
		gl.VertexAttribPointerWithOffset(uint32(posLoc), 2, gl.FLOAT, false, stride, 0)
	}
	if uvLoc >= 0 {
		gl.EnableVertexAttribArray(uint32(uvLoc))
		gl.VertexAttribPointerWithOffset(uint32(uvLoc), 2, gl.FLOAT, false, stride, 2*4)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// PenDot fills a circle of diameter size centered at (x,y) on the pen
// framebuffer.
func (r *Renderer) PenDot(c stage.PenColor, size, x, y float64) {
	px, py := r.penPoint(x, y)
	rad := size / 2 * r.zoom * float64(r.cfg.Scale)
	rr, gg, bb, aa := c.ToParts()

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.penFBO)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	r.penDotProg.Use()
	proj := r.projection()
	gl.UniformMatrix3fv(r.penDotProg.Uniform("u_projection"), 1, false, &proj[0])
	gl.Uniform2f(r.penDotProg.Uniform("u_center"), float32(px), float32(py))
	gl.Uniform1f(r.penDotProg.Uniform("u_radius"), float32(rad))
	gl.Uniform4f(r.penDotProg.Uniform("u_color"), float32(rr), float32(gg), float32(bb), float32(aa))

	r.bindPenQuad(r.penDotProg)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	r.restoreSpriteQuad()
	gl.BindVertexArray(0)

	r.fallback.PenDot(c, size, x, y)
}

// PenLine strokes a round-capped segment from (x1,y1) to (x2,y2).
func (r *Renderer) PenLine(c stage.PenColor, size, x1, y1, x2, y2 float64) {
	px1, py1 := r.penPoint(x1, y1)
	px2, py2 := r.penPoint(x2, y2)
	rad := size / 2 * r.zoom * float64(r.cfg.Scale)
	rr, gg, bb, aa := c.ToParts()

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.penFBO)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	r.penLineProg.Use()
	proj := r.projection()
	gl.UniformMatrix3fv(r.penLineProg.Uniform("u_projection"), 1, false, &proj[0])
	gl.Uniform2f(r.penLineProg.Uniform("u_a"), float32(px1), float32(py1))
	gl.Uniform2f(r.penLineProg.Uniform("u_b"), float32(px2), float32(py2))
	gl.Uniform1f(r.penLineProg.Uniform("u_radius"), float32(rad))
	gl.Uniform4f(r.penLineProg.Uniform("u_color"), float32(rr), float32(gg), float32(bb), float32(aa))

	r.bindPenQuad(r.penLineProg)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	r.restoreSpriteQuad()
	gl.BindVertexArray(0)

	r.fallback.PenLine(c, size, x1, y1, x2, y2)
}

// PenStamp composites sprite's current appearance into the pen
// framebuffer.
func (r *Renderer) PenStamp(sprite stage.Node) {
	r.drawChildInto(r.penFBO, sprite, false)
	r.fallback.PenStamp(sprite)
}

// PenClear clears the pen framebuffer.
func (r *Renderer) PenClear() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.penFBO)
	gl.Viewport(0, 0, r.width, r.height)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.fallback.PenClear()
}

