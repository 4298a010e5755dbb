package main

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// presenter blits the renderer's already-composited sprite-surface
// texture (stage, pen, and sprites, per gpu.Renderer.DrawFrame) to the
// default framebuffer. This is demo-only glue -- the renderer packages
// never touch the default framebuffer themselves.
type presenter struct {
	program  uint32
	vao, vbo uint32
	texLoc   int32
}

const presentVert = `#version 330 core
in vec2 position;
out vec2 v_uv;
void main() {
	v_uv = position * 0.5 + 0.5;
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const presentFrag = `#version 330 core
in vec2 v_uv;
out vec4 fragColor;
uniform sampler2D u_tex;
void main() {
	vec4 c = texture(u_tex, vec2(v_uv.x, 1.0 - v_uv.y));
	fragColor = c;
}
`

func compileSimple(kind uint32, src string) uint32 {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	l := int32(len(src))
	gl.ShaderSource(sh, 1, csrc, &l)
	gl.CompileShader(sh)
	return sh
}

func newPresenter() *presenter {
	vert := compileSimple(gl.VERTEX_SHADER, presentVert)
	frag := compileSimple(gl.FRAGMENT_SHADER, presentFrag)
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	p := &presenter{program: prog}
	p.texLoc = gl.GetUniformLocation(prog, gl.Str("u_tex"+"\x00"))

	quad := []float32{-1, -1, 1, -1, 1, 1, -1, -1, 1, 1, -1, 1}
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	loc := uint32(gl.GetAttribLocation(prog, gl.Str("position"+"\x00")))
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return p
}

// blit draws tex (a GL texture name) covering the whole current
// viewport, alpha-blended over whatever is already there.
func (p *presenter) blit(tex uint32) {
	gl.UseProgram(p.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(p.texLoc, 0)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}
