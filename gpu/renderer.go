package gpu

import (
	"encoding/binary"
	"image"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/mobile/exp/f32"

	"github.com/gopherstage/render/effect"
	"github.com/gopherstage/render/geometry"
	"github.com/gopherstage/render/mathkit"
	"github.com/gopherstage/render/software"
	"github.com/gopherstage/render/stage"
	"github.com/gopherstage/render/texcache"
)

// unitQuad is two triangles covering [0,1]x[0,1] in (position, uv) pairs,
// uploaded at construction (and re-uploaded after each pen dot or line
// borrows the shared VBO) and reused for every sprite and pen-stamp draw -- the
// teacher always draws from one shared quad VBO too (renderSpriteQuad,
// sprite_render.go:574), rebuilding only the uniforms per draw.
var unitQuad = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,
	0, 0, 0, 0,
	1, 1, 1, 1,
	0, 1, 0, 1,
}

// Renderer is the accelerated backend's stage.ProjectRenderer
// implementation. It owns the GL object state for the sprite, pen, and
// query framebuffers. spritesIntersect and the two color-touching queries
// delegate to an internally-kept *software.Renderer mirror, since reading
// scene pixels back from the GPU one query at a time is not worth a
// bespoke readback path for those three (spec §4.6); spriteTouchesPoint
// is the one query the GPU keeps for itself when the sprite's filters are
// shape-affecting, since only a GPU readback of the warped fragment sees
// whirl/fisheye/mosaic/pixelate's effect on the sampled point.
type Renderer struct {
	cfg  stage.Config
	zoom float64

	stage    stage.Node
	children []stage.Node

	spriteVariants *VariantManager
	penDotProg     *Program
	penLineProg    *Program
	penBlitProg    *Program

	quadVAO, quadVBO uint32

	spriteFBO, spriteTex uint32
	penFBO, penTex       uint32
	queryFBO, queryTex   uint32
	width, height        int32

	texCache *texcache.Cache[image.RGBA, glTexture]

	// fallback mirrors every Init/DrawFrame/Resize call so its pixel
	// buffers stay representative of the current scene for the two
	// color-touching queries.
	fallback *software.Renderer
}

// New creates a GPU renderer. The caller must have a current GL context
// bound (matching the teacher's own initGLFW/initOpenGL sequencing in
// main(), sprite_render.go:4938) before calling New.
func New(cfg stage.Config) *Renderer {
	r := &Renderer{cfg: cfg, zoom: 1, fallback: software.New(cfg)}

	r.spriteVariants = NewVariantManager(spriteVertSrc, spriteFragSrc)
	r.penDotProg = newProgram(penDotVertSrc, penDotFragSrc, nil)
	r.penLineProg = newProgram(penLineVertSrc, penLineFragSrc, nil)
	r.penBlitProg = newProgram(penBlitVertSrc, penBlitFragSrc, nil)
	r.texCache = texcache.New[image.RGBA, glTexture]()

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	quadBytes := f32.Bytes(binary.LittleEndian, unitQuad...)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadBytes), gl.Ptr(quadBytes), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	return r
}

// Canvas returns the fully composited frame (stage, pen, sprites) as a
// texture handle.
func (r *Renderer) Canvas() any { return r.spriteTex }

// SpriteTexture returns the fully composited frame's texture name, for a
// host to blit into its own window framebuffer (spec §6's output
// contract). PenTexture exposes the raw persistent pen layer on its own,
// for hosts that want it separately (e.g. for debugging); DrawFrame
// already composites it into SpriteTexture in stage-pen-children order,
// so a host does not need to blit it again itself.
func (r *Renderer) SpriteTexture() uint32 { return r.spriteTex }
func (r *Renderer) PenTexture() uint32    { return r.penTex }

// Stage returns the attached stage node.
func (r *Renderer) Stage() stage.Node { return r.stage }

func (r *Renderer) outputSize() (int32, int32) {
	scale := r.zoom * float64(r.cfg.Scale)
	w := int32(geometry.StageWidth*scale + 0.5)
	h := int32(geometry.StageHeight*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func newColorFBO(w, h int32) (fbo, tex uint32) {
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return
}

// Init attaches root, allocates the sprite and pen framebuffers at the
// current effective scale, and primes the software fallback mirror.
func (r *Renderer) Init(root stage.Node) {
	r.stage = root
	r.children = root.Children()

	w, h := r.outputSize()
	r.width, r.height = w, h
	r.spriteFBO, r.spriteTex = newColorFBO(w, h)
	r.penFBO, r.penTex = newColorFBO(w, h)
	r.queryFBO, r.queryTex = newColorFBO(w, h)

	r.fallback.Init(root)
}

func (r *Renderer) projection() mathkit.Mat3 {
	return mathkit.Projection(float32(r.width), float32(r.height))
}

// DrawChild draws a single sprite or the stage onto the sprite
// framebuffer using a shader variant selected by its current filters.
func (r *Renderer) DrawChild(n stage.Node) {
	r.drawChildInto(r.spriteFBO, n, false)
}

func (r *Renderer) drawChildInto(fbo uint32, n stage.Node, onlyShapeFilters bool) {
	costume := stage.CurrentCostume(n)
	if costume == nil {
		return
	}
	effectiveScale := r.zoom * float64(r.cfg.Scale)
	t := geometry.Resolve(n, costume, r.zoom, r.cfg)
	if float64(t.Width)*t.ObjectScale < 1 || float64(t.Height)*t.ObjectScale < 1 {
		return
	}
	lod := costume.Get(t.ObjectScale * r.zoom)
	if lod == nil {
		return
	}
	bitmap := lod.Bitmap()
	if bitmap == nil {
		return
	}

	filters := n.Filters()
	prog := r.spriteVariants.Get(DefinesFor(filters, onlyShapeFilters))
	tex := textureFor(r.texCache, bitmap)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	prog.Use()
	m := geometry.Matrix(t, effectiveScale)
	proj := r.projection()
	gl.UniformMatrix3fv(prog.Uniform("u_matrix"), 1, false, &m[0])
	gl.UniformMatrix3fv(prog.Uniform("u_projection"), 1, false, &proj[0])
	gl.Uniform1i(prog.Uniform("u_texture"), 0)
	r.setEffectUniforms(prog, filters, onlyShapeFilters, t)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	posLoc := prog.Attribute("position")
	uvLoc := prog.Attribute("uv")
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

func (r *Renderer) setEffectUniforms(prog *Program, f effect.Filters, onlyShapeFilters bool, t geometry.ChildTransform) {
	if loc := prog.Uniform("u_mosaic"); loc >= 0 {
		gl.Uniform1f(loc, float32(effect.MosaicParam(f)))
	}
	if loc := prog.Uniform("u_pixelate"); loc >= 0 {
		gl.Uniform1f(loc, float32(effect.PixelateParam(f)))
	}
	if loc := prog.Uniform("u_skinSize"); loc >= 0 {
		gl.Uniform2f(loc, float32(t.Width), float32(t.Height))
	}
	if loc := prog.Uniform("u_whirl"); loc >= 0 {
		gl.Uniform1f(loc, float32(effect.WhirlRadians(f)))
	}
	if loc := prog.Uniform("u_fisheye"); loc >= 0 {
		gl.Uniform1f(loc, float32(effect.FisheyeParam(f)))
	}
	if onlyShapeFilters {
		return
	}
	if loc := prog.Uniform("u_ghost"); loc >= 0 {
		gl.Uniform1f(loc, float32(f.Opacity()))
	}
	if loc := prog.Uniform("u_brightness"); loc >= 0 {
		gl.Uniform1f(loc, float32(f.Brightness/100))
	}
	if loc := prog.Uniform("u_colorTurns"); loc >= 0 {
		gl.Uniform1f(loc, float32(effect.ColorTurns(f)))
	}
}

// DrawFrame redraws the stage backdrop, composites the persistent pen
// layer as a full-screen Y-flipped quad, then draws every visible sprite
// on top -- stage, pen, children, per spec §4.6's frame-assembly order --
// all into the sprite framebuffer, and keeps the software fallback mirror
// current for the next color-touching query.
func (r *Renderer) DrawFrame() {
	r.children = r.stage.Children()

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.spriteFBO)
	gl.Viewport(0, 0, r.width, r.height)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.drawChildInto(r.spriteFBO, r.stage, false)
	r.blitPenLayer()
	for _, c := range r.children {
		if !c.Visible() {
			continue
		}
		r.drawChildInto(r.spriteFBO, c, false)
	}

	r.fallback.DrawFrame()
}

// OnStageFiltersChanged has no GPU-side state to invalidate: the stage
// backdrop is redrawn unconditionally every frame here. It only forwards
// the call to the software fallback mirror, whose stageSurface is cached.
func (r *Renderer) OnStageFiltersChanged() {
	r.fallback.OnStageFiltersChanged()
}

// Resize changes the global output scale, reallocating the sprite, pen and
// query framebuffers.
func (r *Renderer) Resize(scale int) {
	r.cfg.Scale = scale
	gl.DeleteFramebuffers(1, &r.spriteFBO)
	gl.DeleteTextures(1, &r.spriteTex)
	gl.DeleteFramebuffers(1, &r.penFBO)
	gl.DeleteTextures(1, &r.penTex)
	gl.DeleteFramebuffers(1, &r.queryFBO)
	gl.DeleteTextures(1, &r.queryTex)

	w, h := r.outputSize()
	r.width, r.height = w, h
	r.spriteFBO, r.spriteTex = newColorFBO(w, h)
	r.penFBO, r.penTex = newColorFBO(w, h)
	r.queryFBO, r.queryTex = newColorFBO(w, h)

	r.fallback.Resize(scale)
}
