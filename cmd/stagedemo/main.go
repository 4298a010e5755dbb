// Command stagedemo is a minimal GLFW+OpenGL host exercising the gpu
// renderer backend end to end: a stage, two sprites, and pen drawing.
// It mirrors the teacher's initGLFW / initOpenGL / main() sequencing
// (sprite_render.go:544-573, 4938) and keeps runtime.LockOSThread() in
// init(), matching the teacher's own single-locked-goroutine contract
// (spec §5).
package main

import (
	"fmt"
	"image/color"
	"log"
	"runtime"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gopherstage/render/gpu"
	"github.com/gopherstage/render/stage"
)

const (
	windowWidth  = 960
	windowHeight = 720
)

func init() {
	runtime.LockOSThread()
}

func initGLFW() *glfw.Window {
	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "stage compositor demo", nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()
	return window
}

func initOpenGL() {
	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	fmt.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))
}

func main() {
	window := initGLFW()
	defer glfw.Terminate()
	initOpenGL()

	st := newDemoStage()
	sprite := newDemoSprite(st, color.RGBA{220, 60, 60, 255})
	sprite.x, sprite.y = -100, 0
	chaser := newDemoSprite(st, color.RGBA{60, 140, 220, 255})
	chaser.x, chaser.y = 100, 0
	st.children = []stage.Node{sprite, chaser}

	cfg := stage.DefaultConfig()
	r := gpu.New(cfg)
	r.Init(st)
	present := newPresenter()

	atlas := newSkylineAtlas(512, 512)
	_, _ = atlas.add(sprite.costumes[0].Get(1).Bitmap())

	frame := 0
	for !window.ShouldClose() {
		angle := float64(frame) * 2
		sprite.dir = 90 + angle
		sprite.filters.Color = angle

		if sprite.ScratchX() < chaser.ScratchX() {
			r.PenLine(demoPenColor{color.RGBA{255, 255, 0, 255}}, 2,
				sprite.ScratchX(), sprite.ScratchY(), chaser.ScratchX(), chaser.ScratchY())
		}
		if r.SpriteTouchesPoint(sprite, sprite.ScratchX(), sprite.ScratchY()) {
			r.PenDot(demoPenColor{color.RGBA{0, 255, 0, 255}}, 4, sprite.ScratchX(), sprite.ScratchY())
		}

		r.DrawFrame()

		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, windowWidth, windowHeight)
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
		present.blit(r.SpriteTexture())

		window.SwapBuffers()
		glfw.PollEvents()
		frame++
	}
}
