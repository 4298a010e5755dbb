package stage

// SpriteRenderer is the minimal capability a single-sprite drawing
// surface exposes.
type SpriteRenderer interface {
	// Canvas returns an implementation-defined handle to the output
	// surface (a *image.RGBA for the software backend, an opaque GPU
	// surface handle for the accelerated one).
	Canvas() any
	// DrawChild draws a single sprite or the stage using the renderer's
	// current transform/effect state.
	DrawChild(n Node)
}

// ProjectRenderer is the full per-frame renderer contract: frame
// assembly, pen primitives, and the four spatial queries.
type ProjectRenderer interface {
	SpriteRenderer

	Stage() Node
	// Init attaches the renderer's surfaces under root and prepares the
	// stage node for drawing.
	Init(root Node)
	DrawFrame()
	OnStageFiltersChanged()
	Resize(scale int)

	PenLine(c PenColor, size float64, x1, y1, x2, y2 float64)
	PenDot(c PenColor, size float64, x, y float64)
	PenStamp(sprite Node)
	PenClear()

	SpriteTouchesPoint(sprite Node, x, y float64) bool
	SpritesIntersect(a Node, others []Node) bool
	SpriteTouchesColor(sprite Node, color24 uint32) bool
	SpriteColorTouchesColor(sprite Node, spriteColor24, otherColor24 uint32) bool
}
