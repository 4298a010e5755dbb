package software

import "github.com/gopherstage/render/stage"

// Init attaches root as the stage node and snapshots its current
// children, allocating all three output surfaces at the renderer's
// current scale. Callers must call Init before DrawFrame.
func (r *Renderer) Init(root stage.Node) {
	r.stage = root
	r.children = root.Children()
	r.lastStageCostume = -1

	r.Reset(r.cfg.Scale)
	w, h := r.outputSize()
	r.stageSurface = ensureSize(r.stageSurface, w, h)
	clearRGBA(r.stageSurface)
	r.penSurface = ensureSize(r.penSurface, w, h)
	clearRGBA(r.penSurface)
}

// Stage returns the attached stage node.
func (r *Renderer) Stage() stage.Node { return r.stage }

// DrawFrame redraws the stage backdrop (only if its costume changed
// since the last frame) and every visible sprite, bottom to top, per
// spec §4.3/§4.4. The caller composites the three surfaces in z-order:
// stage, then pen, then sprites (spec §6).
func (r *Renderer) DrawFrame() {
	r.children = r.stage.Children()

	if idx := r.stage.CurrentCostumeIndex(); idx != r.lastStageCostume {
		clearRGBA(r.stageSurface)
		r.drawChildOnto(r.stageSurface, r.stage, false)
		r.lastStageCostume = idx
	}

	clearRGBA(r.spriteSurface)
	r.DrawObjects(r.children)
}

// OnStageFiltersChanged invalidates the cached stage surface so the next
// DrawFrame re-renders the backdrop even though its costume index is
// unchanged (a stage-only filter, e.g. brightness, was edited).
func (r *Renderer) OnStageFiltersChanged() {
	r.lastStageCostume = -1
}

// Resize changes the global output scale, reallocating the sprite and
// stage surfaces immediately. The pen surface follows the resize policy
// in pen.go: it grows at once, and shrinks at once only if nothing was
// drawn since the last clear, otherwise at the next PenClear.
func (r *Renderer) Resize(scale int) {
	r.cfg.Scale = scale
	r.Reset(scale)
	w, h := r.outputSize()
	r.stageSurface = ensureSize(r.stageSurface, w, h)
	r.lastStageCostume = -1
	r.resizePen(r.zoom)
}
