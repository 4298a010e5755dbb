// Package geometry builds the per-child transform chain, rotated bounds,
// and stage<->screen coordinate conversions shared by both backends. It
// generalizes the teacher's renderSpriteQuad/initRenderSpriteQuad
// (sprite_render.go:574,887) — which build a translate/scale/rotate
// chain from sprite fields in a fixed order — to the Scratch-specific
// eight-step chain in spec.md §3, dropping the teacher's tiling and
// perspective-projection modes (out of scope; see DESIGN.md).
package geometry

import "math"

// StageWidth and StageHeight are the fixed logical Scratch grid
// dimensions.
const (
	StageWidth  = 480
	StageHeight = 360
)

// ToScreen converts a Scratch-space point (origin center, Y up) to
// screen pixels (origin top-left, Y down) at the given output scale.
// This is the spec's "screen = (x+240, 180-y) * scale" mapping.
func ToScreen(x, y float64, scale float64) (float64, float64) {
	return (x + StageWidth/2) * scale, (StageHeight/2 - y) * scale
}

// ToReadbackPixel converts a Scratch-space point to the pixel coordinate
// a GPU framebuffer readback sees, which is Y-up from the bottom-left
// (gl.ReadPixels' native origin) rather than the Y-down convention
// ToScreen uses. Open question 2 (spec §9) calls out that these two
// conversions must be verified together rather than unified behind a
// single flag; keeping them as distinctly named functions makes every
// call site state which origin it means.
func ToReadbackPixel(x, y float64, scale float64) (int, int) {
	return int((StageWidth/2 + x) * scale), int((StageHeight/2 + y) * scale)
}

// SnapToPixel rounds v to the nearest integer in the given grid's unit,
// used when placing a sprite's screen-space origin to avoid seam
// shimmer between adjacent sprites.
func SnapToPixel(v float64) float64 {
	return math.Round(v)
}

// Rect is an axis-aligned rectangle in stage coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width and Height report the rectangle's extents.
func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether the rect has non-positive width or height, or is
// NaN on any edge -- the "degenerate geometry" case queries must skip
// silently rather than treat as an error (spec §7).
func (r Rect) Empty() bool {
	if math.IsNaN(r.Left) || math.IsNaN(r.Top) || math.IsNaN(r.Right) || math.IsNaN(r.Bottom) {
		return true
	}
	return r.Width() <= 0 || r.Height() <= 0
}

// Intersect returns the overlap of a and b; the result is Empty if they
// don't overlap. Matches spec's "strict inequalities as written" open
// question: edge-touching rects produce a zero-area (hence Empty) rect,
// not an overlap.
func (a Rect) Intersect(b Rect) Rect {
	return Rect{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Min(a.Right, b.Right),
		Bottom: math.Min(a.Bottom, b.Bottom),
	}
}

// Overlaps reports whether a and b overlap using the non-strict (>=)
// rejection the spec's open question 1 says to preserve: rects that only
// touch at an edge do not overlap.
func (a Rect) Overlaps(b Rect) bool {
	if a.Left >= b.Right || b.Left >= a.Right {
		return false
	}
	if a.Top >= b.Bottom || b.Top >= a.Bottom {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies within the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}
