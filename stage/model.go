// Package stage defines the narrow interfaces the renderer consumes from
// the host's project model: costumes, sprites/stage, and pen colors. The
// original system exposes these as duck-typed objects (P.core.isSprite,
// etc.); here they become a small capability-trait layer, per the
// "tagged variant or capability trait" design note. The shape follows the
// teacher's own Texture interface (sprite_render.go:53-61): expose only
// what the renderer actually calls.
package stage

import (
	"image"

	"github.com/gopherstage/render/effect"
)

// LOD is a single resolution-specific rasterization of a costume.
type LOD interface {
	// Bitmap returns the decoded RGBA pixels for GPU upload or CPU
	// sampling.
	Bitmap() *image.RGBA
	// Width and Height are the LOD's pixel dimensions, which may differ
	// from the costume's logical Width/Height by the requested scale.
	Width() int
	Height() int
}

// Costume is an opaque source of decoded bitmaps with rotation/scale
// metadata. Vector rasterization and asset decoding happen upstream of
// this interface (spec non-goal).
type Costume interface {
	Width() int
	Height() int
	RotationCenterX() float64
	RotationCenterY() float64
	// BitmapResolution is part of the costume contract (spec §1's metadata
	// tuple) but the core never multiplies by it directly: every place
	// that would need to -- picking an LOD, sampling a query pixel -- goes
	// through Get(desiredScale) and then measures the returned LOD's own
	// Bitmap().Bounds(), which already reflects whatever bitmapResolution
	// the costume baked into that raster. A host's Costume implementation
	// still needs this accessor (e.g. to decide which LOD to decode on
	// Get), the renderer just never needs to re-derive it.
	BitmapResolution() float64
	Scale() float64
	// Get returns the LOD best matching desiredScale.
	Get(desiredScale float64) LOD
}

// RotationStyle selects how a sprite's direction affects its drawn
// orientation.
type RotationStyle int

const (
	// RotationNormal rotates freely by direction-90 degrees.
	RotationNormal RotationStyle = iota
	// RotationLeftRight mirrors horizontally when direction < 0.
	RotationLeftRight
	// RotationNone never rotates or mirrors.
	RotationNone
)

// PenColor is the pen subsystem's own color model, exposed only through
// its two rendering projections.
type PenColor interface {
	// ToParts returns (r, g, b, a), each in [0,1], for the GPU backend.
	ToParts() (r, g, b, a float64)
	// ToCSS returns a CSS color string for the software backend.
	ToCSS() string
}

// Node is the union view of a sprite or the stage itself, replacing the
// original's duck-typed child/stage objects. IsStage is the tag check
// that replaces P.core.isSprite (negated: the stage is the one Node for
// which IsStage is true).
type Node interface {
	IsStage() bool

	Costumes() []Costume
	CurrentCostumeIndex() int

	ScratchX() float64
	ScratchY() float64
	// Direction is in degrees; 90 means right (unrotated) in Scratch's
	// convention, 0 means up. The stage itself has no direction and returns 90.
	Direction() float64
	// Scale is the sprite's own size multiplier. The stage returns 1.
	Scale() float64
	RotationStyle() RotationStyle
	Visible() bool
	Filters() effect.Filters

	// Stage returns the owning stage; a stage node returns itself.
	Stage() Node
	// Children returns the z-ordered (bottom to top) sprite list; only
	// meaningful when IsStage() is true, and excludes the stage itself.
	Children() []Node
}

// CurrentCostume is a convenience accessor returning the node's current
// costume, or nil if it has none (e.g. an empty costume list).
func CurrentCostume(n Node) Costume {
	cs := n.Costumes()
	i := n.CurrentCostumeIndex()
	if i < 0 || i >= len(cs) {
		return nil
	}
	return cs[i]
}
