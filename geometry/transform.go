package geometry

import (
	"github.com/gopherstage/render/mathkit"
	"github.com/gopherstage/render/stage"
)

// ChildTransform is the fully-resolved per-child placement, everything
// needed to build the matrix of spec.md §3 steps 2-8 (the clip-space
// projection, step 1, is backend-specific and applied separately: the
// software backend folds it into its destination raster's own pixel
// space, the GPU backend uploads it as a distinct "projection" uniform,
// exactly as the teacher keeps "modelview" and "projection" as separate
// uniforms in RenderSprite, sprite_render.go:1104).
type ChildTransform struct {
	ScreenX, ScreenY float64 // step 3: snapped screen position of the sprite origin
	Angle            float64 // step 4 (RotationNormal): direction-90, degrees
	MirrorX          bool    // step 4 (RotationLeftRight): horizontal mirror
	ObjectScale      float64 // steps 5*6 combined: sprite.Scale() * costume.Scale()
	RotationCenterX  float64
	RotationCenterY  float64
	Width, Height    int
}

// Resolve computes a ChildTransform for n drawn on a stage at the given
// zoom and output Config. It does not decide which LOD to request; that
// stays the caller's job (costume.Get needs the product of object scale
// and stage zoom, per spec §4.3).
func Resolve(n stage.Node, costume stage.Costume, stageZoom float64, cfg stage.Config) ChildTransform {
	effectiveScale := stageZoom * float64(cfg.Scale)
	screenX, screenY := ToScreen(n.ScratchX(), n.ScratchY(), 1)
	screenX = SnapToPixel(screenX * effectiveScale)
	screenY = SnapToPixel(screenY * effectiveScale)

	t := ChildTransform{
		ScreenX:         screenX,
		ScreenY:         screenY,
		ObjectScale:     costume.Scale() * n.Scale(),
		RotationCenterX: costume.RotationCenterX(),
		RotationCenterY: costume.RotationCenterY(),
		Width:           costume.Width(),
		Height:          costume.Height(),
	}

	switch n.RotationStyle() {
	case stage.RotationNormal:
		t.Angle = n.Direction() - 90
	case stage.RotationLeftRight:
		t.MirrorX = n.Direction() < 0
	case stage.RotationNone:
		// no rotation, no mirror
	}
	return t
}

// Matrix builds the step 3-8 affine chain as a single mathkit.Mat3,
// mapping a unit-square (u,v) in [0,1]x[0,1] costume-space quad to
// screen pixels at the given effective (stage-zoom * config-scale)
// scale. Composition follows spec §3: translate to screen origin,
// rotate/mirror, scale by object scale, translate by -rotation center,
// scale by (width,height) -- applied right-to-left to the unit square.
func Matrix(t ChildTransform, effectiveScale float64) mathkit.Mat3 {
	m := mathkit.Translation(float32(t.ScreenX), float32(t.ScreenY))

	if t.MirrorX {
		m = mathkit.Multiply(m, mathkit.Scaling(-1, 1))
	} else if t.Angle != 0 {
		m = mathkit.Multiply(m, mathkit.Rotation(float32(t.Angle)))
	}

	objScale := float32(t.ObjectScale * effectiveScale)
	m = mathkit.Multiply(m, mathkit.Scaling(objScale, objScale))
	m = mathkit.Multiply(m, mathkit.Translation(float32(-t.RotationCenterX), float32(-t.RotationCenterY)))
	m = mathkit.Multiply(m, mathkit.Scaling(float32(t.Width), float32(t.Height)))
	return m
}

// RotatedBounds returns the axis-aligned bounding box, in stage screen
// pixels, of a sprite after rotation/scale -- the precondition every
// query checks before doing any pixel work (spec §4.4).
func RotatedBounds(t ChildTransform, effectiveScale float64) Rect {
	m := Matrix(t, effectiveScale)
	corners := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	var minX, minY, maxX, maxY float32
	for i, c := range corners {
		x, y := mathkit.Apply(m, c[0], c[1])
		if i == 0 || x < minX {
			minX = x
		}
		if i == 0 || x > maxX {
			maxX = x
		}
		if i == 0 || y < minY {
			minY = y
		}
		if i == 0 || y > maxY {
			maxY = y
		}
	}
	return Rect{Left: float64(minX), Top: float64(minY), Right: float64(maxX), Bottom: float64(maxY)}
}
