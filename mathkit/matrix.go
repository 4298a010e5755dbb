// Package mathkit provides the affine-matrix and color-space primitives
// shared by both renderer backends. Matrices follow the teacher's own
// build-up-a-chain-of-Mul3/Mul4-calls style (see geometry.Matrix),
// narrowed to 2D since the stage has no camera or depth.
package mathkit

import mgl "github.com/go-gl/mathgl/mgl32"

// Mat3 is a 3x3 affine matrix over the Scratch stage plane, using
// mathgl's native column-major layout and column-vector convention
// (p' = M * p), matching how the teacher builds its Mat4 chains.
type Mat3 = mgl.Mat3

// Identity returns the identity transform.
func Identity() Mat3 {
	return mgl.Ident3()
}

// Translation returns a matrix translating by (tx, ty).
func Translation(tx, ty float32) Mat3 {
	return mgl.Mat3{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotation returns a matrix rotating by thetaDeg degrees, positive
// counter-clockwise, per Scratch's convention. mathgl's Rotate3DZ already
// produces the xy-plane rotation the teacher chains in applyRotation.
func Rotation(thetaDeg float32) Mat3 {
	return mgl.Rotate3DZ(mgl.DegToRad(thetaDeg))
}

// Scaling returns a matrix scaling by (sx, sy).
func Scaling(sx, sy float32) Mat3 {
	return mgl.Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Projection maps pixel coordinates in a w x h surface to clip space,
// flipping Y so that larger Y is further down the screen.
func Projection(w, h float32) Mat3 {
	return mgl.Mat3{
		2 / w, 0, 0,
		0, -2 / h, 0,
		-1, 1, 1,
	}
}

// Multiply post-multiplies dst by rhs (dst = dst * rhs) and returns the
// result; matrices are applied right-to-left when composing a chain, so
// the last Multiply call is the first transform applied to a point.
func Multiply(dst, rhs Mat3) Mat3 {
	return dst.Mul3(rhs)
}

// Apply transforms the point (x, y) by m, treating it as a homogeneous
// (x, y, 1) column vector: p' = m * p.
func Apply(m Mat3, x, y float32) (float32, float32) {
	rx := x*m[0] + y*m[3] + m[6]
	ry := x*m[1] + y*m[4] + m[7]
	return rx, ry
}

// Invert returns the inverse of m, used to map screen/costume points back
// into a sprite's local costume space for spriteTouchesPoint.
func Invert(m Mat3) Mat3 {
	return m.Inv()
}
