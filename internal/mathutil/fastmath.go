package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fast math for the per-column hot path. Everything stays in float32 so the
// ray loop never converts through float64.

// invSqrtMagic is the initial-guess constant for InvSqrt.
const invSqrtMagic = 0x5F3759DF

// InvSqrt approximates 1/sqrt(number) with a bit-level initial guess and one
// Newton-Raphson step. Relative error is about 0.17%.
// number must be > 0; the result is meaningless otherwise.
func InvSqrt(number float32) float32 {
	i := math.Float32bits(number)
	i = invSqrtMagic - (i >> 1)
	y := math.Float32frombits(i)
	y *= 1.5 - 0.5*number*y*y
	return y
}

// Cross returns the perp-dot product p.x*q.y - p.y*q.x (search: vec-math).
func Cross(p, q mgl32.Vec2) float32 {
	return p[0]*q[1] - p[1]*q[0]
}

// Normalize scales v to approximately unit length using InvSqrt.
// v must be non-zero.
func Normalize(v mgl32.Vec2) mgl32.Vec2 {
	return v.Mul(InvSqrt(v[0]*v[0] + v[1]*v[1]))
}
