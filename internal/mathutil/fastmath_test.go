package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInvSqrtAccuracy(t *testing.T) {
	// Sweep 0.01 .. 1e6 geometrically so every binade is sampled.
	for x := float32(0.01); x <= 1e6; x *= 1.07 {
		y := InvSqrt(x)
		if err := math.Abs(float64(y*y*x) - 1); err >= 0.005 {
			t.Fatalf("InvSqrt(%g) = %g, |y^2*x - 1| = %g, want < 0.005", x, y, err)
		}
	}
}

func TestInvSqrtKnownValues(t *testing.T) {
	cases := []struct {
		in   float32
		want float32
	}{
		{1, 1},
		{4, 0.5},
		{100, 0.1},
		{0.25, 2},
	}
	for _, c := range cases {
		got := InvSqrt(c.in)
		if rel := math.Abs(float64(got-c.want)) / float64(c.want); rel > 0.002 {
			t.Errorf("InvSqrt(%g) = %g, want %g (rel err %g)", c.in, got, c.want, rel)
		}
	}
}

func TestCross(t *testing.T) {
	if got := Cross(mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}); got != 1 {
		t.Errorf("Cross(x, y) = %g, want 1", got)
	}
	if got := Cross(mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}); got != -1 {
		t.Errorf("Cross(y, x) = %g, want -1", got)
	}
	if got := Cross(mgl32.Vec2{2, 4}, mgl32.Vec2{1, 2}); got != 0 {
		t.Errorf("Cross of colinear vectors = %g, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range []mgl32.Vec2{{3, 4}, {-192, 192}, {0, 0.5}, {1e3, -7}} {
		n := Normalize(v)
		if l := n.Len(); math.Abs(float64(l)-1) > 0.002 {
			t.Errorf("Normalize(%v) has length %g, want ~1", v, l)
		}
		// Direction is preserved.
		if c := Cross(v, n); math.Abs(float64(c)) > 1e-3*float64(v.Len()) {
			t.Errorf("Normalize(%v) = %v changed direction", v, n)
		}
	}
}

func TestIntClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want int }{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{7, 3, 1, 3},
	}
	for _, c := range cases {
		if got := IntClamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("IntClamp(%d, %d, %d) = %d, want %d", c.x, c.lo, c.hi, got, c.want)
		}
	}
}
