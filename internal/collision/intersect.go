package collision

import (
	"raycaster/internal/mathutil"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is a ray/segment intersection.
type Hit struct {
	T float32 // Distance along the ray; world units when the direction is unit length
	U float32 // Position along the segment, 0 at L0 and 1 at L1
}

// IntersectRaySegment intersects the half-line origin + t*dir (t > 0) with the
// bounded segment l0-l1. It reports false when the two are parallel, when the
// crossing is at or behind the origin, or when it falls outside the segment.
func IntersectRaySegment(origin, dir, l0, l1 mgl32.Vec2) (Hit, bool) {
	s := l1.Sub(l0)
	rxs := mathutil.Cross(dir, s)
	// Exact zero on purpose: only truly parallel (or degenerate) pairs are rejected.
	if rxs == 0 {
		return Hit{}, false
	}

	qmp := l0.Sub(origin)
	t := mathutil.Cross(qmp, s.Mul(1/rxs))
	u := mathutil.Cross(qmp, dir.Mul(1/rxs))
	if t <= 0 || u < 0 || u > 1 {
		return Hit{}, false
	}
	return Hit{T: t, U: u}, true
}
