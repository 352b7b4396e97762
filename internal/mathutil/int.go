package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to the closed range [lo, hi] (search: int-math).
// When lo > hi the result is lo.
func IntClamp(x, lo, hi int) int {
	return IntMax(lo, IntMin(x, hi))
}
