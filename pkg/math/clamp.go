package math

// Clamp saturates x into [lo, hi]. lo must not exceed hi.
func Clamp(x, lo, hi float32) float32 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}
