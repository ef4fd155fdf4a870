// Package width computes the smallest byte width that fits an integer
// value, per spec.md §4.5/§6. Grounded on
// original_source/src/jas_limits.{h,c} (fit_size, fit_size_hint).
package width

const (
	SByteMin = -128
	SByteMax = 127
	UByteMax = 255

	SHalfMin = -32768
	SHalfMax = 32767
	UHalfMax = 65535

	SWordMin = -2147483648
	SWordMax = 2147483647
	UWordMax = 4294967295
)

// Fit returns the smallest of 1, 2, or 4 bytes whose unsigned range covers
// v, with one special rule: a negative v whose sign-extension still fits
// in 32 bits returns 4 (Word) directly, without consulting the unsigned
// byte/half thresholds below it.
func Fit(v int64) int {
	if v < 0 && v == int64(int32(v)) {
		return 4
	}
	switch {
	case v >= 0 && v <= UByteMax:
		return 1
	case v >= 0 && v <= UHalfMax:
		return 2
	case v >= 0 && v <= UWordMax:
		return 4
	default:
		return -1
	}
}

// FitHint behaves like Fit, but when hint is non-zero the result is
// widened to hint if the natural fit is no larger than hint — used by
// size-agreement coercion to force a Const operand's immediate width up
// to match its sibling operand (spec.md §4.6 "reselect const_size with a
// hint").
func FitHint(v int64, hint int) int {
	size := Fit(v)
	if hint == 0 {
		return size
	}
	if size == -1 {
		return -1
	}
	if size <= hint {
		return hint
	}
	return -1
}
