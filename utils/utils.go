// Package utils implements small generic helpers shared by the trig kernel
// and its table builders.
package utils

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsPow2 reports whether x is a power of two.
func IsPow2[T constraints.Integer](x T) bool {
	return x > 0 && x&(x-1) == 0
}

// Lerp linearly interpolates between y0 and y1 for an 8-bit fraction
// f in [0, 255].
func Lerp[T constraints.Integer](y0, y1 T, f int32) int32 {
	a := int32(y0)
	return a + ((int32(y1)-a)*f)>>8
}
