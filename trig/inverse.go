package trig

import (
	"github.com/intmath/trigo/utils"
)

// Atan2 returns the angle of the vector (x, y) in [0, FullTurn) internal
// units. The quadrant is classified from the signs of x and y, the ratio of
// the smaller magnitude over the larger is looked up in the arctangent
// table, and a per-quadrant affine correction folds the result into the full
// turn. The degenerate input (0, 0) returns 0 by convention.
func (k *Kernel) Atan2(y, x int32) uint16 {
	if x == 0 {
		switch {
		case y > 0:
			return QuarterTurn
		case y < 0:
			return 3 * QuarterTurn
		}
		return 0
	}

	ux := uint64(utils.Abs(int64(x)))
	uy := uint64(utils.Abs(int64(y)))

	var base int32
	if ux >= uy {
		base = k.atanRatio(uy, ux)
	} else {
		base = QuarterTurn - k.atanRatio(ux, uy)
	}

	switch {
	case x > 0 && y >= 0:
		return uint16(base)
	case x < 0 && y >= 0:
		return uint16(HalfTurn - base)
	case x < 0:
		return uint16(HalfTurn + base)
	default:
		return uint16((FullTurn - base) & angleMask)
	}
}

// atanRatio looks up the angle whose tangent is num/den, for num <= den.
func (k *Kernel) atanRatio(num, den uint64) int32 {
	t := (num * uint64(k.n-1) << 8) / den
	return interp(k.atanQ, k.n-1, int(t>>8), int32(t)&0xFF)
}

// Atan returns the arctangent of v, where v scaled by FullTurn encodes the
// tangent value.
func (k *Kernel) Atan(v int16) uint16 {
	return k.Atan2(int32(v), 2*HalfUnit)
}

// Asin returns the arcsine of v, where HalfUnit encodes 1.0. Inputs beyond
// +-HalfUnit clamp to the boundary and yield a quarter turn. Negative inputs
// reflect to FullTurn minus the principal value, landing in [3/4, 1) of a
// turn.
func (k *Kernel) Asin(v int16) uint16 {
	u := int32(v)
	neg := u < 0
	if neg {
		u = -u
	}
	if u > HalfUnit {
		u = HalfUnit
	}

	scaled := uint32(u<<1) * k.recipAsin
	r := interp(k.asinQ, k.n-1, int(scaled>>16), int32(scaled>>8)&0xFF)

	if neg {
		return uint16((FullTurn - r) & angleMask)
	}
	return uint16(r)
}

// Acos returns the arccosine of v as the complement of Asin in a quarter
// turn, modulo one turn.
func (k *Kernel) Acos(v int16) uint16 {
	return uint16((QuarterTurn - int32(k.Asin(v))) & angleMask)
}
