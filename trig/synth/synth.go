// Package synth implements the build-time generation of the quarter-wave
// tables used by the trig kernel. The builders are pure integer functions of
// the table size: two runs with the same size produce bit-identical tables on
// every platform, which is what lets the generated files be committed and
// audited by checksum instead of being rebuilt at program start.
package synth

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/intmath/trigo/utils"
)

// Table sizes must be powers of two within these bounds.
const (
	MinTableSize = 8
	MaxTableSize = 4096
)

// CheckTableSize returns an error if n is not a valid table size.
func CheckTableSize(n int) error {
	if !utils.IsPow2(n) || n < MinTableSize || n > MaxTableSize {
		return fmt.Errorf("invalid table size %d: must be a power of two in [%d, %d]", n, MinTableSize, MaxTableSize)
	}
	return nil
}

// sineAt evaluates the rational sine approximation at a quarter angle a in
// [0, 16384], where 16384 encodes pi/2, returning the sine scaled by 16384.
//
// The rational term is Bhaskara's approximation expressed over the half
// period 32768, which is exact at 0, pi/6 and pi/2. The remaining error
// oscillates within 0.17%; the odd cubic in t, with zeros at the same three
// angles, balances it to within 0.034%.
func sineAt(a int) int {
	t := (a * (32768 - a)) >> 15

	num := t << 2
	den := 40960 - t

	var v int
	if den == 0 {
		v = 16384
	} else {
		v = (num * 16384) / den
	}

	corr := ((t * (4551 - t)) >> 15) * (8192 - t) >> 15
	return v - corr
}

// SineTable returns the n-entry quarter-wave sine table: entry i holds
// sin(i/(n-1) * pi/2) scaled by 16384. The table is monotone nondecreasing
// with exact endpoints 0 and 16384.
func SineTable(n int) []int16 {
	tab := make([]int16, n)
	for i := range tab {
		tab[i] = int16(sineAt(i * 16384 / (n - 1)))
	}
	return tab
}

// atanSteps[k] is atan(2^-k) in internal angle units (16384 per turn).
var atanSteps = [16]int32{2048, 1209, 639, 324, 163, 81, 41, 20, 10, 5, 3, 1, 1, 0, 0, 0}

// AtanTable returns the n-entry arctangent table: entry i holds the angle
// whose tangent is i/(n-1), in internal units. Each entry is produced by a
// 16-step vectoring CORDIC that starts from the vector (16384, target) and
// rotates y to zero while accumulating the step angles; driving y to zero
// makes the result independent of the CORDIC gain. Entries are clamped to
// [0, 2048], the arctangent range over ratios in [0, 1].
func AtanTable(n int) []uint16 {
	tab := make([]uint16, n)
	for i := 1; i < n; i++ {
		x := int32(16384)
		y := int32(i * 16384 / (n - 1))
		var angle int32
		for k := 0; k < 16; k++ {
			tx := x
			if y > 0 {
				x += y >> k
				y -= tx >> k
				angle += atanSteps[k]
			} else {
				x -= y >> k
				y += tx >> k
				angle -= atanSteps[k]
			}
		}
		if angle < 0 {
			angle = 0
		}
		if angle > 2048 {
			angle = 2048
		}
		tab[i] = uint16(angle)
	}
	return tab
}

// AsinTable returns the n-entry arcsine table: entry i holds the angle in
// [0, 4096] internal units whose sine, evaluated through the same rational
// approximation as the sine table, is closest to i/(n-1) scaled by 16384.
// Inverting the runtime approximation rather than the true arcsine keeps the
// round trip sin(asin(v)) tight, which is the property closed-loop callers
// rely on.
func AsinTable(n int) []uint16 {
	tab := make([]uint16, n)
	for i := range tab {
		target := i * 16384 / (n - 1)
		lo, hi := 0, 4096
		for hi-lo > 1 {
			mid := (lo + hi) >> 1
			if sineAt(mid<<2) < target {
				lo = mid
			} else {
				hi = mid
			}
		}
		if target-sineAt(lo<<2) <= sineAt(hi<<2)-target {
			tab[i] = uint16(lo)
		} else {
			tab[i] = uint16(hi)
		}
	}
	return tab
}

// Checksum returns the blake3 fingerprint of a generated table set, over the
// little-endian byte image of the three tables in order. Two builds of the
// same size must produce equal checksums on every platform.
func Checksum(sine []int16, atan, asin []uint16) [32]byte {
	buf := make([]byte, 0, 2*(len(sine)+len(atan)+len(asin)))
	var b [2]byte
	for _, v := range sine {
		binary.LittleEndian.PutUint16(b[:], uint16(v))
		buf = append(buf, b[0], b[1])
	}
	for _, v := range atan {
		binary.LittleEndian.PutUint16(b[:], v)
		buf = append(buf, b[0], b[1])
	}
	for _, v := range asin {
		binary.LittleEndian.PutUint16(b[:], v)
		buf = append(buf, b[0], b[1])
	}
	return blake3.Sum256(buf)
}
