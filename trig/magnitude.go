package trig

import (
	"github.com/intmath/trigo/utils"
)

// CORDIC magnitude parameters. Twelve vectoring iterations expand the
// rotated vector by the aggregate gain of 1.64676; magnitudeScale is
// 65536/1.64676, applied once after the loop. A change to the iteration
// count requires recomputing the scale.
const (
	magnitudeIterations = 12
	magnitudeScale      = 39797
)

// Magnitude returns the Euclidean length of the vector (x, y), preserving
// the input scale. The vector is rotated onto the positive x axis by
// shift-and-add pseudo-rotations; y oscillates around zero and every
// iteration always runs, so the fixed gain correction holds for any input,
// including axis-aligned vectors. The relative error stays within 1% for
// vectors longer than a few thousand counts; below that, output granularity
// dominates.
func Magnitude(x, y int32) uint32 {
	vx := utils.Abs(int64(x))
	vy := utils.Abs(int64(y))

	for k := 0; k < magnitudeIterations; k++ {
		tx := vx
		if vy >= 0 {
			vx += vy >> k
			vy -= tx >> k
		} else {
			vx += (-vy) >> k
			vy += tx >> k
		}
	}
	return uint32((vx * magnitudeScale) >> 16)
}
