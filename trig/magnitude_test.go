package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intmath/trigo/utils/bignum"
	"github.com/intmath/trigo/utils/sampling"
)

// test vectors for Magnitude
type argMagnitude struct {
	x, y int32
	want uint32
	tol  float64
}

var magnitudeVec = []argMagnitude{
	{0, 0, 0, 0},
	{3000, 4000, 5000, 50},
	{5000, 12000, 13000, 130},
	{-3000, 4000, 5000, 50},
	{3000, -4000, 5000, 50},
	{-3000, -4000, 5000, 50},
	{300, 400, 500, 8},
	{100000, 0, 100000, 1000},
	{0, 100000, 100000, 1000},
}

func TestMagnitude(t *testing.T) {
	for i, tc := range magnitudeVec {
		require.InDeltaf(t, float64(tc.want), float64(Magnitude(tc.x, tc.y)), tc.tol, "test pair %d", i)
	}

	// Extremes of the signed 32-bit domain.
	require.InEpsilon(t, float64(1)*math.MaxInt32*math.Sqrt2, float64(Magnitude(math.MaxInt32, math.MaxInt32)), 0.01)
	require.InEpsilon(t, 1<<31, float64(Magnitude(math.MinInt32, 0)), 0.01)
}

func TestMagnitudeSweep(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	const limit = 1 << 20
	for i := 0; i < 20000; i++ {
		x := randInt32(t, prng, limit)
		y := randInt32(t, prng, limit)

		ref, _ := bignum.Hypot(bignum.NewFloat(float64(x), 96), bignum.NewFloat(float64(y), 96)).Float64()

		// 1% relative, with an absolute floor where output granularity
		// dominates.
		tol := ref / 100
		if tol < 8 {
			tol = 8
		}
		require.InDeltaf(t, ref, float64(Magnitude(x, y)), tol, "magnitude(%d, %d)", x, y)
	}
}
