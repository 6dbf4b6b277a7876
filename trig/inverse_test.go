package trig

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intmath/trigo/utils/sampling"
)

// test vectors for Atan2, N=128
type argAtan2 struct {
	y, x int32
	deg  int16
}

var atan2Vec = []argAtan2{
	{1000, 1000, 45},
	{1000, -1000, 135},
	{-1000, -1000, 225},
	{-1000, 1000, 315},
	{1000, 0, 90},
	{-1000, 0, 270},
	{0, 1000, 0},
	{0, -1000, 180},
	{0, 0, 0},
}

func TestAtan2(t *testing.T) {
	for i, tc := range atan2Vec {
		require.Equalf(t, tc.deg, ToDegrees(Default.Atan2(tc.y, tc.x)), "test pair %d", i)
	}
}

// TestAtan2Quadrants checks that for vectors well inside a quadrant, the top
// two bits of the result agree with the mathematical quadrant, and that
// rotating a unit vector by the result recovers the input direction within
// 1%.
func TestAtan2Quadrants(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	const limit = 1 << 20
	for i := 0; i < 20000; i++ {
		x := randInt32(t, prng, limit)
		y := randInt32(t, prng, limit)
		if x == 0 && y == 0 {
			continue
		}

		angle := Default.Atan2(y, x)

		h := math.Hypot(float64(x), float64(y))
		require.InDeltaf(t, float64(y)/h, float64(Default.Sin(angle))/Unit, 0.01, "sin of atan2(%d, %d)", y, x)
		require.InDeltaf(t, float64(x)/h, float64(Default.Cos(angle))/Unit, 0.01, "cos of atan2(%d, %d)", y, x)

		// Quadrant bits: closer than 4096 counts to an axis, the true angle
		// itself is within rounding of the quadrant boundary.
		if x < 4096 && x > -4096 || y < 4096 && y > -4096 {
			continue
		}
		var want uint16
		switch {
		case x > 0 && y > 0:
			want = 0
		case x < 0 && y > 0:
			want = 1
		case x < 0 && y < 0:
			want = 2
		default:
			want = 3
		}
		require.Equalf(t, want, angle>>12, "quadrant of atan2(%d, %d) = %d", y, x, angle)
	}
}

// TestAtan interprets the input scaled by FullTurn as the tangent value:
// 16384 is tan 1, 8192 is tan 0.5, 32767 is tan 2.
func TestAtan(t *testing.T) {
	require.Equal(t, uint16(0), Default.Atan(0))
	require.InDelta(t, 2048, Default.Atan(16384), 3)
	require.InDelta(t, 1209, Default.Atan(8192), 3)
	require.InDelta(t, 2887, Default.Atan(32767), 4)
	require.InDelta(t, 16384-1209, Default.Atan(-8192), 3)
	require.InDelta(t, 16384-2048, Default.Atan(-16384), 3)
}

// test vectors for Asin/Acos, N=128
type argAsin struct {
	v          int16
	asin, acos uint16
}

// The last two entries exceed the input domain and clamp to the boundary.
var asinVec = []argAsin{
	{0, 0, 4096},
	{8192, 4096, 0},
	{-8192, 12288, 8192},
	{9000, 4096, 0},
	{-32768, 12288, 8192},
}

func TestAsinAcos(t *testing.T) {
	for i, tc := range asinVec {
		require.Equalf(t, tc.asin, Default.Asin(tc.v), "asin test pair %d", i)
		require.Equalf(t, tc.acos, Default.Acos(tc.v), "acos test pair %d", i)
	}

	// Round-trip bounds in sine output counts; coarse tables interpolate
	// over wider chords.
	roundTrip := map[int]float64{32: 400, 64: 200, 128: 100, 256: 100, 512: 100}

	for _, k := range standardKernels {
		k := k
		t.Run(fmt.Sprintf("N=%d", k.n), func(t *testing.T) {
			for v := -HalfUnit; v <= HalfUnit; v++ {
				s := k.Asin(int16(v))
				c := k.Acos(int16(v))

				// Complement identity, modulo one turn.
				require.Equalf(t, QuarterTurn, (int(s)+int(c))&angleMask, "v=%d", v)

				// Round trip through the forward sine.
				require.InDeltaf(t, float64(2*v), float64(k.Sin(s)), roundTrip[k.n], "v=%d", v)
			}

			// Negative inputs reflect the principal value.
			for v := 0; v <= HalfUnit; v += 7 {
				require.Equal(t, uint16((FullTurn-int32(k.Asin(int16(v))))&angleMask), k.Asin(int16(-v)))
			}
		})
	}
}
