package trig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// test vectors for FromDegrees
type argDegrees struct {
	deg  int16
	want uint16
}

var fromDegreesVec = []argDegrees{
	{0, 0},
	{45, 2048},
	{90, 4096},
	{180, 8192},
	{270, 12288},
	{360, 0},
	{-90, 12288},
	{-360, 0},
	{450, 4096},
	{30, 1365},
}

func TestFromDegrees(t *testing.T) {
	for i, tc := range fromDegreesVec {
		require.Equalf(t, tc.want, FromDegrees(tc.deg), "test pair %d", i)
	}
}

func TestToDegrees(t *testing.T) {
	for _, deg := range []int16{0, 45, 90, 135, 180, 225, 270, 315} {
		require.Equal(t, deg, ToDegrees(FromDegrees(deg)))
	}

	// Angles above one turn fold first.
	require.Equal(t, int16(90), ToDegrees(4096+FullTurn))

	for a := 0; a < FullTurn; a++ {
		d := ToDegrees(uint16(a))
		require.GreaterOrEqual(t, d, int16(0))
		require.Less(t, d, int16(360))
	}
}

// test vectors for FromMilliradians
type argMrad struct {
	mrad int32
	want uint16
}

// 1571 and 3141 are pi/2 and pi in milliradians; 6283 and 12566 are one and
// two full turns.
var fromMradVec = []argMrad{
	{0, 0},
	{1571, 4096},
	{3141, 8190},
	{6283, 0},
	{12566, 0},
	{-1571, 12288},
}

func TestFromMilliradians(t *testing.T) {
	for i, tc := range fromMradVec {
		require.Equalf(t, tc.want, FromMilliradians(tc.mrad), "test pair %d", i)
	}
}
