package trig

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/intmath/trigo/trig/synth"
)

// TestTableRegeneration re-derives every committed table set from the
// builders and requires a bit-identical match, both element-wise and by
// checksum. A failure here means the committed z_tables files are stale with
// respect to trig/synth; run go generate ./trig to refresh them.
func TestTableRegeneration(t *testing.T) {
	for _, k := range standardKernels {
		k := k
		t.Run(fmt.Sprintf("N=%d", k.n), func(t *testing.T) {
			sine := synth.SineTable(k.n)
			atan := synth.AtanTable(k.n)
			asin := synth.AsinTable(k.n)

			require.Empty(t, cmp.Diff(k.sineQ, sine))
			require.Empty(t, cmp.Diff(k.atanQ, atan))
			require.Empty(t, cmp.Diff(k.asinQ, asin))

			require.Equal(t,
				synth.Checksum(sine, atan, asin),
				synth.Checksum(k.sineQ, k.atanQ, k.asinQ))
		})
	}
}

func TestTableInvariants(t *testing.T) {
	for _, k := range standardKernels {
		k := k
		t.Run(fmt.Sprintf("N=%d", k.n), func(t *testing.T) {
			n := k.n
			require.NoError(t, synth.CheckTableSize(n))
			require.Len(t, k.sineQ, n)
			require.Len(t, k.atanQ, n)
			require.Len(t, k.asinQ, n)

			require.Equal(t, int16(0), k.sineQ[0])
			require.Equal(t, int16(Unit), k.sineQ[n-1])
			for i := 0; i < n-1; i++ {
				require.LessOrEqualf(t, k.sineQ[i], k.sineQ[i+1], "sineQ entry %d", i)
			}

			require.Equal(t, uint16(0), k.atanQ[0])
			require.InDelta(t, HalfTurn/4, k.atanQ[n-1], 1)

			require.Equal(t, uint16(0), k.asinQ[0])
			require.InDelta(t, QuarterTurn, k.asinQ[n-1], 1)
			for i := 0; i < n-1; i++ {
				require.LessOrEqualf(t, k.asinQ[i], k.asinQ[i+1], "asinQ entry %d", i)
			}

			require.Equal(t, uint32((n-1)<<16/QuarterTurn), k.recipSin)
			require.Equal(t, uint32((n-1)<<16/Unit), k.recipAsin)
		})
	}
}
