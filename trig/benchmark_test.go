package trig

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/intmath/trigo/utils/sampling"
)

var benchSink int64

func benchInputs(b *testing.B, limit int32) []int32 {
	b.Helper()
	prng, err := sampling.NewKeyedPRNG(testKey)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 4)
	vals := make([]int32, 1024)
	for i := range vals {
		if _, err := prng.Read(buf); err != nil {
			b.Fatal(err)
		}
		vals[i] = int32(binary.LittleEndian.Uint32(buf)%uint32(2*limit+1)) - limit
	}
	return vals
}

func BenchmarkSin(b *testing.B) {
	for _, k := range standardKernels {
		k := k
		b.Run(fmt.Sprintf("N=%d", k.n), func(b *testing.B) {
			var acc int64
			for i := 0; i < b.N; i++ {
				acc += int64(k.Sin(uint16(i)))
			}
			benchSink = acc
		})
	}
}

func BenchmarkSinCos(b *testing.B) {
	k := Default
	var acc int64
	for i := 0; i < b.N; i++ {
		s, c := k.SinCos(uint16(i))
		acc += int64(s) + int64(c)
	}
	benchSink = acc
}

func BenchmarkTan(b *testing.B) {
	k := Default
	var acc int64
	for i := 0; i < b.N; i++ {
		acc += int64(k.Tan(uint16(i)))
	}
	benchSink = acc
}

func BenchmarkAtan2(b *testing.B) {
	vals := benchInputs(b, 1<<20)
	for _, k := range standardKernels {
		k := k
		b.Run(fmt.Sprintf("N=%d", k.n), func(b *testing.B) {
			var acc int64
			for i := 0; i < b.N; i++ {
				acc += int64(k.Atan2(vals[i%len(vals)], vals[(i+1)%len(vals)]))
			}
			benchSink = acc
		})
	}
}

func BenchmarkAsin(b *testing.B) {
	k := Default
	var acc int64
	for i := 0; i < b.N; i++ {
		acc += int64(k.Asin(int16(i)))
	}
	benchSink = acc
}

func BenchmarkMagnitude(b *testing.B) {
	vals := benchInputs(b, 1<<20)
	var acc int64
	for i := 0; i < b.N; i++ {
		acc += int64(Magnitude(vals[i%len(vals)], vals[(i+1)%len(vals)]))
	}
	benchSink = acc
}
