package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-packed/packed"
)

func TestZip2Lockstep(t *testing.T) {
	w := packed.MaxLanes[int32]()
	xs := seq[int32](2*w + 3)
	ys := seq[float32](2*w + 1)
	z := Zip2[int32, float32](New(xs, packed.Zeroes[int32]()), New(ys, packed.Splat[float32](-1)))

	steps := 0
	for a, b := range z.All() {
		require.Equal(t, float32(a.Extract(0)), b.Extract(0))
		steps++
	}
	require.Equal(t, 2, steps)
	require.Equal(t, Tail, z.State())

	a, b, n, ok := z.End()
	require.True(t, ok)
	require.Equal(t, 1, n)
	require.Equal(t, int32(2*w+1), a.Extract(0))
	require.Equal(t, float32(2*w+1), b.Extract(0))
	require.Equal(t, float32(-1), b.Extract(1))
	require.Equal(t, Exhausted, z.State())

	_, _, _, ok = z.End()
	require.False(t, ok)

	z.Reset()
	require.Equal(t, Producing, z.State())
}

func TestZip2UnevenVectors(t *testing.T) {
	w := packed.MaxLanes[uint32]()
	long := New(seq[uint32](3*w), packed.Zeroes[uint32]())
	short := New(seq[uint32](2*w+2), packed.Zeroes[uint32]())
	z := Zip2[uint32, uint32](long, short)

	for range 2 {
		_, _, ok := z.Next()
		require.True(t, ok)
	}
	_, _, ok := z.Next()
	require.False(t, ok, "Next must stop when any constituent runs out of full vectors")
	require.Equal(t, w, long.Remaining())

	_, _, n, ok := z.End()
	require.True(t, ok)
	require.Equal(t, 2, n)
}

func TestZip2Empty(t *testing.T) {
	z := Zip2[int8, uint8](New([]int8{}, packed.Zeroes[int8]()), New([]uint8{1, 2}, packed.Zeroes[uint8]()))
	require.Equal(t, Exhausted, z.State())
	_, _, _, ok := z.End()
	require.False(t, ok)
}

func TestZip2WidthMismatch(t *testing.T) {
	require.Panics(t, func() {
		Zip2[uint8, uint16](New([]uint8{1}, packed.Zeroes[uint8]()), New([]uint16{1}, packed.Zeroes[uint16]()))
	})
}

func TestZip3Pixels(t *testing.T) {
	w := packed.MaxLanes[float32]()
	pixels := make([]float32, 3*(w+2))
	for i := range w + 2 {
		pixels[3*i] = float32(i)
		pixels[3*i+1] = float32(2 * i)
		pixels[3*i+2] = float32(3 * i)
	}
	r, g, b := StrideThree(pixels, packed.Zeroes[float32](), packed.Zeroes[float32](), packed.Zeroes[float32]())
	z := Zip3[float32, float32, float32](r, g, b)

	var luma []float32
	emit := func(vr, vg, vb packed.Vec[float32], n int) {
		sum := packed.Add(packed.Add(vr, vg), vb)
		luma = append(luma, sum.Lanes()[:n]...)
	}
	for {
		vr, vg, vb, ok := z.Next()
		if !ok {
			break
		}
		emit(vr, vg, vb, w)
	}
	vr, vg, vb, n, ok := z.End()
	require.True(t, ok)
	require.Equal(t, 2, n)
	emit(vr, vg, vb, n)

	require.Len(t, luma, w+2)
	for i, x := range luma {
		require.Equal(t, float32(6*i), x, "pixel %d", i)
	}
	require.Equal(t, Exhausted, z.State())
}

func TestZipN(t *testing.T) {
	w := packed.MaxLanes[int64]()
	r := min(3, w-1)
	data := seq[int64](4 * (w + r))
	d := packed.Zeroes[int64]()
	q0, q1, q2, q3 := StrideFour(data, d, d, d, d)
	z := ZipN[int64](q0, q1, q2, q3)

	count := 0
	for vs := range z.All() {
		require.Len(t, vs, 4)
		for k, v := range vs {
			require.Equal(t, int64(4*count*w+k+1), v.Extract(0))
		}
		count++
	}
	require.Equal(t, (w+r)/w, count)

	vs, n, ok := z.End()
	require.True(t, ok)
	require.Equal(t, r, n)
	for k, v := range vs {
		require.Equal(t, data[4*w+k], v.Extract(0))
	}
	require.Equal(t, Exhausted, z.State())

	require.Equal(t, Exhausted, ZipN[int64]().State())
}
