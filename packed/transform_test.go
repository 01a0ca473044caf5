package packed

import (
	"testing"
)

// testTransformEquivalence checks that the accelerated and fallback bodies
// of every same-type transform agree bit for bit.
func testTransformEquivalence[T Scalar](t *testing.T) {
	r := newRand(t)
	vecs := testVecs[T](r)
	n := MaxLanes[T]()
	for i, a := range vecs {
		b := vecs[(i*7+3)%len(vecs)]
		c := vecs[(i*5+1)%len(vecs)]
		d := vecs[(i*3+2)%len(vecs)]

		assertBits(t, "MergeHalves", mergeHalvesAccel(a, b), mergeHalvesFallback(a, b))
		assertBits(t, "MergeInterleaved", mergeInterleavedAccel(a, b), mergeInterleavedFallback(a, b))
		for off := 0; off <= n; off++ {
			assertBits(t, "MergePartitioned", mergePartitionedAccel(a, b, off), mergePartitionedFallback(a, b, off))
		}
		assertBits(t, "ZipLower", zipAccel(a, b, 0), zipFallback(a, b, 0))
		assertBits(t, "ZipUpper", zipAccel(a, b, registerWords/2), zipFallback(a, b, n/2))

		e1, o1 := destrideTwoAccel(a, b)
		e2, o2 := destrideTwoFallback(a, b)
		assertBits(t, "DestrideTwo even", e1, e2)
		assertBits(t, "DestrideTwo odd", o1, o2)

		p0, p1, p2, p3 := destrideFourAccel(a, b, c, d)
		q0, q1, q2, q3 := destrideFourFallback(a, b, c, d)
		assertBits(t, "DestrideFour q0", p0, q0)
		assertBits(t, "DestrideFour q1", p1, q1)
		assertBits(t, "DestrideFour q2", p2, q2)
		assertBits(t, "DestrideFour q3", p3, q3)

		assertBits(t, "SwapBytes", swapBytesAccel(a), swapBytesFallback(a))
	}
}

func TestTransformEquivalence(t *testing.T) {
	t.Run("uint8", testTransformEquivalence[uint8])
	t.Run("uint16", testTransformEquivalence[uint16])
	t.Run("uint32", testTransformEquivalence[uint32])
	t.Run("uint64", testTransformEquivalence[uint64])
	t.Run("int8", testTransformEquivalence[int8])
	t.Run("int16", testTransformEquivalence[int16])
	t.Run("int32", testTransformEquivalence[int32])
	t.Run("int64", testTransformEquivalence[int64])
	t.Run("float32", testTransformEquivalence[float32])
	t.Run("float64", testTransformEquivalence[float64])
}

func testMergeSemantics[T Scalar](t *testing.T) {
	n := MaxLanes[T]()
	a := Iota(T(0))
	b := Iota(T(n))

	h := MergeHalves(a, b)
	m := MergeInterleaved(a, b)
	for i := range n {
		want := T(i)
		if i >= n/2 {
			want = T(n + i)
		}
		if got := h.Extract(i); got != want {
			t.Errorf("MergeHalves lane %d: got %v, want %v", i, got, want)
		}
		want = T(i)
		if i%2 == 1 {
			want = T(n + i)
		}
		if got := m.Extract(i); got != want {
			t.Errorf("MergeInterleaved lane %d: got %v, want %v", i, got, want)
		}
	}

	for off := 0; off <= n; off++ {
		p := MergePartitioned(a, b, off)
		for i := range n {
			want := T(n + i)
			if i < off {
				want = T(i)
			}
			if got := p.Extract(i); got != want {
				t.Errorf("MergePartitioned(%d) lane %d: got %v, want %v", off, i, got, want)
			}
		}
	}

	lo, hi := ZipLower(a, b), ZipUpper(a, b)
	for i := range n / 2 {
		if got := lo.Extract(2 * i); got != T(i) {
			t.Errorf("ZipLower lane %d: got %v, want %v", 2*i, got, T(i))
		}
		if got := lo.Extract(2*i + 1); got != T(n+i) {
			t.Errorf("ZipLower lane %d: got %v, want %v", 2*i+1, got, T(n+i))
		}
		if got := hi.Extract(2 * i); got != T(n/2+i) {
			t.Errorf("ZipUpper lane %d: got %v, want %v", 2*i, got, T(n/2+i))
		}
		if got := hi.Extract(2*i + 1); got != T(n+n/2+i) {
			t.Errorf("ZipUpper lane %d: got %v, want %v", 2*i+1, got, T(n+n/2+i))
		}
	}
}

func TestMergeSemantics(t *testing.T) {
	t.Run("uint8", testMergeSemantics[uint8])
	t.Run("int16", testMergeSemantics[int16])
	t.Run("uint32", testMergeSemantics[uint32])
	t.Run("float32", testMergeSemantics[float32])
	t.Run("int64", testMergeSemantics[int64])
	t.Run("float64", testMergeSemantics[float64])
}

func TestMergePartitionedOffsetRange(t *testing.T) {
	a, b := Splat[int32](1), Splat[int32](2)
	n := MaxLanes[int32]()
	expectPanic(t, ErrPartitionOffset, func() { MergePartitioned(a, b, -1) })
	expectPanic(t, ErrPartitionOffset, func() { MergePartitioned(a, b, n+1) })
	assertBits(t, "offset 0", MergePartitioned(a, b, 0), b)
	assertBits(t, "offset W", MergePartitioned(a, b, n), a)
}

func testDestrideSemantics[T Scalar](t *testing.T) {
	n := MaxLanes[T]()
	a, b := Iota(T(0)), Iota(T(n))
	even, odd := DestrideTwo(a, b)
	for i := range n {
		if got := even.Extract(i); got != T(2*i) {
			t.Errorf("DestrideTwo even lane %d: got %v, want %v", i, got, T(2*i))
		}
		if got := odd.Extract(i); got != T(2*i+1) {
			t.Errorf("DestrideTwo odd lane %d: got %v, want %v", i, got, T(2*i+1))
		}
	}

	q := [4]Vec[T]{}
	q[0], q[1], q[2], q[3] = DestrideFour(Iota(T(0)), Iota(T(n)), Iota(T(2*n)), Iota(T(3*n)))
	for k := range 4 {
		for i := range n {
			if got := q[k].Extract(i); got != T(4*i+k) {
				t.Errorf("DestrideFour q%d lane %d: got %v, want %v", k, i, got, T(4*i+k))
			}
		}
	}

	// DestrideTwo inverts the zip of two vectors.
	r := newRand(t)
	for range 32 {
		x, y := randVec[T](r), randVec[T](r)
		gx, gy := DestrideTwo(ZipLower(x, y), ZipUpper(x, y))
		assertBits(t, "destride(zip) first", gx, x)
		assertBits(t, "destride(zip) second", gy, y)
	}
}

func TestDestrideSemantics(t *testing.T) {
	t.Run("uint8", testDestrideSemantics[uint8])
	t.Run("int8", testDestrideSemantics[int8])
	t.Run("uint16", testDestrideSemantics[uint16])
	t.Run("int32", testDestrideSemantics[int32])
	t.Run("float32", testDestrideSemantics[float32])
	t.Run("uint64", testDestrideSemantics[uint64])
	t.Run("float64", testDestrideSemantics[float64])
}

func testSwapBytes[T Scalar](t *testing.T) {
	r := newRand(t)
	for _, v := range testVecs[T](r) {
		assertBits(t, "SwapBytes twice", SwapBytes(SwapBytes(v)), v)
		assertBits(t, "FromBE(ToBE)", FromBE(ToBE(v)), v)
		assertBits(t, "FromLE(ToLE)", FromLE(ToLE(v)), v)
		s := SwapBytes(v)
		for i := range MaxLanes[T]() {
			want := swapBits(toBits(v.Extract(i)), SizeOf[T]())
			if got := toBits(s.Extract(i)); got != want {
				t.Errorf("SwapBytes lane %d: got %#x, want %#x", i, got, want)
			}
		}
	}
}

func TestSwapBytes(t *testing.T) {
	t.Run("uint8", testSwapBytes[uint8])
	t.Run("uint16", testSwapBytes[uint16])
	t.Run("int32", testSwapBytes[int32])
	t.Run("uint64", testSwapBytes[uint64])
	t.Run("float32", testSwapBytes[float32])
	t.Run("float64", testSwapBytes[float64])
}

func TestSwapBytesKnownValues(t *testing.T) {
	v := SwapBytes(Splat[uint32](0x11223344))
	if got := v.Extract(0); got != 0x44332211 {
		t.Errorf("SwapBytes(0x11223344) = %#x, want 0x44332211", got)
	}
	w := SwapBytes(Splat[uint16](0xABCD))
	if got := w.Extract(MaxLanes[uint16]() - 1); got != 0xCDAB {
		t.Errorf("SwapBytes(0xABCD) = %#x, want 0xCDAB", got)
	}
}
