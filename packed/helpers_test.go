package packed

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// expectPanic runs f and fails the test unless it panics with an error that
// wraps target.
func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want error wrapping %v", r, target)
		}
	}()
	f()
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

// randVec fills every register word with random bits. For float lanes that
// includes NaNs, infinities and subnormals.
func randVec[T Scalar](r *rand.Rand) Vec[T] {
	var v Vec[T]
	for k := range v.w {
		v.w[k] = r.Uint64()
	}
	return v
}

// limits returns the smallest and largest finite values of T.
func limits[T Scalar]() (lo, hi T) {
	var l, h any
	switch any(lo).(type) {
	case uint8:
		l, h = uint8(0), uint8(math.MaxUint8)
	case uint16:
		l, h = uint16(0), uint16(math.MaxUint16)
	case uint32:
		l, h = uint32(0), uint32(math.MaxUint32)
	case uint64:
		l, h = uint64(0), uint64(math.MaxUint64)
	case int8:
		l, h = int8(math.MinInt8), int8(math.MaxInt8)
	case int16:
		l, h = int16(math.MinInt16), int16(math.MaxInt16)
	case int32:
		l, h = int32(math.MinInt32), int32(math.MaxInt32)
	case int64:
		l, h = int64(math.MinInt64), int64(math.MaxInt64)
	case float32:
		l, h = float32(-math.MaxFloat32), float32(math.MaxFloat32)
	case float64:
		l, h = -math.MaxFloat64, math.MaxFloat64
	}
	return l.(T), h.(T)
}

// testVecs returns vectors built from the boundary values of T followed by
// random vectors.
func testVecs[T Scalar](r *rand.Rand) []Vec[T] {
	lo, hi := limits[T]()
	vals := []T{0, 1, lo, hi, lo + 1, hi - 1}
	if isSigned[T]() {
		var one T = 1
		vals = append(vals, -one)
	}
	var out []Vec[T]
	for i, x := range vals {
		out = append(out, Splat(x), Interleave(x, vals[(i+1)%len(vals)]))
	}
	for range 64 {
		out = append(out, randVec[T](r))
	}
	return out
}

func assertBits[T Scalar](t *testing.T, name string, got, want Vec[T]) {
	t.Helper()
	if !BitsEqual(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}
