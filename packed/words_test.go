package packed

import "testing"

func TestBlend(t *testing.T) {
	r := newRand(t)
	for range 100 {
		a, b, m := randVec[uint64](r), randVec[uint64](r), randVec[uint64](r)
		got := a.w
		blend(&got, &b.w, &m.w)
		for k := range registerWords {
			if want := a.w[k]&m.w[k] | b.w[k]&^m.w[k]; got[k] != want {
				t.Fatalf("word %d: got %#x, want %#x", k, got[k], want)
			}
		}
	}
}

func testClampWide[T Scalar](t *testing.T, lo, hi T) {
	r := newRand(t)
	vs := append(testVecs[T](r), randVec[T](r), randVec[T](r))
	for _, v := range vs {
		got, ok := clampWide(v, lo, hi)
		if !ok {
			return
		}
		var want Vec[T]
		for i := range MaxLanes[T]() {
			want = want.Replace(i, clamp(v.Extract(i), lo, hi))
		}
		assertBits(t, "clampWide", got, want)
	}
}

func TestClampWide(t *testing.T) {
	testClampWide[int32](t, -32768, 32767)
	testClampWide[int32](t, 0, 65535)
	testClampWide[int64](t, -1<<31, 1<<31-1)
}

func TestDemoteSaturatesThroughClamp(t *testing.T) {
	a := FromLanes[int32](70000, -70000, 5, -5)
	got := DemoteTwoI32ToI16(a, a)
	want := []int16{32767, -32768, 5, -5}
	for i, x := range want {
		if got.Extract(i) != x {
			t.Errorf("lane %d = %d, want %d", i, got.Extract(i), x)
		}
	}
}
