package packed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatterns(t *testing.T) {
	n := MaxLanes[int16]()
	tests := []struct {
		name string
		v    Vec[int16]
		want func(i int) int16
	}{
		{"Splat", Splat[int16](3), func(int) int16 { return 3 }},
		{"Zeroes", Zeroes[int16](), func(int) int16 { return 0 }},
		{"Ones", Ones[int16](), func(int) int16 { return 1 }},
		{"Halfs", Halfs[int16](1, 2), func(i int) int16 {
			if i < n/2 {
				return 1
			}
			return 2
		}},
		{"Interleave", Interleave[int16](4, 5), func(i int) int16 {
			if i%2 == 0 {
				return 4
			}
			return 5
		}},
		{"Partition", Partition[int16](6, 7, 3), func(i int) int16 {
			if i < 3 {
				return 6
			}
			return 7
		}},
		{"Iota", Iota[int16](-2), func(i int) int16 { return int16(i - 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]int16, n)
			for i := range want {
				want[i] = tt.want(i)
			}
			if diff := cmp.Diff(want, tt.v.Lanes()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestFromLanes(t *testing.T) {
	v := FromLanes[uint8](1, 2, 3)
	want := make([]uint8, MaxLanes[uint8]())
	copy(want, []uint8{1, 2, 3})
	if diff := cmp.Diff(want, v.Lanes()); diff != "" {
		t.Errorf("FromLanes mismatch (-want +got):\n%s", diff)
	}
	expectPanic(t, ErrWidthMismatch, func() { FromLanes(make([]uint64, MaxLanes[uint64]()+1)...) })
	expectPanic(t, ErrPartitionOffset, func() { Partition[uint8](1, 2, MaxLanes[uint8]()+1) })
}

func TestMaxLanes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		size int
	}{
		{"uint8", MaxLanes[uint8](), 1},
		{"int16", MaxLanes[int16](), 2},
		{"float32", MaxLanes[float32](), 4},
		{"uint64", MaxLanes[uint64](), 8},
		{"Float64s", Float64s{}.NumLanes(), 8},
	}
	for _, tt := range tests {
		if tt.got*tt.size != RegisterBytes {
			t.Errorf("%s: %d lanes of %d bytes, register is %d bytes", tt.name, tt.got, tt.size, RegisterBytes)
		}
	}
}
