// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !purego && goexperiment.simd && (amd64.v3 || amd64.v4)

package packed

import (
	"simd/archsimd"
	"unsafe"
)

// HardwareVectors reports whether the word-level bodies run on archsimd
// registers rather than on 64-bit general purpose words.
const HardwareVectors = true

// blend sets a to a&m | b&^m, four words at a time.
func blend(a, b, m *[registerWords]uint64) {
	for k := 0; k < registerWords; k += 4 {
		va := archsimd.LoadUint64x4Slice(a[k:])
		vb := archsimd.LoadUint64x4Slice(b[k:])
		vm := archsimd.LoadUint64x4Slice(m[k:])
		va.And(vm).Or(vb.AndNot(vm)).StoreSlice(a[k:])
	}
}

// clampWide clamps every lane of v to [lo, hi] with packed min/max when T
// is int32. It reports false for other lane types.
func clampWide[T Scalar](v Vec[T], lo, hi T) (Vec[T], bool) {
	l, ok := any(lo).(int32)
	if !ok {
		return v, false
	}
	h := any(hi).(int32)
	s := unsafe.Slice((*int32)(unsafe.Pointer(&v.w[0])), 2*registerWords)
	vl, vh := archsimd.BroadcastInt32x8(l), archsimd.BroadcastInt32x8(h)
	for k := 0; k < len(s); k += 8 {
		archsimd.LoadInt32x8Slice(s[k:]).Max(vl).Min(vh).StoreSlice(s[k:])
	}
	return v, true
}
