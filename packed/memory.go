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

package packed

import "unsafe"

// Load loads MaxLanes[T]() elements of data starting at offset.
// It panics if fewer elements remain.
func Load[T Scalar](data []T, offset int) Vec[T] {
	checkRange("Load", len(data), offset, MaxLanes[T]())
	return LoadUnchecked(data, offset)
}

// LoadUnchecked is Load without the bounds check. The caller guarantees that
// data holds at least MaxLanes[T]() elements from offset.
func LoadUnchecked[T Scalar](data []T, offset int) Vec[T] {
	var v Vec[T]
	copy(v.lanes(), elems(data, offset, MaxLanes[T]()))
	return v
}

// LoadPartial loads the first n lanes from data at offset and takes the
// remaining lanes from def. It is the loader for tails: n may be anywhere in
// [0, MaxLanes[T]()].
func LoadPartial[T Scalar](data []T, offset, n int, def Vec[T]) Vec[T] {
	if n > MaxLanes[T]() {
		n = MaxLanes[T]()
	}
	checkRange("LoadPartial", len(data), offset, n)
	copy(def.lanes(), data[offset:offset+n])
	return def
}

// Store writes all lanes of v to data starting at offset.
// It panics if fewer than MaxLanes[T]() elements remain.
func (v Vec[T]) Store(data []T, offset int) {
	checkRange("Store", len(data), offset, MaxLanes[T]())
	v.StoreUnchecked(data, offset)
}

// StoreUnchecked is Store without the bounds check.
func (v Vec[T]) StoreUnchecked(data []T, offset int) {
	copy(elems(data, offset, MaxLanes[T]()), v.lanes())
}

// StorePartial writes only the first n lanes of v to data at offset.
func (v Vec[T]) StorePartial(data []T, offset, n int) {
	if n > MaxLanes[T]() {
		n = MaxLanes[T]()
	}
	checkRange("StorePartial", len(data), offset, n)
	copy(data[offset:offset+n], v.lanes()[:n])
}

// Extract returns lane i of v.
// It panics if i is outside [0, MaxLanes[T]()).
func (v Vec[T]) Extract(i int) T {
	checkLane("Extract", i, MaxLanes[T]())
	return v.ExtractUnchecked(i)
}

// ExtractUnchecked returns lane i of v without a range check.
func (v Vec[T]) ExtractUnchecked(i int) T {
	return *(*T)(unsafe.Add(unsafe.Pointer(&v.w[0]), i*SizeOf[T]()))
}

// Replace returns a copy of v with lane i set to x.
// It panics if i is outside [0, MaxLanes[T]()).
func (v Vec[T]) Replace(i int, x T) Vec[T] {
	checkLane("Replace", i, MaxLanes[T]())
	return v.ReplaceUnchecked(i, x)
}

// ReplaceUnchecked returns a copy of v with lane i set to x, without a range
// check.
func (v Vec[T]) ReplaceUnchecked(i int, x T) Vec[T] {
	*(*T)(unsafe.Add(unsafe.Pointer(&v.w[0]), i*SizeOf[T]())) = x
	return v
}

// elems views n elements of data from offset without bounds checks.
func elems[T Scalar](data []T, offset, n int) []T {
	p := unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), offset*SizeOf[T]())
	return unsafe.Slice((*T)(p), n)
}
