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

package stream

import "github.com/ajroetker/go-packed/packed"

// Stride splits data into len(defs) interleaved streams. Sub-iterator k sees
// data[k], data[k+n], data[k+2n], ... and pads its own tail with defs[k].
func Stride[T packed.Scalar](data []T, defs []packed.Vec[T]) []*Iter[T] {
	n := len(defs)
	its := make([]*Iter[T], n)
	for k, def := range defs {
		its[k] = newStrided(data, def, k, n)
	}
	return its
}

// StrideTwo splits data into its even and odd elements.
func StrideTwo[T packed.Scalar](data []T, d0, d1 packed.Vec[T]) (*Iter[T], *Iter[T]) {
	its := Stride(data, []packed.Vec[T]{d0, d1})
	return its[0], its[1]
}

// StrideThree splits data into three interleaved streams.
func StrideThree[T packed.Scalar](data []T, d0, d1, d2 packed.Vec[T]) (*Iter[T], *Iter[T], *Iter[T]) {
	its := Stride(data, []packed.Vec[T]{d0, d1, d2})
	return its[0], its[1], its[2]
}

// StrideFour splits data into four interleaved streams, such as the channels
// of RGBA pixels.
func StrideFour[T packed.Scalar](data []T, d0, d1, d2, d3 packed.Vec[T]) (*Iter[T], *Iter[T], *Iter[T], *Iter[T]) {
	its := Stride(data, []packed.Vec[T]{d0, d1, d2, d3})
	return its[0], its[1], its[2], its[3]
}

// StrideNine splits data into nine interleaved streams, such as the entries
// of row-major 3x3 matrices.
func StrideNine[T packed.Scalar](data []T, defs [9]packed.Vec[T]) [9]*Iter[T] {
	var out [9]*Iter[T]
	copy(out[:], Stride(data, defs[:]))
	return out
}
