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

// Transmute reinterprets the bits of v as lanes of the integer type B.
// A and B must have the same size; otherwise Transmute panics.
//
// Every bit pattern is a valid integer, so the conversion is exact in both
// directions when paired with TransmuteUnchecked.
func Transmute[B Integers, A Scalar](v Vec[A]) Vec[B] {
	return transmute[B](v, "Transmute")
}

// TransmuteUnchecked reinterprets the bits of v as lanes of B, which may be a
// float type. Bit patterns that are NaN in B are carried through untouched,
// but arithmetic on them may not preserve their payload.
func TransmuteUnchecked[B, A Scalar](v Vec[A]) Vec[B] {
	return transmute[B](v, "TransmuteUnchecked")
}

func transmute[B, A Scalar](v Vec[A], op string) Vec[B] {
	if SizeOf[A]() != SizeOf[B]() {
		fail(op, ErrSizeMismatch, "%d-byte lanes to %d-byte lanes", SizeOf[A](), SizeOf[B]())
	}
	if Accelerated {
		return Vec[B]{w: v.w}
	}
	return transmuteFallback[B](v)
}

func transmuteFallback[B, A Scalar](v Vec[A]) Vec[B] {
	var r Vec[B]
	for i := range MaxLanes[A]() {
		r = r.Replace(i, fromBits[B](toBits(v.Extract(i))))
	}
	return r
}
