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

import (
	"iter"

	"github.com/ajroetker/go-packed/packed"
)

// StrideZipped yields pairs of vectors from a source that holds two streams
// interleaved element by element. Each pair is built from two consecutive
// source vectors with packed.DestrideTwo.
//
// The iterator moves through three states. In Producing, Next reads two
// vectors at a time. If the source runs out of full vectors after the first
// of a pair, that vector is kept and the state becomes Peeked. End then
// assembles the final pair from the peeked vector, the source tail and the
// source default, and the state becomes Exhausted.
type StrideZipped[T packed.Scalar] struct {
	src   Packed[T]
	state State
	peek  packed.Vec[T]
}

// StrideZip returns a pairing iterator over p.
func StrideZip[T packed.Scalar](p Packed[T]) *StrideZipped[T] {
	return &StrideZipped[T]{src: p, state: Producing}
}

// Next returns the next pair of full vectors: the even-indexed and the
// odd-indexed elements of the next 2*W source elements.
func (z *StrideZipped[T]) Next() (even, odd packed.Vec[T], ok bool) {
	if z.state != Producing {
		return even, odd, false
	}
	a, ok := z.src.Next()
	if !ok {
		return even, odd, false
	}
	b, ok := z.src.Next()
	if !ok {
		z.peek = a
		z.state = Peeked
		return even, odd, false
	}
	even, odd = packed.DestrideTwo(a, b)
	return even, odd, true
}

// End returns the final, possibly partial, pair and the number of complete
// real pairs in it. A trailing unpaired element is not counted. End returns
// false while full pairs remain, and once the iterator is exhausted.
func (z *StrideZipped[T]) End() (even, odd packed.Vec[T], pairs int, ok bool) {
	switch z.state {
	case Peeked:
		tail, n, ok := z.src.End()
		if !ok {
			tail = z.src.Default()
		}
		even, odd = packed.DestrideTwo(z.peek, tail)
		z.peek = packed.Vec[T]{}
		z.state = Exhausted
		return even, odd, (packed.MaxLanes[T]() + n) / 2, true
	case Producing:
		if z.src.State() == Producing {
			return even, odd, 0, false
		}
		tail, n, ok := z.src.End()
		z.state = Exhausted
		if !ok {
			return even, odd, 0, false
		}
		even, odd = packed.DestrideTwo(tail, z.src.Default())
		return even, odd, n / 2, true
	default:
		return even, odd, 0, false
	}
}

// State returns Producing while Next may yield pairs, Peeked after a half
// pair was read, Tail when only the source tail is left, and Exhausted.
func (z *StrideZipped[T]) State() State {
	if z.state != Producing {
		return z.state
	}
	switch z.src.State() {
	case Tail:
		return Tail
	case Exhausted:
		return Exhausted
	default:
		return Producing
	}
}

// Remaining returns the number of source elements not yet returned, so half
// of it is the number of pairs left.
func (z *StrideZipped[T]) Remaining() int {
	switch z.state {
	case Peeked:
		return packed.MaxLanes[T]() + z.src.Remaining()
	case Exhausted:
		return 0
	default:
		return z.src.Remaining()
	}
}

// Reset rewinds the source and clears any peeked vector.
func (z *StrideZipped[T]) Reset() {
	z.src.Reset()
	z.peek = packed.Vec[T]{}
	z.state = Producing
}

// All returns an iterator over the full pairs for use with range.
func (z *StrideZipped[T]) All() iter.Seq2[packed.Vec[T], packed.Vec[T]] {
	return func(yield func(packed.Vec[T], packed.Vec[T]) bool) {
		for {
			even, odd, ok := z.Next()
			if !ok || !yield(even, odd) {
				return
			}
		}
	}
}
