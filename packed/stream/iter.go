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
	"slices"

	"github.com/ajroetker/go-packed/packed"
)

// State is the position of an iterator in its life cycle.
type State int

const (
	// Producing means at least one full vector remains.
	Producing State = iota

	// Tail means fewer than a full vector of elements remain; End yields them.
	Tail

	// Peeked means a StrideZipped iterator holds one vector whose partner is
	// not available as a full vector.
	Peeked

	// Exhausted means nothing remains. Next and End return false.
	Exhausted
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Producing:
		return "Producing"
	case Tail:
		return "Tail"
	case Peeked:
		return "Peeked"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Packed is a restartable, finite sequence of vectors with an explicit tail.
type Packed[T packed.Scalar] interface {
	// Next returns the next full vector. It returns false, without
	// advancing, when fewer than a full vector of elements remain.
	Next() (packed.Vec[T], bool)

	// End returns the tail padded with Default, and the number of real
	// lanes in it. It only succeeds in the Tail state, after which the
	// iterator is Exhausted.
	End() (v packed.Vec[T], n int, ok bool)

	State() State

	// Len returns the number of vectors left, counting a partial tail.
	Len() int

	// Remaining returns the number of scalar elements left.
	Remaining() int

	// Default returns the vector that pads the tail.
	Default() packed.Vec[T]

	// Reset rewinds the iterator to its first element.
	Reset()
}

// Iter iterates over a slice of T. For stride sub-iterators, logical element
// j is data[base+j*stride].
type Iter[T packed.Scalar] struct {
	data   []T
	def    packed.Vec[T]
	base   int
	stride int
	n      int // logical length
	pos    int // logical elements consumed
}

var _ Packed[float32] = (*Iter[float32])(nil)

// New returns an iterator over data that borrows the slice. The same slice
// may be passed to Fill to rewrite it in place.
func New[T packed.Scalar](data []T, def packed.Vec[T]) *Iter[T] {
	return newStrided(data, def, 0, 1)
}

// Owned returns an iterator over a private copy of data.
func Owned[T packed.Scalar](data []T, def packed.Vec[T]) *Iter[T] {
	return New(slices.Clone(data), def)
}

func newStrided[T packed.Scalar](data []T, def packed.Vec[T], base, stride int) *Iter[T] {
	n := 0
	if len(data) > base {
		n = (len(data) - base + stride - 1) / stride
	}
	return &Iter[T]{data: data, def: def, base: base, stride: stride, n: n}
}

// Next implements Packed.
func (it *Iter[T]) Next() (packed.Vec[T], bool) {
	w := packed.MaxLanes[T]()
	if it.n-it.pos < w {
		return packed.Vec[T]{}, false
	}
	var v packed.Vec[T]
	if it.stride == 1 {
		v = packed.LoadUnchecked(it.data, it.base+it.pos)
	} else {
		v = it.gather(w)
	}
	it.pos += w
	return v, true
}

// End implements Packed.
func (it *Iter[T]) End() (packed.Vec[T], int, bool) {
	if it.State() != Tail {
		return packed.Vec[T]{}, 0, false
	}
	k := it.n - it.pos
	var v packed.Vec[T]
	if it.stride == 1 {
		v = packed.LoadPartial(it.data, it.base+it.pos, k, it.def)
	} else {
		v = it.gather(k)
	}
	it.pos = it.n
	return v, k, true
}

// gather loads k logical elements from pos, padding with the default.
func (it *Iter[T]) gather(k int) packed.Vec[T] {
	v := it.def
	idx := it.base + it.pos*it.stride
	for i := range k {
		v = v.ReplaceUnchecked(i, it.data[idx])
		idx += it.stride
	}
	return v
}

// State implements Packed.
func (it *Iter[T]) State() State {
	rem := it.n - it.pos
	switch {
	case rem <= 0:
		return Exhausted
	case rem < packed.MaxLanes[T]():
		return Tail
	default:
		return Producing
	}
}

// Len implements Packed.
func (it *Iter[T]) Len() int {
	w := packed.MaxLanes[T]()
	return (it.Remaining() + w - 1) / w
}

// Remaining implements Packed.
func (it *Iter[T]) Remaining() int {
	return it.n - it.pos
}

// Default implements Packed.
func (it *Iter[T]) Default() packed.Vec[T] {
	return it.def
}

// Reset implements Packed.
func (it *Iter[T]) Reset() {
	it.pos = 0
}
