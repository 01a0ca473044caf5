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
	"fmt"
	"iter"

	"github.com/ajroetker/go-packed/packed"
)

// mapped applies f lazily to every vector pulled from src.
type mapped[T, U packed.Scalar] struct {
	src Packed[T]
	f   func(packed.Vec[T]) packed.Vec[U]

	// def caches f(src.Default()) once hasDef is set.
	def    packed.Vec[U]
	hasDef bool
}

// Map returns an iterator yielding f(v) for every vector v of p, including
// the tail. f runs when a vector is pulled, not before.
func Map[T packed.Scalar](p Packed[T], f func(packed.Vec[T]) packed.Vec[T]) Packed[T] {
	return &mapped[T, T]{src: p, f: f}
}

// MapTo is Map for a function that changes the lane type. T and U must have
// the same number of lanes.
func MapTo[U, T packed.Scalar](p Packed[T], f func(packed.Vec[T]) packed.Vec[U]) Packed[U] {
	if packed.MaxLanes[T]() != packed.MaxLanes[U]() {
		panic(fmt.Errorf("stream: MapTo: %w: %d lanes to %d lanes",
			packed.ErrWidthMismatch, packed.MaxLanes[T](), packed.MaxLanes[U]()))
	}
	return &mapped[T, U]{src: p, f: f}
}

func (m *mapped[T, U]) Next() (packed.Vec[U], bool) {
	v, ok := m.src.Next()
	if !ok {
		return packed.Vec[U]{}, false
	}
	return m.f(v), true
}

func (m *mapped[T, U]) End() (packed.Vec[U], int, bool) {
	v, n, ok := m.src.End()
	if !ok {
		return packed.Vec[U]{}, 0, false
	}
	return m.f(v), n, true
}

func (m *mapped[T, U]) State() State { return m.src.State() }
func (m *mapped[T, U]) Len() int { return m.src.Len() }
func (m *mapped[T, U]) Remaining() int { return m.src.Remaining() }

// Default maps the source default on first use and reuses it afterwards.
func (m *mapped[T, U]) Default() packed.Vec[U] {
	if !m.hasDef {
		m.def = m.f(m.src.Default())
		m.hasDef = true
	}
	return m.def
}

func (m *mapped[T, U]) Reset() { m.src.Reset() }

// Reduce folds f over every full vector of p in order, then once over the
// default-padded tail if there is one. The lanes of the result still need
// reducing, e.g. with packed.Sum.
func Reduce[T packed.Scalar](p Packed[T], init packed.Vec[T], f func(acc, v packed.Vec[T]) packed.Vec[T]) packed.Vec[T] {
	acc := init
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		acc = f(acc, v)
	}
	if v, _, ok := p.End(); ok {
		acc = f(acc, v)
	}
	return acc
}

// DoEach calls f on every full vector of p. The tail is left unconsumed.
func DoEach[T packed.Scalar](p Packed[T], f func(packed.Vec[T])) {
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		f(v)
	}
}

// DoEachWithTail calls f on every full vector of p and then on the tail, with
// the number of real lanes in each.
func DoEachWithTail[T packed.Scalar](p Packed[T], f func(v packed.Vec[T], n int)) {
	w := packed.MaxLanes[T]()
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		f(v, w)
	}
	if v, n, ok := p.End(); ok {
		f(v, n)
	}
}

// Collect consumes p into a new slice holding its Remaining() elements. The
// backing array is rounded up to a whole number of vectors.
func Collect[T packed.Scalar](p Packed[T]) []T {
	w := packed.MaxLanes[T]()
	out := make([]T, p.Len()*w)
	off := 0
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		v.Store(out, off)
		off += w
	}
	if v, n, ok := p.End(); ok {
		v.Store(out, off)
		off += n
	}
	return out[:off]
}

// Fill consumes p into dst and returns the number of elements written. Only
// the real lanes of the tail are written. Fill panics if dst is shorter than
// p.Remaining().
func Fill[T packed.Scalar](p Packed[T], dst []T) int {
	if rem := p.Remaining(); len(dst) < rem {
		panic(fmt.Errorf("stream: Fill: %w: need %d elements, have %d", packed.ErrShortBuffer, rem, len(dst)))
	}
	w := packed.MaxLanes[T]()
	off := 0
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		v.StoreUnchecked(dst, off)
		off += w
	}
	if v, n, ok := p.End(); ok {
		v.StorePartial(dst, off, n)
		off += n
	}
	return off
}

// All returns an iterator over the full vectors of p for use with range.
// The tail is left for End.
func All[T packed.Scalar](p Packed[T]) iter.Seq[packed.Vec[T]] {
	return func(yield func(packed.Vec[T]) bool) {
		for v, ok := p.Next(); ok; v, ok = p.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
