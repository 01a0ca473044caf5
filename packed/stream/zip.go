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

// Zipped2 advances two iterators in lockstep.
type Zipped2[A, B packed.Scalar] struct {
	a     Packed[A]
	b     Packed[B]
	ended bool
}

// Zip2 combines a and b, which must have the same number of lanes.
func Zip2[A, B packed.Scalar](a Packed[A], b Packed[B]) *Zipped2[A, B] {
	checkWidths("Zip2", packed.MaxLanes[A](), packed.MaxLanes[B]())
	return &Zipped2[A, B]{a: a, b: b}
}

// Next returns the next vector of both iterators. It returns false, without
// advancing either, unless both have a full vector left.
func (z *Zipped2[A, B]) Next() (packed.Vec[A], packed.Vec[B], bool) {
	if !producing(z.a, z.b) {
		return packed.Vec[A]{}, packed.Vec[B]{}, false
	}
	va, _ := z.a.Next()
	vb, _ := z.b.Next()
	return va, vb, true
}

// End returns the last tuple, built from each iterator's next full vector,
// its tail or its default, and the smallest number of real lanes among
// them. It returns false when that number is zero.
func (z *Zipped2[A, B]) End() (packed.Vec[A], packed.Vec[B], int, bool) {
	if z.ended || producing(z.a, z.b) {
		return packed.Vec[A]{}, packed.Vec[B]{}, 0, false
	}
	z.ended = true
	va, na := endOf(z.a)
	vb, nb := endOf(z.b)
	n := min(na, nb)
	return va, vb, n, n > 0
}

// State reports Producing while Next may yield.
func (z *Zipped2[A, B]) State() State {
	return zipState(z.ended, z.a, z.b)
}

// Reset rewinds both iterators.
func (z *Zipped2[A, B]) Reset() {
	z.a.Reset()
	z.b.Reset()
	z.ended = false
}

// All returns an iterator over the full tuples for use with range.
func (z *Zipped2[A, B]) All() iter.Seq2[packed.Vec[A], packed.Vec[B]] {
	return func(yield func(packed.Vec[A], packed.Vec[B]) bool) {
		for {
			va, vb, ok := z.Next()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}

// Zipped3 advances three iterators in lockstep.
type Zipped3[A, B, C packed.Scalar] struct {
	a     Packed[A]
	b     Packed[B]
	c     Packed[C]
	ended bool
}

// Zip3 combines a, b and c, which must have the same number of lanes.
func Zip3[A, B, C packed.Scalar](a Packed[A], b Packed[B], c Packed[C]) *Zipped3[A, B, C] {
	checkWidths("Zip3", packed.MaxLanes[A](), packed.MaxLanes[B](), packed.MaxLanes[C]())
	return &Zipped3[A, B, C]{a: a, b: b, c: c}
}

// Next returns the next vector of all three iterators.
func (z *Zipped3[A, B, C]) Next() (packed.Vec[A], packed.Vec[B], packed.Vec[C], bool) {
	if !producing(z.a, z.b, z.c) {
		return packed.Vec[A]{}, packed.Vec[B]{}, packed.Vec[C]{}, false
	}
	va, _ := z.a.Next()
	vb, _ := z.b.Next()
	vc, _ := z.c.Next()
	return va, vb, vc, true
}

// End is like Zipped2.End.
func (z *Zipped3[A, B, C]) End() (packed.Vec[A], packed.Vec[B], packed.Vec[C], int, bool) {
	if z.ended || producing(z.a, z.b, z.c) {
		return packed.Vec[A]{}, packed.Vec[B]{}, packed.Vec[C]{}, 0, false
	}
	z.ended = true
	va, na := endOf(z.a)
	vb, nb := endOf(z.b)
	vc, nc := endOf(z.c)
	n := min(na, nb, nc)
	return va, vb, vc, n, n > 0
}

func (z *Zipped3[A, B, C]) State() State {
	return zipState(z.ended, z.a, z.b, z.c)
}

func (z *Zipped3[A, B, C]) Reset() {
	z.a.Reset()
	z.b.Reset()
	z.c.Reset()
	z.ended = false
}

// ZippedN advances any number of iterators of one lane type in lockstep.
type ZippedN[T packed.Scalar] struct {
	its   []Packed[T]
	ended bool
}

// ZipN combines its.
func ZipN[T packed.Scalar](its ...Packed[T]) *ZippedN[T] {
	return &ZippedN[T]{its: its}
}

// Next returns the next vector of every iterator, in order.
func (z *ZippedN[T]) Next() ([]packed.Vec[T], bool) {
	if len(z.its) == 0 || !producing(z.statuses()...) {
		return nil, false
	}
	out := make([]packed.Vec[T], len(z.its))
	for i, it := range z.its {
		out[i], _ = it.Next()
	}
	return out, true
}

// End is like Zipped2.End.
func (z *ZippedN[T]) End() ([]packed.Vec[T], int, bool) {
	if z.ended || len(z.its) == 0 || producing(z.statuses()...) {
		return nil, 0, false
	}
	z.ended = true
	out := make([]packed.Vec[T], len(z.its))
	n := packed.MaxLanes[T]()
	for i, it := range z.its {
		var k int
		out[i], k = endOf(it)
		n = min(n, k)
	}
	return out, n, n > 0
}

func (z *ZippedN[T]) State() State {
	if len(z.its) == 0 {
		return Exhausted
	}
	return zipState(z.ended, z.statuses()...)
}

func (z *ZippedN[T]) Reset() {
	for _, it := range z.its {
		it.Reset()
	}
	z.ended = false
}

// All returns an iterator over the full tuples for use with range.
func (z *ZippedN[T]) All() iter.Seq[[]packed.Vec[T]] {
	return func(yield func([]packed.Vec[T]) bool) {
		for {
			vs, ok := z.Next()
			if !ok || !yield(vs) {
				return
			}
		}
	}
}

func (z *ZippedN[T]) statuses() []stater {
	out := make([]stater, len(z.its))
	for i, it := range z.its {
		out[i] = it
	}
	return out
}

// stater is the part of Packed that does not depend on the lane type.
type stater interface {
	State() State
}

func producing(its ...stater) bool {
	for _, it := range its {
		if it.State() != Producing {
			return false
		}
	}
	return true
}

func zipState(ended bool, its ...stater) State {
	if ended {
		return Exhausted
	}
	for _, it := range its {
		if it.State() == Exhausted {
			return Exhausted
		}
	}
	if producing(its...) {
		return Producing
	}
	return Tail
}

// endOf takes the last contribution of p to a tuple: a full vector if one is
// left, otherwise the tail, otherwise the default with no real lanes.
func endOf[T packed.Scalar](p Packed[T]) (packed.Vec[T], int) {
	if v, ok := p.Next(); ok {
		return v, packed.MaxLanes[T]()
	}
	if v, n, ok := p.End(); ok {
		return v, n
	}
	return p.Default(), 0
}

func checkWidths(op string, widths ...int) {
	for _, w := range widths[1:] {
		if w != widths[0] {
			panic(fmt.Errorf("stream: %s: %w: %v lanes", op, packed.ErrWidthMismatch, widths))
		}
	}
}
