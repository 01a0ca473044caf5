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

// ScalarReduce folds the lanes of v into init with f, visiting lanes in
// ascending order: f(...f(f(init, v[0]), v[1])..., v[W-1]).
func ScalarReduce[T Scalar, A any](v Vec[T], init A, f func(A, T) A) A {
	acc := init
	for _, x := range v.lanes() {
		acc = f(acc, x)
	}
	return acc
}

// Sum adds the lanes of v in ascending order.
func Sum[T Scalar](v Vec[T]) T {
	return ScalarReduce(v, T(0), func(acc, x T) T { return acc + x })
}

// Product multiplies the lanes of v in ascending order.
func Product[T Scalar](v Vec[T]) T {
	return ScalarReduce(v, T(1), func(acc, x T) T { return acc * x })
}

// Coalesce returns lane 0 of a vector whose lanes are all the same.
//
// Builds with the packeddebug tag panic if any lane differs bitwise from
// lane 0.
func (v Vec[T]) Coalesce() T {
	first := v.ExtractUnchecked(0)
	if debugAssertions {
		want := toBits(first)
		for i, x := range v.lanes() {
			if toBits(x) != want {
				fail("Coalesce", ErrNotUniform, "lane %d is %v, lane 0 is %v", i, x, first)
			}
		}
	}
	return first
}
