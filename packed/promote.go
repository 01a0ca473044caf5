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

import "golang.org/x/sys/cpu"

// promote widens every lane of v from A to B, where B is twice the size of
// A. lo holds the widened lanes [0, W/2) and hi the lanes [W/2, W).
// Integers are sign or zero extended; floats convert exactly.
func promote[B, A Scalar](v Vec[A]) (lo, hi Vec[B]) {
	if Accelerated {
		return promoteAccel[B](v)
	}
	return promoteFallback[B](v)
}

func promoteAccel[B, A Scalar](v Vec[A]) (lo, hi Vec[B]) {
	if isFloat[A]() || cpu.IsBigEndian {
		return promoteLanes[B](v)
	}
	size := SizeOf[A]()
	signed := isSigned[A]()
	widen := func(w uint64, upper bool) uint64 {
		if upper {
			w >>= 32
		}
		x := spread(w, size)
		if signed {
			x = signExtend(x, size)
		}
		return x
	}
	for j := range registerWords {
		upper := j%2 == 1
		lo.w[j] = widen(v.w[j/2], upper)
		hi.w[j] = widen(v.w[registerWords/2+j/2], upper)
	}
	return lo, hi
}

// promoteLanes converts the lanes in bulk through lane views.
func promoteLanes[B, A Scalar](v Vec[A]) (lo, hi Vec[B]) {
	src := v.lanes()
	l, h := lo.lanes(), hi.lanes()
	n := len(l)
	for i := range n {
		l[i] = B(src[i])
		h[i] = B(src[n+i])
	}
	return lo, hi
}

func promoteFallback[B, A Scalar](v Vec[A]) (lo, hi Vec[B]) {
	n := MaxLanes[B]()
	for i := range n {
		lo = lo.Replace(i, B(v.Extract(i)))
		hi = hi.Replace(i, B(v.Extract(n+i)))
	}
	return lo, hi
}

// demoteTwo narrows the lanes of a followed by the lanes of b from A to B,
// where A is twice the size of B. Each lane is first clamped to [lo, hi],
// the range of B expressed in A, so out-of-range values saturate.
func demoteTwo[B, A Scalar](a, b Vec[A], lo, hi A) Vec[B] {
	if Accelerated {
		return demoteTwoAccel[B](a, b, lo, hi)
	}
	return demoteTwoFallback[B](a, b, lo, hi)
}

func demoteTwoAccel[B, A Scalar](a, b Vec[A], lo, hi A) Vec[B] {
	a, b = clampLanes(a, lo, hi), clampLanes(b, lo, hi)
	if isFloat[B]() || cpu.IsBigEndian {
		return demoteLanes[B](a, b)
	}
	size := SizeOf[B]()
	var r Vec[B]
	for k := range registerWords {
		src := &a
		w := 2 * k
		if w >= registerWords {
			src = &b
			w -= registerWords
		}
		r.w[k] = packEven(src.w[w], size) | packEven(src.w[w+1], size)<<32
	}
	return r
}

func clampLanes[T Scalar](v Vec[T], lo, hi T) Vec[T] {
	if r, ok := clampWide(v, lo, hi); ok {
		return r
	}
	lanes := v.lanes()
	for i, x := range lanes {
		lanes[i] = clamp(x, lo, hi)
	}
	return v
}

func demoteLanes[B, A Scalar](a, b Vec[A]) Vec[B] {
	var r Vec[B]
	dst := r.lanes()
	n := MaxLanes[A]()
	for i, x := range a.lanes() {
		dst[i] = B(x)
	}
	for i, x := range b.lanes() {
		dst[n+i] = B(x)
	}
	return r
}

func demoteTwoFallback[B, A Scalar](a, b Vec[A], lo, hi A) Vec[B] {
	var r Vec[B]
	n := MaxLanes[A]()
	for i := range MaxLanes[B]() {
		var x A
		if i < n {
			x = a.Extract(i)
		} else {
			x = b.Extract(i - n)
		}
		r = r.Replace(i, B(clamp(x, lo, hi)))
	}
	return r
}

// clamp limits x to [lo, hi]. NaN passes through unchanged.
func clamp[T Scalar](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
