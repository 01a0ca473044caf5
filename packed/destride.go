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

// DestrideTwo splits the concatenation a‖b into its even and odd lanes:
// even[i] = (a‖b)[2i] and odd[i] = (a‖b)[2i+1]. It inverts ZipLower and
// ZipUpper:
//
//	DestrideTwo(ZipLower(x, y), ZipUpper(x, y)) == (x, y)
func DestrideTwo[T Scalar](a, b Vec[T]) (even, odd Vec[T]) {
	if Accelerated {
		return destrideTwoAccel(a, b)
	}
	return destrideTwoFallback(a, b)
}

func destrideTwoAccel[T Scalar](a, b Vec[T]) (even, odd Vec[T]) {
	size := SizeOf[T]()
	var cat [2 * registerWords]uint64
	for k := range registerWords {
		cat[k] = a.word(k)
		cat[registerWords+k] = b.word(k)
	}
	for j := range registerWords {
		w0, w1 := cat[2*j], cat[2*j+1]
		if size == 8 {
			even.setWord(j, w0)
			odd.setWord(j, w1)
			continue
		}
		s := 8 * uint(size)
		even.setWord(j, packEven(w0, size)|packEven(w1, size)<<32)
		odd.setWord(j, packEven(w0>>s, size)|packEven(w1>>s, size)<<32)
	}
	return even, odd
}

func destrideTwoFallback[T Scalar](a, b Vec[T]) (even, odd Vec[T]) {
	n := MaxLanes[T]()
	at := func(k int) T {
		if k < n {
			return a.Extract(k)
		}
		return b.Extract(k - n)
	}
	for i := range n {
		even = even.Replace(i, at(2*i))
		odd = odd.Replace(i, at(2*i+1))
	}
	return even, odd
}

// DestrideFour splits the concatenation a‖b‖c‖d into four vectors with
// q_k[i] = (a‖b‖c‖d)[4i+k].
func DestrideFour[T Scalar](a, b, c, d Vec[T]) (q0, q1, q2, q3 Vec[T]) {
	if Accelerated {
		return destrideFourAccel(a, b, c, d)
	}
	return destrideFourFallback(a, b, c, d)
}

func destrideFourAccel[T Scalar](a, b, c, d Vec[T]) (q0, q1, q2, q3 Vec[T]) {
	e1, o1 := destrideTwoAccel(a, b)
	e2, o2 := destrideTwoAccel(c, d)
	q0, q2 = destrideTwoAccel(e1, e2)
	q1, q3 = destrideTwoAccel(o1, o2)
	return q0, q1, q2, q3
}

func destrideFourFallback[T Scalar](a, b, c, d Vec[T]) (q0, q1, q2, q3 Vec[T]) {
	n := MaxLanes[T]()
	src := [4]Vec[T]{a, b, c, d}
	var q [4]Vec[T]
	for i := range n {
		for k := range 4 {
			x := 4*i + k
			q[k] = q[k].Replace(i, src[x/n].Extract(x%n))
		}
	}
	return q[0], q[1], q[2], q[3]
}
