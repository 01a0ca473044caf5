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

// MergeHalves returns lanes [0, W/2) of a followed by lanes [W/2, W) of b.
func MergeHalves[T Scalar](a, b Vec[T]) Vec[T] {
	if Accelerated {
		return mergeHalvesAccel(a, b)
	}
	return mergeHalvesFallback(a, b)
}

func mergeHalvesAccel[T Scalar](a, b Vec[T]) Vec[T] {
	copy(a.w[registerWords/2:], b.w[registerWords/2:])
	return a
}

func mergeHalvesFallback[T Scalar](a, b Vec[T]) Vec[T] {
	n := MaxLanes[T]()
	for i := n / 2; i < n; i++ {
		a = a.Replace(i, b.Extract(i))
	}
	return a
}

// MergeInterleaved returns the even lanes of a and the odd lanes of b.
func MergeInterleaved[T Scalar](a, b Vec[T]) Vec[T] {
	if Accelerated {
		return mergeInterleavedAccel(a, b)
	}
	return mergeInterleavedFallback(a, b)
}

func mergeInterleavedAccel[T Scalar](a, b Vec[T]) Vec[T] {
	var m Vec[T]
	even := evenLaneMask(SizeOf[T]())
	if SizeOf[T]() == 8 {
		for k := 0; k < registerWords; k += 2 {
			m.w[k] = ^uint64(0)
		}
	} else {
		for k := range registerWords {
			m.setWord(k, even)
		}
	}
	blend(&a.w, &b.w, &m.w)
	return a
}

func mergeInterleavedFallback[T Scalar](a, b Vec[T]) Vec[T] {
	for i := 1; i < MaxLanes[T](); i += 2 {
		a = a.Replace(i, b.Extract(i))
	}
	return a
}

// MergePartitioned returns lanes [0, offset) of a and lanes [offset, W) of b.
// It panics if offset is outside [0, W].
func MergePartitioned[T Scalar](a, b Vec[T], offset int) Vec[T] {
	checkOffset("MergePartitioned", offset, MaxLanes[T]())
	if Accelerated {
		return mergePartitionedAccel(a, b, offset)
	}
	return mergePartitionedFallback(a, b, offset)
}

func mergePartitionedAccel[T Scalar](a, b Vec[T], offset int) Vec[T] {
	var m Vec[T]
	cut := offset * SizeOf[T]()
	for k := range registerWords {
		lo := 8 * k
		switch {
		case cut <= lo:
			// Whole word from b.
		case cut >= lo+8:
			m.w[k] = ^uint64(0)
		default:
			m.setWord(k, uint64(1)<<(8*(cut-lo))-1)
		}
	}
	blend(&a.w, &b.w, &m.w)
	return a
}

func mergePartitionedFallback[T Scalar](a, b Vec[T], offset int) Vec[T] {
	for i := offset; i < MaxLanes[T](); i++ {
		a = a.Replace(i, b.Extract(i))
	}
	return a
}

// ZipLower interleaves the lower halves of a and b:
// [a0, b0, a1, b1, ..., a(W/2-1), b(W/2-1)].
func ZipLower[T Scalar](a, b Vec[T]) Vec[T] {
	if Accelerated {
		return zipAccel(a, b, 0)
	}
	return zipFallback(a, b, 0)
}

// ZipUpper interleaves the upper halves of a and b:
// [a(W/2), b(W/2), ..., a(W-1), b(W-1)].
func ZipUpper[T Scalar](a, b Vec[T]) Vec[T] {
	if Accelerated {
		return zipAccel(a, b, registerWords/2)
	}
	return zipFallback(a, b, MaxLanes[T]()/2)
}

// zipAccel interleaves the lanes of a and b starting at word first.
func zipAccel[T Scalar](a, b Vec[T], first int) Vec[T] {
	var r Vec[T]
	size := SizeOf[T]()
	for j := range registerWords {
		src := first + j/2
		if size == 8 {
			if j%2 == 0 {
				r.w[j] = a.w[src]
			} else {
				r.w[j] = b.w[src]
			}
			continue
		}
		shift := 32 * uint(j%2)
		lo := spread(a.word(src)>>shift, size)
		hi := spread(b.word(src)>>shift, size)
		r.setWord(j, lo|hi<<(8*size))
	}
	return r
}

// zipFallback interleaves the lanes of a and b starting at lane first.
func zipFallback[T Scalar](a, b Vec[T], first int) Vec[T] {
	var r Vec[T]
	for i := range MaxLanes[T]() / 2 {
		r = r.Replace(2*i, a.Extract(first+i))
		r = r.Replace(2*i+1, b.Extract(first+i))
	}
	return r
}
