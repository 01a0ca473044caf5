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

// SwapBytes reverses the byte order of every lane of v.
func SwapBytes[T Scalar](v Vec[T]) Vec[T] {
	if Accelerated {
		return swapBytesAccel(v)
	}
	return swapBytesFallback(v)
}

func swapBytesAccel[T Scalar](v Vec[T]) Vec[T] {
	size := SizeOf[T]()
	for k := range registerWords {
		v.w[k] = swapWord(v.w[k], size)
	}
	return v
}

func swapBytesFallback[T Scalar](v Vec[T]) Vec[T] {
	size := SizeOf[T]()
	for i := range MaxLanes[T]() {
		v = v.Replace(i, fromBits[T](swapBits(toBits(v.Extract(i)), size)))
	}
	return v
}

// ToBE converts lanes from native to big-endian byte order.
func ToBE[T Scalar](v Vec[T]) Vec[T] {
	if cpu.IsBigEndian {
		return v
	}
	return SwapBytes(v)
}

// ToLE converts lanes from native to little-endian byte order.
func ToLE[T Scalar](v Vec[T]) Vec[T] {
	if cpu.IsBigEndian {
		return SwapBytes(v)
	}
	return v
}

// FromBE converts lanes from big-endian to native byte order.
func FromBE[T Scalar](v Vec[T]) Vec[T] {
	return ToBE(v)
}

// FromLE converts lanes from little-endian to native byte order.
func FromLE[T Scalar](v Vec[T]) Vec[T] {
	return ToLE(v)
}
