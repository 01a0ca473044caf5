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

//go:build !(amd64 && !purego && goexperiment.simd && (amd64.v3 || amd64.v4))

package packed

// HardwareVectors reports whether the word-level bodies run on archsimd
// registers rather than on 64-bit general purpose words.
const HardwareVectors = false

// blend sets a to a&m | b&^m.
func blend(a, b, m *[registerWords]uint64) {
	for k := range registerWords {
		a[k] = a[k]&m[k] | b[k]&^m[k]
	}
}

func clampWide[T Scalar](v Vec[T], lo, hi T) (Vec[T], bool) {
	return v, false
}
