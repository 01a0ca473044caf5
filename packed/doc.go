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

// Package packed provides portable fixed-width vectors over scalar lanes.
//
// A Vec[T] holds exactly MaxLanes[T]() lanes of T laid out like the target
// register. The register width is chosen when the binary is built, from the
// GOARCH, the GOAMD64 level and the purego tag:
//
//	purego, or not amd64/arm64  fallback  16 bytes
//	amd64 (v1, v2)              sse2      16 bytes
//	amd64 (GOAMD64=v3)          avx2      32 bytes
//	amd64 (GOAMD64=v4)          avx512    64 bytes
//	arm64                       neon      16 bytes
//
// Every transform primitive has two bodies: an accelerated one that works on
// whole register words, and a fallback one written only in terms of Extract
// and Replace. The choice is a constant, so there is no runtime branch, and
// both bodies produce bit-identical results for every input.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-packed/packed"
//
//	a := packed.Load(data, 0)
//	b := packed.Splat[float32](2)
//	packed.Mul(a, b).Store(out, 0)
//
// Iteration over whole buffers, including tails, strides and zips, lives in
// the stream subpackage.
package packed

//go:generate go run ../cmd/packgen --output zz_grid_gen.go --package packed
