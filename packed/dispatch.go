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

// Tier identifies the vector capability a binary was built for.
//
// The tier is fixed at build time by the tier_*.go files. Nothing in this
// package inspects the CPU to change it.
type Tier int

const (
	// TierFallback uses 16-byte vectors and the per-lane fallback bodies.
	TierFallback Tier = iota

	// TierSSE2 is the x86-64 baseline (128-bit).
	TierSSE2

	// TierAVX2 is x86-64-v3 (256-bit).
	TierAVX2

	// TierAVX512 is x86-64-v4 (512-bit).
	TierAVX512

	// TierNEON is ARM Advanced SIMD (128-bit).
	TierNEON
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierFallback:
		return "fallback"
	case TierSSE2:
		return "sse2"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	case TierNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width of the tier in bytes.
func (t Tier) Width() int {
	switch t {
	case TierAVX2:
		return 32
	case TierAVX512:
		return 64
	default:
		return 16
	}
}

// Accelerated reports whether the compiled tier selects the word-level
// bodies of the transform primitives.
func (t Tier) Accelerated() bool {
	return t != TierFallback
}
