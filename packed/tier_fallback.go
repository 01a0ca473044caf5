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

//go:build purego || !(amd64 || arm64)

package packed

// Fallback tier: 16-byte vectors even without vector hardware, so that widths
// match the narrowest accelerated tiers.
const (
	CurrentTier   = TierFallback
	RegisterBytes = 16
	Accelerated   = false
)

// HardwareSupported reports whether the running CPU provides the features the
// compiled tier assumes. The fallback tier runs anywhere.
func HardwareSupported() bool {
	return true
}
