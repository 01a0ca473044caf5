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

//go:build amd64 && !purego && amd64.v4

package packed

import "golang.org/x/sys/cpu"

const (
	CurrentTier   = TierAVX512
	RegisterBytes = 64
	Accelerated   = true
)

// HardwareSupported reports whether the running CPU provides the features the
// compiled tier assumes. GOAMD64=v4 implies the F, BW and VL subsets.
func HardwareSupported() bool {
	return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
}
