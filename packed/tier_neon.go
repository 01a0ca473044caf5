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

//go:build arm64 && !purego

package packed

import "golang.org/x/sys/cpu"

const (
	CurrentTier   = TierNEON
	RegisterBytes = 16
	Accelerated   = true
)

// HardwareSupported reports whether the running CPU provides the features the
// compiled tier assumes.
func HardwareSupported() bool {
	return cpu.ARM64.HasASIMD
}
