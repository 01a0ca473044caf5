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

import (
	"errors"
	"fmt"
)

// Programmer errors. Checked operations panic with an error wrapping one of
// these, so a caller that recovers can classify the failure with errors.Is.
var (
	// ErrLaneOutOfRange is reported by Extract and Replace for an index
	// outside [0, MaxLanes).
	ErrLaneOutOfRange = errors.New("lane index out of range")

	// ErrShortBuffer is reported when a slice has fewer elements than a
	// load, store or fill needs.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrPartitionOffset is reported for a partition offset outside
	// [0, MaxLanes].
	ErrPartitionOffset = errors.New("partition offset out of range")

	// ErrSizeMismatch is reported by Transmute when the two scalar types
	// differ in size.
	ErrSizeMismatch = errors.New("scalar size mismatch")

	// ErrNotUniform is reported by Coalesce in packeddebug builds when the
	// lanes of a vector differ.
	ErrNotUniform = errors.New("lanes are not uniform")

	// ErrWidthMismatch is reported when vectors that must advance together
	// have different lane counts.
	ErrWidthMismatch = errors.New("vector width mismatch")
)

// fail panics with err wrapped in the operation name and details.
func fail(op string, err error, format string, args ...any) {
	panic(fmt.Errorf("packed: %s: %w: %s", op, err, fmt.Sprintf(format, args...)))
}

func checkLane(op string, i, n int) {
	if uint(i) >= uint(n) {
		fail(op, ErrLaneOutOfRange, "index %d, lanes %d", i, n)
	}
}

func checkRange(op string, length, offset, n int) {
	if offset < 0 || n < 0 || length-offset < n {
		fail(op, ErrShortBuffer, "need %d elements at offset %d, have %d", n, offset, length)
	}
}
