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

// Package stream iterates over scalar buffers as sequences of packed vectors.
//
// An Iter walks a slice one full vector at a time. When fewer than a vector's
// worth of elements remain, the iterator is in the Tail state and End loads
// them into a vector whose unused lanes come from a caller-supplied default:
//
//	it := stream.New(data, packed.Zeroes[float32]())
//	sum := stream.Reduce(it, packed.Zeroes[float32](), packed.Add[float32])
//	total := packed.Sum(sum)
//
// Reduction across vectors and reduction across lanes are separate steps, so
// the order of floating-point operations is always visible to the caller.
//
// Stride splits one interleaved buffer into sub-iterators, StrideZip pairs up
// two interleaved streams, and Zip2, Zip3 and ZipN advance several iterators
// in lockstep.
//
// Iterators are not safe for concurrent use. To parallelize, split the buffer
// into chunks and run an independent pipeline per chunk.
package stream
