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

// Command tierinfo prints the vector tier this binary was built for and
// whether the running CPU supports it.
//
// Build it the same way as the program it diagnoses, for example
// GOAMD64=v3 go run ./cmd/tierinfo.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-packed/packed"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("Big endian: %v\n", cpu.IsBigEndian)
	fmt.Println()

	fmt.Printf("Compiled tier: %s\n", packed.CurrentTier)
	fmt.Printf("Register width: %d bytes\n", packed.RegisterBytes)
	fmt.Printf("Accelerated bodies: %v\n", packed.Accelerated)
	fmt.Printf("Hardware vector registers: %v\n", packed.HardwareVectors)
	fmt.Println()

	fmt.Println("Lanes per vector:")
	fmt.Printf("  uint8/int8:    %d\n", packed.MaxLanes[uint8]())
	fmt.Printf("  uint16/int16:  %d\n", packed.MaxLanes[uint16]())
	fmt.Printf("  uint32/int32:  %d\n", packed.MaxLanes[uint32]())
	fmt.Printf("  float32:       %d\n", packed.MaxLanes[float32]())
	fmt.Printf("  uint64/int64:  %d\n", packed.MaxLanes[uint64]())
	fmt.Printf("  float64:       %d\n", packed.MaxLanes[float64]())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	if !packed.HardwareSupported() {
		fmt.Fprintf(os.Stderr, "Error: this CPU lacks features required by the %s tier; rebuild with a lower GOAMD64 level or -tags purego\n", packed.CurrentTier)
		os.Exit(1)
	}
	fmt.Printf("Hardware supports %s: true\n", packed.CurrentTier)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
