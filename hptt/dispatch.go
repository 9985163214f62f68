// Copyright 2025 go-hptt Authors
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

package hptt

import (
	"os"
	"strconv"
)

// DispatchLevel represents the vector instruction set the kernels are tuned
// for on this machine.
type DispatchLevel int

const (
	// DispatchScalar indicates plain Go loops only.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// l1TileBytes is the footprint of one side (input or output) of a tile.
// Both sides of a tile together stay well inside a 32KB L1d.
// Set by init() in dispatch_*.go files.
var l1TileBytes = 8 << 10

// CurrentLevel returns the instruction set the kernels are tuned for.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv checks if the HPTT_NO_SIMD environment variable is set.
// When set, the kernels use plain Go loops regardless of CPU capabilities,
// and the BLAS run path is disabled.
func NoSimdEnv() bool {
	val := os.Getenv("HPTT_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

// lanes returns the number of elements of the given size in one vector.
func lanes(elemSize int) int {
	return max(1, currentWidth/elemSize)
}

// tileEdge returns the edge of the square tiles used by the tiled kernel for
// elements of elemSize bytes: the largest power of two whose tile fits in
// l1TileBytes, and at least two vectors wide.
func tileEdge(elemSize int) int {
	perSide := l1TileBytes / elemSize
	edge := 1
	for edge*edge*4 <= perSide {
		edge *= 2
	}
	return max(edge, 2*lanes(elemSize))
}

// blasRunsEnabled reports whether long contiguous runs go through the gonum
// BLAS kernels.
func blasRunsEnabled() bool {
	return currentLevel != DispatchScalar
}
