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
	"sync/atomic"

	"github.com/ajroetker/go-hptt/hptt/workerpool"
)

// Options configures one transpose call or plan. The zero value is a
// single-threaded, column-major transpose of unpadded tensors.
type Options struct {
	// OuterSizeA is the extent of each input axis in the buffer holding A,
	// when A is a sub-tensor of a larger padded buffer. nil means unpadded.
	OuterSizeA []int

	// OuterSizeB is the extent of each output axis in the buffer holding B.
	// Elements of B outside the logical output are never written.
	OuterSizeB []int

	// NumThreads is the maximum number of workers. Values < 1 mean 1.
	NumThreads int

	// Order is the memory layout of both A and B.
	Order Order

	// ConjugateA conjugates complex input elements before scaling. It has no
	// effect on real element types.
	ConjugateA bool

	// Pool, when non-nil, runs the blocks on a persistent worker pool instead
	// of goroutines spawned per call. At most min(NumThreads,
	// Pool.NumWorkers()) blocks run at once.
	Pool *workerpool.Pool
}

// numThreads returns the effective worker count, treating 0 as 1.
func (o Options) numThreads() int {
	return max(1, o.NumThreads)
}

// Process-wide defaults used by TransposeSimple and DefaultOptions.
//
// Each value is stored atomically, so concurrent reads and writes are safe,
// but SetNumThreads and SetRowMajor are independent: a caller racing another
// caller's pair of setters can observe one new value and one old value.
// Prefer passing Options explicitly.
var (
	defaultNumThreads atomic.Int32
	defaultRowMajor   atomic.Bool
)

func init() {
	defaultNumThreads.Store(int32(envInt("HPTT_NUM_THREADS", 1)))
	defaultRowMajor.Store(envBool("HPTT_ROW_MAJOR", false))
}

// SetNumThreads sets the default number of workers used by TransposeSimple
// and DefaultOptions. Values < 1 are stored as 1.
func SetNumThreads(n int) {
	defaultNumThreads.Store(int32(max(1, n)))
}

// DefaultNumThreads returns the default number of workers.
func DefaultNumThreads() int {
	return int(defaultNumThreads.Load())
}

// SetRowMajor sets whether TransposeSimple and DefaultOptions use row-major
// (true) or column-major (false) layout.
func SetRowMajor(rowMajor bool) {
	defaultRowMajor.Store(rowMajor)
}

// DefaultRowMajor reports whether the default layout is row-major.
func DefaultRowMajor() bool {
	return defaultRowMajor.Load()
}

// DefaultOptions returns Options carrying the current process-wide defaults.
func DefaultOptions() Options {
	opts := Options{NumThreads: DefaultNumThreads()}
	if DefaultRowMajor() {
		opts.Order = RowMajor
	}
	return opts
}

func envInt(name string, def int) int {
	val := os.Getenv(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func envBool(name string, def bool) bool {
	val := os.Getenv(name)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
