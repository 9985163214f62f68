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
	"math/rand/v2"
	"testing"
)

// randomTensor returns n elements with real and imaginary parts in [-1, 1).
func randomTensor[T Element](n int, seed uint64) []T {
	r := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]T, n)
	for i := range out {
		re, im := r.Float64()*2-1, r.Float64()*2-1
		switch p := any(&out[i]).(type) {
		case *float32:
			*p = float32(re)
		case *float64:
			*p = re
		case *complex64:
			*p = complex64(complex(re, im))
		case *complex128:
			*p = complex(re, im)
		}
	}
	return out
}

// allPermutations returns every permutation of [0, n).
func allPermutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range allPermutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			q := make([]int, 0, n)
			q = append(q, p[:pos]...)
			q = append(q, n-1)
			q = append(q, p[pos:]...)
			out = append(out, q)
		}
	}
	return out
}

// checkTransposed asserts transposed[i] == original[indices[i]].
func checkTransposed[T Element](t *testing.T, original, transposed []T, indices []int) {
	t.Helper()
	if len(transposed) != len(indices) {
		t.Fatalf("len(transposed) = %d, want %d", len(transposed), len(indices))
	}
	for i, j := range indices {
		if transposed[i] != original[j] {
			t.Errorf("transposed[%d] = %v, want original[%d] = %v", i, transposed[i], j, original[j])
		}
	}
}

// withDefaults runs fn with the process-wide defaults set to threads and
// rowMajor, restoring the previous values afterwards.
func withDefaults(t *testing.T, threads int, rowMajor bool, fn func()) {
	t.Helper()
	prevThreads, prevRowMajor := DefaultNumThreads(), DefaultRowMajor()
	defer func() {
		SetNumThreads(prevThreads)
		SetRowMajor(prevRowMajor)
	}()
	SetNumThreads(threads)
	SetRowMajor(rowMajor)
	fn()
}
