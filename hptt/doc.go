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

// Package hptt computes generalized tensor transpositions: it permutes the
// axes of a dense N-dimensional array and optionally accumulates the result
// into an existing output,
//
//	B[perm(i)] = alpha * A[i] + beta * B[perm(i)]
//
// for float32, float64, complex64 and complex128 elements.
//
// Example usage:
//
//	// A is a 2x3 column-major matrix; B is its 3x2 transpose.
//	a := []float64{1, 2, 3, 4, 5, 6}
//	b, err := hptt.Transpose([]int{1, 0}, 1.0, a, []int{2, 3}, hptt.Options{})
//
// Both tensors may be sub-views of larger padded buffers (Options.OuterSizeA
// and Options.OuterSizeB). Output storage is either allocated by Transpose or
// supplied by the caller to TransposeInto, which is required for beta != 0.
//
// The loop nest is fused and cache blocked once per Plan, split into disjoint
// output blocks and executed by up to Options.NumThreads workers. The result
// does not depend on the number of workers.
//
// Callers that transpose the same shapes repeatedly should build a Plan with
// NewPlan and call Execute, and may share a persistent workerpool.Pool across
// plans through Options.Pool.
package hptt
