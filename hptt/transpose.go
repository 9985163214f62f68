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

import "github.com/pkg/errors"

//go:generate go run ../cmd/hpttgen -output zz_transpose_typed.go

// Transpose returns alpha * A with the axes of A permuted by perm, in freshly
// allocated storage owned by the caller:
//
//	B[i_perm[0], i_perm[1], ...] = alpha * A[i_0, i_1, ...]
//
// Output axis k has extent sizeA[perm[k]]. The result has length
// NumElements(opts.OuterSizeB) when an output outer shape is given, with the
// padding left zero, else NumElements(sizeA).
//
// Example:
//
//	a := []float64{1, 2, 3, 4, 5, 6} // 2x3, row-major
//	b, _ := hptt.Transpose([]int{1, 0}, 1.0, a, []int{2, 3}, hptt.Options{Order: hptt.RowMajor})
//	// b == []float64{1, 4, 2, 5, 3, 6}, a 3x2 matrix
func Transpose[T Element](perm []int, alpha T, a []T, sizeA []int, opts Options) ([]T, error) {
	p, err := NewPlan[T](perm, sizeA, opts)
	if err != nil {
		return nil, err
	}
	if len(a) < p.lenA {
		return nil, errors.Wrapf(ErrInvalidInputBuffer, "input has %d elements, shape needs %d", len(a), p.lenA)
	}
	b := make([]T, p.lenB)
	var zero T
	if err := p.Execute(alpha, a, zero, b); err != nil {
		return nil, err
	}
	return b, nil
}

// TransposeInto computes B = alpha * transpose(A) + beta * B in caller
// supplied storage b.
//
// If len(b) is at least the output length, b is used as is and b[:length] is
// returned. If b is empty (or nil), it is grown to the output length like
// append would: its backing array is reused when the capacity suffices, and
// the grown region is zeroed when an output outer shape or a nonzero beta
// needs it. A non-empty b shorter than the output length is rejected with
// ErrInvalidOutputBuffer.
//
// All errors are reported before b is modified.
func TransposeInto[T Element](perm []int, alpha T, a []T, sizeA []int, beta T, b []T, opts Options) ([]T, error) {
	p, err := NewPlan[T](perm, sizeA, opts)
	if err != nil {
		return nil, err
	}
	if len(a) < p.lenA {
		return nil, errors.Wrapf(ErrInvalidInputBuffer, "input has %d elements, shape needs %d", len(a), p.lenA)
	}
	var zero T
	out, err := prepareOutput(b, p.lenB, opts.OuterSizeB != nil, beta != zero)
	if err != nil {
		return nil, err
	}
	if err := p.Execute(alpha, a, beta, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TransposeSimple permutes the axes of a with alpha = 1, no accumulation and
// no padding, using the process-wide defaults for the number of threads and
// the layout (see SetNumThreads and SetRowMajor).
//
// Example:
//
//	a := []float64{1, 2, 3, 4, 5, 6} // 2x3, column-major by default
//	b, _ := hptt.TransposeSimple([]int{1, 0}, a, []int{2, 3})
//	// b == []float64{1, 3, 5, 2, 4, 6}, a 3x2 matrix
func TransposeSimple[T Element](perm []int, a []T, sizeA []int) ([]T, error) {
	return Transpose(perm, T(1), a, sizeA, DefaultOptions())
}
