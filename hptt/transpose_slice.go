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

// TransposeSlice is the untyped form of TransposeInto for callers holding
// buffers behind an interface (e.g. tensors tagged with an ElementType).
//
// a must be a []float32, []float64, []complex64 or []complex128; b must be
// nil or a slice of the same type. alpha and beta are converted to the
// element type; for real element types their imaginary parts are ignored.
// The element type is resolved once, before any buffer is read, and any other
// type fails with ErrUnsupportedElementType.
//
// The returned value has the same dynamic type as a.
func TransposeSlice(perm []int, alpha complex128, a any, sizeA []int, beta complex128, b any, opts Options) (any, error) {
	et, err := ElementTypeOf(a)
	if err != nil {
		return nil, errors.WithMessage(err, "input")
	}
	if b != nil {
		bt, err := ElementTypeOf(b)
		if err != nil {
			return nil, errors.WithMessage(err, "output")
		}
		if bt != et {
			return nil, errors.Wrapf(ErrUnsupportedElementType, "output is %s, input is %s", bt, et)
		}
	}

	switch et {
	case Float32:
		return transposeSliceOf(perm, float32(real(alpha)), a.([]float32), sizeA, float32(real(beta)), b, opts)
	case Float64:
		return transposeSliceOf(perm, real(alpha), a.([]float64), sizeA, real(beta), b, opts)
	case Complex64:
		return transposeSliceOf(perm, complex64(alpha), a.([]complex64), sizeA, complex64(beta), b, opts)
	default:
		return transposeSliceOf(perm, alpha, a.([]complex128), sizeA, beta, b, opts)
	}
}

func transposeSliceOf[T Element](perm []int, alpha T, a []T, sizeA []int, beta T, b any, opts Options) (any, error) {
	var out []T
	if b != nil {
		out = b.([]T)
	}
	res, err := TransposeInto(perm, alpha, a, sizeA, beta, out, opts)
	if err != nil {
		return nil, err
	}
	return res, nil
}
