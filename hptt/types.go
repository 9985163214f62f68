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

// Element is the set of element types with a transpose kernel.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// ElementType tags the element representation of an untyped buffer.
type ElementType int

const (
	// Float32 is a 32-bit IEEE-754 real.
	Float32 ElementType = iota

	// Float64 is a 64-bit IEEE-754 real.
	Float64

	// Complex64 is a pair of float32 (real, imaginary).
	Complex64

	// Complex128 is a pair of float64 (real, imaginary).
	Complex128
)

// String returns the Go name of the element type.
func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Size returns the size of one element in bytes, or 0 for an unknown type.
func (t ElementType) Size() int {
	switch t {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// IsComplex reports whether t is one of the complex element types.
func (t ElementType) IsComplex() bool {
	return t == Complex64 || t == Complex128
}

// ParseElementType maps a Go type name ("float32", "complex128", ...) to its
// ElementType.
func ParseElementType(name string) (ElementType, error) {
	for _, t := range []ElementType{Float32, Float64, Complex64, Complex128} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedElementType, "unknown element type %q", name)
}

// ElementTypeOf returns the element type of a slice of one of the supported
// element types.
func ElementTypeOf(x any) (ElementType, error) {
	switch x.(type) {
	case []float32:
		return Float32, nil
	case []float64:
		return Float64, nil
	case []complex64:
		return Complex64, nil
	case []complex128:
		return Complex128, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedElementType, "%T", x)
	}
}

// elementTypeFor returns the tag of the type parameter T.
func elementTypeFor[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

// Order is the memory layout of a tensor: which axis varies fastest.
type Order int

const (
	// ColumnMajor stores axis 0 contiguously (Fortran order).
	ColumnMajor Order = iota

	// RowMajor stores the last axis contiguously (C order).
	RowMajor
)

// String returns "column-major" or "row-major".
func (o Order) String() string {
	if o == RowMajor {
		return "row-major"
	}
	return "column-major"
}
