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
	"math"

	"github.com/pkg/errors"
)

// NumElements returns the product of the extents of shape. A rank-0 shape
// holds one element.
func NumElements(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// ValidateShape checks that every extent of shape is at least 1 and, when
// outerShape is non-nil, that it has the same rank and dominates shape.
func ValidateShape(shape, outerShape []int) error {
	for k, s := range shape {
		if s < 1 {
			return errors.Wrapf(ErrInvalidShape, "axis %d has extent %d", k, s)
		}
	}
	if !fitsInt(shape) {
		return errors.Wrapf(ErrInvalidShape, "shape %v has more than %d elements", shape, math.MaxInt)
	}
	if outerShape == nil {
		return nil
	}
	if len(outerShape) != len(shape) {
		return errors.Wrapf(ErrInvalidShape, "outer shape has rank %d, shape has rank %d", len(outerShape), len(shape))
	}
	for k, s := range outerShape {
		if s < shape[k] {
			return errors.Wrapf(ErrInvalidShape, "axis %d has outer extent %d smaller than extent %d", k, s, shape[k])
		}
	}
	if !fitsInt(outerShape) {
		return errors.Wrapf(ErrInvalidShape, "outer shape %v has more than %d elements", outerShape, math.MaxInt)
	}
	return nil
}

// fitsInt reports whether the product of the (positive) extents fits in an int.
func fitsInt(shape []int) bool {
	n := 1
	for _, s := range shape {
		if n > math.MaxInt/s {
			return false
		}
		n *= s
	}
	return true
}

// Strides returns the linear strides of a tensor with the given logical
// shape stored inside a buffer of extents outerShape (nil means unpadded).
// The offset of index vector idx is sum(idx[k] * stride[k]).
//
// For RowMajor the last axis has stride 1 and stride[k] = stride[k+1] *
// outer[k+1]; ColumnMajor mirrors this from axis 0.
func Strides(shape, outerShape []int, order Order) ([]int, error) {
	if err := ValidateShape(shape, outerShape); err != nil {
		return nil, err
	}
	outer := outerShape
	if outer == nil {
		outer = shape
	}
	return stridesOf(outer, order), nil
}

// stridesOf computes strides for already validated extents.
func stridesOf(outer []int, order Order) []int {
	rank := len(outer)
	stride := make([]int, rank)
	if rank == 0 {
		return stride
	}
	if order == RowMajor {
		stride[rank-1] = 1
		for k := rank - 2; k >= 0; k-- {
			stride[k] = stride[k+1] * outer[k+1]
		}
		return stride
	}
	stride[0] = 1
	for k := 1; k < rank; k++ {
		stride[k] = stride[k-1] * outer[k-1]
	}
	return stride
}

// storageLen returns the number of elements a tensor occupies: the product of
// the outer shape when present, else of the shape.
func storageLen(shape, outerShape []int) int {
	if outerShape != nil {
		return NumElements(outerShape)
	}
	return NumElements(shape)
}
