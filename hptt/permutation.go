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
	"github.com/samber/lo"
)

// ValidatePermutation checks that perm has length rank and holds every axis
// in [0, rank) exactly once.
func ValidatePermutation(perm []int, rank int) error {
	if len(perm) != rank {
		return errors.Wrapf(ErrInvalidPermutation, "length %d does not match rank %d", len(perm), rank)
	}
	seen := make([]bool, rank)
	for k, p := range perm {
		if p < 0 || p >= rank {
			return errors.Wrapf(ErrInvalidPermutation, "perm[%d] = %d is out of range [0, %d)", k, p, rank)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidPermutation, "axis %d appears more than once", p)
		}
		seen[p] = true
	}
	return nil
}

// validateOuterSizeB checks that an output outer shape can hold the permuted
// input shape: outerB[k] >= shapeA[perm[k]].
func validateOuterSizeB(perm, shapeA, outerB []int) error {
	if outerB == nil {
		return nil
	}
	if len(outerB) != len(perm) {
		return errors.Wrapf(ErrIncompatibleOuterSize, "output outer shape has rank %d, want %d", len(outerB), len(perm))
	}
	for k, p := range perm {
		if outerB[k] < shapeA[p] {
			return errors.Wrapf(ErrIncompatibleOuterSize,
				"output axis %d has outer extent %d, needs at least %d (input axis %d)", k, outerB[k], shapeA[p], p)
		}
	}
	if !fitsInt(outerB) {
		return errors.Wrapf(ErrInvalidShape, "output outer shape %v has more than %d elements", outerB, math.MaxInt)
	}
	return nil
}

// Permute returns arr reordered by perm: out[k] = arr[perm[k]]. It computes
// the output shape of a transpose from the input shape.
//
// perm must be a valid permutation of the indices of arr.
func Permute[T any](perm []int, arr []T) []T {
	return lo.Map(perm, func(p int, _ int) T {
		return arr[p]
	})
}

// InvPermute undoes Permute: out[perm[k]] = arr[k], so that
// InvPermute(perm, Permute(perm, arr)) equals arr. It maps an output shape
// (or index) back to the input ordering.
func InvPermute[T any](perm []int, arr []T) []T {
	out := make([]T, len(arr))
	lo.ForEach(perm, func(p int, k int) {
		out[p] = arr[k]
	})
	return out
}

// InversePermutation returns the permutation q with q[perm[k]] = k.
// Transposing by perm and then by its inverse restores the original tensor.
func InversePermutation(perm []int) []int {
	return InvPermute(perm, lo.Range(len(perm)))
}
