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

// Sentinel errors returned by the transpose entry points. Returned errors wrap
// one of these with details about the offending axis or length; test them with
// errors.Is.
//
// Every one of them is reported before any output element is written.
var (
	// ErrInvalidShape is returned for an extent < 1, an outer extent smaller
	// than its logical extent, or an outer shape of the wrong rank.
	ErrInvalidShape = errors.New("hptt: invalid shape")

	// ErrInvalidPermutation is returned when the permutation length differs
	// from the rank or the permutation is not a bijection on [0, rank).
	ErrInvalidPermutation = errors.New("hptt: invalid permutation")

	// ErrIncompatibleOuterSize is returned when the output outer shape cannot
	// hold the permuted input.
	ErrIncompatibleOuterSize = errors.New("hptt: incompatible outer size")

	// ErrInvalidOutputBuffer is returned when a caller supplied output slice is
	// non-empty but shorter than the required output length.
	ErrInvalidOutputBuffer = errors.New("hptt: invalid output buffer")

	// ErrInvalidInputBuffer is returned when the input slice is shorter than
	// the storage its shape (or outer shape) describes.
	ErrInvalidInputBuffer = errors.New("hptt: invalid input buffer")

	// ErrUnsupportedElementType is returned by the untyped entry points for
	// element types without a kernel.
	ErrUnsupportedElementType = errors.New("hptt: unsupported element type")
)
