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

// prepareOutput applies the output buffer contract of TransposeInto to a
// caller supplied slice b and a required length need:
//
//   - len(b) >= need: b is reused as is (its contents are read when
//     accumulating) and b[:need] is returned.
//   - len(b) == 0: b is grown to need, reusing its capacity when large
//     enough. The grown region is zeroed when padded (elements outside the
//     logical output are never written) or accumulate (beta != 0 reads it);
//     otherwise the kernel overwrites every element anyway.
//   - 0 < len(b) < need: ErrInvalidOutputBuffer.
func prepareOutput[T Element](b []T, need int, padded, accumulate bool) ([]T, error) {
	switch {
	case len(b) >= need:
		return b[:need], nil
	case len(b) == 0:
		if cap(b) < need {
			return make([]T, need), nil
		}
		out := b[:need]
		if padded || accumulate {
			clear(out)
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrInvalidOutputBuffer,
			"output has %d elements, needs %d (or be empty)", len(b), need)
	}
}
