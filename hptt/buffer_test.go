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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareOutput(t *testing.T) {
	t.Run("long enough is reused", func(t *testing.T) {
		b := []float64{1, 2, 3, 4, 5}
		out, err := prepareOutput(b, 4, true, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, out)
		assert.Same(t, &b[0], &out[0])
	})

	t.Run("nil is allocated", func(t *testing.T) {
		out, err := prepareOutput[float32](nil, 6, false, false)
		require.NoError(t, err)
		assert.Len(t, out, 6)
	})

	t.Run("empty with capacity is reused", func(t *testing.T) {
		backing := []complex64{9, 9, 9, 9, 9, 9, 9, 9}
		out, err := prepareOutput(backing[:0], 6, false, false)
		require.NoError(t, err)
		require.Len(t, out, 6)
		assert.Same(t, &backing[0], &out[0])
		assert.Equal(t, complex64(9), out[0], "not cleared when every element is overwritten")
	})

	for _, tc := range []struct {
		name               string
		padded, accumulate bool
	}{
		{"padded", true, false},
		{"accumulate", false, true},
	} {
		t.Run("empty with capacity is cleared when "+tc.name, func(t *testing.T) {
			backing := []float64{9, 9, 9, 9, 9, 9, 9, 9}
			out, err := prepareOutput(backing[:0], 6, tc.padded, tc.accumulate)
			require.NoError(t, err)
			assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, out)
			assert.Equal(t, []float64{9, 9}, backing[6:], "only the output is cleared")
		})
	}

	t.Run("short is rejected", func(t *testing.T) {
		b := []float64{1, 2, 3}
		out, err := prepareOutput(b, 4, false, false)
		require.ErrorIs(t, err, ErrInvalidOutputBuffer)
		assert.Nil(t, out)
		assert.Equal(t, []float64{1, 2, 3}, b)
	})
}
