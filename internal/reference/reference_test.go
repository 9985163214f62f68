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

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeMatrix(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}

	b := make([]float64, 6)
	Transpose([]int{1, 0}, 1, a, []int{2, 3}, nil, 0, b, nil, true)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, b)

	Transpose([]int{1, 0}, 1, a, []int{2, 3}, nil, 0, b, nil, false)
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, b)
}

func TestTransposeAccumulates(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{10, 10, 10, 10}
	Transpose([]int{1, 0}, 2, a, []int{2, 2}, nil, 0.5, b, nil, false)
	assert.Equal(t, []float32{7, 11, 9, 13}, b)
}

func TestTransposePadded(t *testing.T) {
	a := []float64{5.0, -3, 7.5, 0, 6.8, -3.1}
	b := make([]float64, OutputLen([]int{3, 2}, []int{3, 3}))
	Transpose([]int{1, 0}, 1, a, []int{3, 2}, nil, 0, b, []int{3, 3}, false)
	assert.Equal(t, []float64{5.0, 0, 0, -3, 6.8, 0, 7.5, -3.1, 0}, b)

	sub := []float64{2.4, 3.5, 4.6, 5.7, 6.8, 7.9, 8.0, 9.1, 10.2, 11.3, 12.4, 13.5}
	b = make([]float64, OutputLen([]int{2, 2, 1}, nil))
	Transpose([]int{2, 0, 1}, 1, sub, []int{2, 2, 1}, []int{2, 3, 2}, 0, b, nil, false)
	assert.Equal(t, []float64{2.4, 3.5, 4.6, 5.7}, b)
}

func TestConj(t *testing.T) {
	a := []complex64{1 + 1i, 2 - 2i, 3 + 3i, 4 - 4i}
	b := make([]complex64, 4)
	Conj([]int{1, 0}, 1, a, []int{2, 2}, nil, 0, b, nil, false)
	assert.Equal(t, []complex64{1 - 1i, 3 - 3i, 2 + 2i, 4 + 4i}, b)

	r := []float64{1, 2, 3, 4}
	rb := make([]float64, 4)
	Conj([]int{1, 0}, 1, r, []int{2, 2}, nil, 0, rb, nil, false)
	assert.Equal(t, []float64{1, 3, 2, 4}, rb)
}
