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

func TestBuildDims(t *testing.T) {
	got := buildDims([]int{1, 0}, []int{3, 4}, nil, nil, ColumnMajor)
	assert.Equal(t, []loopDim{{n: 4, strideA: 3, strideB: 1}, {n: 3, strideA: 1, strideB: 4}}, got)

	// Row-major is the column-major problem on reversed axes.
	got = buildDims([]int{1, 0}, []int{3, 4}, nil, nil, RowMajor)
	assert.Equal(t, []loopDim{{n: 3, strideA: 4, strideB: 1}, {n: 4, strideA: 1, strideB: 3}}, got)

	got = buildDims([]int{1, 0}, []int{3, 2}, nil, []int{3, 3}, ColumnMajor)
	assert.Equal(t, []loopDim{{n: 2, strideA: 3, strideB: 1}, {n: 3, strideA: 1, strideB: 3}}, got)
}

func TestFuseDims(t *testing.T) {
	tests := []struct {
		name string
		in   []loopDim
		want []loopDim
	}{
		{
			name: "identity collapses",
			in:   []loopDim{{2, 1, 1}, {3, 2, 2}, {4, 6, 6}},
			want: []loopDim{{24, 1, 1}},
		},
		{
			name: "extent one dropped",
			in:   []loopDim{{1, 6, 1}, {2, 1, 1}, {2, 2, 2}},
			want: []loopDim{{4, 1, 1}},
		},
		{
			name: "transpose kept",
			in:   []loopDim{{4, 3, 1}, {3, 1, 4}},
			want: []loopDim{{4, 3, 1}, {3, 1, 4}},
		},
		{
			name: "padding blocks fusion",
			in:   []loopDim{{2, 1, 1}, {3, 2, 3}},
			want: []loopDim{{2, 1, 1}, {3, 2, 3}},
		},
		{
			name: "partial fusion",
			in:   []loopDim{{2, 12, 1}, {3, 24, 2}, {4, 1, 6}},
			want: []loopDim{{6, 12, 1}, {4, 1, 6}},
		},
		{
			name: "all ones",
			in:   []loopDim{{1, 1, 1}, {1, 1, 1}},
			want: []loopDim{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fuseDims(tt.in))
		})
	}
}

func TestSelectMode(t *testing.T) {
	mode, _ := selectMode(nil)
	assert.Equal(t, modeScalar, mode)

	mode, _ = selectMode([]loopDim{{24, 1, 1}})
	assert.Equal(t, modeContiguous, mode)

	mode, _ = selectMode([]loopDim{{300, 1, 1}, {9, 2100, 300}, {7, 300, 2700}})
	assert.Equal(t, modeContiguous, mode)

	mode, tiledDim := selectMode([]loopDim{{4, 3, 1}, {5, 12, 4}, {3, 1, 20}})
	assert.Equal(t, modeTiled, mode)
	assert.Equal(t, 2, tiledDim)
	assert.Equal(t, "tiled", mode.String())
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan[float64]([]int{2, 0, 1}, []int{2, 2, 1}, Options{OuterSizeA: []int{2, 3, 2}})
	require.NoError(t, err)
	assert.Equal(t, modeContiguous, p.mode)
	assert.Equal(t, []loopDim{{4, 1, 1}}, p.dims)
	assert.Equal(t, 3, p.Rank())
	assert.Equal(t, []int{2, 2, 1}, p.InputShape())
	assert.Equal(t, []int{1, 2, 2}, p.OutputShape())
	assert.Equal(t, 12, p.InputLen())
	assert.Equal(t, 4, p.OutputLen())
	assert.Equal(t, 1, p.NumBlocks())

	p, err = NewPlan[float64]([]int{1, 0}, []int{3, 2}, Options{OuterSizeB: []int{3, 3}})
	require.NoError(t, err)
	assert.Equal(t, modeTiled, p.mode)
	assert.Equal(t, 1, p.tiledDim)
	assert.Equal(t, 9, p.OutputLen())

	pc, err := NewPlan[complex64]([]int{0, 1}, []int{1, 1}, Options{ConjugateA: true})
	require.NoError(t, err)
	assert.Equal(t, modeScalar, pc.mode)
	assert.True(t, pc.conj)

	pf, err := NewPlan[float32]([]int{0, 1}, []int{2, 2}, Options{ConjugateA: true})
	require.NoError(t, err)
	assert.False(t, pf.conj, "real types are never conjugated")
}

func TestPlanBlasRuns(t *testing.T) {
	p, err := NewPlan[float64]([]int{0, 1}, []int{512, 3}, Options{NumThreads: 4})
	require.NoError(t, err)
	assert.Equal(t, blasRunsEnabled(), p.blasRuns)

	p, err = NewPlan[float64]([]int{1, 0}, []int{512, 3}, Options{})
	require.NoError(t, err)
	assert.False(t, p.blasRuns, "tiled plans use the element kernels")

	pz, err := NewPlan[complex128]([]int{0, 1}, []int{512, 3}, Options{ConjugateA: true})
	require.NoError(t, err)
	assert.False(t, pz.blasRuns, "conjugation is not a BLAS run")
}

func TestPlanExecuteBufferChecks(t *testing.T) {
	p, err := NewPlan[float32]([]int{1, 0}, []int{3, 4}, Options{})
	require.NoError(t, err)

	err = p.Execute(1, make([]float32, 11), 0, make([]float32, 12))
	assert.ErrorIs(t, err, ErrInvalidInputBuffer)

	err = p.Execute(1, make([]float32, 12), 0, make([]float32, 11))
	assert.ErrorIs(t, err, ErrInvalidOutputBuffer)

	assert.NoError(t, p.Execute(1, make([]float32, 12), 0, make([]float32, 12)))
}
