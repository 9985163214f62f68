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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeFactors(t *testing.T) {
	assert.Empty(t, primeFactors(1))
	assert.Equal(t, []int{2}, primeFactors(2))
	assert.Equal(t, []int{3, 2, 2}, primeFactors(12))
	assert.Equal(t, []int{7, 5, 3, 2}, primeFactors(210))
	assert.Equal(t, []int{2, 2, 2, 2}, primeFactors(16))
	assert.Equal(t, []int{97}, primeFactors(97))
}

func TestPartitionSingleBlock(t *testing.T) {
	dims := []loopDim{{n: 300, strideA: 1, strideB: 1}, {n: 200, strideA: 300, strideB: 300}}
	tiled := []bool{true, false}

	for _, threads := range []int{0, 1} {
		blocks := partition(dims, tiled, 32, threads)
		require.Len(t, blocks, 1)
		assert.Equal(t, []int{0, 0}, blocks[0].lo)
		assert.Equal(t, []int{300, 200}, blocks[0].hi)
	}

	small := []loopDim{{n: 40, strideA: 1, strideB: 1}, {n: 40, strideA: 40, strideB: 40}}
	assert.Len(t, partition(small, tiled, 32, 8), 1)

	assert.Len(t, partition(nil, nil, 32, 8), 1)
}

func TestPartitionCoversOutputOnce(t *testing.T) {
	tests := []struct {
		dims  []loopDim
		tiled []bool
	}{
		{[]loopDim{{n: 4096}}, []bool{true}},
		{[]loopDim{{n: 300}, {n: 200}}, []bool{true, false}},
		{[]loopDim{{n: 70}, {n: 130}}, []bool{true, true}},
		{[]loopDim{{n: 33}, {n: 65}, {n: 17}}, []bool{true, false, true}},
		{[]loopDim{{n: 3}, {n: 5}, {n: 7}, {n: 64}}, []bool{true, false, false, true}},
		{[]loopDim{{n: 8}, {n: 1000}}, []bool{true, false}},
	}
	const tile = 16
	for _, tt := range tests {
		for _, threads := range []int{2, 3, 4, 6, 7, 16, 64} {
			t.Run(fmt.Sprintf("%v/threads=%d", tt.dims, threads), func(t *testing.T) {
				blocks := partition(tt.dims, tt.tiled, tile, threads)
				require.NotEmpty(t, blocks)
				require.LessOrEqual(t, len(blocks), threads)

				total := 1
				for _, d := range tt.dims {
					total *= d.n
				}
				counts := make([]int, total)
				for _, bl := range blocks {
					for k := range tt.dims {
						require.Less(t, bl.lo[k], bl.hi[k], "empty block on axis %d", k)
						if tt.tiled[k] {
							require.Zero(t, bl.lo[k]%tile, "split inside a tile on axis %d", k)
						}
					}
					forEachIndex(tt.dims, bl, func(flat int) { counts[flat]++ })
				}
				for i, c := range counts {
					require.Equal(t, 1, c, "element %d covered %d times", i, c)
				}
			})
		}
	}
}

func TestPartitionPrefersContiguousAxis(t *testing.T) {
	dims := []loopDim{{n: 1024}, {n: 1024}}
	blocks := partition(dims, []bool{true, true}, 32, 4)
	require.Len(t, blocks, 4)
	for _, bl := range blocks {
		assert.Equal(t, 0, bl.lo[1])
		assert.Equal(t, 1024, bl.hi[1])
	}
}

// forEachIndex calls fn with the column-major flat index, within the full
// extents of dims, of every element of bl.
func forEachIndex(dims []loopDim, bl block, fn func(flat int)) {
	rank := len(dims)
	idx := make([]int, rank)
	copy(idx, bl.lo)
	for {
		flat, stride := 0, 1
		for k, d := range dims {
			flat += idx[k] * stride
			stride *= d.n
		}
		fn(flat)

		k := 0
		for ; k < rank; k++ {
			idx[k]++
			if idx[k] < bl.hi[k] {
				break
			}
			idx[k] = bl.lo[k]
		}
		if k == rank {
			return
		}
	}
}
