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

// executeBlock transposes one output block.
//
// In modeContiguous every innermost run along dims[0] is handed to run as a
// whole. In modeTiled the plane spanned by dims[0] (contiguous in B) and
// dims[tiledDim] (contiguous in A) is walked in tile x tile squares: each
// square reads an L1-resident patch of A column by column while writing
// contiguous runs of B.
func (p *Plan[T]) executeBlock(bl *block, run runFunc[T], alpha T, a []T, beta T, b []T) {
	d0 := p.dims[0]
	lo0, hi0 := bl.lo[0], bl.hi[0]

	if p.mode == modeContiguous {
		n := hi0 - lo0
		forEachOuter(p.dims, bl, 0, func(offA, offB int) {
			run(b, offB+lo0*d0.strideB, d0.strideB, a, offA+lo0*d0.strideA, d0.strideA, n, alpha, beta)
		})
		return
	}

	t := p.tiledDim
	dt := p.dims[t]
	loT, hiT := bl.lo[t], bl.hi[t]
	tile := p.tile
	forEachOuter(p.dims, bl, t, func(offA, offB int) {
		for i0 := lo0; i0 < hi0; i0 += tile {
			n := min(tile, hi0-i0)
			rowA := offA + i0*d0.strideA
			rowB := offB + i0*d0.strideB
			for j0 := loT; j0 < hiT; j0 += tile {
				j1 := min(j0+tile, hiT)
				for j := j0; j < j1; j++ {
					run(b, rowB+j*dt.strideB, d0.strideB, a, rowA+j*dt.strideA, d0.strideA, n, alpha, beta)
				}
			}
		}
	})
}

// forEachOuter calls fn with the input and output offsets of every index of
// the block's outer loops, that is every axis except 0 and skip (the tiled
// axis; pass 0 to skip nothing more). The first outer axis varies fastest.
func forEachOuter(dims []loopDim, bl *block, skip int, fn func(offA, offB int)) {
	outer := make([]int, 0, len(dims))
	for k := 1; k < len(dims); k++ {
		if k != skip {
			outer = append(outer, k)
		}
	}

	idx := make([]int, len(outer))
	offA, offB := 0, 0
	for j, k := range outer {
		idx[j] = bl.lo[k]
		offA += bl.lo[k] * dims[k].strideA
		offB += bl.lo[k] * dims[k].strideB
	}

	for {
		fn(offA, offB)

		j := 0
		for ; j < len(outer); j++ {
			k := outer[j]
			idx[j]++
			offA += dims[k].strideA
			offB += dims[k].strideB
			if idx[j] < bl.hi[k] {
				break
			}
			span := idx[j] - bl.lo[k]
			offA -= span * dims[k].strideA
			offB -= span * dims[k].strideB
			idx[j] = bl.lo[k]
		}
		if j == len(outer) {
			return
		}
	}
}
