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

import "slices"

// Partitioning tuning parameters
const (
	// MinParallelElements is the minimum number of elements before a
	// transpose is split across workers.
	MinParallelElements = 64 * 64

	// minTilesPerBlock is the fewest tiles along the output's contiguous axis
	// a block may be left with when that axis is split.
	minTilesPerBlock = 2
)

// block is a hyper-rectangle [lo[k], hi[k]) of the fused output index space.
// Blocks of one plan never overlap, so workers write to disjoint elements.
type block struct {
	lo, hi []int
}

// partition splits the loop nest into at most numThreads disjoint blocks.
//
// The worker count is factored into primes, largest first. Each factor splits
// the output's contiguous axis (dims[0]) while that axis keeps at least
// minTilesPerBlock tiles per block; otherwise it splits the axis with the
// most remaining units per block. Splits along tiled axes fall on tile
// boundaries so the kernel's tiles are never cut.
func partition(dims []loopDim, tiled []bool, tile, numThreads int) []block {
	rank := len(dims)
	whole := block{lo: make([]int, rank), hi: make([]int, rank)}
	total := 1
	for k, d := range dims {
		whole.hi[k] = d.n
		total *= d.n
	}
	if numThreads <= 1 || rank == 0 || total < MinParallelElements {
		return []block{whole}
	}

	// units[k] is the number of indivisible pieces along axis k.
	units := make([]int, rank)
	unitSize := make([]int, rank)
	for k, d := range dims {
		unitSize[k] = 1
		if tiled[k] {
			unitSize[k] = tile
		}
		units[k] = ceilDiv(d.n, unitSize[k])
	}

	splits := make([]int, rank)
	for k := range splits {
		splits[k] = 1
	}
	for _, f := range primeFactors(numThreads) {
		if k := chooseSplitAxis(units, splits, f); k >= 0 {
			splits[k] *= f
		}
	}

	// Per-axis ranges in element units, balanced in whole units.
	ranges := make([][][2]int, rank)
	for k := range dims {
		ranges[k] = make([][2]int, splits[k])
		for i := range splits[k] {
			startUnit := i * units[k] / splits[k]
			endUnit := (i + 1) * units[k] / splits[k]
			ranges[k][i] = [2]int{
				startUnit * unitSize[k],
				min(endUnit*unitSize[k], dims[k].n),
			}
		}
	}

	// Cartesian product of the per-axis ranges, axis 0 fastest.
	numBlocks := 1
	for _, s := range splits {
		numBlocks *= s
	}
	blocks := make([]block, 0, numBlocks)
	idx := make([]int, rank)
	for range numBlocks {
		b := block{lo: make([]int, rank), hi: make([]int, rank)}
		for k := range rank {
			b.lo[k] = ranges[k][idx[k]][0]
			b.hi[k] = ranges[k][idx[k]][1]
		}
		blocks = append(blocks, b)
		for k := range rank {
			idx[k]++
			if idx[k] < splits[k] {
				break
			}
			idx[k] = 0
		}
	}
	return blocks
}

// chooseSplitAxis returns the axis that should absorb a split factor f, or -1
// when no axis has f more units to give.
func chooseSplitAxis(units, splits []int, f int) int {
	if units[0]/(splits[0]*f) >= minTilesPerBlock {
		return 0
	}
	best, bestPer := -1, 0
	for k := range units {
		if units[k] < splits[k]*f {
			continue
		}
		if per := units[k] / splits[k]; per > bestPer {
			best, bestPer = k, per
		}
	}
	return best
}

// primeFactors returns the prime factors of n, largest first.
func primeFactors(n int) []int {
	var factors []int
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	slices.Reverse(factors)
	return factors
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
