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

import "golang.org/x/sync/errgroup"

// forEachBlock runs fn on every block of the plan and returns when all of
// them are done. Blocks are disjoint in the output, so workers share nothing
// mutable and need no locking.
//
// With a persistent pool, worker i receives a fixed contiguous range of
// blocks. Otherwise one goroutine per block is started, at most numThreads
// at a time.
func (p *Plan[T]) forEachBlock(fn func(bl *block)) {
	if len(p.blocks) == 1 {
		fn(&p.blocks[0])
		return
	}

	if p.pool != nil {
		p.pool.ParallelFor(len(p.blocks), p.numThreads, func(start, end int) {
			for i := start; i < end; i++ {
				fn(&p.blocks[i])
			}
		})
		return
	}

	var g errgroup.Group
	g.SetLimit(p.numThreads)
	for i := range p.blocks {
		g.Go(func() error {
			fn(&p.blocks[i])
			return nil
		})
	}
	// Kernels do not fail; Wait is the join.
	_ = g.Wait()
}
