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
	"slices"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-hptt/hptt/workerpool"
)

// blasMinRun is the shortest contiguous run handed to the BLAS kernels.
// Below it, call overhead dominates and the Go loops are faster.
const blasMinRun = 256

// loopDim is one axis of the fused loop nest, in output axis order.
type loopDim struct {
	n       int // extent
	strideA int // input stride of this output axis
	strideB int // output stride
}

// kernelMode selects the loop structure used for every block of a plan.
type kernelMode int

const (
	// modeScalar: every extent is 1, a single element is transposed.
	modeScalar kernelMode = iota

	// modeContiguous: the output's fastest axis is also the input's fastest
	// axis, so each innermost run is a (strided) vector in both tensors.
	modeContiguous

	// modeTiled: the fastest axes differ; the kernel transposes square
	// tiles spanned by the two of them.
	modeTiled
)

func (m kernelMode) String() string {
	switch m {
	case modeScalar:
		return "scalar"
	case modeContiguous:
		return "contiguous"
	default:
		return "tiled"
	}
}

// Plan is a validated, blocked transpose of fixed shapes, permutation and
// layout. A Plan is immutable after NewPlan and may be executed any number of
// times, concurrently, on different buffers.
type Plan[T Element] struct {
	perm       []int
	sizeA      []int
	sizeB      []int
	lenA, lenB int
	order      Order
	conj       bool

	dims     []loopDim
	mode     kernelMode
	tiledDim int // index in dims of the input's fastest axis, modeTiled only
	tile     int
	blasRuns bool
	blocks   []block

	numThreads int
	pool       *workerpool.Pool
}

// NewPlan validates the transpose of a tensor of shape sizeA by perm under
// opts and prepares its loop nest and blocks. All shape, permutation and
// outer size errors are reported here.
func NewPlan[T Element](perm []int, sizeA []int, opts Options) (*Plan[T], error) {
	if err := ValidateShape(sizeA, opts.OuterSizeA); err != nil {
		return nil, err
	}
	if err := ValidatePermutation(perm, len(sizeA)); err != nil {
		return nil, err
	}
	if err := validateOuterSizeB(perm, sizeA, opts.OuterSizeB); err != nil {
		return nil, err
	}

	sizeB := Permute(perm, sizeA)
	p := &Plan[T]{
		perm:       slices.Clone(perm),
		sizeA:      slices.Clone(sizeA),
		sizeB:      sizeB,
		lenA:       storageLen(sizeA, opts.OuterSizeA),
		lenB:       storageLen(sizeB, opts.OuterSizeB),
		order:      opts.Order,
		conj:       opts.ConjugateA && elementTypeFor[T]().IsComplex(),
		numThreads: opts.numThreads(),
		pool:       opts.Pool,
	}

	p.dims = fuseDims(buildDims(perm, sizeA, opts.OuterSizeA, opts.OuterSizeB, opts.Order))
	p.tile = tileEdge(elementTypeFor[T]().Size())
	p.mode, p.tiledDim = selectMode(p.dims)
	p.blasRuns = p.mode == modeContiguous && blasRunsEnabled() && p.dims[0].n >= blasMinRun && !p.conj
	p.blocks = partition(p.dims, p.tiledAxes(), p.tile, p.numThreads)
	return p, nil
}

// buildDims returns the loop nest of the transpose in output axis order,
// expressed in column-major form: row-major tensors are handled as
// column-major tensors with all axes reversed.
func buildDims(perm, sizeA, outerA, outerB []int, order Order) []loopDim {
	rank := len(perm)
	if order == RowMajor {
		rperm := make([]int, rank)
		for k := range rank {
			rperm[k] = rank - 1 - perm[rank-1-k]
		}
		perm = rperm
		sizeA = reversed(sizeA)
		outerA = reversed(outerA)
		outerB = reversed(outerB)
	}
	if outerA == nil {
		outerA = sizeA
	}
	sizeB := Permute(perm, sizeA)
	if outerB == nil {
		outerB = sizeB
	}

	strideA := stridesOf(outerA, ColumnMajor)
	strideB := stridesOf(outerB, ColumnMajor)
	dims := make([]loopDim, rank)
	for k := range rank {
		dims[k] = loopDim{n: sizeB[k], strideA: strideA[perm[k]], strideB: strideB[k]}
	}
	return dims
}

// fuseDims drops extent-1 axes and merges neighbouring output axes whose
// index maps are linear in both tensors, so that e.g. a permutation of
// matrices stored back to back becomes a single 2-D transpose.
func fuseDims(dims []loopDim) []loopDim {
	fused := make([]loopDim, 0, len(dims))
	for _, d := range dims {
		if d.n == 1 {
			continue
		}
		if len(fused) > 0 {
			last := &fused[len(fused)-1]
			if d.strideA == last.strideA*last.n && d.strideB == last.strideB*last.n {
				last.n *= d.n
				continue
			}
		}
		fused = append(fused, d)
	}
	return fused
}

// selectMode picks the kernel for a fused loop nest. dims[0] always has the
// smallest output stride; the input's fastest axis is the one with the
// smallest input stride.
func selectMode(dims []loopDim) (kernelMode, int) {
	if len(dims) == 0 {
		return modeScalar, 0
	}
	fastest := 0
	for k, d := range dims {
		if d.strideA < dims[fastest].strideA {
			fastest = k
		}
	}
	if fastest == 0 {
		return modeContiguous, 0
	}
	return modeTiled, fastest
}

// tiledAxes reports, per fused axis, whether block boundaries on it must be
// aligned to the tile edge.
func (p *Plan[T]) tiledAxes() []bool {
	tiled := make([]bool, len(p.dims))
	if len(tiled) > 0 {
		tiled[0] = true
	}
	if p.mode == modeTiled {
		tiled[p.tiledDim] = true
	}
	return tiled
}

// Rank returns the number of axes of the tensors.
func (p *Plan[T]) Rank() int {
	return len(p.perm)
}

// InputShape returns the logical shape of A.
func (p *Plan[T]) InputShape() []int {
	return slices.Clone(p.sizeA)
}

// OutputShape returns the logical shape of B, Permute(perm, sizeA).
func (p *Plan[T]) OutputShape() []int {
	return slices.Clone(p.sizeB)
}

// InputLen returns the minimum length of the input slice.
func (p *Plan[T]) InputLen() int {
	return p.lenA
}

// OutputLen returns the length of the output storage: the product of the
// output outer shape if given, else of the output shape.
func (p *Plan[T]) OutputLen() int {
	return p.lenB
}

// NumBlocks returns the number of disjoint output blocks the work is split
// into. It never exceeds the plan's thread count.
func (p *Plan[T]) NumBlocks() int {
	return len(p.blocks)
}

// ElementType returns the element type the plan was built for.
func (p *Plan[T]) ElementType() ElementType {
	return elementTypeFor[T]()
}

// Execute computes b = alpha * transpose(a) + beta * b on the plan's shapes.
// b must be at least OutputLen() long and a at least InputLen(). When beta is
// zero, b is only written. Elements of b outside the logical output
// (padding) are never touched.
//
// Execute returns after every worker has finished.
func (p *Plan[T]) Execute(alpha T, a []T, beta T, b []T) error {
	if len(a) < p.lenA {
		return errors.Wrapf(ErrInvalidInputBuffer, "input has %d elements, shape needs %d", len(a), p.lenA)
	}
	if len(b) < p.lenB {
		return errors.Wrapf(ErrInvalidOutputBuffer, "output has %d elements, shape needs %d", len(b), p.lenB)
	}

	run := p.runKernel(alpha, beta)
	if p.mode == modeScalar {
		run(b, 0, 1, a, 0, 1, 1, alpha, beta)
		return nil
	}
	p.forEachBlock(func(bl *block) {
		p.executeBlock(bl, run, alpha, a, beta, b)
	})
	return nil
}

func reversed(s []int) []int {
	if s == nil {
		return nil
	}
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}
