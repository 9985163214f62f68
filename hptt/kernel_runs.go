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

// runFunc processes one strided run of n elements:
//
//	dst[dOff+i*dInc] = alpha*src[sOff+i*sInc] + beta*dst[dOff+i*dInc]
//
// Implementations with beta == 0 in their contract never read dst.
type runFunc[T Element] func(dst []T, dOff, dInc int, src []T, sOff, sInc, n int, alpha, beta T)

// runKernel selects the run kernel for one Execute call. The choice depends
// only on the plan and the scalars, never on the block, so every element of
// the output is computed by the same instruction sequence whatever the
// number of workers.
func (p *Plan[T]) runKernel(alpha, beta T) runFunc[T] {
	var zero T
	switch {
	case p.conj:
		return conjRun(conjugateFunc[T]())
	case p.blasRuns:
		return blasRun[T]()
	case beta != zero:
		return axpbyRun[T]
	case alpha == T(1):
		return copyRun[T]
	default:
		return scaleRun[T]
	}
}

// copyRun: dst = src. Bit exact.
func copyRun[T Element](dst []T, dOff, dInc int, src []T, sOff, sInc, n int, _, _ T) {
	if dInc == 1 && sInc == 1 {
		copy(dst[dOff:dOff+n], src[sOff:sOff+n])
		return
	}
	for i := range n {
		dst[dOff+i*dInc] = src[sOff+i*sInc]
	}
}

// scaleRun: dst = alpha * src.
func scaleRun[T Element](dst []T, dOff, dInc int, src []T, sOff, sInc, n int, alpha, _ T) {
	if dInc == 1 && sInc == 1 {
		d := dst[dOff : dOff+n]
		s := src[sOff : sOff+n]
		for i := range d {
			d[i] = alpha * s[i]
		}
		return
	}
	if dInc == 1 {
		d := dst[dOff : dOff+n]
		for i := range d {
			d[i] = alpha * src[sOff+i*sInc]
		}
		return
	}
	for i := range n {
		dst[dOff+i*dInc] = alpha * src[sOff+i*sInc]
	}
}

// axpbyRun: dst = alpha * src + beta * dst.
func axpbyRun[T Element](dst []T, dOff, dInc int, src []T, sOff, sInc, n int, alpha, beta T) {
	if dInc == 1 && sInc == 1 {
		d := dst[dOff : dOff+n]
		s := src[sOff : sOff+n]
		for i := range d {
			d[i] = alpha*s[i] + beta*d[i]
		}
		return
	}
	if dInc == 1 {
		d := dst[dOff : dOff+n]
		for i := range d {
			d[i] = alpha*src[sOff+i*sInc] + beta*d[i]
		}
		return
	}
	for i := range n {
		j := dOff + i*dInc
		dst[j] = alpha*src[sOff+i*sInc] + beta*dst[j]
	}
}

// conjRun returns a run kernel computing alpha * conj(src) + beta * dst.
// It calls conj per element and is slower than the plain kernels.
func conjRun[T Element](conj func(T) T) runFunc[T] {
	return func(dst []T, dOff, dInc int, src []T, sOff, sInc, n int, alpha, beta T) {
		var zero T
		if beta == zero {
			for i := range n {
				dst[dOff+i*dInc] = alpha * conj(src[sOff+i*sInc])
			}
			return
		}
		for i := range n {
			j := dOff + i*dInc
			dst[j] = alpha*conj(src[sOff+i*sInc]) + beta*dst[j]
		}
	}
}

// conjugateFunc returns complex conjugation for T, or identity for the real
// types.
func conjugateFunc[T Element]() func(T) T {
	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(func(x complex64) complex64 {
			return complex(real(x), -imag(x))
		}).(func(T) T)
	case complex128:
		return any(func(x complex128) complex128 {
			return complex(real(x), -imag(x))
		}).(func(T) T)
	default:
		return func(x T) T { return x }
	}
}
