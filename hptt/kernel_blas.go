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
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

// Long contiguous runs (modeContiguous with a fused fastest axis of at least
// blasMinRun elements) go through the level-1 BLAS routines of gonum, which
// carry assembly kernels for the unit-stride cases:
//
//	beta == 0: y = x; y *= alpha        (Copy, Scal)
//	otherwise: y *= beta; y += alpha*x  (Scal, Axpy)

// blasRun returns the BLAS run kernel for T.
func blasRun[T Element]() runFunc[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(runFunc[float32](blasRunFloat32)).(runFunc[T])
	case float64:
		return any(runFunc[float64](blasRunFloat64)).(runFunc[T])
	case complex64:
		return any(runFunc[complex64](blasRunComplex64)).(runFunc[T])
	default:
		return any(runFunc[complex128](blasRunComplex128)).(runFunc[T])
	}
}

func blasRunFloat32(dst []float32, dOff, dInc int, src []float32, sOff, sInc, n int, alpha, beta float32) {
	x := blas32.Vector{N: n, Inc: sInc, Data: src[sOff:]}
	y := blas32.Vector{N: n, Inc: dInc, Data: dst[dOff:]}
	if beta == 0 {
		blas32.Copy(x, y)
		if alpha != 1 {
			blas32.Scal(alpha, y)
		}
		return
	}
	if beta != 1 {
		blas32.Scal(beta, y)
	}
	blas32.Axpy(alpha, x, y)
}

func blasRunFloat64(dst []float64, dOff, dInc int, src []float64, sOff, sInc, n int, alpha, beta float64) {
	x := blas64.Vector{N: n, Inc: sInc, Data: src[sOff:]}
	y := blas64.Vector{N: n, Inc: dInc, Data: dst[dOff:]}
	if beta == 0 {
		blas64.Copy(x, y)
		if alpha != 1 {
			blas64.Scal(alpha, y)
		}
		return
	}
	if beta != 1 {
		blas64.Scal(beta, y)
	}
	blas64.Axpy(alpha, x, y)
}

func blasRunComplex64(dst []complex64, dOff, dInc int, src []complex64, sOff, sInc, n int, alpha, beta complex64) {
	x := cblas64.Vector{N: n, Inc: sInc, Data: src[sOff:]}
	y := cblas64.Vector{N: n, Inc: dInc, Data: dst[dOff:]}
	if beta == 0 {
		cblas64.Copy(x, y)
		if alpha != 1 {
			cblas64.Scal(alpha, y)
		}
		return
	}
	if beta != 1 {
		cblas64.Scal(beta, y)
	}
	cblas64.Axpy(alpha, x, y)
}

func blasRunComplex128(dst []complex128, dOff, dInc int, src []complex128, sOff, sInc, n int, alpha, beta complex128) {
	x := cblas128.Vector{N: n, Inc: sInc, Data: src[sOff:]}
	y := cblas128.Vector{N: n, Inc: dInc, Data: dst[dOff:]}
	if beta == 0 {
		cblas128.Copy(x, y)
		if alpha != 1 {
			cblas128.Scal(alpha, y)
		}
		return
	}
	if beta != 1 {
		cblas128.Scal(beta, y)
	}
	cblas128.Axpy(alpha, x, y)
}
