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

// Package reference provides a naive nested-loop tensor transpose. It walks
// every input index, maps it through the permutation and applies the scaled
// accumulate element by element. It is slow and obviously correct, and serves
// as the oracle for tests and for hpttbench -verify.
package reference

// Number is the set of element types the reference supports.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Transpose computes b[perm(i)] = alpha*a[i] + beta*b[perm(i)] for every
// index i of a tensor of logical shape sizeA. outerA and outerB may be nil
// (unpadded). rowMajor selects the layout of both tensors. When beta is zero
// b is only written. b must hold the output, it is not grown.
func Transpose[T Number](perm []int, alpha T, a []T, sizeA, outerA []int, beta T, b []T, outerB []int, rowMajor bool) {
	rank := len(sizeA)
	sizeB := make([]int, rank)
	for k, p := range perm {
		sizeB[k] = sizeA[p]
	}
	if outerA == nil {
		outerA = sizeA
	}
	if outerB == nil {
		outerB = sizeB
	}
	strideA := strides(outerA, rowMajor)
	strideB := strides(outerB, rowMajor)

	total := 1
	for _, s := range sizeA {
		total *= s
	}

	var zero T
	idx := make([]int, rank)
	for range total {
		offA, offB := 0, 0
		for k := range rank {
			offA += idx[k] * strideA[k]
		}
		// Output axis k is input axis perm[k].
		for k, p := range perm {
			offB += idx[p] * strideB[k]
		}
		v := alpha * a[offA]
		if beta != zero {
			v += beta * b[offB]
		}
		b[offB] = v

		for k := range rank {
			idx[k]++
			if idx[k] < sizeA[k] {
				break
			}
			idx[k] = 0
		}
	}
}

// Conj applies Transpose to conj(a) for complex element types and is
// equivalent to Transpose for real ones.
func Conj[T Number](perm []int, alpha T, a []T, sizeA, outerA []int, beta T, b []T, outerB []int, rowMajor bool) {
	ca := make([]T, len(a))
	for i, v := range a {
		switch x := any(v).(type) {
		case complex64:
			ca[i] = any(complex(real(x), -imag(x))).(T)
		case complex128:
			ca[i] = any(complex(real(x), -imag(x))).(T)
		default:
			ca[i] = v
		}
	}
	Transpose(perm, alpha, ca, sizeA, outerA, beta, b, outerB, rowMajor)
}

// OutputLen returns the storage length of the output of a transpose of sizeA
// by perm: the product of outerB if non-nil, else of sizeA.
func OutputLen(sizeA, outerB []int) int {
	dims := sizeA
	if outerB != nil {
		dims = outerB
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

func strides(outer []int, rowMajor bool) []int {
	rank := len(outer)
	s := make([]int, rank)
	acc := 1
	if rowMajor {
		for k := rank - 1; k >= 0; k-- {
			s[k] = acc
			acc *= outer[k]
		}
		return s
	}
	for k := range rank {
		s[k] = acc
		acc *= outer[k]
	}
	return s
}
