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

package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-hptt/hptt"
	"github.com/ajroetker/go-hptt/hptt/workerpool"
	"github.com/ajroetker/go-hptt/internal/reference"
)

type benchConfig struct {
	shape    []int
	perm     []int
	threads  int
	dtype    string
	rowMajor bool
	iters    int
	warmup   int
	beta     float64
	usePool  bool
	verify   bool
}

type benchResult struct {
	dtype     hptt.ElementType
	shape     []int
	perm      []int
	threads   int
	blocks    int
	best      time.Duration
	median    time.Duration
	bandwidth float64 // GB/s at the best time
	maxError  float64 // only with --verify
	verified  bool
}

func (r benchResult) String() string {
	s := fmt.Sprintf("%-10s shape=%v perm=%v threads=%d blocks=%d best=%v median=%v %.2f GB/s",
		r.dtype, r.shape, r.perm, r.threads, r.blocks, r.best, r.median, r.bandwidth)
	if r.verified {
		s += fmt.Sprintf(" max|err|=%.3g", r.maxError)
	}
	return s
}

func parseInts(s string) ([]int, error) {
	fields := lo.Compact(lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	}))
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = n
	}
	return out, nil
}

func run(cfg benchConfig, logger *slog.Logger) (benchResult, error) {
	dtype, err := hptt.ParseElementType(cfg.dtype)
	if err != nil {
		return benchResult{}, err
	}
	if cfg.iters < 1 {
		return benchResult{}, errors.Errorf("iters must be positive, got %d", cfg.iters)
	}
	logger.Debug("dispatch", "level", hptt.CurrentLevel(), "width", hptt.CurrentWidth())

	switch dtype {
	case hptt.Float32:
		return runTyped[float32](cfg, dtype, logger)
	case hptt.Float64:
		return runTyped[float64](cfg, dtype, logger)
	case hptt.Complex64:
		return runTyped[complex64](cfg, dtype, logger)
	default:
		return runTyped[complex128](cfg, dtype, logger)
	}
}

func runTyped[T hptt.Element](cfg benchConfig, dtype hptt.ElementType, logger *slog.Logger) (benchResult, error) {
	opts := hptt.Options{NumThreads: cfg.threads}
	if cfg.rowMajor {
		opts.Order = hptt.RowMajor
	}
	if cfg.usePool && cfg.threads > 1 {
		pool := workerpool.New(cfg.threads)
		defer pool.Close()
		opts.Pool = pool
	}

	plan, err := hptt.NewPlan[T](cfg.perm, cfg.shape, opts)
	if err != nil {
		return benchResult{}, err
	}
	logger.Debug("plan", "rank", plan.Rank(), "output", plan.OutputShape(), "blocks", plan.NumBlocks())

	rng := rand.New(rand.NewPCG(1, 2))
	a := randomSlice[T](rng, plan.InputLen())
	initial := randomSlice[T](rng, plan.OutputLen())
	b := make([]T, len(initial))
	alpha, beta := T(1), fromReal[T](cfg.beta)

	for range cfg.warmup {
		copy(b, initial)
		if err := plan.Execute(alpha, a, beta, b); err != nil {
			return benchResult{}, err
		}
	}

	times := make([]time.Duration, cfg.iters)
	for i := range times {
		copy(b, initial)
		start := time.Now()
		if err := plan.Execute(alpha, a, beta, b); err != nil {
			return benchResult{}, err
		}
		times[i] = time.Since(start)
		logger.Debug("iteration", "i", i, "elapsed", times[i])
	}

	best := lo.Min(times)
	sorted := slices.Clone(times)
	slices.Sort(sorted)

	// Bytes moved: one read of A and one write of B, plus a read of B when
	// accumulating.
	elems := hptt.NumElements(cfg.shape)
	moved := 2 * elems * dtype.Size()
	if cfg.beta != 0 {
		moved += elems * dtype.Size()
	}

	res := benchResult{
		dtype:     dtype,
		shape:     cfg.shape,
		perm:      cfg.perm,
		threads:   cfg.threads,
		blocks:    plan.NumBlocks(),
		best:      best,
		median:    sorted[len(sorted)/2],
		bandwidth: float64(moved) / best.Seconds() / 1e9,
	}

	if cfg.verify {
		want := slices.Clone(initial)
		reference.Transpose(cfg.perm, alpha, a, cfg.shape, nil, beta, want, nil, cfg.rowMajor)
		res.maxError = lo.Max(lo.Map(want, func(w T, i int) float64 { return absDiff(w, b[i]) }))
		res.verified = true
		logger.Info("verified against reference", "maxError", res.maxError)
		if res.maxError > 1e-4 {
			return res, errors.Errorf("result differs from reference by %g", res.maxError)
		}
	}
	return res, nil
}

func randomSlice[T hptt.Element](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fromComplex[T](complex(rng.Float64()*2-1, rng.Float64()*2-1))
	}
	return out
}

func fromReal[T hptt.Element](x float64) T {
	return fromComplex[T](complex(x, 0))
}

// fromComplex converts z to T, dropping the imaginary part for real types.
func fromComplex[T hptt.Element](z complex128) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(real(z))
	case *float64:
		*p = real(z)
	case *complex64:
		*p = complex64(z)
	case *complex128:
		*p = z
	}
	return v
}

func absDiff[T hptt.Element](x, y T) float64 {
	switch d := any(x - y).(type) {
	case float32:
		return math.Abs(float64(d))
	case float64:
		return math.Abs(d)
	case complex64:
		return cmplx.Abs(complex128(d))
	default:
		return cmplx.Abs(d.(complex128))
	}
}
