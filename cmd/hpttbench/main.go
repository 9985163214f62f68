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

// Command hpttbench times tensor transpositions of a given shape and
// permutation and reports the achieved bandwidth.
//
//	hpttbench --shape 128,128,64 --perm 2,1,0 --threads 8 --dtype float32 --verify
//
// Shapes and permutations follow the hptt conventions: the output axis k is
// input axis perm[k], and --row-major switches both tensors to row-major
// layout.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg     benchConfig
		shape   string
		perm    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "hpttbench",
		Short:        "Benchmark hptt tensor transpositions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			var err error
			if cfg.shape, err = parseInts(shape); err != nil {
				return errors.Wrap(err, "--shape")
			}
			if cfg.perm, err = parseInts(perm); err != nil {
				return errors.Wrap(err, "--perm")
			}
			res, err := run(cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&shape, "shape", "1024,1024", "comma-separated input extents")
	f.StringVar(&perm, "perm", "1,0", "comma-separated permutation, output axis k is input axis perm[k]")
	f.IntVar(&cfg.threads, "threads", runtime.GOMAXPROCS(0), "number of worker threads")
	f.StringVar(&cfg.dtype, "dtype", "float32", "element type: float32, float64, complex64 or complex128")
	f.BoolVar(&cfg.rowMajor, "row-major", false, "use row-major layout")
	f.IntVar(&cfg.iters, "iters", 20, "timed iterations")
	f.IntVar(&cfg.warmup, "warmup", 2, "untimed warmup iterations")
	f.Float64Var(&cfg.beta, "beta", 0, "real scaling of the existing output")
	f.BoolVar(&cfg.usePool, "pool", true, "run blocks on a persistent worker pool")
	f.BoolVar(&cfg.verify, "verify", false, "check the result against the naive reference")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
