// Copyright 2025 go-highway Authors
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
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ajroetker/go-fastmath/fastmath/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// compareChunk is the number of samples one pool task evaluates.
const compareChunk = 1 << 14

type compareOptions struct {
	samples int
	min     float64
	max     float64
	float32 bool
	random  bool
	seed    uint64
}

func newCompareCmd(a *app) *cobra.Command {
	opts := compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare [funcs...]",
		Short: "Measure the error of functions against the math package",
		Long: "Measure the error of functions against the math package, or\n" +
			"against math32 with --float32, over samples of [--min, --max].\n" +
			"Without arguments every function is compared.",
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return functionNames(false), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.samples <= 0 {
				return errors.Newf("--samples must be positive, got %d", opts.samples)
			}
			if !(opts.min <= opts.max) {
				return errors.Newf("empty range [%g, %g]", opts.min, opts.max)
			}
			if len(args) == 0 {
				args = functionNames(opts.float32)
			}
			fns, err := lookup(args)
			if err != nil {
				return err
			}
			if opts.float32 {
				for _, f := range fns {
					if f.eval32 == nil {
						return errors.Newf("%s has no float32 variant", f.name)
					}
				}
			}

			start := time.Now()
			stats, err := compare(cmd.Context(), a, fns, opts)
			if err != nil {
				return err
			}
			slog.Info("compare done", "functions", len(fns), "samples", opts.samples, "duration", time.Since(start))

			t := newTable(cmd.OutOrStdout(), "FUNC", "SAMPLES", "MAX ABS", "MAX REL", "MAX ULPS", "WORST ARGS")
			for i, f := range fns {
				s := stats[i]
				worst := make([]string, len(s.worst))
				for j, x := range s.worst {
					worst[j] = formatFloat(x)
				}
				t.append(f.name, strconv.Itoa(s.samples), formatError(s.maxAbs), formatError(s.maxRel),
					formatError(s.maxUlp), strings.Join(worst, " "))
			}
			return t.render()
		},
	}
	opts.register(cmd.Flags())
	return cmd
}

func (o *compareOptions) register(flags *pflag.FlagSet) {
	flags.IntVar(&o.samples, "samples", 100000, "samples per function")
	flags.Float64Var(&o.min, "min", -10, "lower bound of the arguments")
	flags.Float64Var(&o.max, "max", 10, "upper bound of the arguments")
	flags.BoolVar(&o.float32, "float32", false, "compare the float32 variants against math32")
	flags.BoolVar(&o.random, "random", false, "draw samples at random instead of on a grid")
	flags.Uint64Var(&o.seed, "seed", 1, "seed of --random")
}

// errStats accumulates the error of a function over samples.
type errStats struct {
	samples int
	maxAbs  float64
	maxRel  float64
	maxUlp  float64
	worst   []float64
}

func (s *errStats) add(args []float64, want, got, ulp float64) {
	s.samples++
	if ulp == 0 {
		return
	}
	if abs := math.Abs(got - want); abs > s.maxAbs || math.IsNaN(abs) {
		s.maxAbs = abs
	}
	if want != 0 {
		s.maxRel = max(s.maxRel, math.Abs(got-want)/math.Abs(want))
	}
	if ulp > s.maxUlp {
		s.maxUlp = ulp
		s.worst = append(s.worst[:0], args...)
	}
}

func (s *errStats) merge(o *errStats) {
	s.samples += o.samples
	s.maxRel = max(s.maxRel, o.maxRel)
	if o.maxAbs > s.maxAbs || math.IsNaN(o.maxAbs) {
		s.maxAbs = o.maxAbs
	}
	if o.maxUlp > s.maxUlp {
		s.maxUlp = o.maxUlp
		s.worst = o.worst
	}
}

// sampler yields the arguments of sample j.
type sampler struct {
	opts compareOptions
	rng  *rand.Rand
}

// phi spreads the second argument of binary functions over the range.
const phi = 0.6180339887498949

func (s *sampler) point(j int, dst []float64) {
	width := s.opts.max - s.opts.min
	for k := range dst {
		var u float64
		switch {
		case s.rng != nil:
			u = s.rng.Float64()
		case k == 0 && s.opts.samples > 1:
			u = float64(j) / float64(s.opts.samples-1)
		case k > 0:
			_, u = math.Modf(float64(j) * phi * float64(k))
		}
		dst[k] = s.opts.min + width*u
	}
}

func compare(ctx context.Context, a *app, fns []function, opts compareOptions) ([]errStats, error) {
	chunks := (opts.samples + compareChunk - 1) / compareChunk
	stats := make([]errStats, len(fns))
	var mu sync.Mutex

	pool := workerpool.New(0)
	defer pool.Close()
	err := pool.Go(ctx, len(fns)*chunks, func(ctx context.Context, task int) error {
		f, c := fns[task/chunks], task%chunks
		s := sampler{opts: opts}
		if opts.random {
			s.rng = rand.New(rand.NewPCG(opts.seed, uint64(task)))
		}
		args := make([]float64, f.arity)
		args32 := make([]float32, f.arity)
		var local errStats
		for j := c * compareChunk; j < min((c+1)*compareChunk, opts.samples); j++ {
			s.point(j, args)
			if !opts.float32 {
				want, got := f.ref(args), f.eval(a.engine, args)
				local.add(args, want, got, ulps(want, got))
				continue
			}
			for k, x := range args {
				args32[k] = float32(x)
				args[k] = float64(args32[k])
			}
			want, got := f.ref32(args32), f.eval32(a.engine, args32)
			local.add(args, float64(want), float64(got), ulps32(want, got))
		}
		mu.Lock()
		stats[task/chunks].merge(&local)
		mu.Unlock()
		return ctx.Err()
	})
	if err != nil {
		return nil, errors.Wrap(err, "compare")
	}
	return stats, nil
}
