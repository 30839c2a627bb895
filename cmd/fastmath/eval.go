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
	"strconv"

	"github.com/ajroetker/go-fastmath/fastmath/contrib/workerpool"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <func> <args...>",
		Short: "Evaluate a function and compare it with the math package",
		Long: "Evaluate a function and compare it with the math package.\n\n" +
			"A unary function is evaluated at every argument; a binary one takes\n" +
			"exactly two arguments.",
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return functionNames(false), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fns, err := lookup(args[:1])
			if err != nil {
				return err
			}
			f := fns[0]
			xs := make([]float64, len(args)-1)
			for i, s := range args[1:] {
				if xs[i], err = strconv.ParseFloat(s, 64); err != nil {
					return errors.Wrapf(err, "argument %d", i+1)
				}
			}

			var points [][]float64
			switch {
			case f.arity == 1:
				for _, x := range xs {
					points = append(points, []float64{x})
				}
			case len(xs) == f.arity:
				points = [][]float64{xs}
			default:
				return errors.Newf("%s takes %d arguments, got %d", f.name, f.arity, len(xs))
			}

			got := make([]float64, len(points))
			pool := workerpool.New(0)
			defer pool.Close()
			pool.ParallelFor(len(points), func(start, end int) {
				for i := start; i < end; i++ {
					got[i] = f.eval(a.engine, points[i])
				}
			})

			t := newTable(cmd.OutOrStdout(), "ARGS", "RESULT", "MATH", "ULPS")
			for i, p := range points {
				want := f.ref(p)
				label := formatFloat(p[0])
				for _, x := range p[1:] {
					label += " " + formatFloat(x)
				}
				t.append(label, formatFloat(got[i]), formatFloat(want), formatError(ulps(want, got[i])))
			}
			return t.render()
		},
	}
}
