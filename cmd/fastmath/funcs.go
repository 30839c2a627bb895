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
	"math"
	"slices"
	"strings"

	"github.com/ajroetker/go-fastmath/fastmath"
	"github.com/chewxy/math32"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var errUnknownFunction = errors.New("unknown function")

// function pairs an Engine method with its reference in the math package.
// eval32 and ref32 are nil when there is no float32 variant.
type function struct {
	name  string
	arity int
	eval  func(e *fastmath.Engine, args []float64) float64
	ref   func(args []float64) float64

	eval32 func(e *fastmath.Engine, args []float32) float32
	ref32  func(args []float32) float32
}

func unary(name string, eval func(*fastmath.Engine, float64) float64, ref func(float64) float64) function {
	return function{
		name:  name,
		arity: 1,
		eval:  func(e *fastmath.Engine, args []float64) float64 { return eval(e, args[0]) },
		ref:   func(args []float64) float64 { return ref(args[0]) },
	}
}

func binary(name string, eval func(*fastmath.Engine, float64, float64) float64, ref func(float64, float64) float64) function {
	return function{
		name:  name,
		arity: 2,
		eval:  func(e *fastmath.Engine, args []float64) float64 { return eval(e, args[0], args[1]) },
		ref:   func(args []float64) float64 { return ref(args[0], args[1]) },
	}
}

func (f function) with32(eval func(*fastmath.Engine, float32) float32, ref func(float32) float32) function {
	f.eval32 = func(e *fastmath.Engine, args []float32) float32 { return eval(e, args[0]) }
	f.ref32 = func(args []float32) float32 { return ref(args[0]) }
	return f
}

var registry = lo.SliceToMap([]function{
	unary("sin", (*fastmath.Engine).Sin, math.Sin).with32((*fastmath.Engine).Sin32, math32.Sin),
	unary("cos", (*fastmath.Engine).Cos, math.Cos).with32((*fastmath.Engine).Cos32, math32.Cos),
	unary("tan", (*fastmath.Engine).Tan, math.Tan),
	unary("asin", (*fastmath.Engine).Asin, math.Asin),
	unary("acos", (*fastmath.Engine).Acos, math.Acos),
	unary("atan", (*fastmath.Engine).Atan, math.Atan),
	binary("atan2", (*fastmath.Engine).Atan2, math.Atan2),
	unary("sinh", (*fastmath.Engine).Sinh, math.Sinh),
	unary("cosh", (*fastmath.Engine).Cosh, math.Cosh),
	unary("coshm1", (*fastmath.Engine).Coshm1, coshm1),
	unary("tanh", (*fastmath.Engine).Tanh, math.Tanh),
	unary("asinh", (*fastmath.Engine).Asinh, math.Asinh),
	unary("acosh", (*fastmath.Engine).Acosh, math.Acosh),
	unary("acosh1p", (*fastmath.Engine).Acosh1p, func(x float64) float64 { return math.Acosh(1 + x) }),
	unary("atanh", (*fastmath.Engine).Atanh, math.Atanh),
	unary("exp", (*fastmath.Engine).Exp, math.Exp).with32((*fastmath.Engine).Exp32, math32.Exp),
	unary("expm1", (*fastmath.Engine).Expm1, math.Expm1),
	unary("log", (*fastmath.Engine).Log, math.Log).with32((*fastmath.Engine).Log32, math32.Log),
	unary("log10", (*fastmath.Engine).Log10, math.Log10),
	unary("log1p", (*fastmath.Engine).Log1p, math.Log1p),
	unary("sqrt", (*fastmath.Engine).Sqrt, math.Sqrt).with32((*fastmath.Engine).Sqrt32, math32.Sqrt),
	unary("cbrt", (*fastmath.Engine).Cbrt, math.Cbrt),
	binary("hypot", (*fastmath.Engine).Hypot, math.Hypot),
	pow,
	unary("sinquick", (*fastmath.Engine).SinQuick, math.Sin),
	unary("cosquick", (*fastmath.Engine).CosQuick, math.Cos),
	unary("expquick", (*fastmath.Engine).ExpQuick, math.Exp),
	unary("logquick", (*fastmath.Engine).LogQuick, math.Log),
	unary("sqrtquick", (*fastmath.Engine).SqrtQuick, math.Sqrt),
	unary("invsqrtquick", (*fastmath.Engine).InvSqrtQuick, func(x float64) float64 { return 1 / math.Sqrt(x) }),
	binary("powquick", (*fastmath.Engine).PowQuick, math.Pow),
}, func(f function) (string, function) { return f.name, f })

var pow = func() function {
	f := binary("pow", (*fastmath.Engine).Pow, math.Pow)
	f.eval32 = func(e *fastmath.Engine, args []float32) float32 { return e.Pow32(args[0], args[1]) }
	f.ref32 = func(args []float32) float32 { return math32.Pow(args[0], args[1]) }
	return f
}()

// coshm1 is cosh(x)-1 without cancellation near 0.
func coshm1(x float64) float64 {
	s := math.Sinh(x / 2)
	return 2 * s * s
}

// functionNames returns the sorted names of the registered functions,
// restricted to those with a float32 variant if only32 is set.
func functionNames(only32 bool) []string {
	fns := lo.Values(registry)
	if only32 {
		fns = lo.Filter(fns, func(f function, _ int) bool { return f.eval32 != nil })
	}
	names := lo.Map(fns, func(f function, _ int) string { return f.name })
	slices.Sort(names)
	return names
}

// lookup resolves names, case-insensitively, in the order given and
// without duplicates.
func lookup(names []string) ([]function, error) {
	names = lo.Uniq(lo.Map(names, func(n string, _ int) string { return strings.ToLower(n) }))
	fns := make([]function, 0, len(names))
	for _, n := range names {
		f, ok := registry[n]
		if !ok {
			return nil, errors.Wrapf(errUnknownFunction, "%q (known: %s)", n, strings.Join(functionNames(false), ", "))
		}
		fns = append(fns, f)
	}
	return fns, nil
}
