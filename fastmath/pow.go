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

package fastmath

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/ieee"
)

// Pow returns x**p, computed as exp(p*log(x)) with the IEEE-754 rules for
// zero, negative and infinite bases. Pow(x, 0) is 1 even for NaN x.
func (e *Engine) Pow(x, p float64) float64 {
	if e.cfg.UseStdlib {
		return math.Pow(x, p)
	}
	if p == 0 {
		return 1
	}
	if p == 1 {
		return x
	}
	if !(x <= 0) {
		return e.Exp(p * e.Log(x))
	}
	parity, ok := integerParity(p)
	if !ok {
		return math.NaN()
	}
	if x == 0 {
		if p < 0 {
			if parity < 0 {
				return 1 / x
			}
			return math.Inf(1)
		}
		if parity < 0 {
			return x
		}
		return 0
	}
	if x == math.Inf(-1) {
		if parity < 0 {
			if p < 0 {
				return math.Copysign(0, -1)
			}
			return x
		}
		if p < 0 {
			return 0
		}
		return math.Inf(1)
	}
	if parity == 0 {
		return math.NaN()
	}
	return float64(parity) * e.Exp(p*e.Log(-x))
}

// integerParity returns 1 for an even integer p, -1 for an odd one and 0
// otherwise. ok is false when p is NaN.
func integerParity(p float64) (parity int, ok bool) {
	ap := math.Abs(p)
	switch {
	case p != p:
		return 0, false
	case ap >= twoPow53:
		// Every float64 this large is an even integer.
		return 1, true
	case !ieee.IsMathematicalInteger(p):
		return 0, true
	case int64(p)&1 == 0:
		return 1, true
	default:
		return -1, true
	}
}

var twoPow53 = ieee.TwoPow(53)

// PowQuick returns x**p for positive normal x, with exp(p*LogQuick(x)).
// The error grows with |p*log(x)|.
func (e *Engine) PowQuick(x, p float64) float64 {
	if e.cfg.UseStdlib {
		return math.Pow(x, p)
	}
	return e.Exp(p * e.LogQuick(x))
}

// PowFast returns x**n, by squaring. It is exact for small n and x with
// few significant bits, and otherwise accumulates one rounding error per
// multiplication.
func (e *Engine) PowFast(x float64, n int) float64 {
	if e.cfg.UseStdlib {
		return math.Pow(x, float64(n))
	}
	return PowFast(x, n)
}

// PowFast is the configuration-free form of Engine.PowFast.
func PowFast(x float64, n int) float64 {
	if n < 3 {
		switch {
		case n == math.MinInt:
			return 1 / (PowFast(x, math.MaxInt) * x)
		case n < 0:
			return 1 / PowFast(x, -n)
		case n == 2:
			return x * x
		case n == 0:
			return 1
		default:
			return x
		}
	}
	odd := 1.0
	for n > 5 {
		if n&1 != 0 {
			odd *= x
		}
		x *= x
		n >>= 1
	}
	switch n {
	case 3:
		return odd * x * x * x
	case 4:
		x2 := x * x
		return odd * x2 * x2
	default:
		x2 := x * x
		return odd * x2 * x2 * x
	}
}
