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

var (
	logMaxFloat64 = math.Log(math.MaxFloat64)
	logTwoPow27   = math.Log(1 << 27)
	twoPowN27     = ieee.TwoPow(-27)
	twoPowN28     = ieee.TwoPow(-28)
	twoPowN55     = ieee.TwoPow(-55)
)

const (
	// tanh(x) rounds to 1 from here on.
	tanhOneThreshold = 19.061547465398498

	asinhLog1pThreshold = 0.04
	// Beyond this, x^2 ± 1 rounds to x^2.
	sqrtElisionThreshold = 1 << 24
)

// Sinh returns the hyperbolic sine of x.
func (e *Engine) Sinh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Sinh(x)
	}
	h := 0.5
	if x < 0 {
		x = -x
		h = -0.5
	}
	switch {
	case x < 22:
		if x < twoPowN28 {
			if h < 0 {
				return -x
			}
			return x
		}
		return h * sinhFromExpm1(e.Expm1(x))
	case x < logMaxFloat64:
		return h * e.Exp(x)
	default:
		t := e.Exp(x * 0.5)
		return (h * t) * t
	}
}

// sinhFromExpm1 returns 2*sinh(x) given t = expm1(x).
func sinhFromExpm1(t float64) float64 {
	return t + t/(t+1)
}

// Cosh returns the hyperbolic cosine of x.
func (e *Engine) Cosh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Cosh(x)
	}
	x = math.Abs(x)
	switch {
	case x < logTwoPow27:
		if x < twoPowN27 {
			return 1
		}
		t := e.Exp(x)
		return 0.5 * (t + 1/t)
	case x < logMaxFloat64:
		return 0.5 * e.Exp(x)
	default:
		t := e.Exp(x * 0.5)
		return (0.5 * t) * t
	}
}

// Coshm1 returns cosh(x) - 1, accurate near zero. Coshm1(±0) is ±0.
func (e *Engine) Coshm1(x float64) float64 {
	if x < 0 {
		x = -x
	}
	switch {
	case x < logTwoPow27:
		if x < twoPowN27 {
			if x == 0 {
				return x
			}
			return 0.5 * x * x
		}
		return 0.5 * (e.Expm1(x) + e.Expm1(-x))
	case x < logMaxFloat64:
		return float64(0.5*e.Exp(x)) - 1
	default:
		t := e.Exp(x * 0.5)
		return (0.5 * t) * t
	}
}

// SinhAndCosh returns Sinh(x) and Cosh(x), sharing the exponentials.
func (e *Engine) SinhAndCosh(x float64) (sinh, cosh float64) {
	if e.cfg.UseStdlib {
		return math.Sinh(x), math.Cosh(x)
	}
	h := 0.5
	if x < 0 {
		x = -x
		h = -0.5
	}
	switch {
	case x < logTwoPow27:
		if x < twoPowN28 {
			sinh = x
			if h < 0 {
				sinh = -x
			}
		} else {
			sinh = h * sinhFromExpm1(e.Expm1(x))
		}
		if x < twoPowN27 {
			cosh = 1
		} else {
			t := e.Exp(x)
			cosh = 0.5 * (t + 1/t)
		}
	case x < 22:
		t := e.Expm1(x)
		sinh = h * sinhFromExpm1(t)
		cosh = 0.5 * (t + 1)
	default:
		if x < logMaxFloat64 {
			sinh = h * e.Exp(x)
		} else {
			t := e.Exp(x * 0.5)
			sinh = (h * t) * t
		}
		cosh = math.Abs(sinh)
	}
	return sinh, cosh
}

// Tanh returns the hyperbolic tangent of x.
func (e *Engine) Tanh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Tanh(x)
	}
	negate := false
	if x < 0 {
		x = -x
		negate = true
	}
	var z float64
	switch {
	case x < tanhOneThreshold:
		if x < twoPowN55 {
			if negate {
				return -x * (1 - x)
			}
			return x * (1 + x)
		}
		if x >= 1 {
			z = 1 - 2/(e.Expm1(x+x)+2)
		} else {
			t := e.Expm1(-(x + x))
			z = -t / (t + 2)
		}
	case x != x:
		return x
	default:
		z = 1
	}
	if negate {
		return -z
	}
	return z
}

// Asinh returns the inverse hyperbolic sine of x.
func (e *Engine) Asinh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Asinh(x)
	}
	negate := false
	if x < 0 {
		x = -x
		negate = true
	}
	var result float64
	switch {
	case x < asinhLog1pThreshold:
		// x + sqrt(1+x^2) - 1, from the binomial series of (1+x^2)^0.5.
		x2 := x * x
		r := 1 + float64((0.5-4)/5*x2)
		r = 1 + float64((0.5-3)/4*x2*r)
		r = 1 + float64((0.5-2)/3*x2*r)
		r = 1 + float64((0.5-1)/2*x2*r)
		r = 1 + float64(0.5*x*r)
		result = e.Log1p(x * r)
	case x < sqrtElisionThreshold:
		result = e.Log(x + e.Sqrt(float64(x*x)+1))
	default:
		// log(2x) would overflow near MaxFloat64.
		result = math.Ln2 + e.Log(x)
	}
	if negate {
		return -result
	}
	return result
}

// Acosh returns the inverse hyperbolic cosine of x, NaN below 1.
func (e *Engine) Acosh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Acosh(x)
	}
	if !(x > 1) {
		if x < 1 {
			return math.NaN()
		}
		return x - 1
	}
	if x < sqrtElisionThreshold {
		return e.Log(x + e.Sqrt(float64(x*x)-1))
	}
	return math.Ln2 + e.Log(x)
}

// Acosh1p returns acosh(1+x), accurate near zero. Acosh1p(-0) is -0.
func (e *Engine) Acosh1p(x float64) float64 {
	if !(x > 0) {
		if x < 0 {
			return math.NaN()
		}
		return x
	}
	if x < sqrtElisionThreshold-1 {
		return e.Log1p(x + e.Sqrt(x*(2+x)))
	}
	return math.Ln2 + e.Log(1+x)
}

// Atanh returns the inverse hyperbolic tangent of x: ±Inf at ±1, NaN
// beyond.
func (e *Engine) Atanh(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Atanh(x)
	}
	negate := false
	if x < 0 {
		x = -x
		negate = true
	}
	var result float64
	if !(x < 1) {
		if x > 1 {
			return math.NaN()
		}
		// +Inf, or NaN for NaN x.
		result = math.Inf(1) + x
	} else {
		result = 0.5 * e.Log1p((x+x)/(1-x))
	}
	if negate {
		return -result
	}
	return result
}
