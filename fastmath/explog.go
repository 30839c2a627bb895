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
	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

var (
	invLn10   = 1 / math.Ln10
	twoPow52  = ieee.TwoPow(52)
	twoPowN26 = ieee.TwoPow(-26)
)

// Exp returns e**x. Results below the smallest subnormal are 0 and above
// MaxFloat64 are +Inf.
func (e *Engine) Exp(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Exp(x)
	}
	if x > tables.ExpOverflowLimit {
		return math.Inf(1)
	}
	if !(x >= tables.ExpUnderflowLimit) {
		if x != x {
			return x
		}
		return 0
	}
	// x = whole + zIndex/1024 + eps, with |zIndex| < 1024 sharing the
	// sign of x and eps in [0, 1/1024) toward zero.
	indexes := int(float64(x * float64(tables.ExpLoIndexing)))
	whole := indexes / tables.ExpLoIndexing
	zIndex := indexes - whole*tables.ExpLoIndexing
	y := x - float64(whole)
	z := float64(zIndex) * (1.0 / float64(tables.ExpLoIndexing))
	eps := y - z

	tab := tables.ExpTab()
	hi := tab.Hi[whole-tables.ExpHiMin]
	expEps := horner(eps, 1, 1, 1.0/2, 1.0/6, 1.0/24)
	return hi * (tab.LoPos[zIndex+tables.ExpLoMidIndex] * expEps)
}

// ExpQuick returns e**x with a relative error below 3.03e-2 for |x|
// below 700, and no accuracy beyond. It writes a linear approximation of
// the exponent straight into the high bits of the result.
func (e *Engine) ExpQuick(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Exp(x)
	}
	if x != x {
		return x
	}
	hi := float64(1512775.3952*x) + 1.0726481222e9
	hi = max(min(hi, math.MaxInt32), math.MinInt32)
	return math.Float64frombits(uint64(int64(int32(hi)) << 32))
}

// Expm1 returns e**x - 1, accurate near zero.
func (e *Engine) Expm1(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Expm1(x)
	}
	if x == 0 {
		return x
	}
	if math.Abs(x) < 1 {
		tab := tables.ExpTab()
		i := int(float64(x * float64(tables.ExpLoIndexing)))
		delta := x - float64(float64(i)*(1.0/float64(tables.ExpLoIndexing)))
		k := i + tables.ExpLoMidIndex
		// exp(i/1024) * ((1 - exp(-i/1024)) + expm1(delta))
		series := float64(delta * horner(delta, 1, 1.0/2, 1.0/6, 1.0/24, 1.0/120))
		return tab.LoPos[k] * (tab.LoNeg[k] + series)
	}
	return e.Exp(x) - 1
}

// logSeries returns 2*atanh(z) = log((1+z)/(1-z)) for small z.
func logSeries(z float64) float64 {
	z2 := z * z
	return z * horner(z2, 2, 2.0/3, 2.0/5, 2.0/7, 2.0/9, 2.0/11)
}

// splitMantissa splits a positive normal x into its unbiased exponent and
// the value of its leading bits mantissa bits.
func splitMantissa(x float64, bits int) (exp int, index int) {
	hi := int32(math.Float64bits(x) >> 32)
	exp = int(hi>>20) - ieee.MaxExponent
	index = int(uint32(hi<<12) >> uint(32-bits))
	return exp, index
}

// Log returns the natural logarithm of x. The table based algorithm runs
// only when RedefinedLog is set.
func (e *Engine) Log(x float64) float64 {
	if e.cfg.UseStdlib || !e.cfg.RedefinedLog {
		return math.Log(x)
	}
	return e.log(x)
}

func (e *Engine) log(x float64) float64 {
	if x > 0 {
		if x == math.Inf(1) {
			return x
		}
		var h float64
		if x > 0.95 {
			if x < 1.14 {
				return logSeries((x - 1) / (x + 1))
			}
		} else if x < ieee.MinNormal {
			x *= twoPow52
			h = -52 * math.Ln2
		}
		exp, index := splitMantissa(x, tables.LogBits)
		tab := tables.LogTab()
		z := float64(float64(x*tables.TwoPowTab().At(-exp))*tab.XInv[index]) - 1
		z *= 1 - float64(z*(0.5-float64(z*(1.0/3))))
		return h + float64(float64(exp)*math.Ln2) + (tab.Log[index] + z)
	}
	if x == 0 {
		return math.Inf(-1)
	}
	return math.NaN()
}

// LogQuick returns the natural logarithm of a positive normal x with a
// relative error of about 1.9e-3. Other inputs give garbage.
func (e *Engine) LogQuick(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Log(x)
	}
	if x > 0.87 && x < 1.16 {
		return 2 * (x - 1) / (x + 1)
	}
	exp, index := splitMantissa(x, tables.LogBits)
	return float64(float64(exp)*math.Ln2) + tables.LogTab().Log[index]
}

// Log10 returns the decimal logarithm of x.
func (e *Engine) Log10(x float64) float64 {
	if e.cfg.UseStdlib || !e.cfg.RedefinedLog {
		return math.Log10(x)
	}
	return e.log(x) * invLn10
}

// Log1p returns log(1+x), accurate near zero.
func (e *Engine) Log1p(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Log1p(x)
	}
	if x > -1 {
		if x == math.Inf(1) {
			return x
		}
		xp1 := 1 + x
		if xp1 == 1 {
			return x
		}
		if math.Abs(x) < 0.15 {
			return logSeries(x / (x + 2))
		}
		exp, index := splitMantissa(xp1, tables.LogBits)
		tab := tables.LogTab()
		z := float64(float64(xp1*tables.TwoPowTab().At(-exp))*tab.XInv[index]) - 1
		z *= 1 - float64(z*(0.5-float64(z*(1.0/3))))
		// x - (xp1-1) is the rounding error of 1+x.
		return float64(float64(exp)*math.Ln2) + tab.Log[index] + (z + (x-(xp1-1))/xp1)
	}
	if x == -1 {
		return math.Inf(-1)
	}
	return math.NaN()
}
