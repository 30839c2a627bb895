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
	// Hypot scales by hypotFactor beyond hypotMaxMag; both are powers of
	// two so scaling is exact.
	hypotMaxMag = ieee.TwoPow(511)
	hypotFactor = ieee.TwoPow(750)

	// Brings a subnormal into the normal range of the cbrt tables.
	twoPow78 = ieee.TwoPow(78)
)

// rootLookup returns the tabulated root of a positive normal x and the
// slope of one Newton step at that root.
func rootLookup(t *tables.RootTables, x float64) (root, slope float64) {
	exp, index := splitMantissa(x, tables.RootLoBits)
	hi := exp - ieee.MinExponent
	return t.HiRoot[hi] * t.LoRoot[index], t.HiSlope[hi] * t.LoSlope[index]
}

// Sqrt returns the square root of x. Sqrt(-0) is -0. The table based
// algorithm runs only when RedefinedSqrt is set.
func (e *Engine) Sqrt(x float64) float64 {
	if e.cfg.UseStdlib || !e.cfg.RedefinedSqrt {
		return math.Sqrt(x)
	}
	if !(x > 0) {
		if x < 0 {
			return math.NaN()
		}
		return x
	}
	if x == math.Inf(1) {
		return x
	}
	h := 2.0
	if x < ieee.MinNormal {
		x *= twoPow52
		h = 2 * twoPowN26
	}
	// Tables hold half roots, so the residuals are taken against x/4.
	r, slope := rootLookup(tables.SqrtTab(), x)
	x *= 0.25
	r += float64((x - float64(r*r)) * slope)
	r += float64((x - float64(r*r)) * slope)
	return h * (r + float64((x-float64(r*r))*slope))
}

// SqrtQuick returns the square root of x with a relative error below
// 3.53e-2 for x in [MinNormal, MaxFloat64].
func (e *Engine) SqrtQuick(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Sqrt(x)
	}
	return math.Float64frombits((math.Float64bits(x) + 4606859074900000000) >> 1)
}

// InvSqrtQuick returns 1/sqrt(x) with a relative error below 3.44e-2 for
// x in [MinNormal, MaxFloat64].
func (e *Engine) InvSqrtQuick(x float64) float64 {
	if e.cfg.UseStdlib {
		return 1 / math.Sqrt(x)
	}
	return math.Float64frombits(uint64(0x5FE6EB50C7B537A9 - int64(math.Float64bits(x))>>1))
}

// Cbrt returns the cube root of x.
func (e *Engine) Cbrt(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Cbrt(x)
	}
	var h float64
	if x < 0 {
		if x == math.Inf(-1) {
			return x
		}
		x = -x
		h = -2
		if x < ieee.MinNormal {
			x *= twoPow78
			h = -2 * twoPowN26
		}
	} else {
		if !(x < math.Inf(1)) {
			return x
		}
		h = 2
		if x < ieee.MinNormal {
			if x == 0 {
				return x
			}
			x *= twoPow78
			h = 2 * twoPowN26
		}
	}
	r, slope := rootLookup(tables.CbrtTab(), x)
	x *= 0.125
	r += float64((x - float64(r*r*r)) * slope)
	r += float64((x - float64(r*r*r)) * slope)
	return h * (r + float64((x-float64(r*r*r))*slope))
}

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
// An infinite argument gives +Inf even if the other one is NaN.
func (e *Engine) Hypot(x, y float64) float64 {
	if e.cfg.UseStdlib {
		return math.Hypot(x, y)
	}
	x, y = math.Abs(x), math.Abs(y)
	if y < x {
		x, y = y, x
	} else if !(y >= x) {
		return hypotNaN(x, y)
	}
	return e.hypotOrdered(x, y)
}

// hypotOrdered is Hypot for 0 <= small <= large.
func (e *Engine) hypotOrdered(small, large float64) float64 {
	if large-small == large {
		return large
	}
	factor := 1.0
	if large > hypotMaxMag {
		small *= 1 / hypotFactor
		large *= 1 / hypotFactor
		factor = hypotFactor
	} else if small < 1/hypotMaxMag {
		small *= hypotFactor
		large *= hypotFactor
		factor = 1 / hypotFactor
	}
	return factor * e.Sqrt(float64(small*small)+float64(large*large))
}

// Hypot3 returns sqrt(x*x + y*y + z*z) without undue overflow or underflow.
func (e *Engine) Hypot3(x, y, z float64) float64 {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	if x != x || y != y || z != z {
		return hypotNaN(x, y, z)
	}
	// x >= y >= z
	if z > y {
		y, z = z, y
	}
	if z > x {
		x, y, z = y, z, x
	} else if y > x {
		x, y = y, x
	}
	if x-y == x {
		return x
	}
	if y-z == y {
		return e.hypotOrdered(y, x)
	}
	factor := 1.0
	if x > hypotMaxMag {
		x *= 1 / hypotFactor
		y *= 1 / hypotFactor
		z *= 1 / hypotFactor
		factor = hypotFactor
	} else if z < 1/hypotMaxMag {
		x *= hypotFactor
		y *= hypotFactor
		z *= hypotFactor
		factor = 1 / hypotFactor
	}
	// Smaller magnitudes first.
	return factor * e.Sqrt(float64(x*x)+(float64(y*y)+float64(z*z)))
}

// hypotNaN is the result for arguments of which at least one is NaN.
func hypotNaN(values ...float64) float64 {
	for _, v := range values {
		if v == math.Inf(1) {
			return v
		}
	}
	return math.NaN()
}
