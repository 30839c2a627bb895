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

// fdlibm asin tail, for |x| in (sin(73deg), 1).
var (
	asinPiO2Hi = math.Float64frombits(0x3FF921FB54442D18)
	asinPiO2Lo = math.Float64frombits(0x3C91A62633145C07)

	asinPS = [...]float64{
		math.Float64frombits(0x3fc5555555555555),
		math.Float64frombits(0xbfd4d61203eb6f7d),
		math.Float64frombits(0x3fc9c1550e884455),
		math.Float64frombits(0xbfa48228b5688f3b),
		math.Float64frombits(0x3f49efe07501b288),
		math.Float64frombits(0x3f023de10dfdf709),
	}
	// asinQS[0] is the implicit leading 1.
	asinQS = [...]float64{
		1,
		math.Float64frombits(0xc0033a271c8a2d4b),
		math.Float64frombits(0x40002ae59c598ac8),
		math.Float64frombits(0xbfe6066c1b8d0159),
		math.Float64frombits(0x3fb3b8c5b12e9282),
	}
)

// fdlibm atan tail, for |x| in (tan(74deg), 2^66).
var (
	// Even and odd coefficients of the atan series in x^4.
	atanEven = [...]float64{
		math.Float64frombits(0x3fd555555555550d),
		math.Float64frombits(0x3fc24924920083ff),
		math.Float64frombits(0x3fb745cdc54c206e),
		math.Float64frombits(0x3fb10d66a0d03d51),
		math.Float64frombits(0x3fa97b4b24760deb),
		math.Float64frombits(0x3f90ad3ae322da11),
	}
	atanOdd = [...]float64{
		math.Float64frombits(0xbfc999999998ebc4),
		math.Float64frombits(0xbfbc71c6fe231671),
		math.Float64frombits(0xbfb3b0f2af749a6d),
		math.Float64frombits(0xbfadde2d52defd9a),
		math.Float64frombits(0xbfa2b4442c6a6c2f),
	}
	twoPow66 = ieee.TwoPow(66)
)

// Asin returns the arcsine of x, in [-pi/2, pi/2]. Asin(±1) is exactly
// ±pi/2; |x| > 1 gives NaN.
func (e *Engine) Asin(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Asin(x)
	}
	negate := false
	if math.Signbit(x) {
		x = -x
		negate = true
	}
	var result float64
	switch {
	case x <= tables.AsinMaxValueForTabs:
		index := int(float64(x*tables.AsinIndexer) + 0.5)
		delta := x - float64(float64(index)*tables.AsinDelta)
		result = taylor4(tables.AsinTab(), index, delta)
	case e.cfg.PowTabsForAsin && x <= tables.AsinMaxValueForPowTabs:
		tab := tables.AsinPowTab()
		p := PowFast(x*tables.AsinPowTabsOneDivMaxValue, tables.AsinPowTabsPower)
		index := int(float64(p*float64(tables.AsinPowTabsSizeMinusOne)) + 0.5)
		delta := x - tab.Param[index]
		result = taylor4(&tab.TaylorTables, index, delta)
	case x < 1:
		t := (1 - x) * 0.5
		p := t * horner(t, asinPS[:]...)
		q := 1 + float64(t*horner(t, asinQS[1:]...))
		s := e.Sqrt(t)
		z := s + float64(s*(p/q))
		result = asinPiO2Hi - ((z + z) - asinPiO2Lo)
	case x == 1:
		result = math.Pi / 2
	default:
		return math.NaN()
	}
	if negate {
		return -result
	}
	return result
}

// AsinInRange is Asin with x clamped to [-1, 1].
func (e *Engine) AsinInRange(x float64) float64 {
	switch {
	case x <= -1:
		return -math.Pi / 2
	case x >= 1:
		return math.Pi / 2
	default:
		return e.Asin(x)
	}
}

// Acos returns the arccosine of x, in [0, pi].
func (e *Engine) Acos(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Acos(x)
	}
	return math.Pi/2 - e.Asin(x)
}

// AcosInRange is Acos with x clamped to [-1, 1].
func (e *Engine) AcosInRange(x float64) float64 {
	switch {
	case x <= -1:
		return math.Pi
	case x >= 1:
		return 0
	default:
		return e.Acos(x)
	}
}

// Atan returns the arctangent of x, in [-pi/2, pi/2]. Atan(±1) is exactly
// ±pi/4.
func (e *Engine) Atan(x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Atan(x)
	}
	negate := false
	if math.Signbit(x) {
		x = -x
		negate = true
	}
	var result float64
	switch {
	case x == 1:
		result = math.Pi / 4
	case x <= tables.AtanMaxValueForTabs:
		index := int(float64(x*tables.AtanIndexer) + 0.5)
		delta := x - float64(float64(index)*tables.AtanDelta)
		result = taylor4(tables.AtanTab(), index, delta)
	case x < twoPow66:
		v := -1 / x
		v2 := v * v
		v4 := v2 * v2
		s1 := float64(v2 * horner(v4, atanEven[:]...))
		s2 := float64(v4 * horner(v4, atanOdd[:]...))
		result = asinPiO2Hi - ((float64(v*(s1+s2)) - asinPiO2Lo) - v)
	case x != x:
		return x
	default:
		result = math.Pi / 2
	}
	if negate {
		return -result
	}
	return result
}

// Atan2 returns the angle of the point (x, y), in [-pi, pi], following the
// usual conventions for zeros and infinities.
func (e *Engine) Atan2(y, x float64) float64 {
	if e.cfg.UseStdlib {
		return math.Atan2(y, x)
	}
	switch {
	case x > 0:
		if y == 0 {
			return y
		}
		if x == math.Inf(1) {
			return atan2PosInf(y)
		}
		return e.Atan(y / x)
	case x < 0:
		if y == 0 {
			return float64(ieee.SignFromBit(y)) * math.Pi
		}
		if x == math.Inf(-1) {
			return atan2NegInf(y)
		}
		switch {
		case y > 0:
			return math.Pi/2 - e.Atan(x/y)
		case y < 0:
			return -math.Pi/2 - e.Atan(x/y)
		default:
			return math.NaN()
		}
	case x == 0:
		if y == 0 {
			if ieee.SignFromBit(x) < 0 {
				return float64(ieee.SignFromBit(y)) * math.Pi
			}
			return y
		}
		switch {
		case y > 0:
			return math.Pi / 2
		case y < 0:
			return -math.Pi / 2
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}

// atan2PosInf is Atan2(y, +Inf).
func atan2PosInf(y float64) float64 {
	switch {
	case y == math.Inf(1):
		return math.Pi / 4
	case y == math.Inf(-1):
		return -math.Pi / 4
	case y > 0:
		return 0
	case y < 0:
		return math.Copysign(0, -1)
	default:
		return math.NaN()
	}
}

// atan2NegInf is Atan2(y, -Inf).
func atan2NegInf(y float64) float64 {
	switch {
	case y == math.Inf(1):
		return 3 * math.Pi / 4
	case y == math.Inf(-1):
		return -3 * math.Pi / 4
	case y > 0:
		return math.Pi
	case y < 0:
		return -math.Pi
	default:
		return math.NaN()
	}
}
