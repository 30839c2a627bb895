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

	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

const (
	oneDivF2 = 1 / 2.0
	oneDivF3 = 1 / 6.0
	oneDivF4 = 1 / 24.0
)

// sinTaylor expands sin around a sample whose sine and cosine are s and c.
func sinTaylor(s, c, delta float64) float64 {
	r := float64(-c*oneDivF3) + float64(delta*s*oneDivF4)
	r = float64(-s*oneDivF2) + float64(delta*r)
	r = c + float64(delta*r)
	return s + float64(delta*r)
}

// cosTaylor expands cos around a sample whose sine and cosine are s and c.
func cosTaylor(s, c, delta float64) float64 {
	r := float64(s*oneDivF3) + float64(delta*c*oneDivF4)
	r = float64(-c*oneDivF2) + float64(delta*r)
	r = -s + float64(delta*r)
	return c + float64(delta*r)
}

// sinCosIndex returns the table index nearest to a non-negative angle below
// tables.SinCosMaxValueForIntModulo, and the distance to its sample.
func sinCosIndex(angle float64) (int, float64) {
	index := int(float64(angle*tables.SinCosIndexer) + 0.5)
	fi := float64(index)
	delta := (angle - float64(fi*tables.SinCosDeltaHi)) - float64(fi*tables.SinCosDeltaLo)
	// The last sample repeats the first one.
	return index & (tables.SinCosTabsSize - 2), delta
}

// Sin returns the sine of angle, in radians.
func (e *Engine) Sin(angle float64) float64 {
	if e.cfg.UseStdlib {
		return math.Sin(angle)
	}
	negate := false
	if math.Signbit(angle) {
		angle = -angle
		negate = true
	}
	var result float64
	if angle > tables.SinCosMaxValueForIntModulo {
		r := e.red.PiO2(angle)
		switch r.Quadrant {
		case 0:
			result = e.Sin(r.Value)
		case 1:
			result = e.Cos(r.Value)
		case 2:
			result = -e.Sin(r.Value)
		default:
			result = -e.Cos(r.Value)
		}
	} else {
		index, delta := sinCosIndex(angle)
		tab := tables.SinCosTab()
		result = sinTaylor(tab.Sin[index], tab.Cos[index], delta)
	}
	if negate {
		return -result
	}
	return result
}

// Cos returns the cosine of angle, in radians.
func (e *Engine) Cos(angle float64) float64 {
	if e.cfg.UseStdlib {
		return math.Cos(angle)
	}
	angle = math.Abs(angle)
	if angle > tables.SinCosMaxValueForIntModulo {
		r := e.red.PiO2(angle)
		switch r.Quadrant {
		case 0:
			return e.Cos(r.Value)
		case 1:
			return -e.Sin(r.Value)
		case 2:
			return -e.Cos(r.Value)
		default:
			return e.Sin(r.Value)
		}
	}
	index, delta := sinCosIndex(angle)
	tab := tables.SinCosTab()
	return cosTaylor(tab.Sin[index], tab.Cos[index], delta)
}

// SinAndCos returns Sin(angle) and Cos(angle), sharing the reduction and
// table lookup.
func (e *Engine) SinAndCos(angle float64) (sin, cos float64) {
	if e.cfg.UseStdlib {
		return math.Sincos(angle)
	}
	negate := false
	if math.Signbit(angle) {
		angle = -angle
		negate = true
	}
	if angle > tables.SinCosMaxValueForIntModulo {
		r := e.red.PiO2(angle)
		s, c := e.SinAndCos(r.Value)
		switch r.Quadrant {
		case 0:
			sin, cos = s, c
		case 1:
			sin, cos = c, -s
		case 2:
			sin, cos = -s, -c
		default:
			sin, cos = -c, s
		}
	} else {
		index, delta := sinCosIndex(angle)
		tab := tables.SinCosTab()
		s, c := tab.Sin[index], tab.Cos[index]
		sin, cos = sinTaylor(s, c, delta), cosTaylor(s, c, delta)
	}
	if negate {
		sin = -sin
	}
	return sin, cos
}

// SinQuick returns sin(angle) to about 1.6e-3 for |angle| below 6588395,
// read straight from the cosine table. Larger angles give garbage.
func (e *Engine) SinQuick(angle float64) float64 {
	if e.cfg.UseStdlib {
		return math.Sin(angle)
	}
	index := int(float64(math.Abs(angle-math.Pi/2)*tables.SinCosIndexer) + 0.5)
	return tables.SinCosTab().Cos[index&(tables.SinCosTabsSize-2)]
}

// CosQuick returns cos(angle) to about 1.6e-3 for |angle| below 6588397.
func (e *Engine) CosQuick(angle float64) float64 {
	if e.cfg.UseStdlib {
		return math.Cos(angle)
	}
	index := int(float64(math.Abs(angle)*tables.SinCosIndexer) + 0.5)
	return tables.SinCosTab().Cos[index&(tables.SinCosTabsSize-2)]
}

// Tan returns the tangent of angle, in radians. Close to pi/2 modulo pi the
// relative error grows, but stays of the order of the relative distance
// between tan of adjacent float64 values.
func (e *Engine) Tan(angle float64) float64 {
	if e.cfg.UseStdlib {
		return math.Tan(angle)
	}
	negate := false
	if math.Signbit(angle) {
		angle = -angle
		negate = true
	}
	if angle > tables.TanMaxValueForIntModulo {
		angle = e.red.Pi(angle)
		if angle < 0 {
			angle = -angle
			negate = !negate
		}
	}
	index := int(float64(angle*tables.TanIndexer) + 0.5)
	fi := float64(index)
	delta := (angle - float64(fi*tables.TanDeltaHi)) - float64(fi*tables.TanDeltaLo)

	// Index modulo pi, then folded onto [0, pi/2].
	quarter := tables.TanVirtualTabsSize - 1
	index &= 2*quarter - 1
	if index > quarter {
		index = 2*quarter - index
		delta = -delta
		negate = !negate
	}

	tab := tables.TanTab()
	var result float64
	if index < tables.TanTabsSize {
		result = taylor4(tab, index, delta)
	} else {
		// tan(x) = 1/tan(pi/2 - x)
		result = 1 / taylor4(tab, quarter-index, -delta)
	}
	if negate {
		return -result
	}
	return result
}
