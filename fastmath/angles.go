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

const (
	degreesToRadians = math.Pi / 180
	radiansToDegrees = 180 / math.Pi
)

// beforeSixty is the largest float64 below 60, the cap of DMS seconds.
var beforeSixty = ieee.NextDown(60)

// DMS is an angle in degrees, minutes and seconds.
type DMS struct {
	Positive bool
	Degrees  int
	Minutes  int
	Seconds  float64
}

// ToRadians converts degrees to radians.
func (e *Engine) ToRadians(deg float64) float64 {
	return deg * degreesToRadians
}

// ToDegrees converts radians to degrees.
func (e *Engine) ToDegrees(rad float64) float64 {
	return rad * radiansToDegrees
}

// DMSToDegrees converts an angle in degrees, minutes and seconds to degrees.
func DMSToDegrees(d DMS) float64 {
	sign := -1.0
	if d.Positive {
		sign = 1
	}
	m := float64(d.Minutes) + float64((1.0/60)*d.Seconds)
	return sign * (float64(d.Degrees) + float64((1.0/60)*m))
}

// DMSToRadians converts an angle in degrees, minutes and seconds to radians.
func DMSToRadians(d DMS) float64 {
	return DMSToDegrees(d) * degreesToRadians
}

// ToDMS converts rad, first normalized into [-pi, pi], to degrees, minutes
// and seconds.
func (e *Engine) ToDMS(rad float64) DMS {
	tmp := e.red.NormalizeMinusPiPi(rad) * radiansToDegrees
	positive := !(tmp < 0)
	tmp = math.Abs(tmp)
	d := int(tmp)
	tmp = (tmp - float64(d)) * 60
	m := int(tmp)
	return DMS{
		Positive: positive,
		Degrees:  d,
		Minutes:  m,
		Seconds:  min((tmp-float64(m))*60, beforeSixty),
	}
}

// NormalizeMinusPiPi returns angle in [-pi, pi]. Values already in range
// come back unchanged.
func (e *Engine) NormalizeMinusPiPi(angle float64) float64 {
	return e.red.NormalizeMinusPiPi(angle)
}

// NormalizeZeroTwoPi returns angle in [0, 2pi].
func (e *Engine) NormalizeZeroTwoPi(angle float64) float64 {
	return e.red.NormalizeZeroTwoPi(angle)
}

// NormalizeMinusHalfPiHalfPi returns angle modulo pi, in [-pi/2, pi/2].
func (e *Engine) NormalizeMinusHalfPiHalfPi(angle float64) float64 {
	return e.red.NormalizeMinusHalfPiHalfPi(angle)
}

// IsInClockwiseDomain reports whether angle lies in the domain starting at
// start and spanning span radians. A span of 2pi or more covers every
// non-NaN angle; a negative span covers nothing.
func (e *Engine) IsInClockwiseDomain(start, span, angle float64) bool {
	return e.red.IsInClockwiseDomain(start, span, angle)
}

// Remainder returns dividend - n*divisor with n the integer nearest to
// dividend/divisor, rounding halfway cases toward zero.
func Remainder(dividend, divisor float64) float64 {
	if math.IsInf(divisor, 0) {
		if math.IsInf(dividend, 0) {
			return math.NaN()
		}
		return dividend
	}
	v := math.Mod(dividend, divisor)
	ad := math.Abs(divisor)
	if math.Abs(v+v) > ad {
		if v > 0 {
			return v - ad
		}
		return v + ad
	}
	return v
}
