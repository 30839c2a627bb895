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

package reduce

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

// PiSup is the float64 just above pi. 2*PiSup is a span that covers every
// angle in IsInClockwiseDomain, which 2*math.Pi does not.
var PiSup = math.Float64frombits(math.Float64bits(math.Pi) + 1)

// twoMathPiRemainder is 2*math.Pi reduced modulo the real 2pi.
const twoMathPiRemainder = -2.4492935982947064e-16

// Reducer selects between the accurate reductions of this package and the
// atan2 based ones. The zero value uses the accurate reductions.
type Reducer struct {
	// UseStdlib routes PiO2, Pi and TwoPi through StdlibPiO2, StdlibPi and
	// StdlibTwoPi.
	UseStdlib bool
}

// PiO2 is the package PiO2, or StdlibPiO2 when r.UseStdlib is set.
func (r Reducer) PiO2(angle float64) Remainder {
	if r.UseStdlib {
		if math.IsInf(angle, 0) || math.IsNaN(angle) {
			return Remainder{Value: math.NaN()}
		}
		return StdlibPiO2(angle)
	}
	return PiO2(angle)
}

// Pi is the package Pi, or StdlibPi when r.UseStdlib is set.
func (r Reducer) Pi(angle float64) float64 {
	if r.UseStdlib {
		return StdlibPi(angle)
	}
	return Pi(angle)
}

// TwoPi is the package TwoPi, or StdlibTwoPi when r.UseStdlib is set.
func (r Reducer) TwoPi(angle float64) float64 {
	if r.UseStdlib {
		return StdlibTwoPi(angle)
	}
	return TwoPi(angle)
}

// NormalizeMinusPiPi returns angle modulo 2pi in [-pi, pi]. Angles already
// in range come back unchanged.
func (r Reducer) NormalizeMinusPiPi(angle float64) float64 {
	if angle >= -math.Pi && angle <= math.Pi {
		return angle
	}
	return r.TwoPi(angle)
}

// NormalizeZeroTwoPi returns angle modulo 2pi in [0, 2pi].
func (r Reducer) NormalizeZeroTwoPi(angle float64) float64 {
	if angle >= 0 && angle <= 2*math.Pi {
		return angle
	}
	return shiftPositive(r.TwoPi(angle))
}

// NormalizeMinusHalfPiHalfPi returns angle modulo pi in [-pi/2, pi/2].
func (r Reducer) NormalizeMinusHalfPiHalfPi(angle float64) float64 {
	if angle >= -math.Pi/2 && angle <= math.Pi/2 {
		return angle
	}
	return r.Pi(angle)
}

// IsInClockwiseDomain reports whether angle lies in the domain starting at
// start and spanning span radians clockwise, bounds included. A span of
// 2*math.Pi is slightly short of a full turn; use 2*PiSup for that.
func (r Reducer) IsInClockwiseDomain(start, span, angle float64) bool {
	// Tiny angles would lose their value when shifted by start.
	if !(math.Abs(angle) < -twoMathPiRemainder) {
		return r.NormalizeZeroTwoPi(angle-start) <= span
	}
	if !(span <= 2*math.Pi) {
		return span == span
	}
	if span < 0 {
		return false
	}
	start = r.NormalizeMinusPiPi(start)
	end := r.NormalizeMinusPiPi(start + span)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// accurate is the Reducer used by the package level helpers.
var accurate Reducer

// NormalizeMinusPiPi returns angle modulo 2pi in [-pi, pi].
func NormalizeMinusPiPi(angle float64) float64 { return accurate.NormalizeMinusPiPi(angle) }

// NormalizeZeroTwoPi returns angle modulo 2pi in [0, 2pi].
func NormalizeZeroTwoPi(angle float64) float64 { return accurate.NormalizeZeroTwoPi(angle) }

// NormalizeMinusHalfPiHalfPi returns angle modulo pi in [-pi/2, pi/2].
func NormalizeMinusHalfPiHalfPi(angle float64) float64 {
	return accurate.NormalizeMinusHalfPiHalfPi(angle)
}

// IsInClockwiseDomain is Reducer.IsInClockwiseDomain with accurate
// reductions.
func IsInClockwiseDomain(start, span, angle float64) bool {
	return accurate.IsInClockwiseDomain(start, span, angle)
}

// NormalizeMinusPiPiFast is NormalizeMinusPiPi using TwoPiFast.
func NormalizeMinusPiPiFast(angle float64) float64 {
	if angle >= -math.Pi && angle <= math.Pi {
		return angle
	}
	return TwoPiFast(angle)
}

// NormalizeZeroTwoPiFast is NormalizeZeroTwoPi using TwoPiFast.
func NormalizeZeroTwoPiFast(angle float64) float64 {
	if angle >= 0 && angle <= 2*math.Pi {
		return angle
	}
	return shiftPositive(TwoPiFast(angle))
}

// NormalizeMinusHalfPiHalfPiFast is NormalizeMinusHalfPiHalfPi using PiFast.
func NormalizeMinusHalfPiHalfPiFast(angle float64) float64 {
	if angle >= -math.Pi/2 && angle <= math.Pi/2 {
		return angle
	}
	return PiFast(angle)
}

func shiftPositive(angle float64) float64 {
	if angle < 0 {
		return (angle + tables.TwoPiLo) + tables.TwoPiHi
	}
	return angle
}

// =============================================================================
// Accurate shifts by multiples of pi/2
// =============================================================================

// The low part is added first when the result moves away from zero, and
// last when it moves toward zero.

// Plus2Pi returns angle + 2pi.
func Plus2Pi(angle float64) float64 {
	if angle > -math.Pi {
		return (angle + tables.TwoPiLo) + tables.TwoPiHi
	}
	return (angle + tables.TwoPiHi) + tables.TwoPiLo
}

// Minus2Pi returns angle - 2pi.
func Minus2Pi(angle float64) float64 {
	if angle < math.Pi {
		return (angle - tables.TwoPiLo) - tables.TwoPiHi
	}
	return (angle - tables.TwoPiHi) - tables.TwoPiLo
}

// PlusPi returns angle + pi.
func PlusPi(angle float64) float64 {
	if angle > -math.Pi/2 {
		return (angle + tables.PiLo) + tables.PiHi
	}
	return (angle + tables.PiHi) + tables.PiLo
}

// MinusPi returns angle - pi.
func MinusPi(angle float64) float64 {
	if angle < math.Pi/2 {
		return (angle - tables.PiLo) - tables.PiHi
	}
	return (angle - tables.PiHi) - tables.PiLo
}

// PlusPiO2 returns angle + pi/2.
func PlusPiO2(angle float64) float64 {
	if angle > -math.Pi/4 {
		return (angle + tables.PiO2Lo) + tables.PiO2Hi
	}
	return (angle + tables.PiO2Hi) + tables.PiO2Lo
}

// MinusPiO2 returns angle - pi/2.
func MinusPiO2(angle float64) float64 {
	if angle < math.Pi/4 {
		return (angle - tables.PiO2Lo) - tables.PiO2Hi
	}
	return (angle - tables.PiO2Hi) - tables.PiO2Lo
}
