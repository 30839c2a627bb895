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

// Package reduce implements range reduction of angles modulo pi/2, pi and
// 2pi.
//
// Angles up to 2^19*(pi/2) (times 2 or 4 for the pi and 2pi variants) use a
// two-constant Cody-Waite reduction. Larger finite angles go through an
// unrolled Payne-Hanek reduction against 1584 bits of 2/pi, falling back to
// an atan2(sin, cos) reduction in the rare cases two refinement rounds are
// not enough. Infinities and NaN reduce to NaN.
package reduce

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

// MaxMediumPiO2 is the largest magnitude handled by the medium tier of PiO2.
var MaxMediumPiO2 = math.Pow(2, 19) * (math.Pi / 2)

var (
	twoPow26 = math.Ldexp(1, 26)
	twoPow52 = math.Ldexp(1, 52)
)

// Remainder is an angle reduced modulo pi/2: Value is in [-pi/4, pi/4] and
// the input angle is Value + Quadrant*pi/2 modulo 2pi.
type Remainder struct {
	Value    float64
	Quadrant int
}

const (
	quadrantClearMask uint64 = 0xCFFFFFFFFFFFFFFF
	quadrantPlaceBits uint64 = 0x3000000000000000
)

// Encode packs value and quadrant into 64 bits, storing the quadrant in the
// exponent bits 60 and 61 of value.
//
// The packing is lossless when both bits are set in value, which holds for
// every |value| in [2^-255, 2) as well as infinities and NaN. Remainders
// below 2^-255, zero included, decode as +/-2^-255.
func Encode(value float64, quadrant int) uint64 {
	return math.Float64bits(value)&quadrantClearMask | uint64(quadrant&3)<<60
}

// Packed returns Encode(r.Value, r.Quadrant).
func (r Remainder) Packed() uint64 {
	return Encode(r.Value, r.Quadrant)
}

// DecodeRemainder returns the value stored by Encode.
func DecodeRemainder(bits uint64) float64 {
	return math.Float64frombits(bits&quadrantClearMask | quadrantPlaceBits)
}

// DecodeQuadrant returns the quadrant stored by Encode.
func DecodeQuadrant(bits uint64) int {
	return int(bits>>60) & 3
}

// Decode unpacks bits produced by Encode.
func Decode(bits uint64) Remainder {
	return Remainder{Value: DecodeRemainder(bits), Quadrant: DecodeQuadrant(bits)}
}

// PiO2 reduces angle modulo pi/2. Negative angles reduce as their
// opposite, with both the value and the quadrant negated.
func PiO2(angle float64) Remainder {
	if angle < 0 {
		r := PiO2(-angle)
		return Remainder{Value: -r.Value, Quadrant: -r.Quadrant & 3}
	}
	switch {
	case angle <= MaxMediumPiO2:
		n := int(float64(angle*tables.PiO2Inv) + 0.5)
		fn := float64(n)
		r := (angle - float64(fn*tables.PiO2Hi)) - float64(fn*tables.PiO2Lo)
		if r < -math.Pi/4 {
			r = (r + tables.PiO2Hi) + tables.PiO2Lo
			n--
		} else if r > math.Pi/4 {
			r = (r - tables.PiO2Hi) - tables.PiO2Lo
			n++
		}
		return Remainder{Value: r, Quadrant: n & 3}
	case angle < math.Inf(1):
		return heavyPiO2(angle)
	default:
		return Remainder{Value: math.NaN()}
	}
}

// Pi reduces angle modulo pi, into [-pi/2, pi/2].
func Pi(angle float64) float64 {
	negate := false
	if angle < 0 {
		angle = -angle
		negate = true
	}
	switch {
	case angle <= 2*MaxMediumPiO2:
		angle = mediumPi(angle)
	case angle < math.Inf(1):
		angle = heavyPi(angle)
	default:
		return math.NaN()
	}
	if negate {
		return -angle
	}
	return angle
}

// TwoPi reduces angle modulo 2pi, into [-pi, pi].
func TwoPi(angle float64) float64 {
	negate := false
	if angle < 0 {
		angle = -angle
		negate = true
	}
	switch {
	case angle <= 4*MaxMediumPiO2:
		angle = mediumTwoPi(angle)
	case angle < math.Inf(1):
		angle = heavyTwoPi(angle)
	default:
		return math.NaN()
	}
	if negate {
		return -angle
	}
	return angle
}

// mediumPi reduces a non-negative angle small enough for an int32 multiple.
func mediumPi(angle float64) float64 {
	fn := float64(int32(float64(angle*tables.PiInv) + 0.5))
	angle = (angle - float64(fn*tables.PiHi)) - float64(fn*tables.PiLo)
	if angle < -math.Pi/2 {
		angle = (angle + tables.PiHi) + tables.PiLo
	} else if angle > math.Pi/2 {
		angle = (angle - tables.PiHi) - tables.PiLo
	}
	return angle
}

func mediumTwoPi(angle float64) float64 {
	fn := float64(int32(float64(angle*tables.TwoPiInv) + 0.5))
	angle = (angle - float64(fn*tables.TwoPiHi)) - float64(fn*tables.TwoPiLo)
	if angle < -math.Pi {
		angle = (angle + tables.TwoPiHi) + tables.TwoPiLo
	} else if angle > math.Pi {
		angle = (angle - tables.TwoPiHi) - tables.TwoPiLo
	}
	return angle
}

// TwoPiFast is TwoPi without the heavy tier. Angles above 2^26*2pi are
// first reduced modulo 2^26*2pi, and angles above 2^52*2pi, whose
// neighbours are already 2pi or more apart, reduce to 0.
func TwoPiFast(angle float64) float64 {
	negate := false
	if angle < 0 {
		angle = -angle
		negate = true
	}
	switch {
	case angle <= twoPow26*(2*math.Pi):
	case angle <= twoPow52*(2*math.Pi):
		fn := float64(int32(float64(angle*(tables.TwoPiInv/twoPow26)) + 0.5))
		angle = (angle - float64(fn*(tables.TwoPiHi*twoPow26))) - float64(fn*(tables.TwoPiLo*twoPow26))
		if angle < 0 {
			angle = -angle
			negate = !negate
		}
	case angle < math.Inf(1):
		return 0
	default:
		return math.NaN()
	}
	angle = mediumTwoPi(angle)
	if negate {
		return -angle
	}
	return angle
}

// PiFast is Pi without the heavy tier; see TwoPiFast.
func PiFast(angle float64) float64 {
	negate := false
	if angle < 0 {
		angle = -angle
		negate = true
	}
	switch {
	case angle <= twoPow26*math.Pi:
	case angle <= twoPow52*math.Pi:
		fn := float64(int32(float64(angle*(tables.PiInv/twoPow26)) + 0.5))
		angle = (angle - float64(fn*(tables.PiHi*twoPow26))) - float64(fn*(tables.PiLo*twoPow26))
		if angle < 0 {
			angle = -angle
			negate = !negate
		}
	case angle < math.Inf(1):
		return 0
	default:
		return math.NaN()
	}
	angle = mediumPi(angle)
	if negate {
		return -angle
	}
	return angle
}
