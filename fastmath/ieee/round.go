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

package ieee

import (
	"math"

	"github.com/chewxy/math32"
)

var (
	twoPow26  = TwoPow(26)
	twoPowN26 = TwoPow(-26)
	twoPow52  = TwoPow(52)
	twoPow23f = float32(TwoPow(23))
)

// Floor returns the greatest integer value <= x, using int32 truncation for
// moderate magnitudes. NaN, ±Inf, ±0 and |x| >= 2^52 come back unchanged.
func Floor(x float64) float64 {
	ax := math.Abs(x)
	if ax <= math.MaxInt32 {
		switch {
		case x > 0:
			return float64(int32(x))
		case x < 0:
			t := float64(int32(x))
			if x != t {
				return t - 1
			}
			return t
		default:
			return x
		}
	}
	if ax < twoPow52 {
		high := float64(int32(x*twoPowN26)) * twoPow26
		t := high + float64(int32(x-high))
		if x < 0 && x != t {
			return t - 1
		}
		return t
	}
	return x
}

// Ceil returns the least integer value >= x.
func Ceil(x float64) float64 {
	return -Floor(-x)
}

// Floor32 is Floor for float32, working on the bit pattern directly.
func Floor32(x float32) float32 {
	exp := Exponent32(x)
	switch {
	case exp < 0:
		if x < 0 {
			return -1
		}
		// Keeps the sign of zeros.
		return 0 * x
	case exp < mantissaBits32:
		bits := math.Float32bits(x)
		// Arithmetic shift of the sign+exponent mask keeps the integer bits.
		intBits := bits & uint32(int32(-0x800000)>>uint(exp))
		if x < 0 && intBits != bits {
			return math.Float32frombits(intBits) - 1
		}
		return math.Float32frombits(intBits)
	default:
		return x
	}
}

// Ceil32 is Ceil for float32.
func Ceil32(x float32) float32 {
	return -Floor32(-x)
}

// Round returns x rounded to the closest int64, ties toward +Inf.
// NaN gives 0 and out-of-range values saturate.
func Round(x float64) int64 {
	bits := int64(math.Float64bits(x))
	biasedExp := int((bits >> mantissaBits64) & 0x7FF)
	shift := (mantissaBits64 - 1 + MaxExponent) - biasedExp
	if shift&-64 == 0 {
		sign := ((bits >> 63) << 1) + 1
		mantissa := (int64(0x0010000000000000) | (bits & int64(mantissaMask64))) * sign
		return ((mantissa >> uint(shift)) + 1) >> 1
	}
	return saturateInt64(x)
}

// Round32 is Round for float32, returning an int32.
func Round32(x float32) int32 {
	bits := int32(math.Float32bits(x))
	biasedExp := int((bits >> mantissaBits32) & 0xFF)
	shift := (mantissaBits32 - 1 + MaxExponent32) - biasedExp
	if shift&-32 == 0 {
		sign := ((bits >> 31) << 1) + 1
		mantissa := (int32(0x00800000) | (bits & int32(mantissaMask32))) * sign
		return ((mantissa >> uint(shift)) + 1) >> 1
	}
	return saturateInt32(float64(x))
}

// RoundEven returns x rounded to the closest int64, ties to even.
func RoundEven(x float64) int64 {
	sign := SignFromBit(x)
	ax := math.Abs(x)
	if ax < twoPow52 {
		ax = float64(ax+twoPow52) - twoPow52
	}
	if ax <= math.MaxInt32 {
		return sign * int64(int32(ax))
	}
	return saturateInt64(float64(sign) * ax)
}

// Rint returns the integer value closest to x, ties to even, keeping the
// sign of x for results of zero.
func Rint(x float64) float64 {
	sign := float64(SignFromBit(x))
	ax := math.Abs(x)
	if ax < twoPow52 {
		ax = float64(twoPow52+ax) - twoPow52
	}
	return sign * ax
}

// Rint32 is Rint for float32.
func Rint32(x float32) float32 {
	sign := float32(SignFromBit32(x))
	ax := math32.Abs(x)
	if ax < twoPow23f {
		ax = float32(twoPow23f+ax) - twoPow23f
	}
	return sign * ax
}

// FloorToInt returns Floor(x) as an int32, saturating at the int32 range.
func FloorToInt(x float64) int32 {
	v := saturateInt32(x)
	if x < 0 && x != float64(v) && v != math.MinInt32 {
		return v - 1
	}
	return v
}

// CeilToInt returns Ceil(x) as an int32, saturating at the int32 range.
func CeilToInt(x float64) int32 {
	v := saturateInt32(x)
	if x > 0 && x != float64(v) && v != math.MaxInt32 {
		return v + 1
	}
	return v
}

// RoundToInt returns Round(x) saturated to the int32 range.
func RoundToInt(x float64) int32 {
	r := Round(x)
	if r != int64(int32(r)) {
		if r < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return int32(r)
}

// RoundEvenToInt returns RoundEven(x) saturated to the int32 range.
func RoundEvenToInt(x float64) int32 {
	sign := float64(SignFromBit(x))
	ax := math.Abs(x)
	ax = float64(ax+twoPow52) - twoPow52
	return saturateInt32(sign * ax)
}

// saturateInt64 truncates x toward zero, mapping NaN to 0 and out-of-range
// values to the nearest int64 extreme.
func saturateInt64(x float64) int64 {
	switch {
	case x != x:
		return 0
	case x >= -float64(math.MinInt64):
		return math.MaxInt64
	case x <= float64(math.MinInt64):
		return math.MinInt64
	default:
		return int64(x)
	}
}

// saturateInt32 is saturateInt64 for the int32 range.
func saturateInt32(x float64) int32 {
	switch {
	case x != x:
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(x)
	}
}
