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

// Package ieee provides IEEE-754 bit-level primitives for float64 and float32.
//
// All raw bit reinterpretation in go-fastmath lives here, so that the table
// and evaluator packages stay arithmetic-only. Functions never allocate and
// never signal: special inputs produce NaN or Inf following IEEE-754.
package ieee

import "math"

// Float64 layout.
const (
	// MinExponent is the exponent of the smallest positive subnormal (2^-1074).
	MinExponent = -1074

	// MinNormalExponent is the exponent of the smallest positive normal value.
	MinNormalExponent = -1022

	// MaxExponent is the exponent of the largest finite value.
	MaxExponent = 1023

	signMask64     uint64 = 0x8000000000000000
	exponentMask64 uint64 = 0x7FF0000000000000
	mantissaMask64 uint64 = 0x000FFFFFFFFFFFFF
	mantissaBits64        = 52
)

// Float32 layout.
const (
	MinExponent32       = -149
	MinNormalExponent32 = -126
	MaxExponent32       = 127

	signMask32     uint32 = 0x80000000
	mantissaMask32 uint32 = 0x007FFFFF
	mantissaBits32        = 23
)

// MinNormal is the smallest positive normal float64, 2^-1022.
var MinNormal = math.Float64frombits(0x0010000000000000)

// MinNormal32 is the smallest positive normal float32, 2^-126.
var MinNormal32 = math.Float32frombits(0x00800000)

// Exponent returns the unbiased binary exponent of x, read from its raw bits.
//
// Infinities and NaN give MaxExponent+1; zeros and subnormals give
// MinNormalExponent-1.
func Exponent(x float64) int {
	return int((math.Float64bits(x)>>mantissaBits64)&0x7FF) - MaxExponent
}

// Exponent32 is Exponent for float32: 128 for Inf/NaN, -127 for zero and
// subnormals.
func Exponent32(x float32) int {
	return int((math.Float32bits(x)>>mantissaBits32)&0xFF) - MaxExponent32
}

// SignFromBit returns -1 if the sign bit of x is set and 1 otherwise.
//
// The sign of a NaN is whatever bit it happens to carry; IEEE-754 does not
// specify it.
func SignFromBit(x float64) int64 {
	return (int64(math.Float64bits(x)) >> 62) | 1
}

// SignFromBit32 is SignFromBit for float32.
func SignFromBit32(x float32) int32 {
	return (int32(math.Float32bits(x)) >> 30) | 1
}

// TwoPow returns 2^power built directly from its bit pattern.
//
// Powers below -1074 underflow to 0, powers above 1023 overflow to +Inf, and
// powers in [-1074, -1023] produce subnormals.
func TwoPow(power int) float64 {
	if power <= -MaxExponent {
		if power >= MinExponent {
			return math.Float64frombits(0x0008000000000000 >> uint(-(power + MaxExponent)))
		}
		return 0
	}
	if power > MaxExponent {
		return math.Inf(1)
	}
	return math.Float64frombits(uint64(power+MaxExponent) << mantissaBits64)
}

// TwoPowNormal returns 2^power for power in [MinNormalExponent, MaxExponent].
// Out of that range the result is garbage.
func TwoPowNormal(power int) float64 {
	return math.Float64frombits(uint64(power+MaxExponent) << mantissaBits64)
}

// TwoPowNormalOrSubnormal returns 2^power for power in [MinExponent, MaxExponent].
func TwoPowNormalOrSubnormal(power int) float64 {
	if power <= -MaxExponent {
		return math.Float64frombits(0x0008000000000000 >> uint(-(power + MaxExponent)))
	}
	return math.Float64frombits(uint64(power+MaxExponent) << mantissaBits64)
}

// IsNaNOrInf reports whether x is NaN or an infinity.
func IsNaNOrInf(x float64) bool {
	return math.Float64bits(x)&exponentMask64 == exponentMask64
}

// IsNaNOrInf32 reports whether x is NaN or an infinity.
func IsNaNOrInf32(x float32) bool {
	return math.Float32bits(x)&0x7F800000 == 0x7F800000
}

// IsMathematicalInteger reports whether x is a finite integer value.
func IsMathematicalInteger(x float64) bool {
	exp := Exponent(x)
	if exp >= mantissaBits64 {
		return exp != MaxExponent+1
	}
	if exp < 0 {
		return x == 0
	}
	return math.Float64bits(x)&(mantissaMask64>>uint(exp)) == 0
}

// IsEquidistant reports whether x is exactly halfway between two integers.
func IsEquidistant(x float64) bool {
	exp := Exponent(x)
	if exp >= mantissaBits64 || exp < -1 {
		return false
	}
	if exp == -1 {
		return math.Abs(x) == 0.5
	}
	frac := math.Float64bits(x) & (mantissaMask64 >> uint(exp))
	return frac == uint64(1)<<uint(mantissaBits64-1-exp)
}

// Signum returns -1, +1, or x itself for zeros and NaN.
func Signum(x float64) float64 {
	if x == 0 || x != x {
		return x
	}
	return float64(SignFromBit(x))
}

// CopySign returns magnitude with the sign of sign. A NaN sign counts as
// positive, which differs from math.Copysign.
func CopySign(magnitude, sign float64) float64 {
	if sign != sign {
		sign = 1
	}
	return math.Float64frombits((math.Float64bits(sign) & signMask64) |
		(math.Float64bits(magnitude) &^ signMask64))
}
