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

import "math"

var (
	twoPow512  = TwoPow(512)
	twoPowN512 = TwoPow(-512)
)

// Ulp returns the distance between |x| and the next larger representable
// value.
//
//   - Ulp(±Inf) = +Inf
//   - Ulp(NaN) = NaN
//   - Ulp(±0) and Ulp(subnormal) = the smallest subnormal, 2^-1074
//   - Ulp(MaxFloat64) = 2^971
func Ulp(x float64) float64 {
	exp := Exponent(x)
	if exp >= MinNormalExponent+mantissaBits64 {
		if exp == MaxExponent+1 {
			return math.Abs(x)
		}
		return math.Float64frombits(uint64(exp+(MaxExponent-mantissaBits64)) << mantissaBits64)
	}
	if exp == MinNormalExponent-1 {
		return math.SmallestNonzeroFloat64
	}
	return math.Float64frombits(uint64(1) << uint(exp-MinNormalExponent))
}

// NextUp returns the smallest value greater than x.
//
// Both zeros step to 2^-1074, +Inf stays +Inf, NaN stays NaN, and
// -2^-1074 steps to -0.
func NextUp(x float64) float64 {
	if x < math.Inf(1) {
		if x == 0 {
			return math.SmallestNonzeroFloat64
		}
		bits := int64(math.Float64bits(x))
		if bits >= 0 {
			bits++
		} else {
			bits--
		}
		return math.Float64frombits(uint64(bits))
	}
	return x
}

// NextDown returns the largest value smaller than x.
//
// Both zeros step to -2^-1074, -Inf stays -Inf, NaN stays NaN.
func NextDown(x float64) float64 {
	if x > math.Inf(-1) {
		if x == 0 {
			return -math.SmallestNonzeroFloat64
		}
		bits := int64(math.Float64bits(x))
		if bits > 0 {
			bits--
		} else {
			bits++
		}
		return math.Float64frombits(uint64(bits))
	}
	return x
}

// NextAfter returns the value adjacent to start in the direction of
// direction. If both compare equal, direction is returned, so
// NextAfter(-0, +0) is +0. NaN in either argument gives NaN.
func NextAfter(start, direction float64) float64 {
	switch {
	case direction < start:
		return NextDown(start)
	case direction > start:
		return NextUp(start)
	case start == direction:
		return direction
	default:
		return start + direction
	}
}

// Scalb returns x * 2^n, computed with exact power-of-two multiplications.
//
// Scale factors outside the range where any finite x could give a finite
// non-zero result are clamped, so large |n| needs at most a few multiplies.
// Results underflow to ±0 and overflow to ±Inf; zeros, infinities and NaN
// come back unchanged.
func Scalb(x float64, n int) float64 {
	if n > -MaxExponent && n <= MaxExponent {
		return x * TwoPowNormal(n)
	}
	const maxScale = 2*MaxExponent + mantissaBits64 + 1
	var (
		increment int32
		delta     float64
	)
	if n < 0 {
		n = max(n, -maxScale)
		increment = -512
		delta = twoPowN512
	} else {
		n = min(n, maxScale)
		increment = 512
		delta = twoPow512
	}
	sf := int32(n)
	// t is 511 for negative sf, 0 otherwise; adjust is then in [-511, 511]
	// and shares the sign of sf.
	t := int32(uint32(sf>>8) >> 23)
	adjust := ((sf + t) & 511) - t
	x *= TwoPowNormal(int(adjust))
	sf -= adjust
	for sf != 0 {
		x *= delta
		sf -= increment
	}
	return x
}
