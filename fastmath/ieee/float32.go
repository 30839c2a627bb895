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

// smallestNonzero32 is 2^-149.
var smallestNonzero32 = math.Float32frombits(1)

// Ulp32 is Ulp for float32.
func Ulp32(x float32) float32 {
	exp := Exponent32(x)
	if exp >= MinNormalExponent32+mantissaBits32 {
		if exp == MaxExponent32+1 {
			return math32.Abs(x)
		}
		return math.Float32frombits(uint32(exp+(MaxExponent32-mantissaBits32)) << mantissaBits32)
	}
	if exp == MinNormalExponent32-1 {
		return smallestNonzero32
	}
	return math.Float32frombits(uint32(1) << uint(exp-MinNormalExponent32))
}

// NextUp32 is NextUp for float32.
func NextUp32(x float32) float32 {
	if x < math32.Inf(1) {
		if x == 0 {
			return smallestNonzero32
		}
		bits := int32(math.Float32bits(x))
		if bits >= 0 {
			bits++
		} else {
			bits--
		}
		return math.Float32frombits(uint32(bits))
	}
	return x
}

// NextDown32 is NextDown for float32.
func NextDown32(x float32) float32 {
	if x > math32.Inf(-1) {
		if x == 0 {
			return -smallestNonzero32
		}
		bits := int32(math.Float32bits(x))
		if bits > 0 {
			bits--
		} else {
			bits++
		}
		return math.Float32frombits(uint32(bits))
	}
	return x
}

// NextAfter32 is NextAfter for a float32 start. The direction is a float64
// so that a direction between two float32 values is still honored.
func NextAfter32(start float32, direction float64) float32 {
	switch {
	case direction < float64(start):
		return NextDown32(start)
	case direction > float64(start):
		return NextUp32(start)
	case float64(start) == direction:
		return float32(direction)
	default:
		return start + float32(direction)
	}
}

// Scalb32 returns x * 2^n. The product is computed in float64 and rounded
// once, so a single multiplication is always enough.
func Scalb32(x float32, n int) float32 {
	const maxScale = 2*MaxExponent32 + mantissaBits32 + 1
	n = max(min(n, maxScale), -maxScale)
	return float32(float64(x) * TwoPowNormal(n))
}

// CopySign32 is CopySign for float32.
func CopySign32(magnitude, sign float32) float32 {
	if math32.IsNaN(sign) {
		sign = 1
	}
	return math.Float32frombits((math.Float32bits(sign) & signMask32) |
		(math.Float32bits(magnitude) &^ signMask32))
}

// Signum32 is Signum for float32.
func Signum32(x float32) float32 {
	if x == 0 || math32.IsNaN(x) {
		return x
	}
	return float32(SignFromBit32(x))
}
