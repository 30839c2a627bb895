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
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponent(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"one", 1.0, 0},
		{"two", 2.0, 1},
		{"half", 0.5, -1},
		{"three", 3.0, 1},
		{"negative", -8.0, 3},
		{"max", stdmath.MaxFloat64, MaxExponent},
		{"min normal", MinNormal, MinNormalExponent},
		{"subnormal", stdmath.SmallestNonzeroFloat64, MinNormalExponent - 1},
		{"zero", 0.0, MinNormalExponent - 1},
		{"negative zero", stdmath.Copysign(0, -1), MinNormalExponent - 1},
		{"+Inf", stdmath.Inf(1), MaxExponent + 1},
		{"-Inf", stdmath.Inf(-1), MaxExponent + 1},
		{"NaN", stdmath.NaN(), MaxExponent + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exponent(tt.x); got != tt.want {
				t.Errorf("Exponent(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestExponent32(t *testing.T) {
	assert.Equal(t, 0, Exponent32(1))
	assert.Equal(t, 3, Exponent32(-8))
	assert.Equal(t, MaxExponent32, Exponent32(stdmath.MaxFloat32))
	assert.Equal(t, MaxExponent32+1, Exponent32(math32.Inf(1)))
	assert.Equal(t, MaxExponent32+1, Exponent32(math32.NaN()))
	assert.Equal(t, MinNormalExponent32-1, Exponent32(0))
}

func TestTwoPow(t *testing.T) {
	tests := []struct {
		power int
		want  float64
	}{
		{0, 1.0},
		{1, 2.0},
		{-1, 0.5},
		{10, 1024.0},
		{MaxExponent, stdmath.Ldexp(1, MaxExponent)},
		{MinNormalExponent, MinNormal},
		{-1023, stdmath.Ldexp(1, -1023)},
		{-1073, stdmath.Ldexp(1, -1073)},
		{MinExponent, stdmath.SmallestNonzeroFloat64},
		{MinExponent - 1, 0.0},
		{-2000, 0.0},
		{MaxExponent + 1, stdmath.Inf(1)},
		{2000, stdmath.Inf(1)},
	}
	for _, tt := range tests {
		if got := TwoPow(tt.power); got != tt.want {
			t.Errorf("TwoPow(%d) = %v, want %v", tt.power, got, tt.want)
		}
	}
}

func TestTwoPowMatchesLdexp(t *testing.T) {
	for p := MinExponent; p <= MaxExponent; p++ {
		want := stdmath.Ldexp(1, p)
		require.Equal(t, want, TwoPowNormalOrSubnormal(p), "power %d", p)
		if p >= MinNormalExponent {
			require.Equal(t, want, TwoPowNormal(p), "power %d", p)
		}
	}
}

func TestSignFromBit(t *testing.T) {
	assert.Equal(t, int64(1), SignFromBit(0.0))
	assert.Equal(t, int64(-1), SignFromBit(stdmath.Copysign(0, -1)))
	assert.Equal(t, int64(1), SignFromBit(3.5))
	assert.Equal(t, int64(-1), SignFromBit(-3.5))
	assert.Equal(t, int64(1), SignFromBit(stdmath.Inf(1)))
	assert.Equal(t, int64(-1), SignFromBit(stdmath.Inf(-1)))
	assert.Equal(t, int64(-1), SignFromBit(-stdmath.SmallestNonzeroFloat64))
	assert.Equal(t, int32(-1), SignFromBit32(-1))
	assert.Equal(t, int32(1), SignFromBit32(1))

	// NaN carries whatever sign bit it was built with.
	negNaN := stdmath.Float64frombits(0xFFF8000000000000)
	assert.Equal(t, int64(-1), SignFromBit(negNaN))
	posNaN := stdmath.Float64frombits(0x7FF8000000000000)
	assert.Equal(t, int64(1), SignFromBit(posNaN))
}

func TestCopySign(t *testing.T) {
	assert.Equal(t, -2.0, CopySign(2, -1))
	assert.Equal(t, 2.0, CopySign(-2, 1))
	assert.Equal(t, 2.0, CopySign(-2, stdmath.NaN()))
	assert.True(t, stdmath.Signbit(CopySign(0, stdmath.Copysign(0, -1))))
	assert.Equal(t, float32(-3), CopySign32(3, -0.5))
	assert.Equal(t, float32(3), CopySign32(-3, math32.NaN()))
}

func TestIsNaNOrInf(t *testing.T) {
	assert.True(t, IsNaNOrInf(stdmath.NaN()))
	assert.True(t, IsNaNOrInf(stdmath.Inf(-1)))
	assert.False(t, IsNaNOrInf(stdmath.MaxFloat64))
	assert.True(t, IsNaNOrInf32(math32.Inf(1)))
	assert.False(t, IsNaNOrInf32(1))
}

func TestIsMathematicalInteger(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{1, true},
		{-17, true},
		{0.5, false},
		{1.5, false},
		{stdmath.MaxFloat64, true},
		{stdmath.Ldexp(1, 52) + 1, true},
		{stdmath.Ldexp(1, 51) + 0.5, false},
		{stdmath.SmallestNonzeroFloat64, false},
		{stdmath.Inf(1), false},
		{stdmath.NaN(), false},
	}
	for _, tt := range tests {
		if got := IsMathematicalInteger(tt.x); got != tt.want {
			t.Errorf("IsMathematicalInteger(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestIsEquidistant(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0.5, true},
		{-0.5, true},
		{2.5, true},
		{-7.5, true},
		{2.25, false},
		{3, false},
		{0.25, false},
		{stdmath.Ldexp(1, 51) + 0.5, true},
		{stdmath.Ldexp(1, 53), false},
		{stdmath.NaN(), false},
	}
	for _, tt := range tests {
		if got := IsEquidistant(tt.x); got != tt.want {
			t.Errorf("IsEquidistant(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSignum(t *testing.T) {
	assert.Equal(t, 1.0, Signum(42))
	assert.Equal(t, -1.0, Signum(-1e-300))
	assert.True(t, stdmath.Signbit(Signum(stdmath.Copysign(0, -1))))
	assert.True(t, stdmath.IsNaN(Signum(stdmath.NaN())))
	assert.Equal(t, float32(-1), Signum32(-3))
}
