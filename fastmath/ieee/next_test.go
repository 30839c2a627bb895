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

var negZero = stdmath.Copysign(0, -1)

func TestUlp(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"one", 1, stdmath.Ldexp(1, -52)},
		{"minus one", -1, stdmath.Ldexp(1, -52)},
		{"two", 2, stdmath.Ldexp(1, -51)},
		{"max", stdmath.MaxFloat64, stdmath.Ldexp(1, 971)},
		{"min normal", MinNormal, stdmath.SmallestNonzeroFloat64},
		{"subnormal", stdmath.Ldexp(1, -1060), stdmath.SmallestNonzeroFloat64},
		{"zero", 0, stdmath.SmallestNonzeroFloat64},
		{"+Inf", stdmath.Inf(1), stdmath.Inf(1)},
		{"-Inf", stdmath.Inf(-1), stdmath.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ulp(tt.x); got != tt.want {
				t.Errorf("Ulp(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
	assert.True(t, stdmath.IsNaN(Ulp(stdmath.NaN())))
}

func TestUlpMatchesNeighbourDistance(t *testing.T) {
	for _, x := range []float64{1e-310, 1e-300, 3.7, 1e10, 6.02e23, 1e300} {
		want := stdmath.Nextafter(x, stdmath.Inf(1)) - x
		require.Equal(t, want, Ulp(x), "x=%v", x)
	}
	for _, x := range []float32{1e-40, 1e-30, 3.7, 1e10, 1e30} {
		want := math32.Nextafter(x, math32.Inf(1)) - x
		require.Equal(t, want, Ulp32(x), "x=%v", x)
	}
}

func TestNextUpDown(t *testing.T) {
	assert.Equal(t, stdmath.SmallestNonzeroFloat64, NextUp(0))
	assert.Equal(t, stdmath.SmallestNonzeroFloat64, NextUp(negZero))
	assert.Equal(t, -stdmath.SmallestNonzeroFloat64, NextDown(0))
	assert.Equal(t, -stdmath.SmallestNonzeroFloat64, NextDown(negZero))
	assert.Equal(t, stdmath.Inf(1), NextUp(stdmath.Inf(1)))
	assert.Equal(t, stdmath.Inf(-1), NextDown(stdmath.Inf(-1)))
	assert.Equal(t, stdmath.Inf(1), NextUp(stdmath.MaxFloat64))
	assert.Equal(t, -stdmath.MaxFloat64, NextUp(stdmath.Inf(-1)))
	assert.Equal(t, stdmath.MaxFloat64, NextDown(stdmath.Inf(1)))
	assert.True(t, stdmath.IsNaN(NextUp(stdmath.NaN())))
	assert.True(t, stdmath.IsNaN(NextDown(stdmath.NaN())))

	// -2^-1074 steps up to -0.
	up := NextUp(-stdmath.SmallestNonzeroFloat64)
	assert.Equal(t, 0.0, up)
	assert.True(t, stdmath.Signbit(up))

	for _, x := range []float64{-1e300, -2.5, -1e-310, 1e-310, 1, 3.14, 1e300} {
		assert.Equal(t, stdmath.Nextafter(x, stdmath.Inf(1)), NextUp(x), "NextUp(%v)", x)
		assert.Equal(t, stdmath.Nextafter(x, stdmath.Inf(-1)), NextDown(x), "NextDown(%v)", x)
	}
}

func TestNextAfter(t *testing.T) {
	assert.Equal(t, NextUp(1), NextAfter(1, 2))
	assert.Equal(t, NextDown(1), NextAfter(1, 0))
	assert.True(t, stdmath.IsNaN(NextAfter(stdmath.NaN(), 1)))
	assert.True(t, stdmath.IsNaN(NextAfter(1, stdmath.NaN())))

	// Equal arguments return direction.
	got := NextAfter(negZero, 0)
	assert.Equal(t, 0.0, got)
	assert.False(t, stdmath.Signbit(got))
	got = NextAfter(0, negZero)
	assert.True(t, stdmath.Signbit(got))
}

func TestNext32(t *testing.T) {
	for _, x := range []float32{-1e30, -2.5, -1e-40, 0, 1e-40, 1, 3.14, 1e30} {
		assert.Equal(t, math32.Nextafter(x, math32.Inf(1)), NextUp32(x), "NextUp32(%v)", x)
		assert.Equal(t, math32.Nextafter(x, math32.Inf(-1)), NextDown32(x), "NextDown32(%v)", x)
	}
	assert.Equal(t, math32.Inf(1), NextUp32(math32.Inf(1)))
	assert.Equal(t, math32.Inf(-1), NextDown32(math32.Inf(-1)))
	assert.True(t, math32.IsNaN(NextUp32(math32.NaN())))

	// A float64 direction strictly between two float32 values still steps.
	assert.Equal(t, NextUp32(1), NextAfter32(1, 1.0000000001))
	assert.Equal(t, NextDown32(1), NextAfter32(1, 0.9999999999))
	assert.Equal(t, float32(1), NextAfter32(1, 1))
	assert.True(t, math32.IsNaN(NextAfter32(1, stdmath.NaN())))
}

func TestScalb(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{1, 0, 1},
		{1, 10, 1024},
		{3, -1, 1.5},
		{1, 1023, stdmath.Ldexp(1, 1023)},
		{1, 1024, stdmath.Inf(1)},
		{-1, 5000, stdmath.Inf(-1)},
		{1, -1074, stdmath.SmallestNonzeroFloat64},
		{1, -1075, 0},
		{stdmath.MaxFloat64, -2097, stdmath.Ldexp(stdmath.MaxFloat64, -2097)},
		{stdmath.SmallestNonzeroFloat64, 2097, stdmath.Ldexp(stdmath.SmallestNonzeroFloat64, 2097)},
		{stdmath.SmallestNonzeroFloat64, stdmath.MaxInt32, stdmath.Inf(1)},
		{stdmath.MaxFloat64, stdmath.MinInt32, 0},
		{0, 5000, 0},
		{stdmath.Inf(1), -5000, stdmath.Inf(1)},
	}
	for _, tt := range tests {
		if got := Scalb(tt.x, tt.n); got != tt.want {
			t.Errorf("Scalb(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
	assert.True(t, stdmath.IsNaN(Scalb(stdmath.NaN(), 3)))

	for n := -1100; n <= 1100; n += 7 {
		require.Equal(t, stdmath.Ldexp(1.5, n), Scalb(1.5, n), "n=%d", n)
	}
}

func TestScalb32(t *testing.T) {
	assert.Equal(t, float32(1024), Scalb32(1, 10))
	assert.Equal(t, math32.Inf(1), Scalb32(1, 128))
	assert.Equal(t, float32(0), Scalb32(1, -150))
	assert.Equal(t, smallestNonzero32, Scalb32(1, -149))
	assert.Equal(t, math32.Inf(1), Scalb32(smallestNonzero32, 1<<20))
}
