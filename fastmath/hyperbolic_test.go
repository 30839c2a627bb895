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
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHyperbolicAgainstStdlib(t *testing.T) {
	e := strictEngine
	for _, r := range [][2]float64{{-1, 1}, {-30, 30}, {-709, 709}} {
		sweep(10000, r[0], r[1], func(x float64) {
			requireRel(t, stdmath.Sinh(x), e.Sinh(x), 1e-14, "Sinh(%v)", x)
			requireRel(t, stdmath.Cosh(x), e.Cosh(x), 1e-14, "Cosh(%v)", x)
			requireRel(t, stdmath.Tanh(x), e.Tanh(x), 1e-14, "Tanh(%v)", x)
			s, c := e.SinhAndCosh(x)
			requireRel(t, stdmath.Sinh(x), s, 1e-14, "SinhAndCosh(%v)", x)
			requireRel(t, stdmath.Cosh(x), c, 1e-14, "SinhAndCosh(%v)", x)
		})
	}
	sweep(10000, -1e-6, 1e-6, func(x float64) {
		requireRel(t, stdmath.Sinh(x), e.Sinh(x), 2e-15, "Sinh(%v)", x)
		requireRel(t, stdmath.Tanh(x), e.Tanh(x), 2e-15, "Tanh(%v)", x)
	})
}

func TestHyperbolicSpecialValues(t *testing.T) {
	inf, nan := stdmath.Inf(1), stdmath.NaN()
	for _, ne := range testEngines() {
		t.Run(ne.name, func(t *testing.T) {
			e := ne.e
			assert.Equal(t, 0.0, e.Sinh(0))
			assert.Equal(t, 1.0, e.Cosh(0))
			assert.Equal(t, 0.0, e.Tanh(0))
			assert.Equal(t, inf, e.Sinh(inf))
			assert.Equal(t, -inf, e.Sinh(-inf))
			assert.Equal(t, inf, e.Cosh(-inf))
			assert.Equal(t, 1.0, e.Tanh(inf))
			assert.Equal(t, -1.0, e.Tanh(-inf))
			for _, f := range []func(float64) float64{e.Sinh, e.Cosh, e.Tanh, e.Asinh, e.Acosh, e.Atanh} {
				assert.True(t, stdmath.IsNaN(f(nan)))
			}
			s, c := e.SinhAndCosh(nan)
			assert.True(t, stdmath.IsNaN(s) && stdmath.IsNaN(c))
			assert.Equal(t, inf, e.Atanh(1))
			assert.Equal(t, -inf, e.Atanh(-1))
			assert.True(t, stdmath.IsNaN(e.Atanh(1.5)))
			assert.Equal(t, 0.0, e.Acosh(1))
			assert.True(t, stdmath.IsNaN(e.Acosh(0.5)))
			assert.Equal(t, inf, e.Asinh(inf))
			assert.Equal(t, -inf, e.Asinh(-inf))
			assert.Equal(t, inf, e.Acosh(inf))
		})
	}
}

func TestInverseHyperbolic(t *testing.T) {
	e := strictEngine
	for _, r := range [][2]float64{{-0.04, 0.04}, {-100, 100}, {-1e300, 1e300}} {
		sweep(10000, r[0], r[1], func(x float64) {
			requireRel(t, stdmath.Asinh(x), e.Asinh(x), 1e-14, "Asinh(%v)", x)
		})
	}
	// acosh loses accuracy just above 1, where Acosh1p is the tool.
	for _, r := range [][2]float64{{1.5, 10}, {10, 1e6}, {1e7, 1e300}} {
		sweep(10000, r[0], r[1], func(x float64) {
			requireRel(t, stdmath.Acosh(x), e.Acosh(x), 1e-14, "Acosh(%v)", x)
		})
	}
	sweep(10000, -0.999, 0.999, func(x float64) {
		requireRel(t, stdmath.Atanh(x), e.Atanh(x), 1e-14, "Atanh(%v)", x)
	})
}

func TestCoshm1AndAcosh1p(t *testing.T) {
	e := strictEngine
	negZero := stdmath.Copysign(0, -1)
	assert.True(t, stdmath.Signbit(e.Coshm1(negZero)))
	assert.True(t, stdmath.Signbit(e.Acosh1p(negZero)))
	assert.True(t, stdmath.IsNaN(e.Acosh1p(-1e-3)))
	assert.Equal(t, stdmath.Inf(1), e.Coshm1(stdmath.Inf(-1)))

	sweep(10000, -1e-9, 1e-9, func(x float64) {
		requireRel(t, x*x/2, e.Coshm1(x), 1e-14, "Coshm1(%v)", x)
	})
	sweep(10000, 1, 700, func(x float64) {
		// 2*sinh(x/2)^2 has no cancellation.
		h := stdmath.Sinh(x / 2)
		requireRel(t, 2*h*h, e.Coshm1(x), 1e-13, "Coshm1(%v)", x)
		require.Equal(t, e.Coshm1(x), e.Coshm1(-x))
	})
	sweep(10000, 0, 1e6, func(x float64) {
		requireRel(t, stdmath.Acosh(1+x), e.Acosh1p(x), 1e-14, "Acosh1p(%v)", x)
	})
	// Near zero acosh(1+x) ~ sqrt(2x), which 1+x would lose.
	sweep(1000, 1e-20, 1e-18, func(x float64) {
		requireRel(t, stdmath.Sqrt(2*x), e.Acosh1p(x), 1e-14, "Acosh1p(%v)", x)
	})
}

func TestHyperbolicSymmetry(t *testing.T) {
	e := strictEngine
	sweep(1000, 0, 50, func(x float64) {
		require.Equal(t, -e.Sinh(x), e.Sinh(-x))
		require.Equal(t, e.Cosh(x), e.Cosh(-x))
		require.Equal(t, -e.Tanh(x), e.Tanh(-x))
		require.Equal(t, -e.Asinh(x), e.Asinh(-x))
	})
}

func BenchmarkSinh(b *testing.B) {
	e := strictEngine
	x := 0.0
	for b.Loop() {
		x = e.Sinh(x*1e-3 + 0.5)
	}
}

func BenchmarkTanh(b *testing.B) {
	e := strictEngine
	x := 0.0
	for b.Loop() {
		x = e.Tanh(x + 0.5)
	}
}
