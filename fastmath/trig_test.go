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

func TestTrigExactValues(t *testing.T) {
	for _, ne := range testEngines() {
		t.Run(ne.name, func(t *testing.T) {
			e := ne.e
			assert.Equal(t, 0.0, e.Sin(0))
			assert.Equal(t, 1.0, e.Cos(0))
			assert.Equal(t, 0.0, e.Tan(0))
			assert.True(t, stdmath.Signbit(e.Sin(stdmath.Copysign(0, -1))))
			s, c := e.SinAndCos(0)
			assert.Equal(t, 0.0, s)
			assert.Equal(t, 1.0, c)
		})
	}
}

func TestSinCosAgainstStdlib(t *testing.T) {
	ranges := []struct {
		name   string
		lo, hi float64
	}{
		{"small", -4, 4},
		{"medium", -1e5, 1e5},
		{"large", -1e9, 1e9},
		{"huge", 1e15, 1e22},
	}
	e := strictEngine
	for _, r := range ranges {
		t.Run(r.name, func(t *testing.T) {
			sweep(2000, r.lo, r.hi, func(x float64) {
				requireClose(t, stdmath.Sin(x), e.Sin(x), 1e-14, "Sin(%v)", x)
				requireClose(t, stdmath.Cos(x), e.Cos(x), 1e-14, "Cos(%v)", x)
				s, c := e.SinAndCos(x)
				require.Equal(t, e.Sin(x), s, "SinAndCos(%v)", x)
				require.Equal(t, e.Cos(x), c, "SinAndCos(%v)", x)
			})
		})
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	for _, ne := range testEngines() {
		t.Run(ne.name, func(t *testing.T) {
			sweep(5000, -1e6, 1e6, func(x float64) {
				s, c := ne.e.SinAndCos(x)
				require.InDelta(t, 1.0, s*s+c*c, 1e-9, "x=%v", x)
			})
		})
	}
}

func TestSinLargeAngle(t *testing.T) {
	// sin(1e20) to 17 significant digits.
	const want = -0.6452512852657808
	for _, ne := range testEngines() {
		assert.InDelta(t, want, ne.e.Sin(1e20), 1e-15, ne.name)
		assert.InDelta(t, -want, ne.e.Sin(-1e20), 1e-15, ne.name)
	}
	assert.InDelta(t, stdmath.Cos(1e20), strictEngine.Cos(1e20), 1e-15)
	assert.InDelta(t, stdmath.Sin(stdmath.MaxFloat64), strictEngine.Sin(stdmath.MaxFloat64), 1e-15)
}

func TestTrigSpecialValues(t *testing.T) {
	e := strictEngine
	for _, x := range []float64{stdmath.NaN(), stdmath.Inf(1), stdmath.Inf(-1)} {
		assert.True(t, stdmath.IsNaN(e.Sin(x)), "Sin(%v)", x)
		assert.True(t, stdmath.IsNaN(e.Cos(x)), "Cos(%v)", x)
		assert.True(t, stdmath.IsNaN(e.Tan(x)), "Tan(%v)", x)
		s, c := e.SinAndCos(x)
		assert.True(t, stdmath.IsNaN(s) && stdmath.IsNaN(c), "SinAndCos(%v)", x)
	}
}

func TestTan(t *testing.T) {
	e := strictEngine
	sweep(5000, -1.5, 1.5, func(x float64) {
		requireRel(t, stdmath.Tan(x), e.Tan(x), 1e-13, "Tan(%v)", x)
	})
	sweep(5000, -1e7, 1e7, func(x float64) {
		if stdmath.Abs(stdmath.Cos(x)) < 1e-3 {
			return
		}
		requireRel(t, stdmath.Tan(x), e.Tan(x), 1e-11, "Tan(%v)", x)
	})
	// Odd symmetry holds exactly.
	sweep(100, 0, 100, func(x float64) {
		require.Equal(t, -e.Tan(x), e.Tan(-x))
	})
	assert.InDelta(t, stdmath.Tan(1e20), e.Tan(1e20), 1e-13*stdmath.Abs(stdmath.Tan(1e20)))
}

func TestQuickTrig(t *testing.T) {
	e := strictEngine
	sweep(5000, -1000, 1000, func(x float64) {
		require.InDelta(t, stdmath.Sin(x), e.SinQuick(x), 1.6e-3, "SinQuick(%v)", x)
		require.InDelta(t, stdmath.Cos(x), e.CosQuick(x), 1.6e-3, "CosQuick(%v)", x)
	})
	assert.Equal(t, stdmath.Sin(1), stdlibEngine.SinQuick(1))
}

func BenchmarkSin(b *testing.B) {
	e := strictEngine
	x := 0.0
	for b.Loop() {
		x += e.Sin(x + 0.1)
	}
}

func BenchmarkSinStdlib(b *testing.B) {
	x := 0.0
	for b.Loop() {
		x += stdmath.Sin(x + 0.1)
	}
}

func BenchmarkSinAndCosLarge(b *testing.B) {
	e := strictEngine
	for b.Loop() {
		e.SinAndCos(1e20)
	}
}

func BenchmarkTan(b *testing.B) {
	e := strictEngine
	x := 0.0
	for b.Loop() {
		x += e.Tan(x + 0.1)
	}
}
