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
	"context"
	stdmath "math"
	"runtime"
	"slices"
	"sync"
	"testing"

	"github.com/ajroetker/go-fastmath/fastmath/tables"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineAccessors(t *testing.T) {
	assert.True(t, strictEngine.Strict())
	assert.True(t, strictEngine.RedefinedLog())
	assert.False(t, strictEngine.RedefinedSqrt())
	assert.Equal(t, ModeFast, fastEngine.Mode())
	assert.False(t, fastEngine.RedefinedLog())
	assert.True(t, stdlibEngine.UseStdlib())
	assert.True(t, tableEngine.PowTabsForAsin())
	assert.Equal(t, DefaultConfig(ModeStrict), strictEngine.Config())
}

func TestDefault(t *testing.T) {
	e := Default()
	assert.Same(t, e, Default())
	assert.True(t, e.Strict())
}

func TestFamilies(t *testing.T) {
	assert.Empty(t, stdlibEngine.Families())

	fams := strictEngine.Families()
	assert.Contains(t, fams, tables.SinCos)
	assert.Contains(t, fams, tables.TwoPow)
	assert.NotContains(t, fams, tables.Sqrt)
	assert.NotContains(t, fams, tables.AsinPow)

	fams = tableEngine.Families()
	assert.Contains(t, fams, tables.Sqrt)
	assert.Contains(t, fams, tables.AsinPow)
}

func TestInitTables(t *testing.T) {
	require.NoError(t, stdlibEngine.InitTables(context.Background()))
	require.NoError(t, tableEngine.InitTables(context.Background()))
	built := map[tables.Family]bool{}
	for _, s := range tables.Stats() {
		built[s.Family] = s.Built
	}
	for _, f := range tableEngine.Families() {
		assert.True(t, built[f], "%s not built", f)
	}
	require.NoError(t, InitTables(context.Background()))
}

func TestEngineConcurrentUse(t *testing.T) {
	// The first calls of many goroutines race on table construction and
	// must all agree.
	e := New(Config{Mode: ModeStrict, RedefinedLog: true, RedefinedSqrt: true})
	xs := []float64{0.1, 1, 2.5, 100, 1e10}
	want := make([]float64, 0, 3*len(xs))
	for _, x := range xs {
		want = append(want, e.Sin(x), e.Log(x), e.Sqrt(x))
	}

	var wg sync.WaitGroup
	results := make([][]float64, runtime.GOMAXPROCS(0)+2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, x := range xs {
				results[i] = append(results[i], e.Sin(x), e.Log(x), e.Sqrt(x))
			}
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.True(t, slices.Equal(want, got))
	}
}

func TestEvaluatorsLeaveTablesUnchanged(t *testing.T) {
	require.NoError(t, InitTables(context.Background()))
	snapshot := func() [][]float64 {
		sc, tan, asin, ap, atan := tables.SinCosTab(), tables.TanTab(), tables.AsinTab(), tables.AsinPowTab(), tables.AtanTab()
		ex, lg, sq, cb := tables.ExpTab(), tables.LogTab(), tables.SqrtTab(), tables.CbrtTab()
		all := [][]float64{
			sc.Sin, sc.Cos, ap.Param, ex.Hi, ex.LoPos, ex.LoNeg, lg.Log, lg.X, lg.XInv,
			sq.HiRoot, sq.HiSlope, sq.LoRoot, sq.LoSlope, cb.HiRoot, cb.HiSlope, cb.LoRoot, cb.LoSlope,
			tables.TwoPowTab().Values,
		}
		for _, tt := range []*tables.TaylorTables{tan, asin, &ap.TaylorTables, atan} {
			all = append(all, tt.Value, tt.D1, tt.D2, tt.D3, tt.D4)
		}
		for i, s := range all {
			all[i] = slices.Clone(s)
		}
		return all
	}
	before := snapshot()
	for _, ne := range testEngines() {
		e := ne.e
		sweep(2000, -800, 800, func(x float64) {
			e.SinAndCos(x)
			e.Tan(x)
			e.Asin(x / 800)
			e.Atan(x)
			e.Exp(x)
			e.Log(stdmath.Abs(x))
			e.Sqrt(stdmath.Abs(x))
			e.Cbrt(x)
			e.Pow(stdmath.Abs(x), 0.3)
		})
	}
	if diff := cmp.Diff(before, snapshot()); diff != "" {
		t.Errorf("tables changed by evaluation (-before +after):\n%s", diff)
	}
}

func TestOddFunctionsKeepNegativeZero(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	for _, ne := range testEngines() {
		t.Run(ne.name, func(t *testing.T) {
			e := ne.e
			sin, _ := e.SinAndCos(negZero)
			funcs := map[string]float64{
				"Sin":       e.Sin(negZero),
				"SinAndCos": sin,
				"Tan":       e.Tan(negZero),
				"Asin":      e.Asin(negZero),
				"Atan":      e.Atan(negZero),
				"Sinh":      e.Sinh(negZero),
				"Tanh":      e.Tanh(negZero),
				"Asinh":     e.Asinh(negZero),
				"Atanh":     e.Atanh(negZero),
				"Expm1":     e.Expm1(negZero),
				"Log1p":     e.Log1p(negZero),
				"Sqrt":      e.Sqrt(negZero),
				"Cbrt":      e.Cbrt(negZero),
			}
			for name, got := range funcs {
				assert.Equal(t, 0.0, got, name)
				assert.True(t, stdmath.Signbit(got), "%s(-0) = %v", name, got)
			}
		})
	}
}

func TestPlatform(t *testing.T) {
	p := Platform()
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.NotEmpty(t, p.SIMD)
}

func TestPackageFunctionsUseDefault(t *testing.T) {
	e := Default()
	for _, x := range []float64{-3, -0.5, 0.25, 0.75, 2, 40} {
		assert.Equal(t, e.Sin(x), Sin(x))
		assert.Equal(t, e.Cos(x), Cos(x))
		assert.Equal(t, e.Exp(x), Exp(x))
		assert.Equal(t, e.Atan(x), Atan(x))
		assert.Equal(t, e.Cbrt(x), Cbrt(x))
		assert.Equal(t, e.Pow(2, x), Pow(2, x))
		assert.Equal(t, e.Hypot(x, 3), Hypot(x, 3))
	}
}
