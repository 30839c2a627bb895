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

package tables

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/ieee"
)

// Products feeding an addition are wrapped in float64() to block
// multiply-add fusion. Tables must be bit-identical on every platform.

const (
	oneDivF2 = 1 / 2.0
	oneDivF3 = 1 / 6.0
	oneDivF4 = 1 / 24.0
)

// Every table type below is shared by all engines of the process. Its
// slices are read-only once an accessor has returned it: writing to them
// changes the results of every evaluator.

// SinCosTables samples sin and cos at i*(2pi/2048). Read-only.
type SinCosTables struct {
	Sin, Cos []float64
}

func (t *SinCosTables) entries() int { return len(t.Sin) + len(t.Cos) }

// TaylorTables holds a function and its first four derivatives divided by
// k!, for evaluation by a 4th order Taylor expansion around each sample.
// Read-only.
type TaylorTables struct {
	Value, D1, D2, D3, D4 []float64
}

func newTaylorTables(n int) *TaylorTables {
	return &TaylorTables{
		Value: make([]float64, n),
		D1:    make([]float64, n),
		D2:    make([]float64, n),
		D3:    make([]float64, n),
		D4:    make([]float64, n),
	}
}

func (t *TaylorTables) entries() int { return 5 * len(t.Value) }

// AsinPowTables are asin tables whose sample points cluster near 1:
// Param[i] = (i/4096)^(1/84) * sin(88.6deg). Read-only.
type AsinPowTables struct {
	Param []float64
	TaylorTables
}

func (t *AsinPowTables) entries() int { return len(t.Param) + t.TaylorTables.entries() }

// ExpTables holds exp(i) for whole i in [ExpHiMin, ExpHiMax], and exp(x),
// -expm1(-x) for x = -1 + i/1024. Read-only.
type ExpTables struct {
	Hi, LoPos, LoNeg []float64
}

func (t *ExpTables) entries() int { return len(t.Hi) + len(t.LoPos) + len(t.LoNeg) }

// LogTables holds log(x), x and 1/x for x = 1 + i/4096. Read-only.
type LogTables struct {
	Log, X, XInv []float64
}

func (t *LogTables) entries() int { return 3 * len(t.Log) }

// RootTables drive sqrt and cbrt: a root and a Newton slope per binary
// exponent, and a root and slope per leading 12 mantissa bits. Read-only.
type RootTables struct {
	HiRoot, HiSlope, LoRoot, LoSlope []float64
}

func (t *RootTables) entries() int {
	return len(t.HiRoot) + len(t.HiSlope) + len(t.LoRoot) + len(t.LoSlope)
}

// TwoPowTables holds 2^p at index p-MinExponent. Read-only.
type TwoPowTables struct {
	Values []float64
}

func (t *TwoPowTables) entries() int { return len(t.Values) }

// At returns 2^p for p in [ieee.MinExponent, ieee.MaxExponent].
func (t *TwoPowTables) At(p int) float64 {
	return t.Values[p-ieee.MinExponent]
}

func buildSinCos() *SinCosTables {
	n := SinCosTabsSize
	t := &SinCosTables{Sin: make([]float64, n), Cos: make([]float64, n)}
	piIndex := (n - 1) / 2
	for i := range n {
		fi := float64(i)
		angle := float64(fi*SinCosDeltaHi) + float64(fi*SinCosDeltaLo)
		s, c := math.Sin(angle), math.Cos(angle)
		// Exact zeros where the true pi would give them.
		switch i {
		case piIndex, 2 * piIndex:
			s = 0
		case piIndex / 2, 3 * piIndex / 2:
			c = 0
		}
		t.Sin[i] = s
		t.Cos[i] = c
	}
	return t
}

func buildTan() *TaylorTables {
	t := newTaylorTables(TanTabsSize)
	for i := range TanTabsSize {
		fi := float64(i)
		angle := float64(fi*TanDeltaHi) + float64(fi*TanDeltaLo)
		s, c := math.Sin(angle), math.Cos(angle)
		inv := 1 / c
		inv2 := inv * inv
		inv3 := inv2 * inv
		inv4 := inv2 * inv2
		inv5 := inv3 * inv2
		t.Value[i] = s * inv
		t.D1[i] = inv2
		t.D2[i] = ((2 * s) * inv3) * oneDivF2
		t.D3[i] = ((2 * (1 + float64(2*s*s))) * inv4) * oneDivF3
		t.D4[i] = ((8 * s * (2 + float64(s*s))) * inv5) * oneDivF4
	}
	return t
}

// fillAsin stores asin(x) and its derivatives at index i.
func fillAsin(t *TaylorTables, i int, x float64) {
	oneMinusXSqInv := 1 / (1 - float64(x*x))
	inv05 := math.Sqrt(oneMinusXSqInv)
	inv15 := inv05 * oneMinusXSqInv
	inv25 := inv15 * oneMinusXSqInv
	inv35 := inv25 * oneMinusXSqInv
	t.Value[i] = math.Asin(x)
	t.D1[i] = inv05
	t.D2[i] = (x * inv15) * oneDivF2
	t.D3[i] = ((1 + float64(2*x*x)) * inv25) * oneDivF3
	inner := 5 + float64(2*x*(2+float64(x*(5-2*x))))
	t.D4[i] = (inner * inv35) * oneDivF4
}

func buildAsin() *TaylorTables {
	t := newTaylorTables(AsinTabsSize)
	for i := range AsinTabsSize {
		fillAsin(t, i, float64(i)*AsinDelta)
	}
	return t
}

func buildAsinPow() *AsinPowTables {
	n := AsinPowTabsSize
	t := &AsinPowTables{Param: make([]float64, n), TaylorTables: *newTaylorTables(n)}
	step := 1.0 / float64(AsinPowTabsSizeMinusOne)
	for i := range n {
		x := math.Pow(float64(i)*step, 1.0/float64(AsinPowTabsPower)) * AsinMaxValueForPowTabs
		t.Param[i] = x
		fillAsin(&t.TaylorTables, i, x)
	}
	return t
}

func buildAtan() *TaylorTables {
	t := newTaylorTables(AtanTabsSize)
	for i := range AtanTabsSize {
		x := float64(i) * AtanDelta
		inv := 1 / (1 + float64(x*x))
		inv2 := inv * inv
		inv3 := inv2 * inv
		inv4 := inv2 * inv2
		t.Value[i] = math.Atan(x)
		t.D1[i] = inv
		t.D2[i] = (-2 * x * inv2) * oneDivF2
		t.D3[i] = ((-2 + float64(6*x*x)) * inv3) * oneDivF3
		t.D4[i] = ((24 * x * (1 - float64(x*x))) * inv4) * oneDivF4
	}
	return t
}

func buildExp() *ExpTables {
	t := &ExpTables{
		Hi:    make([]float64, ExpHiMax-ExpHiMin+1),
		LoPos: make([]float64, ExpLoTabSize),
		LoNeg: make([]float64, ExpLoTabSize),
	}
	for i := ExpHiMin; i <= ExpHiMax; i++ {
		t.Hi[i-ExpHiMin] = math.Exp(float64(i))
	}
	for i := range ExpLoTabSize {
		x := -1 + float64(i)/float64(ExpLoIndexing)
		t.LoPos[i] = math.Exp(x)
		t.LoNeg[i] = -math.Expm1(-x)
	}
	return t
}

func buildLog() *LogTables {
	t := &LogTables{
		Log:  make([]float64, LogTabSize),
		X:    make([]float64, LogTabSize),
		XInv: make([]float64, LogTabSize),
	}
	for i := range LogTabSize {
		// 1/LogTabSize is a power of two, so x is exact.
		x := 1 + float64(i)*(1.0/LogTabSize)
		t.Log[i] = math.Log(x)
		t.X[i] = x
		t.XInv[i] = 1 / x
	}
	return t
}

// loMantissaBits returns the bits of the largest value in [1, 2) whose
// leading RootLoBits mantissa bits equal i-1.
func loMantissaBits(i int) uint64 {
	const mask = 0x3FF0000000000000 | (0x000FFFFFFFFFFFFF >> RootLoBits)
	return mask | uint64(i-1)<<(52-RootLoBits)
}

func newRootTables() *RootTables {
	return &RootTables{
		HiRoot:  make([]float64, RootHiTabSize),
		HiSlope: make([]float64, RootHiTabSize),
		LoRoot:  make([]float64, RootLoTabSize),
		LoSlope: make([]float64, RootLoTabSize),
	}
}

func buildSqrt() *RootTables {
	t := newRootTables()
	for i := ieee.MinExponent; i <= ieee.MaxExponent; i++ {
		twoPowExpDiv2 := math.Pow(2, float64(i)*0.5)
		// Half root keeps the hi table finite.
		t.HiRoot[i-ieee.MinExponent] = twoPowExpDiv2 * 0.5
		t.HiSlope[i-ieee.MinExponent] = 1 / twoPowExpDiv2
	}
	t.LoRoot[0] = 1
	t.LoSlope[0] = 1
	for i := 1; i < RootLoTabSize; i++ {
		r := math.Sqrt(math.Float64frombits(loMantissaBits(i)))
		t.LoRoot[i] = r
		t.LoSlope[i] = 1 / r
	}
	return t
}

func buildCbrt() *RootTables {
	t := newRootTables()
	for i := ieee.MinExponent; i <= ieee.MaxExponent; i++ {
		twoPowExpDiv3 := math.Pow(2, float64(i)*(1.0/3))
		t.HiRoot[i-ieee.MinExponent] = twoPowExpDiv3 * 0.5
		t.HiSlope[i-ieee.MinExponent] = (4.0 / 3) / (twoPowExpDiv3 * twoPowExpDiv3)
	}
	t.LoRoot[0] = 1
	t.LoSlope[0] = 1
	for i := 1; i < RootLoTabSize; i++ {
		r := math.Cbrt(math.Float64frombits(loMantissaBits(i)))
		t.LoRoot[i] = r
		t.LoSlope[i] = 1 / (r * r)
	}
	return t
}

func buildTwoPow() *TwoPowTables {
	t := &TwoPowTables{Values: make([]float64, ieee.MaxExponent-ieee.MinExponent+1)}
	for p := ieee.MinExponent; p <= ieee.MaxExponent; p++ {
		t.Values[p-ieee.MinExponent] = ieee.TwoPow(p)
	}
	return t
}
