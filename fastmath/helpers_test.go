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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	strictEngine = New(DefaultConfig(ModeStrict))
	fastEngine   = New(DefaultConfig(ModeFast))
	tableEngine  = New(Config{Mode: ModeStrict, RedefinedLog: true, RedefinedSqrt: true, PowTabsForAsin: true})
	stdlibEngine = New(Config{UseStdlib: true})
)

type namedEngine struct {
	name string
	e    *Engine
}

func testEngines() []namedEngine {
	return []namedEngine{
		{"strict", strictEngine},
		{"fast", fastEngine},
		{"tables", tableEngine},
		{"stdlib", stdlibEngine},
	}
}

// requireClose checks got against want with a tolerance relative to
// max(1, |want|). NaN and infinities must match exactly.
func requireClose(t *testing.T, want, got, tol float64, msgAndArgs ...any) {
	t.Helper()
	switch {
	case stdmath.IsNaN(want):
		require.True(t, stdmath.IsNaN(got), msgAndArgs...)
	case stdmath.IsInf(want, 0) || want == got:
		require.Equal(t, want, got, msgAndArgs...)
	default:
		require.InDelta(t, want, got, tol*max(1, stdmath.Abs(want)), msgAndArgs...)
	}
}

// requireRel checks got against want with a purely relative tolerance.
func requireRel(t *testing.T, want, got, tol float64, msgAndArgs ...any) {
	t.Helper()
	if want == 0 || stdmath.IsNaN(want) || stdmath.IsInf(want, 0) {
		requireClose(t, want, got, tol, msgAndArgs...)
		return
	}
	require.InDelta(t, want, got, tol*stdmath.Abs(want), msgAndArgs...)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xfa57))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// sweep calls check with n samples drawn uniformly in [lo, hi].
func sweep(n int, lo, hi float64, check func(x float64)) {
	rng := newRand()
	for range n {
		check(uniform(rng, lo, hi))
	}
}
