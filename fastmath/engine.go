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

// Package fastmath evaluates elementary functions of float64 values using
// lookup tables, Taylor expansions and fdlibm-derived tails.
//
// An Engine carries an immutable Config chosen at construction. Results do
// not depend on the platform: every product feeding an addition is rounded
// explicitly, so no multiply-add is fused behind the caller's back.
//
// Tables are built lazily on first use, once per process, and shared by all
// engines. Call InitTables up front to pay that cost before hot loops.
//
// Example usage:
//
//	e := fastmath.New(fastmath.DefaultConfig(fastmath.ModeStrict))
//	s, c := e.SinAndCos(1e20)
//	r := e.Pow(2, 0.5)
package fastmath

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ajroetker/go-fastmath/fastmath/reduce"
	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

// Engine evaluates functions under one Config. It is safe for concurrent use.
type Engine struct {
	cfg Config
	red reduce.Reducer
}

// New returns an Engine using cfg.
func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		red: reduce.Reducer{UseStdlib: cfg.UseStdlib},
	}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	cfg, err := ConfigFromEnv(ModeStrict)
	if err != nil {
		slog.Warn("fastmath: ignoring environment configuration", "error", err)
		cfg = DefaultConfig(ModeStrict)
	}
	return New(cfg)
})

// Default returns the process-wide strict Engine, configured once from the
// FASTMATH_STRICT_* environment variables.
func Default() *Engine {
	return defaultEngine()
}

// Config returns the configuration of e.
func (e *Engine) Config() Config { return e.cfg }

// Mode returns the mode e was configured with.
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Strict reports whether e runs in strict mode.
func (e *Engine) Strict() bool { return e.cfg.Mode == ModeStrict }

// UseStdlib reports whether e delegates to the math package.
func (e *Engine) UseStdlib() bool { return e.cfg.UseStdlib }

// RedefinedLog reports whether Log and Log10 use the table based algorithm.
func (e *Engine) RedefinedLog() bool { return e.cfg.RedefinedLog }

// RedefinedSqrt reports whether Sqrt uses the table based algorithm.
func (e *Engine) RedefinedSqrt() bool { return e.cfg.RedefinedSqrt }

// PowTabsForAsin reports whether Asin uses the power-law tables near 1.
func (e *Engine) PowTabsForAsin() bool { return e.cfg.PowTabsForAsin }

// Families returns the table families e can reach.
func (e *Engine) Families() []tables.Family {
	if e.cfg.UseStdlib {
		return nil
	}
	fams := []tables.Family{tables.SinCos, tables.Tan, tables.Asin, tables.Atan, tables.Exp, tables.Log, tables.Cbrt, tables.TwoPow}
	if e.cfg.RedefinedSqrt {
		fams = append(fams, tables.Sqrt)
	}
	if e.cfg.PowTabsForAsin {
		fams = append(fams, tables.AsinPow)
	}
	return fams
}

// InitTables builds every table e can reach.
func (e *Engine) InitTables(ctx context.Context) error {
	fams := e.Families()
	if len(fams) == 0 {
		return nil
	}
	return tables.InitAll(ctx, fams...)
}

// InitTables builds every table family, whatever the configuration.
func InitTables(ctx context.Context) error {
	return tables.InitAll(ctx, tables.AllFamilies()...)
}

// Horner-style helpers. Products are rounded before each addition.

// taylor4 evaluates the 4th order expansion stored at index i of t, at
// distance delta from the sample.
func taylor4(t *tables.TaylorTables, i int, delta float64) float64 {
	r := t.D3[i] + float64(delta*t.D4[i])
	r = t.D2[i] + float64(delta*r)
	r = t.D1[i] + float64(delta*r)
	return t.Value[i] + float64(delta*r)
}

// horner returns c[0] + x*(c[1] + x*(c[2] + ...)).
func horner(x float64, c ...float64) float64 {
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = c[i] + float64(x*r)
	}
	return r
}
