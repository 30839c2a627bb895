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

// Package tables holds the lookup tables behind the fastmath evaluators.
//
// Tables are grouped in families. Each family is built on first use, exactly
// once, from the reference implementations in the standard math package, and
// is never mutated afterwards: concurrent readers need no synchronization
// beyond the first access. The exported slices are read-only for callers
// too; they are exposed for inspection, not for modification.
package tables

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Family identifies a group of tables built together.
type Family int

const (
	SinCos Family = iota
	Tan
	Asin
	AsinPow
	Atan
	Exp
	Log
	Sqrt
	Cbrt
	TwoPow
	numFamilies
)

var familyNames = [numFamilies]string{
	SinCos:  "sincos",
	Tan:     "tan",
	Asin:    "asin",
	AsinPow: "asinpow",
	Atan:    "atan",
	Exp:     "exp",
	Log:     "log",
	Sqrt:    "sqrt",
	Cbrt:    "cbrt",
	TwoPow:  "twopow",
}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return "unknown"
	}
	return familyNames[f]
}

// ErrUnknownFamily is returned by Ensure for an out-of-range Family.
var ErrUnknownFamily = errors.New("unknown table family")

// AllFamilies lists every family.
func AllFamilies() []Family {
	fs := make([]Family, numFamilies)
	for i := range fs {
		fs[i] = Family(i)
	}
	return fs
}

// DefaultFamilies lists the families used by the evaluators with default
// configuration: everything but the optional asin power tables.
func DefaultFamilies() []Family {
	return []Family{SinCos, Tan, Asin, Atan, Exp, Log, Sqrt, Cbrt, TwoPow}
}

// Stat describes one family.
type Stat struct {
	Family   Family
	Built    bool
	Entries  int
	Duration time.Duration
}

var (
	statsMu sync.Mutex
	stats   [numFamilies]Stat
)

// Stats returns a snapshot of every family, built or not.
func Stats() []Stat {
	statsMu.Lock()
	defer statsMu.Unlock()
	out := make([]Stat, numFamilies)
	for i := range out {
		out[i] = stats[i]
		out[i].Family = Family(i)
	}
	return out
}

// lazy returns an accessor building the tables of f on first call.
func lazy[T any](f Family, build func() *T, entries func(*T) int) func() *T {
	return sync.OnceValue(func() *T {
		start := time.Now()
		t := build()
		elapsed := time.Since(start)
		n := entries(t)

		statsMu.Lock()
		stats[f] = Stat{Family: f, Built: true, Entries: n, Duration: elapsed}
		statsMu.Unlock()

		slog.Debug("fastmath: built tables", "family", f.String(), "entries", n, "duration", elapsed)
		return t
	})
}

var (
	sinCosTab  = lazy(SinCos, buildSinCos, (*SinCosTables).entries)
	tanTab     = lazy(Tan, buildTan, (*TaylorTables).entries)
	asinTab    = lazy(Asin, buildAsin, (*TaylorTables).entries)
	asinPowTab = lazy(AsinPow, buildAsinPow, (*AsinPowTables).entries)
	atanTab    = lazy(Atan, buildAtan, (*TaylorTables).entries)
	expTab     = lazy(Exp, buildExp, (*ExpTables).entries)
	logTab     = lazy(Log, buildLog, (*LogTables).entries)
	sqrtTab    = lazy(Sqrt, buildSqrt, (*RootTables).entries)
	cbrtTab    = lazy(Cbrt, buildCbrt, (*RootTables).entries)
	twoPowTab  = lazy(TwoPow, buildTwoPow, (*TwoPowTables).entries)
)

// SinCosTab returns the sin/cos tables, building them on first use.
func SinCosTab() *SinCosTables { return sinCosTab() }

// TanTab returns the tan tables.
func TanTab() *TaylorTables { return tanTab() }

// AsinTab returns the asin tables.
func AsinTab() *TaylorTables { return asinTab() }

// AsinPowTab returns the power-law asin tables, used near +/-1.
func AsinPowTab() *AsinPowTables { return asinPowTab() }

// AtanTab returns the atan tables.
func AtanTab() *TaylorTables { return atanTab() }

// ExpTab returns the exp tables.
func ExpTab() *ExpTables { return expTab() }

// LogTab returns the log tables.
func LogTab() *LogTables { return logTab() }

// SqrtTab returns the sqrt tables.
func SqrtTab() *RootTables { return sqrtTab() }

// CbrtTab returns the cbrt tables.
func CbrtTab() *RootTables { return cbrtTab() }

// TwoPowTab returns the table of 2^p for p in [-1074, 1023].
func TwoPowTab() *TwoPowTables { return twoPowTab() }

// Ensure builds the tables of f if they are not built yet.
func Ensure(f Family) error {
	switch f {
	case SinCos:
		SinCosTab()
	case Tan:
		TanTab()
	case Asin:
		AsinTab()
	case AsinPow:
		AsinPowTab()
	case Atan:
		AtanTab()
	case Exp:
		ExpTab()
	case Log:
		LogTab()
	case Sqrt:
		SqrtTab()
	case Cbrt:
		CbrtTab()
	case TwoPow:
		TwoPowTab()
	default:
		return errors.Wrapf(ErrUnknownFamily, "family %d", int(f))
	}
	return nil
}

// InitAll builds the given families concurrently, or DefaultFamilies when
// none are given, and returns once all of them are ready. Families already
// built return immediately.
func InitAll(ctx context.Context, families ...Family) error {
	if len(families) == 0 {
		families = DefaultFamilies()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, f := range families {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Ensure(f)
		})
	}
	return g.Wait()
}
