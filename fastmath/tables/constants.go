package tables

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/ieee"
)

// =============================================================================
// Pi splits shared by range reduction and the trigonometric evaluators
// =============================================================================

// Head/tail splits of pi/2, pi and 2pi. The heads keep 33 bits so that
// n*PiO2Hi is exact for the multipliers of the medium reduction tier.
var (
	PiO2Inv = math.Float64frombits(0x3FE45F306DC9C883) // 53 bits of 2/pi
	PiO2Hi  = math.Float64frombits(0x3FF921FB54400000)
	PiO2Lo  = math.Float64frombits(0x3DD0B4611A626331) // pi/2 - PiO2Hi

	PiInv = PiO2Inv / 2
	PiHi  = 2 * PiO2Hi
	PiLo  = 2 * PiO2Lo

	TwoPiInv = PiO2Inv / 4
	TwoPiHi  = 4 * PiO2Hi
	TwoPiLo  = 4 * PiO2Lo
)

// =============================================================================
// Table geometry
// =============================================================================

// Sin/cos: 2^11+1 samples over [0, 2pi].
var (
	SinCosTabsSize = 1<<11 + 1
	SinCosDeltaHi  = TwoPiHi / float64(SinCosTabsSize-1)
	SinCosDeltaLo  = TwoPiLo / float64(SinCosTabsSize-1)
	SinCosIndexer  = 1 / (SinCosDeltaHi + SinCosDeltaLo)

	// SinCosMaxValueForIntModulo bounds index-based reduction: above it the
	// index would leave the int32 range or lose accuracy.
	SinCosMaxValueForIntModulo = (float64(math.MaxInt32>>9) / SinCosIndexer) * 0.99
)

// Tan: virtual 2^12+1 samples over [0, pi/2], stored up to 77 degrees.
var (
	TanVirtualTabsSize = 1<<12 + 1
	TanMaxValueForTabs = 77 * (math.Pi / 180)
	TanTabsSize        = int((TanMaxValueForTabs/(math.Pi/2))*float64(TanVirtualTabsSize-1)) + 1
	TanDeltaHi         = PiO2Hi / float64(TanVirtualTabsSize-1)
	TanDeltaLo         = PiO2Lo / float64(TanVirtualTabsSize-1)
	TanIndexer         = 1 / (TanDeltaHi + TanDeltaLo)

	TanMaxValueForIntModulo = (float64(math.MaxInt32>>9) / TanIndexer) * 0.99
)

// Asin: 2^13+1 samples over [0, sin(73deg)], plus optional power-law
// tables reaching sin(88.6deg).
var (
	AsinMaxValueForTabs = math.Sin(73 * (math.Pi / 180))
	AsinTabsSize        = 1<<13 + 1
	AsinDelta           = AsinMaxValueForTabs / float64(AsinTabsSize-1)
	AsinIndexer         = 1 / AsinDelta

	AsinMaxValueForPowTabs    = math.Sin(88.6 * (math.Pi / 180))
	AsinPowTabsPower          = 84
	AsinPowTabsOneDivMaxValue = 1 / AsinMaxValueForPowTabs
	AsinPowTabsSize           = 1<<12 + 1
	AsinPowTabsSizeMinusOne   = AsinPowTabsSize - 1
)

// Atan: 2^12+1 samples over [0, tan(74deg)].
var (
	AtanMaxValueForTabs = math.Tan(74 * (math.Pi / 180))
	AtanTabsSize        = 1<<12 + 1
	AtanDelta           = AtanMaxValueForTabs / float64(AtanTabsSize-1)
	AtanIndexer         = 1 / AtanDelta
)

// Exp: whole-number table over [-745, 709] and 2^11+1 sub-unit samples
// over [-1, 1].
var (
	ExpOverflowLimit  = math.Float64frombits(0x40862E42FEFA39EF) // 709.78...
	ExpUnderflowLimit = math.Float64frombits(0xC0874910D52D3051) // -745.13...

	ExpHiMin      = int(ExpUnderflowLimit)
	ExpHiMax      = int(ExpOverflowLimit)
	ExpLoTabSize  = 1<<11 + 1
	ExpLoMidIndex = (ExpLoTabSize - 1) / 2
	ExpLoIndexing = ExpLoMidIndex
)

// Log: 2^12 mantissa-indexed entries.
const (
	LogBits    = 12
	LogTabSize = 1 << LogBits
)

// Sqrt and cbrt: per-exponent tables and 2^12 mantissa-indexed tables.
const (
	RootLoBits    = 12
	RootLoTabSize = 1 << RootLoBits
	RootHiTabSize = ieee.MaxExponent - ieee.MinExponent + 1
)
