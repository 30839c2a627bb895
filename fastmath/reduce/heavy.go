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

package reduce

import (
	"math"

	"github.com/ajroetker/go-fastmath/fastmath/ieee"
	"github.com/ajroetker/go-fastmath/fastmath/tables"
)

// =============================================================================
// Payne-Hanek reduction, after fdlibm's __kernel_rem_pio2
// =============================================================================

// twoOverPi holds the bits of 2/pi in 24-bit chunks.
var twoOverPi = [66]float64{
	0xA2F983, 0x6E4E44, 0x1529FC, 0x2757D1, 0xF534DD, 0xC0DB62,
	0x95993C, 0x439041, 0xFE5163, 0xABDEBB, 0xC561B7, 0x246E3A,
	0x424DD2, 0xE00649, 0x2EEA09, 0xD1921C, 0xFE1DEB, 0x1CB129,
	0xA73EE8, 0x8235F5, 0x2EBB44, 0x84E99C, 0x7026B4, 0x5F7E41,
	0x3991D6, 0x398353, 0x39F49C, 0x845F8B, 0xBDF928, 0x3B1FF8,
	0x97FFDE, 0x05980F, 0xEF2F11, 0x8B5A0A, 0x6D1F6D, 0x367ECF,
	0x27CB09, 0xB74F46, 0x3F669E, 0x5FEA2D, 0x7527BA, 0xC7EBE5,
	0xF17B3D, 0x0739F7, 0x8A5292, 0xEA6BFB, 0x5FB11F, 0x8D5D08,
	0x560330, 0x46FC7B, 0x6BABF0, 0xCFBC20, 0x9AF436, 0x1DA9E3,
	0x91615E, 0xE61B08, 0x659985, 0x5F14A0, 0x68408D, 0xFFD880,
	0x4D7327, 0x310606, 0x1556CA, 0x73A8C9, 0x60E27B, 0xC08C6B,
}

// piO2Tab splits pi/2 into 24-bit chunks.
var piO2Tab = [6]float64{
	math.Float64frombits(0x3FF921FB40000000),
	math.Float64frombits(0x3E74442D00000000),
	math.Float64frombits(0x3CF8469880000000),
	math.Float64frombits(0x3B78CC5160000000),
	math.Float64frombits(0x39F01B8380000000),
	math.Float64frombits(0x387A252040000000),
}

var (
	twoPow24  = math.Ldexp(1, 24)
	twoPowN24 = math.Ldexp(1, -24)
)

// All products below are between 24-bit integers and 24-bit chunks, hence
// exact: fused or not, the arithmetic gives the same bits.

// heavyRound runs one refinement round over q[0..top]. It fills iq[0..top-1]
// with 24-bit digits (most significant last) and returns the fractional
// part z, the integer part n and the sign indicator ih.
func heavyRound(q *[6]float64, iq *[6]int, top, qZero int, twoPowQZero float64) (z float64, n, ih int) {
	z = q[top]
	for k := 0; k < top; k++ {
		fw := float64(int32(twoPowN24 * z))
		iq[k] = int(z - twoPow24*fw)
		z = q[top-1-k] + fw
	}
	for k := top; k < len(iq); k++ {
		iq[k] = 0
	}

	z = math.Mod(z*twoPowQZero, 8)
	n = int(z)
	z -= float64(n)

	last := top - 1
	switch {
	case qZero > 0:
		i := iq[last] >> (24 - qZero)
		n += i
		iq[last] -= i << (24 - qZero)
		ih = iq[last] >> (23 - qZero)
	case qZero == 0:
		ih = iq[last] >> 23
	case z >= 0.5:
		ih = 2
	}

	if ih > 0 {
		n++
		carry := false
		for k := 0; k <= last; k++ {
			if carry {
				iq[k] = 0xFFFFFF - iq[k]
			} else if iq[k] != 0 {
				iq[k] = 0x1000000 - iq[k]
				carry = true
			}
		}
		switch qZero {
		case 1:
			iq[last] &= 0x7FFFFF
		case 2:
			iq[last] &= 0x3FFFFF
		}
		if ih == 2 {
			z = 1 - z
			if carry {
				z -= twoPowQZero
			}
		}
	}
	return z, n, ih
}

// heavyPiO2 reduces a finite positive angle modulo pi/2 with about 64 bits
// of accuracy.
func heavyPiO2(angle float64) Remainder {
	// Rework the exponent so the value is below 2^24, then split it into
	// three 24-bit chunks.
	lx := int64(math.Float64bits(angle))
	exp := ((lx >> 52) & 0x7FF) - (1023 + 23)
	z := math.Float64frombits(uint64(lx - exp<<52))

	var x [3]float64
	x[0] = float64(int32(z))
	z = (z - x[0]) * twoPow24
	x[1] = float64(int32(z))
	z = (z - x[1]) * twoPow24
	x[2] = float64(int32(z))

	e0 := int(exp)
	nx := 3
	if x[2] == 0 {
		nx = 2
		if x[1] == 0 {
			nx = 1
		}
	}

	const jk = 4
	jx := nx - 1
	jv := max(0, (e0-3)/24)
	qZero := e0 - 24*(jv+1)

	// f[k] is the 2/pi chunk aligned with x[0]*2^(24*k).
	j := jv - jx
	var f [8]float64
	for k := 0; k <= jx+jk; k++ {
		if j+k >= 0 {
			f[k] = twoOverPi[j+k]
		}
	}
	var q [6]float64
	for i := 0; i <= jk; i++ {
		q[i] = convolve(&x, &f, jx, i)
	}

	twoPowQZero := ieee.TwoPowNormal(qZero)
	jz := jk

	var iq [6]int
	z, n, ih := heavyRound(&q, &iq, 4, qZero, twoPowQZero)

	if z == 0 {
		if iq[3] == 0 {
			// jz would need more than one extra digit.
			return StdlibPiO2(angle)
		}
		f[jx+5] = twoOverPi[jv+5]
		q[5] = convolve(&x, &f, jx, 5)
		jz++

		z, n, ih = heavyRound(&q, &iq, 5, qZero, twoPowQZero)
		if z == 0 {
			if iq[4] == 0 {
				return StdlibPiO2(angle)
			}
			jz--
			twoPowQZero *= twoPowN24
		}
	}

	if z != 0 {
		z /= twoPowQZero
		if z >= twoPow24 {
			if jz != jk {
				return StdlibPiO2(angle)
			}
			fw := float64(int32(twoPowN24 * z))
			iq[4] = int(z - twoPow24*fw)
			jz++
			twoPowQZero *= twoPow24
			iq[5] = int(fw)
		} else if jz == jk {
			iq[4] = int(z)
		} else {
			iq[5] = int(z)
		}
	}

	// Rebuild the fraction from its digits, most significant first.
	fw := twoPowQZero
	q[5] = 0
	if jz == 5 {
		q[5] = fw * float64(iq[5])
		fw *= twoPowN24
	}
	for k := 4; k >= 0; k-- {
		q[k] = fw * float64(iq[k])
		fw *= twoPowN24
	}

	// Only the high part of the product by pi/2 is kept.
	t := &piO2Tab
	fw = t[0] * q[5]
	fw += t[0]*q[4] + t[1]*q[5]
	fw += t[0]*q[3] + t[1]*q[4] + t[2]*q[5]
	fw += t[0]*q[2] + t[1]*q[3] + t[2]*q[4] + t[3]*q[5]
	fw += t[0]*q[1] + t[1]*q[2] + t[2]*q[3] + t[3]*q[4] + t[4]*q[5]
	fw += t[0]*q[0] + t[1]*q[1] + t[2]*q[2] + t[3]*q[3] + t[4]*q[4] + t[5]*q[5]

	if ih != 0 {
		fw = -fw
	}
	return Remainder{Value: fw, Quadrant: n & 3}
}

// convolve returns sum over m of x[m]*f[i+jx-m], in increasing m.
func convolve(x *[3]float64, f *[8]float64, jx, i int) float64 {
	s := x[0] * f[i+jx]
	for m := 1; m <= jx; m++ {
		s += x[m] * f[i+jx-m]
	}
	return s
}

// heavyTwoPi reduces a finite positive angle modulo 2pi.
func heavyTwoPi(angle float64) float64 {
	r := heavyPiO2(angle)
	switch r.Quadrant {
	case 0:
		return r.Value
	case 1:
		return (r.Value + tables.PiO2Lo) + tables.PiO2Hi
	case 2:
		if r.Value < 0 {
			return (r.Value + tables.PiLo) + tables.PiHi
		}
		return (r.Value - tables.PiLo) - tables.PiHi
	default:
		return (r.Value - tables.PiO2Lo) - tables.PiO2Hi
	}
}

// heavyPi reduces a finite positive angle modulo pi.
func heavyPi(angle float64) float64 {
	r := heavyPiO2(angle)
	if r.Quadrant&1 != 0 {
		if r.Value < 0 {
			return (r.Value + tables.PiO2Lo) + tables.PiO2Hi
		}
		return (r.Value - tables.PiO2Lo) - tables.PiO2Hi
	}
	return r.Value
}

// =============================================================================
// Reductions through the standard library
// =============================================================================

// StdlibTwoPi reduces angle modulo 2pi as atan2(sin, cos).
func StdlibTwoPi(angle float64) float64 {
	return math.Atan2(math.Sin(angle), math.Cos(angle))
}

// StdlibPi reduces angle modulo pi as atan2 of the point (cos, sin)
// reflected into the right half-plane.
func StdlibPi(angle float64) float64 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	if cos < 0 {
		sin, cos = -sin, -cos
	}
	return math.Atan2(sin, cos)
}

// StdlibPiO2 reduces angle modulo pi/2 through atan2, choosing the quadrant
// first so that atan2 lands in [-pi/4, pi/4].
func StdlibPiO2(angle float64) Remainder {
	sin, cos := math.Sin(angle), math.Cos(angle)
	var (
		q          int
		sinA, cosA float64
	)
	switch {
	case cos >= math.Sqrt2/2:
		q, sinA, cosA = 0, sin, cos
	case cos <= -math.Sqrt2/2:
		q, sinA, cosA = 2, -sin, -cos
	case sin > 0:
		q, sinA, cosA = 1, -cos, sin
	default:
		q, sinA, cosA = 3, cos, -sin
	}
	return Remainder{Value: math.Atan2(sinA, cosA), Quadrant: q}
}
