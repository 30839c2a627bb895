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

// Package exact provides overflow-aware integer arithmetic for int32 and
// int64.
//
// Each operation comes in two flavours: a checked one returning ErrOverflow
// when the mathematical result does not fit, and a Bounded one that
// saturates to the nearest extreme of the type instead of wrapping.
package exact

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

var (
	// ErrOverflow is returned when a result does not fit in the target type.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidArgument is returned for arguments outside an operation's domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Int is the set of signed integer types handled by this package.
type Int interface {
	~int32 | ~int64
}

// bitWidth returns 32 or 64.
func bitWidth[T Int]() int {
	if T(math.MaxInt32)+1 < 0 {
		return 32
	}
	return 64
}

func minOf[T Int]() T {
	return T(-1) << (bitWidth[T]() - 1)
}

func maxOf[T Int]() T {
	return ^minOf[T]()
}

// Add returns a+b, or ErrOverflow.
func Add[T Int](a, b T) (T, error) {
	sum := a + b
	// Overflow iff both operands have the sign opposite to the wrapped sum.
	if (a^sum)&(b^sum) < 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

// AddBounded returns a+b clamped to the range of T.
func AddBounded[T Int](a, b T) T {
	sum := a + b
	if (a^sum)&(b^sum) < 0 {
		if sum >= 0 {
			return minOf[T]()
		}
		return maxOf[T]()
	}
	return sum
}

// Sub returns a-b, or ErrOverflow.
func Sub[T Int](a, b T) (T, error) {
	diff := a - b
	if (a^b)&(a^diff) < 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", a, b)
	}
	return diff, nil
}

// SubBounded returns a-b clamped to the range of T.
func SubBounded[T Int](a, b T) T {
	diff := a - b
	if (a^b)&(a^diff) < 0 {
		if diff >= 0 {
			return minOf[T]()
		}
		return maxOf[T]()
	}
	return diff
}

func mulOverflows[T Int](a, b, product T) bool {
	if a == 0 {
		return false
	}
	if a == -1 {
		return b == minOf[T]()
	}
	return product/a != b
}

// Mul returns a*b, or ErrOverflow.
func Mul[T Int](a, b T) (T, error) {
	product := a * b
	if mulOverflows(a, b, product) {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return product, nil
}

// MulBounded returns a*b clamped to the range of T.
func MulBounded[T Int](a, b T) T {
	product := a * b
	if mulOverflows(a, b, product) {
		if a^b >= 0 {
			return maxOf[T]()
		}
		return minOf[T]()
	}
	return product
}

// Increment returns a+1, or ErrOverflow for the maximum value.
func Increment[T Int](a T) (T, error) {
	if a == maxOf[T]() {
		return 0, errors.Wrapf(ErrOverflow, "%d + 1", a)
	}
	return a + 1, nil
}

// IncrementBounded returns a+1, or a when a is already the maximum.
func IncrementBounded[T Int](a T) T {
	if a == maxOf[T]() {
		return a
	}
	return a + 1
}

// Decrement returns a-1, or ErrOverflow for the minimum value.
func Decrement[T Int](a T) (T, error) {
	if a == minOf[T]() {
		return 0, errors.Wrapf(ErrOverflow, "%d - 1", a)
	}
	return a - 1, nil
}

// DecrementBounded returns a-1, or a when a is already the minimum.
func DecrementBounded[T Int](a T) T {
	if a == minOf[T]() {
		return a
	}
	return a - 1
}

// Negate returns -a, or ErrOverflow for the minimum value.
func Negate[T Int](a T) (T, error) {
	if a == minOf[T]() {
		return 0, errors.Wrapf(ErrOverflow, "-(%d)", a)
	}
	return -a, nil
}

// NegateBounded returns -a, mapping the minimum value to the maximum.
func NegateBounded[T Int](a T) T {
	if a == minOf[T]() {
		return maxOf[T]()
	}
	return -a
}

// AsInt32 returns a as an int32, or ErrOverflow if it does not fit.
func AsInt32(a int64) (int32, error) {
	if a != int64(int32(a)) {
		return 0, errors.Wrapf(ErrOverflow, "%d does not fit in int32", a)
	}
	return int32(a), nil
}

// ToInt32 returns a clamped to the int32 range.
func ToInt32(a int64) int32 {
	if a != int64(int32(a)) {
		if a < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return int32(a)
}

// TwoPowInt32 returns 2^power for power in [0, 30].
func TwoPowInt32(power int) (int32, error) {
	if power < 0 || power > 30 {
		return 0, errors.Wrapf(ErrOverflow, "2^%d as int32", power)
	}
	return int32(1) << power, nil
}

// TwoPowInt32Bounded returns 2^power with power clamped to [0, 30].
func TwoPowInt32Bounded(power int) int32 {
	return int32(1) << ToRange(0, 30, power)
}

// TwoPowInt64 returns 2^power for power in [0, 62].
func TwoPowInt64(power int) (int64, error) {
	if power < 0 || power > 62 {
		return 0, errors.Wrapf(ErrOverflow, "2^%d as int64", power)
	}
	return int64(1) << power, nil
}

// TwoPowInt64Bounded returns 2^power with power clamped to [0, 62].
func TwoPowInt64Bounded(power int) int64 {
	return int64(1) << ToRange(0, 62, power)
}

// FloorDiv returns the largest integer <= x/y. It panics if y is zero, and
// FloorDiv(min, -1) wraps to min.
func FloorDiv[T Int](x, y T) T {
	q := x / y
	if (x^y) < 0 && q*y != x {
		q--
	}
	return q
}

// FloorMod returns x - FloorDiv(x, y)*y, which has the sign of y.
func FloorMod[T Int](x, y T) T {
	m := x % y
	if m != 0 && (m^y) < 0 {
		m += y
	}
	return m
}

// MultiplyHigh returns the high 64 bits of the 128-bit signed product a*b.
func MultiplyHigh(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	// Signed correction of the unsigned high word.
	h := int64(hi)
	h -= (a >> 63) & b
	h -= (b >> 63) & a
	return h
}

// MultiplyFull returns the exact 64-bit product of two int32 values.
func MultiplyFull(a, b int32) int64 {
	return int64(a) * int64(b)
}
