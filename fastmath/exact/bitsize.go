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

package exact

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ToRange clamps v to [lo, hi]. lo must not exceed hi.
func ToRange[T constraints.Ordered](lo, hi, v T) T {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// IsInRange reports whether lo <= v <= hi.
func IsInRange[T constraints.Ordered](lo, hi, v T) bool {
	return lo <= v && v <= hi
}

// CheckInRange returns ErrInvalidArgument unless lo <= v <= hi.
func CheckInRange[T constraints.Ordered](lo, hi, v T) error {
	if !IsInRange(lo, hi, v) {
		return errors.Wrapf(ErrInvalidArgument, "%v not in [%v, %v]", v, lo, hi)
	}
	return nil
}

// Log2 returns floor(log2(v)) for v > 0.
func Log2[T Int](v T) (int, error) {
	if v <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "log2(%d)", v)
	}
	return 63 - bits.LeadingZeros64(uint64(v)), nil
}

func checkSignedBitSize[T Int](bitSize int) error {
	if w := bitWidth[T](); bitSize < 1 || bitSize > w {
		return errors.Wrapf(ErrInvalidArgument, "signed bit size %d not in [1, %d]", bitSize, w)
	}
	return nil
}

func checkUnsignedBitSize[T Int](bitSize int) error {
	if w := bitWidth[T]() - 1; bitSize < 1 || bitSize > w {
		return errors.Wrapf(ErrInvalidArgument, "unsigned bit size %d not in [1, %d]", bitSize, w)
	}
	return nil
}

// MinSignedForBitSize returns the smallest value representable as a signed
// integer of bitSize bits, bitSize in [1, width of T].
func MinSignedForBitSize[T Int](bitSize int) (T, error) {
	if err := checkSignedBitSize[T](bitSize); err != nil {
		return 0, err
	}
	return minOf[T]() >> (bitWidth[T]() - bitSize), nil
}

// MaxSignedForBitSize returns the largest value representable as a signed
// integer of bitSize bits, bitSize in [1, width of T].
func MaxSignedForBitSize[T Int](bitSize int) (T, error) {
	m, err := MinSignedForBitSize[T](bitSize)
	if err != nil {
		return 0, err
	}
	return ^m, nil
}

// MaxUnsignedForBitSize returns 2^bitSize-1, bitSize in [1, width of T - 1].
func MaxUnsignedForBitSize[T Int](bitSize int) (T, error) {
	if err := checkUnsignedBitSize[T](bitSize); err != nil {
		return 0, err
	}
	return maxOf[T]() >> (bitWidth[T]() - 1 - bitSize), nil
}

// BitSizeForSigned returns the minimum number of bits needed to hold v as a
// signed integer.
func BitSizeForSigned[T Int](v T) int {
	w := bitWidth[T]()
	if v < 0 {
		v = -v - 1
	}
	return w + 1 - (bits.LeadingZeros64(uint64(v)) - (64 - w))
}

// BitSizeForUnsigned returns the minimum number of bits needed to hold v as
// an unsigned integer; zero needs one bit.
func BitSizeForUnsigned[T Int](v T) (int, error) {
	if v < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "negative value %d has no unsigned bit size", v)
	}
	if v == 0 {
		return 1, nil
	}
	return 64 - bits.LeadingZeros64(uint64(v)), nil
}

// IsInRangeSigned reports whether v fits in a signed integer of bitSize bits.
func IsInRangeSigned[T Int](v T, bitSize int) (bool, error) {
	if err := checkSignedBitSize[T](bitSize); err != nil {
		return false, err
	}
	return BitSizeForSigned(v) <= bitSize, nil
}

// IsInRangeUnsigned reports whether v fits in an unsigned integer of bitSize
// bits. Negative values never fit.
func IsInRangeUnsigned[T Int](v T, bitSize int) (bool, error) {
	if err := checkUnsignedBitSize[T](bitSize); err != nil {
		return false, err
	}
	if v < 0 {
		return false, nil
	}
	n, _ := BitSizeForUnsigned(v)
	return n <= bitSize, nil
}

// CheckInRangeSigned returns ErrInvalidArgument if bitSize is invalid or v
// does not fit in it.
func CheckInRangeSigned[T Int](v T, bitSize int) error {
	ok, err := IsInRangeSigned(v, bitSize)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "%d does not fit in %d signed bits", v, bitSize)
	}
	return nil
}

// CheckInRangeUnsigned is CheckInRangeSigned for unsigned bit sizes.
func CheckInRangeUnsigned[T Int](v T, bitSize int) error {
	ok, err := IsInRangeUnsigned(v, bitSize)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "%d does not fit in %d unsigned bits", v, bitSize)
	}
	return nil
}
