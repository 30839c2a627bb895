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
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnknownOperation is returned for operation names a Field does not know.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names accepted by Field.BinaryOperation.
const (
	OpPlus  = "+"
	OpMinus = "-"
	OpTimes = "*"
	OpDiv   = "/"
	OpPow   = "pow"
)

// Field exposes an Engine as an extended field over float64: the four
// arithmetic operations plus the elementary functions, for generic
// algebra code.
type Field struct {
	e *Engine
}

// Field returns the field backed by e.
func (e *Engine) Field() Field { return Field{e: e} }

// Engine returns the engine f evaluates with.
func (f Field) Engine() *Engine { return f.e }

func (Field) Zero() float64 { return 0 }
func (Field) One() float64 { return 1 }
func (Field) Number(v float64) float64 { return v }
func (Field) Add(a, b float64) float64 { return a + b }
func (Field) Subtract(a, b float64) float64 { return a - b }
func (Field) Multiply(a, b float64) float64 { return a * b }
func (Field) Divide(a, b float64) float64 { return a / b }
func (Field) Scale(a, value float64) float64 { return a * value }
func (Field) Negate(a float64) float64 { return -a }
func (Field) Norm(a float64) float64 { return math.Abs(a) }
func (f Field) Sin(a float64) float64 { return f.e.Sin(a) }
func (f Field) Cos(a float64) float64 { return f.e.Cos(a) }
func (f Field) Tan(a float64) float64 { return f.e.Tan(a) }
func (f Field) Asin(a float64) float64 { return f.e.Asin(a) }
func (f Field) Acos(a float64) float64 { return f.e.Acos(a) }
func (f Field) Atan(a float64) float64 { return f.e.Atan(a) }
func (f Field) Sinh(a float64) float64 { return f.e.Sinh(a) }
func (f Field) Cosh(a float64) float64 { return f.e.Cosh(a) }
func (f Field) Tanh(a float64) float64 { return f.e.Tanh(a) }
func (f Field) Asinh(a float64) float64 { return f.e.Asinh(a) }
func (f Field) Acosh(a float64) float64 { return f.e.Acosh(a) }
func (f Field) Atanh(a float64) float64 { return f.e.Atanh(a) }
func (f Field) Sqrt(a float64) float64 { return f.e.Sqrt(a) }
func (f Field) Exp(a float64) float64 { return f.e.Exp(a) }
func (f Field) Ln(a float64) float64 { return f.e.Log(a) }
func (f Field) Power(a, p float64) float64 { return f.e.Pow(a, p) }

// BinaryOperation returns the function named by op, one of the Op*
// constants.
func (f Field) BinaryOperation(op string) (func(a, b float64) float64, error) {
	switch op {
	case OpPlus:
		return f.Add, nil
	case OpMinus:
		return f.Subtract, nil
	case OpTimes:
		return f.Multiply, nil
	case OpDiv:
		return f.Divide, nil
	case OpPow:
		return f.Power, nil
	}
	return nil, errors.Wrapf(ErrUnknownOperation, "binary operation %q", op)
}

// UnaryOperation returns the function named op: "-" or one of the
// lower-case names of the elementary functions, with "ln" for Log.
func (f Field) UnaryOperation(op string) (func(a float64) float64, error) {
	if fn, ok := f.unary()[op]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownOperation, "unary operation %q", op)
}

func (f Field) unary() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		OpMinus: f.Negate,
		"sin":   f.Sin,
		"cos":   f.Cos,
		"tan":   f.Tan,
		"asin":  f.Asin,
		"acos":  f.Acos,
		"atan":  f.Atan,
		"sinh":  f.Sinh,
		"cosh":  f.Cosh,
		"tanh":  f.Tanh,
		"asinh": f.Asinh,
		"acosh": f.Acosh,
		"atanh": f.Atanh,
		"sqrt":  f.Sqrt,
		"exp":   f.Exp,
		"ln":    f.Ln,
	}
}
