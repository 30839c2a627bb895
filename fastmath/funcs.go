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

// Package level functions evaluate with Default().

func Sin(x float64) float64 { return Default().Sin(x) }
func Cos(x float64) float64 { return Default().Cos(x) }
func Tan(x float64) float64 { return Default().Tan(x) }
func Asin(x float64) float64 { return Default().Asin(x) }
func Acos(x float64) float64 { return Default().Acos(x) }
func Atan(x float64) float64 { return Default().Atan(x) }
func Atan2(y, x float64) float64 { return Default().Atan2(y, x) }
func Sinh(x float64) float64 { return Default().Sinh(x) }
func Cosh(x float64) float64 { return Default().Cosh(x) }
func Tanh(x float64) float64 { return Default().Tanh(x) }
func Asinh(x float64) float64 { return Default().Asinh(x) }
func Acosh(x float64) float64 { return Default().Acosh(x) }
func Atanh(x float64) float64 { return Default().Atanh(x) }
func Exp(x float64) float64 { return Default().Exp(x) }
func Expm1(x float64) float64 { return Default().Expm1(x) }
func Log(x float64) float64 { return Default().Log(x) }
func Log10(x float64) float64 { return Default().Log10(x) }
func Log1p(x float64) float64 { return Default().Log1p(x) }
func Pow(x, p float64) float64 { return Default().Pow(x, p) }
func Sqrt(x float64) float64 { return Default().Sqrt(x) }
func Cbrt(x float64) float64 { return Default().Cbrt(x) }
func Hypot(x, y float64) float64 { return Default().Hypot(x, y) }
func Hypot3(x, y, z float64) float64 { return Default().Hypot3(x, y, z) }
