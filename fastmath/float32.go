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

import "github.com/chewxy/math32"

// Float32 entry points evaluate in float64 and round once. With UseStdlib
// they call math32.

// Sin32 is Sin for float32.
func (e *Engine) Sin32(x float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Sin(x)
	}
	return float32(e.Sin(float64(x)))
}

// Cos32 is Cos for float32.
func (e *Engine) Cos32(x float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Cos(x)
	}
	return float32(e.Cos(float64(x)))
}

// Exp32 is Exp for float32.
func (e *Engine) Exp32(x float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Exp(x)
	}
	return float32(e.Exp(float64(x)))
}

// Log32 is Log for float32.
func (e *Engine) Log32(x float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Log(x)
	}
	return float32(e.Log(float64(x)))
}

// Sqrt32 is Sqrt for float32.
func (e *Engine) Sqrt32(x float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Sqrt(x)
	}
	return float32(e.Sqrt(float64(x)))
}

// Pow32 is Pow for float32.
func (e *Engine) Pow32(x, p float32) float32 {
	if e.cfg.UseStdlib {
		return math32.Pow(x, p)
	}
	return float32(e.Pow(float64(x), float64(p)))
}
