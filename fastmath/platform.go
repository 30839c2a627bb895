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

import "runtime"

// PlatformInfo describes the floating-point capabilities of the host. No
// evaluator depends on it; results are identical on every platform.
type PlatformInfo struct {
	Arch string `toml:"arch" yaml:"arch"`

	// FMA reports hardware fused multiply-add, which the compiler may use
	// for expressions the evaluators do not round explicitly.
	FMA bool `toml:"fma" yaml:"fma"`

	// SIMD names the widest vector extension detected.
	SIMD string `toml:"simd" yaml:"simd"`
}

// Platform returns the capabilities of the host.
func Platform() PlatformInfo {
	return PlatformInfo{
		Arch: runtime.GOARCH,
		FMA:  hasFMA(),
		SIMD: simdName(),
	}
}
