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

// Command fastmath evaluates and checks the fastmath functions from the
// command line.
//
// Usage:
//
//	fastmath eval pow 2 0.5
//	fastmath eval sin 0.1 1e20 --mode fast
//	fastmath compare sin cos exp --samples 1000000 --min -100 --max 100
//	fastmath compare --float32
//	fastmath tables --all
//	fastmath info --format toml
//
// The engine is configured by --mode together with the FASTMATH_* or
// FASTMATH_STRICT_* environment variables, or by a --config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
