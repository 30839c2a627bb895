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

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-fastmath/fastmath/ieee"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// table renders rows as an aligned table on terminals and as
// tab-separated values otherwise.
type table struct {
	w      io.Writer
	tw     *tablewriter.Table
	header []string
	rows   [][]string
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{w: w, header: header}
	if isTerminal(w) {
		t.tw = tablewriter.NewWriter(w)
		t.tw.SetHeader(header)
		t.tw.SetAutoFormatHeaders(false)
		t.tw.SetBorder(false)
		t.tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	}
	return t
}

func (t *table) append(cells ...string) {
	if t.tw != nil {
		t.tw.Append(cells)
		return
	}
	t.rows = append(t.rows, cells)
}

func (t *table) render() error {
	if t.tw != nil {
		t.tw.Render()
		return nil
	}
	for _, row := range append([][]string{t.header}, t.rows...) {
		if _, err := fmt.Fprintln(t.w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatError(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}

// ulps returns |got-want| in units of the ulp of want. Matching NaN and
// infinities count as 0, mismatching ones as +Inf.
func ulps(want, got float64) float64 {
	switch {
	case want == got || (math.IsNaN(want) && math.IsNaN(got)):
		return 0
	case ieee.IsNaNOrInf(want) || ieee.IsNaNOrInf(got):
		return math.Inf(1)
	}
	return math.Abs(got-want) / ieee.Ulp(want)
}

// ulps32 is ulps for float32 results.
func ulps32(want, got float32) float64 {
	switch {
	case want == got || (want != want && got != got):
		return 0
	case ieee.IsNaNOrInf32(want) || ieee.IsNaNOrInf32(got):
		return math.Inf(1)
	}
	return math.Abs(float64(got)-float64(want)) / float64(ieee.Ulp32(want))
}
