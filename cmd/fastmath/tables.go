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
	"strconv"

	"github.com/ajroetker/go-fastmath/fastmath"
	"github.com/ajroetker/go-fastmath/fastmath/tables"
	"github.com/spf13/cobra"
)

func newTablesCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Build the lookup tables and report their size and build time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if all {
				err = fastmath.InitTables(cmd.Context())
			} else {
				err = a.engine.InitTables(cmd.Context())
			}
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "FAMILY", "BUILT", "ENTRIES", "DURATION")
			total := 0
			for _, s := range tables.Stats() {
				total += s.Entries
				t.append(s.Family.String(), strconv.FormatBool(s.Built), strconv.Itoa(s.Entries), s.Duration.String())
			}
			t.append("total", "", strconv.Itoa(total), "")
			return t.render()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "build every family, not only those the engine uses")
	return cmd
}
