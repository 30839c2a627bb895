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
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// platformSection wraps the platform so it renders as its own table or
// mapping after the configuration.
type platformSection struct {
	Platform fastmath.PlatformInfo `toml:"platform" yaml:"platform"`
}

func newInfoCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the effective configuration and the platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.engine.Config()
			platform := fastmath.Platform()
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				t := newTable(out, "KEY", "VALUE")
				t.append("mode", cfg.Mode.String())
				t.append("use_stdlib", strconv.FormatBool(cfg.UseStdlib))
				t.append("redefined_log", strconv.FormatBool(cfg.RedefinedLog))
				t.append("redefined_sqrt", strconv.FormatBool(cfg.RedefinedSqrt))
				t.append("powtabs_for_asin", strconv.FormatBool(cfg.PowTabsForAsin))
				t.append("arch", platform.Arch)
				t.append("fma", strconv.FormatBool(platform.FMA))
				t.append("simd", platform.SIMD)
				return t.render()
			case "toml", "yaml":
				data, err := fastmath.MarshalConfig(cfg, format)
				if err != nil {
					return err
				}
				var section []byte
				if format == "toml" {
					section, err = toml.Marshal(platformSection{platform})
				} else {
					section, err = yaml.Marshal(platformSection{platform})
				}
				if err != nil {
					return errors.Wrap(err, "encoding platform")
				}
				_, err = out.Write(append(append(data, '\n'), section...))
				return err
			}
			return errors.Newf("unknown format %q, want text, toml or yaml", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, toml or yaml")
	return cmd
}
