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
	"log/slog"

	"github.com/ajroetker/go-fastmath/fastmath"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// app holds what the persistent flags resolve to.
type app struct {
	mode       string
	configPath string
	logLevel   string

	engine *fastmath.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fastmath",
		Short:         "Evaluate and check table based elementary functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.mode, "mode", "strict", "engine mode: fast or strict")
	flags.StringVar(&a.configPath, "config", "", "TOML or YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.MarkFlagsMutuallyExclusive("mode", "config")

	root.AddCommand(
		newEvalCmd(a),
		newCompareCmd(a),
		newTablesCmd(a),
		newInfoCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return errors.Wrapf(err, "--log-level")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := a.config()
	if err != nil {
		return err
	}
	a.engine = fastmath.New(cfg)
	slog.Debug("engine configured", "mode", cfg.Mode, "use_stdlib", cfg.UseStdlib,
		"redefined_log", cfg.RedefinedLog, "redefined_sqrt", cfg.RedefinedSqrt,
		"powtabs_for_asin", cfg.PowTabsForAsin)
	return nil
}

func (a *app) config() (fastmath.Config, error) {
	if a.configPath != "" {
		return fastmath.LoadConfigFile(a.configPath)
	}
	mode, err := fastmath.ParseMode(a.mode)
	if err != nil {
		return fastmath.Config{}, err
	}
	return fastmath.ConfigFromEnv(mode)
}
