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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid fastmath configuration")

// Mode selects the defaults of a Config.
type Mode int

const (
	// ModeFast favors speed: Log and Sqrt delegate to the math package
	// unless asked otherwise.
	ModeFast Mode = iota

	// ModeStrict favors reproducibility: Log uses the table based
	// algorithm by default.
	ModeStrict
)

// String returns "fast" or "strict".
func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeStrict:
		return "strict"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode parses "fast" or "strict", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return ModeFast, nil
	case "strict":
		return ModeStrict, nil
	}
	return 0, errors.Mark(errors.Newf("unknown mode %q", s), ErrInvalidConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeFast && m != ModeStrict {
		return nil, errors.Mark(errors.Newf("unknown mode %d", int(m)), ErrInvalidConfig)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	return m.UnmarshalText([]byte(node.Value))
}

// Config holds the flags of an Engine. The zero value is
// DefaultConfig(ModeFast).
type Config struct {
	Mode Mode `toml:"mode" yaml:"mode"`

	// UseStdlib delegates every function with a math package counterpart
	// to that counterpart.
	UseStdlib bool `toml:"use_stdlib" yaml:"use_stdlib"`

	// RedefinedLog selects the table based Log and Log10.
	RedefinedLog bool `toml:"redefined_log" yaml:"redefined_log"`

	// RedefinedSqrt selects the table based Sqrt.
	RedefinedSqrt bool `toml:"redefined_sqrt" yaml:"redefined_sqrt"`

	// PowTabsForAsin enables the power-law asin tables, which keep the
	// table path up to sin(88.6 degrees).
	PowTabsForAsin bool `toml:"powtabs_for_asin" yaml:"powtabs_for_asin"`
}

// DefaultConfig returns the defaults of mode.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:         mode,
		RedefinedLog: mode == ModeStrict,
	}
}

// Environment variable suffixes read by ConfigFromEnv. Fast mode reads
// FASTMATH_<suffix>, strict mode FASTMATH_STRICT_<suffix>.
const (
	EnvUseStdlib      = "USE_STDLIB"
	EnvRedefinedLog   = "FAST_LOG"
	EnvRedefinedSqrt  = "FAST_SQRT"
	EnvPowTabsForAsin = "POWTABS_ASIN"
)

// EnvPrefix returns the environment variable prefix of mode.
func EnvPrefix(mode Mode) string {
	if mode == ModeStrict {
		return "FASTMATH_STRICT_"
	}
	return "FASTMATH_"
}

// ConfigFromEnv returns DefaultConfig(mode) overridden by the environment.
// Empty variables keep their default.
func ConfigFromEnv(mode Mode) (Config, error) {
	cfg := DefaultConfig(mode)
	prefix := EnvPrefix(mode)
	for _, f := range []struct {
		suffix string
		dst    *bool
	}{
		{EnvUseStdlib, &cfg.UseStdlib},
		{EnvRedefinedLog, &cfg.RedefinedLog},
		{EnvRedefinedSqrt, &cfg.RedefinedSqrt},
		{EnvPowTabsForAsin, &cfg.PowTabsForAsin},
	} {
		name := prefix + f.suffix
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return DefaultConfig(mode), errors.Mark(errors.Wrapf(err, "parsing %s", name), ErrInvalidConfig)
		}
		*f.dst = b
	}
	return cfg, nil
}

// LoadConfigFile reads a Config from a .toml, .yaml or .yml file. Fields
// missing from the file take the defaults of the mode it names, or of
// ModeStrict when it names none. Unknown fields are rejected.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	var decode func([]byte, any) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		decode = decodeTOML
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return Config{}, errors.Mark(errors.Newf("config %s: unsupported extension %q", path, ext), ErrInvalidConfig)
	}

	// The mode decides the defaults, so it is read first.
	head := struct {
		Mode *Mode `toml:"mode" yaml:"mode"`
	}{}
	if err := decodeLoose(path, data, &head); err != nil {
		return Config{}, err
	}
	mode := ModeStrict
	if head.Mode != nil {
		mode = *head.Mode
	}
	cfg := DefaultConfig(mode)
	if err := decode(data, &cfg); err != nil {
		return Config{}, errors.Mark(errors.Wrapf(err, "decoding config %s", path), ErrInvalidConfig)
	}
	return cfg, nil
}

func decodeTOML(data []byte, v any) error {
	return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(v)
}

func decodeYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// decodeLoose decodes data ignoring unknown fields.
func decodeLoose(path string, data []byte, v any) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "decoding config %s", path), ErrInvalidConfig)
	}
	return nil
}

// MarshalConfig renders cfg in format "toml" or "yaml".
func MarshalConfig(cfg Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return toml.Marshal(cfg)
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	}
	return nil, errors.Mark(errors.Newf("unsupported format %q", format), ErrInvalidConfig)
}
