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
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvalidConfig checks for the ErrInvalidConfig mark, which only
// errors.Is from cockroachdb/errors sees.
func requireInvalidConfig(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, Config{}, DefaultConfig(ModeFast))
	assert.Equal(t, Config{Mode: ModeStrict, RedefinedLog: true}, DefaultConfig(ModeStrict))
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"fast": ModeFast, "STRICT": ModeStrict, " strict ": ModeStrict} {
		got, err := ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseMode("turbo")
	requireInvalidConfig(t, err)
	assert.Equal(t, "Mode(7)", Mode(7).String())
	_, err = Mode(7).MarshalText()
	requireInvalidConfig(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, mode := range []Mode{ModeFast, ModeStrict} {
			for _, suffix := range []string{EnvUseStdlib, EnvRedefinedLog, EnvRedefinedSqrt, EnvPowTabsForAsin} {
				t.Setenv(EnvPrefix(mode)+suffix, "")
			}
			cfg, err := ConfigFromEnv(mode)
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig(mode), cfg)
		}
	})

	t.Run("fast", func(t *testing.T) {
		t.Setenv("FASTMATH_FAST_SQRT", "true")
		t.Setenv("FASTMATH_POWTABS_ASIN", "1")
		t.Setenv("FASTMATH_STRICT_FAST_SQRT", "false")
		cfg, err := ConfigFromEnv(ModeFast)
		require.NoError(t, err)
		assert.Equal(t, Config{Mode: ModeFast, RedefinedSqrt: true, PowTabsForAsin: true}, cfg)
	})

	t.Run("strict", func(t *testing.T) {
		t.Setenv("FASTMATH_STRICT_FAST_LOG", "false")
		t.Setenv("FASTMATH_STRICT_USE_STDLIB", "true")
		t.Setenv("FASTMATH_FAST_LOG", "true")
		cfg, err := ConfigFromEnv(ModeStrict)
		require.NoError(t, err)
		assert.Equal(t, Config{Mode: ModeStrict, UseStdlib: true}, cfg)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("FASTMATH_STRICT_FAST_SQRT", "maybe")
		cfg, err := ConfigFromEnv(ModeStrict)
		requireInvalidConfig(t, err)
		assert.Contains(t, err.Error(), "FASTMATH_STRICT_FAST_SQRT")
		assert.Equal(t, DefaultConfig(ModeStrict), cfg)
	})
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Config
	}{
		{
			name:    "toml strict",
			file:    "fm.toml",
			content: "mode = \"strict\"\nredefined_sqrt = true\n",
			want:    Config{Mode: ModeStrict, RedefinedLog: true, RedefinedSqrt: true},
		},
		{
			name:    "toml without mode",
			file:    "fm.toml",
			content: "powtabs_for_asin = true\n",
			want:    Config{Mode: ModeStrict, RedefinedLog: true, PowTabsForAsin: true},
		},
		{
			name:    "yaml fast",
			file:    "fm.yaml",
			content: "mode: fast\nuse_stdlib: true\n",
			want:    Config{Mode: ModeFast, UseStdlib: true},
		},
		{
			name:    "yml overrides mode default",
			file:    "fm.yml",
			content: "mode: strict\nredefined_log: false\n",
			want:    Config{Mode: ModeStrict},
		},
		{
			name:    "empty yaml",
			file:    "fm.yaml",
			content: "",
			want:    DefaultConfig(ModeStrict),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfigFile(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadConfigFile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown toml field", "fm.toml", "fast_everything = true\n"},
		{"unknown yaml field", "fm.yaml", "fast_everything: true\n"},
		{"bad mode", "fm.toml", "mode = \"turbo\"\n"},
		{"bad extension", "fm.json", "{}"},
		{"bad type", "fm.yaml", "use_stdlib: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(writeConfig(t, tt.file, tt.content))
			requireInvalidConfig(t, err)
		})
	}

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalConfig(t *testing.T) {
	cfg := Config{Mode: ModeStrict, RedefinedSqrt: true, PowTabsForAsin: true}
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			data, err := MarshalConfig(cfg, format)
			require.NoError(t, err)
			assert.Contains(t, string(data), "strict")
			got, err := LoadConfigFile(writeConfig(t, "fm."+format, string(data)))
			require.NoError(t, err)
			if diff := cmp.Diff(cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
	_, err := MarshalConfig(cfg, "json")
	requireInvalidConfig(t, err)
}
