// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/bufbuild/pseudocompile/export"
)

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = "pseudoc.toml"

// Config holds the settings read from a pseudoc.toml file.
type Config struct {
	Analyze AnalyzeConfig `toml:"analyze"`
	Output  OutputConfig  `toml:"output"`
}

// AnalyzeConfig holds settings for batch analysis.
type AnalyzeConfig struct {
	// The maximum number of files analyzed at once. Zero means one per CPU.
	MaxParallelism int `toml:"max_parallelism"`
}

// OutputConfig holds settings for reports and exports.
type OutputConfig struct {
	// The default export format.
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
	Tree   bool   `toml:"tree"`
	JSON   bool   `toml:"json"`
}

// DefaultConfig returns the settings used when there is no config file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: string(export.JSON)},
	}
}

// LoadConfig reads the config file at path, filling in defaults for any
// settings it omits. If the file does not exist and required is false, the
// defaults are returned.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Analyze.MaxParallelism < 0 {
		return nil, fmt.Errorf("config %s: max_parallelism must not be negative", path)
	}
	if _, err := export.ParseFormat(cfg.Output.Format); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
