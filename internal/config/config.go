// Package config loads the optional .vasmrc.toml project file that
// supplies default values for the CLI's output/debug flags (spec.md §6,
// SPEC_FULL.md §10.2). Grounded on
// lookbusy1344-arm_emulator/config/config.go's DefaultConfig/LoadFrom
// shape.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults a .vasmrc.toml file can set. Flags passed on
// the command line always take priority over these.
type Config struct {
	Assemble struct {
		Output string `toml:"output"`
		Debug  bool   `toml:"debug"`
	} `toml:"assemble"`
}

// Default returns the built-in defaults, matching the CLI's own flag
// defaults (spec.md §6: output defaults to "a.out").
func Default() *Config {
	cfg := &Config{}
	cfg.Assemble.Output = "a.out"
	cfg.Assemble.Debug = false
	return cfg
}

// Load reads .vasmrc.toml from the given directory. A missing file is not
// an error — it silently yields the defaults. A present-but-malformed
// file is.
func Load(dir string) (*Config, error) {
	return LoadFrom(dir + string(os.PathSeparator) + ".vasmrc.toml")
}

// LoadFrom reads the config file at an exact path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
