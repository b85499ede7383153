/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package config loads the global hexgen tool configuration: logging
// preferences and the default output root. This is distinct from the
// per-project .hexgen.yaml consumed by the scaffold package; the global
// config follows XDG conventions and viper precedence (flags > env >
// file > defaults).
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the global configuration for the hexgen tool.
type Config struct {
	// Log configures the console logger.
	Log LogConfig `mapstructure:"log"`

	// Output configures where generated files land by default.
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig stores the logger configuration.
type LogConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `mapstructure:"level"`

	// Format is the output format (text, color, json).
	Format string `mapstructure:"format"`
}

// OutputConfig stores generation output defaults.
type OutputConfig struct {
	// Root is the default output root generation is anchored under when
	// no --output flag is given.
	Root string `mapstructure:"root"`
}

// ErrConfigNotFound indicates no config file was found; defaults apply.
var ErrConfigNotFound = errors.New("config file not found")

// IsNotFoundError reports whether err indicates a missing config file.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}

// setDefaults installs the default values on a viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color")
	v.SetDefault("output.root", ".")
}

// newConfigViper creates a viper instance configured for hexgen's global
// config file conventions: "config.yaml" in the XDG config directories,
// plus the current directory.
func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, dir := range GetConfigDirs() {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("HEXGEN")
	v.AutomaticEnv()

	return v
}

// Load reads the global configuration from the standard search paths.
// A missing file returns the defaults together with ErrConfigNotFound so
// callers can distinguish "defaults because absent" from a real problem.
func Load() (*Config, error) {
	v := newConfigViper()
	setDefaults(v)

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if errors.As(err, &missing) {
			notFound = ErrConfigNotFound
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, notFound
}

// LoadFromPath reads the global configuration from an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	return cfg, nil
}
