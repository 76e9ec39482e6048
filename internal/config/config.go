// Package config provides configuration loading for pgn-parser.
//
// Values are layered: defaults, then a TOML file, then .env files, then
// PGNPARSER_* environment variables. Command-line flags are applied last
// by the caller through a Builder.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "pgnparser"

// Config holds all program configuration.
type Config struct {
	ScanConfig
	OutputConfig
	DuplicateConfig

	// Progress draws a progress bar on stderr when it is a terminal.
	Progress bool `toml:"progress"`

	// MetricsFile, when set, receives the run metrics in the Prometheus
	// text format.
	MetricsFile string `toml:"metrics_file" split_words:"true"`

	// Debug enables debug logging with the console handler.
	Debug bool `toml:"debug"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ScanConfig:      *NewScanConfig(),
		OutputConfig:    *NewOutputConfig(),
		DuplicateConfig: *NewDuplicateConfig(),
	}
}

// DefaultPath returns the config file looked up when none is given:
// pgn-parser/config.toml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pgn-parser", "config.toml")
}

// Load builds a Config from defaults, the TOML file at path, the given .env
// files (".env" when none) and the environment. An explicit path must
// exist; the default path and .env files are optional.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	return cfg, nil
}

func (c *Config) decodeFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(errors.IO(err), "config %s", path)
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parse config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return &errors.ConfigError{
			Key:    strings.Join(keys, ", "),
			Value:  path,
			Reason: "unknown key",
		}
	}
	return nil
}

// loadEnvFiles exports the variables of the given .env files that are not
// already set. Missing files are skipped.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrInvalidConfig, "load %s: %v", f, err)
		}
	}
	return nil
}

// Validate checks every setting and returns the first problem found as a
// *errors.ConfigError.
func (c *Config) Validate() error {
	if err := c.ScanConfig.Validate(); err != nil {
		return err
	}
	if err := c.OutputConfig.Validate(); err != nil {
		return err
	}
	return c.DuplicateConfig.Validate()
}

func defaultThreads() int {
	return runtime.NumCPU()
}
