package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/finbook/banking"
	"gopkg.in/yaml.v3"
)

var configFile = flag.String("config-file", "bnk.yaml", "Path to the driver configuration file (YAML)")

// Config holds driver-side settings. None of them reach into the core
// account rules; in particular the withdrawal ceiling is not
// configurable.
type Config struct {
	// Currency is the ISO 4217 code every entered amount is read in.
	Currency string `yaml:"currency"`
	// Style is the glamour style used to render markdown output
	// (auto, dark, light, notty).
	Style string `yaml:"style"`
	// LogPrefix prefixes every transaction log line.
	LogPrefix string `yaml:"log_prefix"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Currency:  "USD",
		Style:     "auto",
		LogPrefix: banking.DefaultLogPrefix,
	}
}

// LoadConfig reads the configuration file. A missing file is not an
// error: defaults apply.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, config file %q does not exist, using defaults", *configFile)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", *configFile, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", *configFile, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultConfig().Currency
	}
	if err := banking.ValidateCurrency(cfg.Currency); err != nil {
		return cfg, fmt.Errorf("invalid config file %q: %w", *configFile, err)
	}
	if cfg.Style == "" {
		cfg.Style = DefaultConfig().Style
	}
	return cfg, nil
}
