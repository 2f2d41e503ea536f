// SPDX-License-Identifier: MIT

// Package config loads the settings of the linalg command from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/linalg/decomp"
)

// EnvPrefix is prepended to every variable name: LINALG_ROWS, LINALG_LOG_LEVEL, ...
const EnvPrefix = "LINALG"

// Precision names accepted in LINALG_PRECISION.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all command configuration.
type Config struct {
	// Rows and Cols give the shape of the generated input. LU and Det only
	// run when they are equal.
	Rows int `envconfig:"ROWS" default:"4"`
	Cols int `envconfig:"COLS" default:"4"`

	// Seed feeds the PCG stream the input is drawn from.
	Seed uint64 `envconfig:"SEED" default:"1"`

	// Method selects the QR algorithm by name (see decomp.ParseMethod).
	Method string `envconfig:"METHOD" default:"householder"`

	// Precision is "float32" or "float64".
	Precision string `envconfig:"PRECISION" default:"float64"`

	// ExactPivot switches LU to the exact-zero singularity rule.
	ExactPivot bool `envconfig:"EXACT_PIVOT" default:"false"`

	Log LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads the configuration from LINALG_* environment variables and
// validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Rows:      4,
		Cols:      4,
		Seed:      1,
		Method:    "householder",
		Precision: PrecisionFloat64,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the shape, the precision and the QR method name.
func (c *Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: shape %dx%d must be positive", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Rows < c.Cols {
		return fmt.Errorf("%w: shape %dx%d has fewer rows than columns", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Precision != PrecisionFloat32 && c.Precision != PrecisionFloat64 {
		return fmt.Errorf("%w: precision %q", ErrInvalid, c.Precision)
	}
	if _, err := decomp.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// QRMethod returns the parsed QR method. Call Validate first.
func (c *Config) QRMethod() decomp.Method {
	m, _ := decomp.ParseMethod(c.Method)

	return m
}
