// Package config loads stepwise settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/monotone"
)

// Environment variables that override file values.
const (
	EnvMinStep  = "STEPWISE_MIN_STEP"
	EnvMaxStep  = "STEPWISE_MAX_STEP"
	EnvWorkers  = "STEPWISE_WORKERS"
	EnvLogLevel = "STEPWISE_LOG_LEVEL"
)

// Config is the complete stepwise configuration.
type Config struct {
	Steps StepsConfig `yaml:"steps" json:"steps"`

	// Workers bounds concurrent validation; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`

	// LogLevel is any level understood by logrus.ParseLevel.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// StepsConfig is the allowed delta magnitude range.
type StepsConfig struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Default returns the built-in configuration: steps [1, 3], automatic
// workers, info logging.
func Default() *Config {
	return &Config{
		Steps: StepsConfig{
			Min: monotone.DefaultMinStep,
			Max: monotone.DefaultMaxStep,
		},
		Workers:  0,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults. The result is not
// validated; call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMinStep, &c.Steps.Min},
		{EnvMaxStep, &c.Steps.Max},
		{EnvWorkers, &c.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", e.key, v)
		}
		*e.dst = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// StepRange converts Steps into a monotone.StepRange.
func (c *Config) StepRange() monotone.StepRange {
	return monotone.StepRange{Min: c.Steps.Min, Max: c.Steps.Max}
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Validate checks the step range, worker count and log level.
func (c *Config) Validate() error {
	if err := c.StepRange().Validate(); err != nil {
		return fmt.Errorf("steps: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// Fields renders the configuration for structured logging.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"min_step":  c.Steps.Min,
		"max_step":  c.Steps.Max,
		"workers":   c.Workers,
		"log_level": c.LogLevel,
	}
}
