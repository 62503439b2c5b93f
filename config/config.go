// Package config loads vqgo options from environment variables and .env files.
//
// Variables are read with the given prefix, e.g. VQGO_THRESHOLD:
//
//	THRESHOLD       convergence threshold (default 1e-5)
//	MAX_ITERATIONS  refinement cap, 0 disables it (default 1000)
//	WORKERS         quantization goroutines (default 1)
//	SEED            fixed seed for initial centroid selection, 0 means random
//	LOG_FORMAT      text or json (default text)
//	LOG_LEVEL       debug, info, warn or error (default info)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/vqgo"
)

// DefaultPrefix is the environment prefix used when Load is called with "".
const DefaultPrefix = "VQGO"

// Config validation errors
var (
	ErrInvalidThreshold     = errors.New("threshold must be a non-negative finite number")
	ErrInvalidMaxIterations = errors.New("max_iterations cannot be negative")
	ErrInvalidWorkers       = errors.New("workers must be positive")
	ErrInvalidLogFormat     = errors.New("log_format must be 'text' or 'json'")
	ErrInvalidLogLevel      = errors.New("log_level must be debug, info, warn, or error")
)

// Config holds environment-driven settings for VQ and KMeans.
type Config struct {
	Threshold     float64 `envconfig:"THRESHOLD" default:"1e-5"`
	MaxIterations int     `envconfig:"MAX_ITERATIONS" default:"1000"`
	Workers       int     `envconfig:"WORKERS" default:"1"`
	Seed          int64   `envconfig:"SEED" default:"0"`
	LogFormat     string  `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel      string  `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads envFiles into the process environment, then parses and
// validates the variables under prefix. Variables already set in the
// environment take precedence over the files.
func Load(prefix string, envFiles ...string) (*Config, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("config: load env files: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate returns the first invalid setting.
func (c *Config) Validate() error {
	if c.Threshold < 0 || math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return ErrInvalidThreshold
	}
	if c.MaxIterations < 0 {
		return ErrInvalidMaxIterations
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into vqgo options.
func (c *Config) Options() ([]vqgo.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level, _ := parseLevel(c.LogLevel)

	var logger *vqgo.Logger
	if c.LogFormat == "json" {
		logger = vqgo.NewJSONLogger(level)
	} else {
		logger = vqgo.NewTextLogger(level)
	}

	opts := []vqgo.Option{
		vqgo.WithLogger(logger),
		vqgo.WithThreshold(c.Threshold),
		vqgo.WithMaxIterations(c.MaxIterations),
		vqgo.WithWorkers(c.Workers),
	}
	if c.Seed != 0 {
		opts = append(opts, vqgo.WithSeed(c.Seed))
	}

	return opts, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}
