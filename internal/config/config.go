// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "PALETTE_MCP_LOG_LEVEL"
	EnvCache    = "PALETTE_MCP_CACHE"
)

// Config holds all runtime settings.
type Config struct {
	LogLevel    string       `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	HumanLogs   bool         `yaml:"human_logs"`
	DefaultType string       `yaml:"default_type" validate:"oneof=monochromatic analogous triadic complementary"`
	Cache       CacheConfig  `yaml:"cache"`
	Swatch      SwatchConfig `yaml:"swatch"`
}

// CacheConfig controls the conversion cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SwatchConfig sets the size of each rendered swatch block in pixels.
type SwatchConfig struct {
	Width  int  `yaml:"width" validate:"min=8,max=1024"`
	Height int  `yaml:"height" validate:"min=8,max=1024"`
	Labels bool `yaml:"labels"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		DefaultType: "monochromatic",
		Cache:       CacheConfig{Enabled: true},
		Swatch: SwatchConfig{
			Width:  120,
			Height: 120,
			Labels: true,
		},
	}
}

// Load reads path (if non-empty), applies environment overrides and
// validates the result. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.DefaultType = strings.ToLower(cfg.DefaultType)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvCache); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvCache, v, err)
		}
		c.Cache.Enabled = enabled
	}
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks every field constraint and reports all failures at once.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
