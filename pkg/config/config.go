package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
	"github.com/quibble-ai/callcost/pkg/report"
	"gopkg.in/yaml.v3"
)

// Config holds all callcost configuration.
type Config struct {
	Listen   string               `yaml:"listen"`
	Log      LogConfig            `yaml:"log"`
	Pricing  PricingConfig        `yaml:"pricing"`
	Limits   models.Limits        `yaml:"limits"`
	Defaults models.EstimateInput `yaml:"defaults"`
	Report   ReportConfig         `yaml:"report"`
}

// LogConfig controls the zap logger.
// Format is "console" (default) or "json"; Output is "stderr", "stdout",
// "discard" or a file path.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// PricingConfig is the editable rate table.
type PricingConfig struct {
	Models []models.ModelRate `yaml:"models"`
	Usage  models.UsageRates  `yaml:"usage"`
}

// ReportConfig controls report downloads.
type ReportConfig struct {
	Filename string `yaml:"filename"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	rates := make([]models.ModelRate, len(pricing.DefaultModels))
	copy(rates, pricing.DefaultModels)
	return &Config{
		Listen: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Pricing: PricingConfig{
			Models: rates,
			Usage:  pricing.DefaultUsage,
		},
		Limits: estimator.DefaultLimits,
		Defaults: models.EstimateInput{
			CallDurationMinutes: 3,
			CallsPerMonth:       3000,
			TokensPerCall:       700,
			Model:               "GPT-4.1",
			PlatformCost:        20,
		},
		Report: ReportConfig{
			Filename: report.ReportFilename,
		},
	}
}

// Load reads a YAML config file and expands environment variables.
// A list of pricing models in the file replaces the default list.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	cfg.Pricing.Models = nil
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Pricing.Models) == 0 {
		cfg.Pricing.Models = Default().Pricing.Models
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default() when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the rate table, limits and default inputs.
func (c *Config) Validate() error {
	table, err := c.PriceTable()
	if err != nil {
		return err
	}

	var errs []error
	for name, r := range map[string]models.Range{
		"call_duration_minutes": c.Limits.CallDurationMinutes,
		"calls_per_month":       c.Limits.CallsPerMonth,
		"tokens_per_call":       c.Limits.TokensPerCall,
		"platform_cost":         c.Limits.PlatformCost,
	} {
		if r.Min < 0 {
			errs = append(errs, fmt.Errorf("limits.%s: negative min", name))
		}
		if r.Max != 0 && r.Max < r.Min {
			errs = append(errs, fmt.Errorf("limits.%s: max below min", name))
		}
		if r.Step < 0 {
			errs = append(errs, fmt.Errorf("limits.%s: negative step", name))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if err := estimator.Validate(table, c.Limits, c.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// PriceTable builds the pricing table described by the config.
func (c *Config) PriceTable() (*pricing.Table, error) {
	return pricing.New(c.Pricing.Models, c.Pricing.Usage)
}

// Estimator builds an Estimator from the config.
func (c *Config) Estimator() (*estimator.Estimator, error) {
	table, err := c.PriceTable()
	if err != nil {
		return nil, err
	}
	return estimator.New(table, c.Limits), nil
}
