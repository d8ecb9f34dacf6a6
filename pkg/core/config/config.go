// Package config holds the engine's deployment policy knobs: tax
// resolution policy, the flat fallback rate, and the DSCR risk table.
// Loaded once from YAML at startup with env overrides; a deployment runs
// one policy consistently, never a blend.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"rent_dscr/pkg/core/loan"
)

// Tax resolution policies.
const (
	TaxPolicyStrict   = "strict"   // unresolved jurisdiction fails the calculation
	TaxPolicyFallback = "fallback" // unresolved jurisdiction gets the flat rate, tagged generic_fallback
)

// Config is the engine configuration.
type Config struct {
	Port            string               `yaml:"port"`
	TaxPolicy       string               `yaml:"tax_policy"`
	FallbackTaxRate float64              `yaml:"fallback_tax_rate"` // annual, fraction of price
	RiskThresholds  []loan.RiskThreshold `yaml:"risk_thresholds"`
}

// Default returns the built-in configuration: permissive fallback tax
// policy at 1.2% of price, canonical risk table.
func Default() *Config {
	return &Config{
		Port:            "8080",
		TaxPolicy:       TaxPolicyFallback,
		FallbackTaxRate: 0.012,
		RiskThresholds:  loan.DefaultRiskThresholds,
	}
}

// Load reads a YAML config file over the defaults, then applies env
// overrides (PORT, TAX_POLICY). A missing file is not an error; a present
// but invalid file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("TAX_POLICY"); v != "" {
		cfg.TaxPolicy = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TaxPolicy != TaxPolicyStrict && c.TaxPolicy != TaxPolicyFallback {
		return fmt.Errorf("unknown tax_policy %q (want %q or %q)", c.TaxPolicy, TaxPolicyStrict, TaxPolicyFallback)
	}
	if c.FallbackTaxRate <= 0 || c.FallbackTaxRate >= 1 {
		return fmt.Errorf("fallback_tax_rate %v out of range (0,1)", c.FallbackTaxRate)
	}
	if len(c.RiskThresholds) == 0 {
		c.RiskThresholds = loan.DefaultRiskThresholds
	}
	return nil
}
