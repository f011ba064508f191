package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Pricer PricerConfig `yaml:"pricer"`
	// Optional: load default contract values from a separate YAML (e.g. examples/contracts/*.yaml).
	// Non-zero fields of Contract override ContractFile.
	ContractFile string               `yaml:"contract_file"`
	Contract     model.ContractParams `yaml:"contract"`
	Cache        CacheConfig          `yaml:"cache"`
}

type PricerConfig struct {
	Representation  string `yaml:"representation"`
	MaxSteps        int    `yaml:"max_steps"`
	MaxRequestNodes int64  `yaml:"max_request_nodes"` // per API batch or convergence request; 0 uses the default
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// Default is used when no config file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ContractFile != "" {
		contractPath := c.ContractFile
		if !filepath.IsAbs(contractPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), contractPath)
			if _, err := os.Stat(cand); err == nil {
				contractPath = cand
			}
		}
		loaded, err := loadContractFile(contractPath)
		if err != nil {
			return nil, err
		}
		c.Contract = MergeContract(loaded, c.Contract)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Pricer.Representation == "" {
		c.Pricer.Representation = string(model.RepresentationFlat)
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.NewPricer(); err != nil {
		return fmt.Errorf("pricer config invalid: %w", err)
	}
	if c.Pricer.MaxRequestNodes < 0 {
		return errors.New("pricer.max_request_nodes must be >= 0")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}
	// A partial contract is fine: it only supplies defaults for the CLI.
	if c.Contract.Steps < 0 {
		return errors.New("contract.steps must be >= 0")
	}
	return nil
}

// NewPricer builds the lattice pricer described by the pricer section.
func (c *Config) NewPricer() (*lattice.LatticePricer, error) {
	rep, err := model.ParseRepresentation(c.Pricer.Representation)
	if err != nil {
		return nil, err
	}
	return lattice.New(rep, c.Pricer.MaxSteps)
}

type contractFileWrapper struct {
	Contract model.ContractParams `yaml:"contract"`
}

func loadContractFile(path string) (model.ContractParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ContractParams{}, err
	}
	var w contractFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.ContractParams{}, err
	}
	return w.Contract, nil
}

// MergeContract overlays non-zero fields from override onto base.
// Used for contract files plus overrides, and for CLI flags over config.
func MergeContract(base, override model.ContractParams) model.ContractParams {
	out := base
	if override.SpotPrice != 0 {
		out.SpotPrice = override.SpotPrice
	}
	if override.Volatility != 0 {
		out.Volatility = override.Volatility
	}
	if override.ExpiryYears != 0 {
		out.ExpiryYears = override.ExpiryYears
	}
	// Note: a zero rate cannot override a non-zero base rate through this path.
	if override.RiskFreeRate != 0 {
		out.RiskFreeRate = override.RiskFreeRate
	}
	if override.Strike != 0 {
		out.Strike = override.Strike
	}
	if override.Steps != 0 {
		out.Steps = override.Steps
	}
	return out
}
