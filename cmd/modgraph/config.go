package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modgraph/numtheory"
)

// Config is the YAML file layout. Command-line flags override file values.
type Config struct {
	Primes      []int64 `yaml:"primes"`
	Exponent    int64   `yaml:"exponent"`
	Other       int64   `yaml:"other"`
	Extended    bool    `yaml:"extended"`
	Format      string  `yaml:"format"`
	Workers     int     `yaml:"workers"`
	CheckPrimes bool    `yaml:"check_primes"`
}

const (
	formatText = "text"
	formatDOT  = "dot"
)

var (
	errNoPrimes      = errors.New("no primes given")
	errNotPrime      = errors.New("not a prime")
	errBadExponent   = errors.New("exponent must be positive")
	errBadFormat     = errors.New("unknown output format")
	errBadWorkers    = errors.New("workers must be at least 1")
	errConfigMissing = errors.New("config file not found")
)

// defaultConfig mirrors the sample run: P = {3,5,7,11}, A = 6, other = 10.
func defaultConfig() Config {
	return Config{
		Primes:   []int64{3, 5, 7, 11},
		Exponent: 6,
		Other:    10,
		Format:   formatText,
		Workers:  1,
	}
}

// loadConfig reads path over the defaults. An empty path returns defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%s: %w", path, errConfigMissing)
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks what the library deliberately does not: exponent sign,
// worker count, output format and, when asked, primality.
func (c Config) validate() error {
	if len(c.Primes) == 0 {
		return errNoPrimes
	}
	if c.Exponent < 1 {
		return fmt.Errorf("exponent=%d: %w", c.Exponent, errBadExponent)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", c.Workers, errBadWorkers)
	}
	switch c.Format {
	case formatText, formatDOT:
	default:
		return fmt.Errorf("format=%q: %w", c.Format, errBadFormat)
	}
	if c.CheckPrimes {
		for _, p := range c.Primes {
			if !numtheory.IsProbablePrime(p) {
				return fmt.Errorf("%d: %w", p, errNotPrime)
			}
		}
	}

	return nil
}
