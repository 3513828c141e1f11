package statz

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Config controls an evaluation run. Zero-valued fields left out of a YAML file keep their defaults.
type Config struct {
	Tests           int      `yaml:"tests"`            /* avalanche trials */
	Length          int      `yaml:"length"`           /* characters per avalanche/collision input */
	CollisionTrials int      `yaml:"collision_trials"` /* inputs hashed per collision search */
	ProbeLength     int      `yaml:"probe_length"`     /* characters per preimage guess */
	ProbeTries      int      `yaml:"probe_tries"`      /* guesses per preimage search */
	Seed            uint64   `yaml:"seed"`
	Algorithms      []string `yaml:"algorithms"` /* empty selects every registered algorithm */
}

// DefaultConfig mirrors the settings the evaluation has always been run with.
func DefaultConfig() Config {
	return Config{
		Tests:           500,
		Length:          16,
		CollisionTrials: 10000,
		ProbeLength:     6,
		ProbeTries:      100000,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects counts and lengths that cannot produce a meaningful run.
func (c Config) Validate() error {
	switch {
	case c.Tests < 1:
		return errors.New("tests must be at least 1")
	case c.Length < 1:
		return errors.New("length must be at least 1")
	case c.CollisionTrials < 0 || c.ProbeTries < 0:
		return errors.New("collision_trials and probe_tries must not be negative")
	case c.ProbeLength < 1:
		return errors.New("probe_length must be at least 1")
	}
	return nil
}
