// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Fantom-foundation/exhaust/go/index"
)

// Config holds defaults read from a TOML file, for instance
//
//	seed = 42
//	limit = 1000
//	order = "sqrt"
//	mean_bits = 12.0
//	mean_length = 6.0
//
// Unset fields keep the built-in defaults.
type Config struct {
	Seed       *uint64  `toml:"seed"`
	Limit      *int     `toml:"limit"`
	Order      string   `toml:"order"`
	MeanBits   *float64 `toml:"mean_bits"`
	MeanLength *float64 `toml:"mean_length"`
}

const (
	defaultMeanBits   = 16
	defaultMeanLength = 8
)

func LoadConfig(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return ParseConfig(string(contents))
}

func ParseConfig(input string) (*Config, error) {
	config := &Config{}
	md, err := toml.Decode(input, config)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) != 0 {
		return nil, fmt.Errorf("config has unknown keys %v", unknown)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Limit != nil && *c.Limit < 0 {
		return fmt.Errorf("invalid limit %d, must not be negative", *c.Limit)
	}
	if c.Order != "" {
		if _, err := index.ParseOrder(c.Order); err != nil {
			return err
		}
	}
	if c.MeanBits != nil && *c.MeanBits < 0 {
		return fmt.Errorf("invalid mean_bits %v, must not be negative", *c.MeanBits)
	}
	if c.MeanLength != nil && *c.MeanLength < 0 {
		return fmt.Errorf("invalid mean_length %v, must not be negative", *c.MeanLength)
	}
	return nil
}

// GetMeanBits returns the mean bit length of random numbers.
func (c *Config) GetMeanBits() float64 {
	if c.MeanBits == nil {
		return defaultMeanBits
	}
	return *c.MeanBits
}

// GetMeanLength returns the mean length of random strings and vectors.
func (c *Config) GetMeanLength() float64 {
	if c.MeanLength == nil {
		return defaultMeanLength
	}
	return *c.MeanLength
}
