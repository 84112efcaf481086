// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to the upper-cased setting names read from the environment.
	// GENOMATCH_MIN_SEARCH_LENGTH, for example, overrides min-search-length
	EnvPrefix = "GENOMATCH"

	// DefaultMinSearchLength is the default length of indexed fragments
	DefaultMinSearchLength = 10

	// DefaultFragmentMatchLength is the default length of a related-genome query's fragments
	DefaultFragmentMatchLength = 16

	// DefaultMatchPercentThreshold is the default percentage of fragments a related genome must share
	DefaultMatchPercentThreshold = 20.0
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those passed from the command line
type Config struct {
	// the length of every fragment stored in the index
	MinSearchLength int `mapstructure:"min-search-length"`

	// the length of the fragments a query genome is split into
	FragmentMatchLength int `mapstructure:"fragment-match-length"`

	// the percentage of a query's fragments that a genome needs to be related
	MatchPercentThreshold float64 `mapstructure:"match-percent-threshold"`

	// the number of fragments matched in parallel, zero is one per CPU
	Workers int `mapstructure:"workers"`

	// whether to draw a progress bar while indexing genomes
	Progress bool `mapstructure:"progress"`
}

// SetDefaults registers the default of every setting with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("min-search-length", DefaultMinSearchLength)
	v.SetDefault("fragment-match-length", DefaultFragmentMatchLength)
	v.SetDefault("match-percent-threshold", DefaultMatchPercentThreshold)
	v.SetDefault("workers", 0)
	v.SetDefault("progress", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config struct populated by the global viper
// settings: defaults, the settings file, the environment and flags
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	return c
}

// Load reads a Config from v, merging in the file at its "settings" key if one is set.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every setting is within its range.
func (c *Config) Validate() error {
	if c.MinSearchLength < 1 {
		return fmt.Errorf("min-search-length must be at least 1, got %d", c.MinSearchLength)
	}
	if c.FragmentMatchLength < c.MinSearchLength {
		return fmt.Errorf("fragment-match-length %d is less than min-search-length %d", c.FragmentMatchLength, c.MinSearchLength)
	}
	if c.MatchPercentThreshold < 0 || c.MatchPercentThreshold > 100 {
		return fmt.Errorf("match-percent-threshold must be within [0, 100], got %v", c.MatchPercentThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
