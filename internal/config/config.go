// Package config holds the CLI configuration of introspector. Values come
// from defaults, a TOML file, INTROSPECTOR_* environment variables and flags,
// in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/reflectkit/introspector/caller"
	"github.com/reflectkit/introspector/fieldmap"
	"github.com/reflectkit/introspector/internal/match"
	"github.com/reflectkit/introspector/logging"
	"github.com/reflectkit/introspector/options"
)

// Output formats of the dump command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatSpew = "spew"
)

var (
	strategyNames = []string{"auto", caller.StrategyRuntime, caller.StrategyStack}
	formats       = []string{FormatYAML, FormatJSON, FormatSpew}
)

// Config holds CLI configuration for introspector.
type Config struct {
	LogLevel string
	Strategy string

	MaxDepth      int
	Categories    string
	PlanCacheSize int

	Format     string
	TraceDepth int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		Strategy:      "auto",
		MaxDepth:      fieldmap.DefaultMaxDepth,
		Categories:    options.CategoryAll.String(),
		PlanCacheSize: fieldmap.DefaultPlanCacheSize,
		Format:        FormatYAML,
		TraceDepth:    4,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	if _, ok := caller.StrategiesByName(c.Strategy); !ok {
		return fmt.Errorf("unknown strategy %q%s", c.Strategy, match.Hint(c.Strategy, strategyNames))
	}

	if _, err := options.ParseCategories(c.Categories); err != nil {
		return err
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive")
	}
	if c.PlanCacheSize <= 0 {
		return fmt.Errorf("plan cache size must be positive")
	}
	if c.TraceDepth < 0 {
		return fmt.Errorf("trace depth must not be negative")
	}

	switch c.Format {
	case FormatYAML, FormatJSON, FormatSpew:
	default:
		return fmt.Errorf("unknown format %q%s", c.Format, match.Hint(c.Format, formats))
	}

	return nil
}

// ReaderOptions translates the field map settings into reader options.
func (c *Config) ReaderOptions() ([]fieldmap.Option, error) {
	categories, err := options.ParseCategories(c.Categories)
	if err != nil {
		return nil, err
	}

	return []fieldmap.Option{
		fieldmap.WithMaxDepth(c.MaxDepth),
		fieldmap.WithCategories(categories),
		fieldmap.WithPlanCacheSize(c.PlanCacheSize),
	}, nil
}
