package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by LoadDotEnv when no path is given.
const DefaultEnvFile = ".env"

// LoadDotEnv loads variables from a dotenv file into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if !FileExists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies INTROSPECTOR_* environment variables to cfg.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("INTROSPECTOR_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("strategy", os.Getenv("INTROSPECTOR_STRATEGY"), &cfg.Strategy)
	s.setString("categories", os.Getenv("INTROSPECTOR_CATEGORIES"), &cfg.Categories)
	s.setString("format", os.Getenv("INTROSPECTOR_FORMAT"), &cfg.Format)

	if err := s.setIntFromString("max-depth", os.Getenv("INTROSPECTOR_MAX_DEPTH"), &cfg.MaxDepth); err != nil {
		return err
	}
	if err := s.setIntFromString("plan-cache-size", os.Getenv("INTROSPECTOR_PLAN_CACHE_SIZE"), &cfg.PlanCacheSize); err != nil {
		return err
	}
	if err := s.setCountFromString("depth", os.Getenv("INTROSPECTOR_TRACE_DEPTH"), &cfg.TraceDepth); err != nil {
		return err
	}

	return nil
}
