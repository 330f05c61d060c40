package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML keys. TraceDepth is a pointer because
// zero is a meaningful depth.
type FileConfig struct {
	LogLevel      string `toml:"log_level"`
	Strategy      string `toml:"strategy"`
	MaxDepth      int    `toml:"max_depth"`
	Categories    string `toml:"categories"`
	PlanCacheSize int    `toml:"plan_cache_size"`
	Format        string `toml:"format"`
	TraceDepth    *int   `toml:"trace_depth"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.introspector/config.toml, or "" if the user
// home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".introspector", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("strategy", fc.Strategy, &cfg.Strategy)
	s.setString("categories", fc.Categories, &cfg.Categories)
	s.setString("format", fc.Format, &cfg.Format)

	s.setInt("max-depth", fc.MaxDepth, &cfg.MaxDepth)
	s.setInt("plan-cache-size", fc.PlanCacheSize, &cfg.PlanCacheSize)
	s.setIntPtr("depth", fc.TraceDepth, &cfg.TraceDepth)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
