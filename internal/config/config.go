// Package config loads the ogkit binary configuration.
//
// Values come from an optional YAML file, then from OGKIT_* environment
// variables. Variables may also be listed in a .env file; the process
// environment wins over the file. Anything left unset gets a default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OGKIT_"

// DefaultEnvFile is read when Load is given no env files.
const DefaultEnvFile = ".env"

// Config holds all ogkit settings.
type Config struct {
	Listen     string      `yaml:"listen"`
	SiteURL    string      `yaml:"site_url"`
	ContentDir string      `yaml:"content_dir"`
	Fonts      FontsConfig `yaml:"fonts"`
	Cache      CacheConfig `yaml:"cache"`
	Log        LogConfig   `yaml:"log"`
}

// FontsConfig points at the two card font files. Both empty selects the
// embedded fonts.
type FontsConfig struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// CacheConfig controls the image cache.
type CacheConfig struct {
	// DB is an SQLite file backing the memory cache. Empty keeps images in
	// memory only.
	DB string `yaml:"db"`
	// SoftLimit bounds the in-memory entries per record kind. Zero is
	// unbounded.
	SoftLimit int `yaml:"soft_limit"`
}

// LogConfig controls the binary's logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.SiteURL == "" {
		c.SiteURL = "https://dmrcv.me"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Cache.SoftLimit < 0 {
		return fmt.Errorf("%w: cache.soft_limit %d", ErrInvalid, c.Cache.SoftLimit)
	}
	if (c.Fonts.Regular == "") != (c.Fonts.Bold == "") {
		return fmt.Errorf("%w: fonts.regular and fonts.bold must be set together", ErrInvalid)
	}
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// LoadConfigFile reads a YAML config file without applying defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the configuration from the YAML file at path (skipped when
// empty), the given env files (DefaultEnvFile when none, ignored if
// missing) and the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		if cfg, err = LoadConfigFile(path); err != nil {
			return nil, err
		}
	}

	env, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.override(env); err != nil {
		return nil, err
	}

	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		files = []string{DefaultEnvFile}
	}
	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return env, nil
}

// lookup reads key from the process environment, then from the env files.
func lookup(env map[string]string, key string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return env[EnvPrefix+key]
}

func (c *Config) override(env map[string]string) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"LISTEN", &c.Listen},
		{"SITE_URL", &c.SiteURL},
		{"CONTENT_DIR", &c.ContentDir},
		{"FONT_REGULAR", &c.Fonts.Regular},
		{"FONT_BOLD", &c.Fonts.Bold},
		{"CACHE_DB", &c.Cache.DB},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
		{"LOG_FILE", &c.Log.File},
	}
	for _, s := range strs {
		if v := lookup(env, s.key); v != "" {
			*s.dst = v
		}
	}
	if v := lookup(env, "CACHE_SOFT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sCACHE_SOFT_LIMIT %q", ErrInvalid, EnvPrefix, v)
		}
		c.Cache.SoftLimit = n
	}
	return nil
}
