// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. CAREER_TOP_N or CAREER_WEIGHTS_SKILLS.
const EnvPrefix = "CAREER"

// Session store backends
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or are
// provided via CLI flags.
type Config struct {
	// Sources
	CatalogPath string `mapstructure:"catalog_path" json:"catalog_path,omitempty"` // Career catalog JSON; embedded catalog when empty
	DatabaseURL string `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL

	// Session persistence
	Store      string `mapstructure:"store" json:"store,omitempty"`             // memory, file, sqlite or postgres
	StorePath  string `mapstructure:"store_path" json:"store_path,omitempty"`   // File or SQLite path
	SessionKey string `mapstructure:"session_key" json:"session_key,omitempty"` // Row key for sqlite/postgres stores

	// Matching
	TopN            int              `mapstructure:"top_n" json:"top_n,omitempty"`
	SignalThreshold int              `mapstructure:"signal_threshold" json:"signal_threshold,omitempty"`
	Weights         matching.Weights `mapstructure:"weights" json:"weights"`

	// Behavior
	LogJSON bool `mapstructure:"log_json" json:"log_json,omitempty"`
	Debug   bool `mapstructure:"debug" json:"debug,omitempty"`
	Verbose bool `mapstructure:"verbose" json:"verbose,omitempty"` // Print human readable summaries
}

// keys lists every config key so environment overrides apply even when the
// file omits them.
var keys = []string{
	"catalog_path",
	"database_url",
	"store",
	"store_path",
	"session_key",
	"top_n",
	"signal_threshold",
	"weights.skills",
	"weights.interests",
	"weights.experience",
	"weights.preferences",
	"weights.personality",
	"log_json",
	"debug",
	"verbose",
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Store:           StoreFile,
		StorePath:       filepath.Join(".career-explorer", "session.json"),
		SessionKey:      "default",
		TopN:            3,
		SignalThreshold: 5,
		Weights:         matching.DefaultWeights(),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	// DATABASE_URL is honored without the prefix as well
	_ = v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	return v
}

// flagKeys maps config keys to the CLI flags that override them
var flagKeys = map[string]string{
	"catalog_path": "catalog",
	"store":        "store",
	"store_path":   "store-path",
	"top_n":        "top",
	"log_json":     "json",
	"debug":        "debug",
	"verbose":      "verbose",
}

// LoadConfig loads configuration from a JSON or YAML file with environment
// overrides. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	v := newViper()
	if err := readFile(v, path); err != nil {
		return nil, err
	}
	return unmarshal(v)
}

// Load merges, lowest precedence first, the defaults, the config file at
// path (skipped when empty), CAREER_ environment variables and any changed
// flags, then validates the result.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func readFile(v *viper.Viper, path string) error {
	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required combinations such as a database URL for the postgres store
// are checked here, but only after merging with defaults.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.SignalThreshold < 0 {
		return fmt.Errorf("config error: 'signal_threshold' must be non-negative")
	}

	switch c.Store {
	case "", StoreMemory:
	case StoreFile, StoreSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("config error: store %q requires 'store_path'", c.Store)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: store %q requires 'database_url'", c.Store)
		}
	default:
		return fmt.Errorf("config error: unknown store %q (want memory, file, sqlite or postgres)", c.Store)
	}

	if !c.Weights.IsZero() {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.SessionKey == "" {
		result.SessionKey = defaults.SessionKey
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.SignalThreshold == 0 {
		result.SignalThreshold = defaults.SignalThreshold
	}

	// Weights are merged as a whole; a partial set would not sum to 1.0
	if result.Weights.IsZero() {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
