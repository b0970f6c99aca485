package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "FREELANCESTATS"

// Default values used when the config leaves a setting empty
const (
	DefaultTopRuns      = 5
	DefaultBusinessDays = 256
	DefaultCurrency     = "£"
	DefaultLogLevel     = "info"
)

// DefaultDateLayouts are tried in order when a date cell is text
var DefaultDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	"02/01/06",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// Config holds the application configuration
type Config struct {
	Sheet        int           `yaml:"sheet,omitempty" envconfig:"SHEET"`                 // 1-based sheet index (fallback: 1)
	DateLayouts  []string      `yaml:"date_layouts,omitempty" envconfig:"DATE_LAYOUTS"`   // Go time layouts for text dates
	TopRuns      int           `yaml:"top_runs,omitempty" envconfig:"TOP_RUNS"`           // Longest runs shown (fallback: 5)
	BusinessDays int           `yaml:"business_days,omitempty" envconfig:"BUSINESS_DAYS"` // Working days in a tax year (fallback: 256)
	Display      DisplayConfig `yaml:"display,omitempty" envconfig:"DISPLAY"`
	Logging      LogConfig     `yaml:"logging,omitempty" envconfig:"LOGGING"`
}

// DisplayConfig holds terminal output settings
type DisplayConfig struct {
	Currency string `yaml:"currency,omitempty" envconfig:"CURRENCY"`
	NoColor  bool   `yaml:"no_color,omitempty" envconfig:"NO_COLOR"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level,omitempty" envconfig:"LEVEL"` // debug, info, warn, error
}

// Defaults returns a config with every setting at its default value
func Defaults() *Config {
	return &Config{
		Sheet:        1,
		DateLayouts:  append([]string(nil), DefaultDateLayouts...),
		TopRuns:      DefaultTopRuns,
		BusinessDays: DefaultBusinessDays,
		Display:      DisplayConfig{Currency: DefaultCurrency},
		Logging:      LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads the config file, then applies .env and environment overrides
func Load(configPath string) (*Config, error) {
	cfg, err := loadFile(configPath)
	if err != nil {
		return nil, err
	}

	// A missing .env is not an error
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}

func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetSheet returns the 1-based sheet index to read, defaulting to the first sheet
func (c *Config) GetSheet() int {
	if c.Sheet <= 0 {
		return 1
	}
	return c.Sheet
}

// GetDateLayouts returns the configured date layouts or the defaults
func (c *Config) GetDateLayouts() []string {
	if len(c.DateLayouts) == 0 {
		return DefaultDateLayouts
	}
	return c.DateLayouts
}

// GetTopRuns returns how many consecutive runs the report lists
func (c *Config) GetTopRuns() int {
	if c.TopRuns <= 0 {
		return DefaultTopRuns
	}
	return c.TopRuns
}

// GetBusinessDays returns the number of business days in a tax year
func (c *Config) GetBusinessDays() int {
	if c.BusinessDays <= 0 {
		return DefaultBusinessDays
	}
	return c.BusinessDays
}

// GetCurrency returns the currency symbol used in the dashboard
func (c *Config) GetCurrency() string {
	if c.Display.Currency == "" {
		return DefaultCurrency
	}
	return c.Display.Currency
}

// GetLogLevel returns the configured log level
func (c *Config) GetLogLevel() string {
	if c.Logging.Level == "" {
		return DefaultLogLevel
	}
	return c.Logging.Level
}
