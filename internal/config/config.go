// Package config loads and saves the cashflow configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cashflow configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Rates   RatesConfig   `toml:"rates"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DataDir overrides the default location of the budget database.
	DataDir string `toml:"data_dir,omitempty"`
	// Currencies are the codes offered by the currency selector.
	Currencies []string `toml:"currencies"`
}

// RatesConfig holds exchange-rate API settings.
type RatesConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currencies: []string{"USD", "EUR", "INR", "GBP", "JPY"},
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cashflow")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the budget database, honoring
// the config override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cashflow")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.General.Currencies) == 0 {
		cfg.General.Currencies = DefaultConfig().General.Currencies
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// HasCurrency reports whether code is one of the configured selector
// options.
func HasCurrency(cfg Config, code string) bool {
	for _, c := range cfg.General.Currencies {
		if c == code {
			return true
		}
	}
	return false
}
