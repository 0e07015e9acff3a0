// Package config loads swatch settings from defaults, a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/swatch/internal/seed"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSS   = "css"
	FormatPlain = "plain"
)

// DefaultLength is the palette size used when nothing else is configured.
const DefaultLength = 5

// Config holds palette generation settings.
type Config struct {
	Length    int    `toml:"length" env:"SWATCH_LENGTH"`
	Format    string `toml:"format" env:"SWATCH_FORMAT"`
	SeedMode  string `toml:"seed_mode" env:"SWATCH_SEED_MODE"`
	Seed      uint64 `toml:"seed" env:"SWATCH_SEED"`
	SeedText  string `toml:"seed_text" env:"SWATCH_SEED_TEXT"`
	CSSPrefix string `toml:"css_prefix" env:"SWATCH_CSS_PREFIX"`

	// Source is the config file that was applied, empty if none.
	Source string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Length:    DefaultLength,
		Format:    FormatTable,
		SeedMode:  string(seed.ModeRandom),
		CSSPrefix: "swatch",
	}
}

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{FormatTable, FormatJSON, FormatCSS, FormatPlain}
}

// Load builds the configuration. Precedence, lowest first: defaults, the
// TOML file at path (or the first file found on the search path), a .env file
// in the working directory, then SWATCH_* environment variables.
// An explicit path that does not exist is an error; a missing discovered file
// is not. The result is not validated: callers apply their own overrides
// first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	chosen, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if chosen != "" {
		if _, err := toml.DecodeFile(chosen, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", chosen, err)
		}
		cfg.Source = chosen
	}

	// Existing variables win over .env entries; a missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("invalid length %d: must not be negative", c.Length)
	}
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("invalid format %q (valid: table, json, css, plain)", c.Format)
	}
	mode, err := seed.ParseMode(c.SeedMode)
	if err != nil {
		return err
	}
	if mode == seed.ModeText && c.SeedText == "" {
		return errors.New("seed_text is required when seed_mode is text")
	}
	return nil
}

// SeedConfig converts the seed settings for the seed package.
func (c *Config) SeedConfig() seed.Config {
	return seed.Config{
		Mode:  seed.Mode(c.SeedMode),
		Value: c.Seed,
		Text:  c.SeedText,
	}
}

func resolve(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("read config: %w", err)
		}
		return path, nil
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "swatch", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "swatch", "config.toml"))
	}
	return out
}
