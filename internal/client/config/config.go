package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/termvault/internal/cryptox"
)

// Config holds runtime settings for the termvault CLI.
type Config struct {
	StorePath  string `toml:"store_path"`
	LogFile    string `toml:"log_file"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "users.toml"
	c.LogFile = "termvault.log"
	c.BcryptCost = cryptox.DefaultCost
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// LoadConfig constructs a Config from args (usually os.Args[1:]): defaults
// first, then the TOML file if one is named, then flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseTOML(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoadConfig is LoadConfig over os.Args that panics on error.
func MustLoadConfig() *Config {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
