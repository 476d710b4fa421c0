// Package config handles configuration for the bookstore process,
// including defaults, JSON overlay, and command-line flags.
package config

import "path/filepath"

// Config holds runtime settings for the bookstore interpreter.
//
// Fields:
//   - DataDir: directory holding the three persisted store files.
//   - AccountFile / BookFile / LoginFile: file names inside DataDir.
type Config struct {
	DataDir     string
	AccountFile string
	BookFile    string
	LoginFile   string
}

// LoadDefaults populates c with the stock file layout: the three .dat
// files in the current directory.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.AccountFile = "accounts.dat"
	c.BookFile = "books.dat"
	c.LoginFile = "login.dat"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// AccountPath returns the full path of the account store file.
func (c *Config) AccountPath() string { return filepath.Join(c.DataDir, c.AccountFile) }

// BookPath returns the full path of the book store file.
func (c *Config) BookPath() string { return filepath.Join(c.DataDir, c.BookFile) }

// LoginPath returns the full path of the login stack mirror file.
func (c *Config) LoginPath() string { return filepath.Join(c.DataDir, c.LoginFile) }
