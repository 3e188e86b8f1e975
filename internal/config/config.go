// internal/config/config.go
//
// Runtime configuration, read from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over it.
//
// Environment variables:
//   HANGMAN_WORDS_FILE=/path/to/words.txt   word list; embedded list when unset
//   HANGMAN_MODE=random|daily               how the secret word is chosen
//   HANGMAN_DAILY_SALT=...                  key for the word of the day
//   LOG_LEVEL=warn                          zerolog level
//   LOG_FORMAT=console|json                 log encoding on stderr

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Word selection modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Log encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds settings for one run of the game.
type Config struct {
	WordsFile string `env:"HANGMAN_WORDS_FILE"`
	Mode      string `env:"HANGMAN_MODE" envDefault:"random"`
	DailySalt string `env:"HANGMAN_DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeRandom, ModeDaily:
	default:
		return fmt.Errorf("config: unknown HANGMAN_MODE %q", c.Mode)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
