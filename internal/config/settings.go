package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Settings are the process-level options of the CLI
type Settings struct {
	Env       string `env:"PATRIMONY_ENV"        envDefault:"development"`
	LogLevel  string `env:"PATRIMONY_LOG_LEVEL"  envDefault:"info"`
	OutputDir string `env:"PATRIMONY_OUTPUT_DIR" envDefault:"."`
	Locale    string `env:"PATRIMONY_LOCALE"     envDefault:"en-US"`
	Workers   int    `env:"PATRIMONY_WORKERS"    envDefault:"0"`
}

// LoadSettings loads .env files when present, then parses the environment.
// Without arguments it looks for ".env" in the working directory.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var s Settings
	if err := ParseEnv(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks settings values
func (s *Settings) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("PATRIMONY_WORKERS cannot be negative, got %d", s.Workers)
	}
	if _, err := language.Parse(s.Locale); err != nil {
		return fmt.Errorf("PATRIMONY_LOCALE %q is not a valid language tag: %w", s.Locale, err)
	}
	return nil
}

// Language returns the locale as a language tag, falling back to English
func (s *Settings) Language() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
