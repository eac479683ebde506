package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

const defaultConfigPath = "nospoiler.yaml"

type Config struct {
	// symbol for unknown positions in patterns
	Placeholder string `yaml:"placeholder"`

	// auto, always or never
	Color string `yaml:"color"`

	LogLevel string `yaml:"log_level"`

	// cases checked at once by verify
	Workers int `yaml:"workers"`

	// shown in place of letters not worth a blind guess
	KeyboardHidden string `yaml:"keyboard_hidden"`
}

func defaultConfig() Config {
	return Config{
		Placeholder:    string(hint.DefaultPlaceholder),
		Color:          "auto",
		LogLevel:       "warn",
		Workers:        4,
		KeyboardHidden: "_",
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was asked for explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := c.placeholder(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func (c Config) placeholder() (byte, error) {
	if len(c.Placeholder) != 1 {
		return 0, fmt.Errorf("placeholder must be a single character, got %q", c.Placeholder)
	}
	p := c.Placeholder[0]
	if up := strings.ToUpper(c.Placeholder)[0]; up >= 'A' && up <= 'Z' {
		return 0, fmt.Errorf("placeholder must not be a letter, got %q", c.Placeholder)
	}
	return p, nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
