package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "wordguess.yaml"

// Load reads the application configuration.
// Search order: customPath -> ~/.wordguess/config.yaml -> ./configs/wordguess.yaml -> embedded default.
// Values from the chosen file are laid over the embedded defaults and
// WORDGUESS_* environment variables are applied last.
func Load(customPath string) (App, string, error) {
	cfg, err := embedded()
	if err != nil {
		return cfg, "", err
	}

	if customPath != "" {
		if err := cleanenv.ReadConfig(customPath, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, path, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		return cfg, path, cfg.Validate()
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, "", fmt.Errorf("config: cannot read environment: %w", err)
	}
	return cfg, "", cfg.Validate()
}

// embedded decodes the default YAML shipped with the binary.
func embedded() (App, error) {
	var cfg App
	dec := yaml.NewDecoder(bytes.NewReader(defaultYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("config: embedded defaults: %w", err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordguess", filename)
}

// Describe renders the environment variables understood by App.
// Used by `wordguess config --env`.
func Describe() (string, error) {
	var cfg App
	header := "Environment variables (override config files):"
	text, err := cleanenv.GetDescription(&cfg, &header)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return text, nil
}

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}
