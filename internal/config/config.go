// Package config loads the optional YAML configuration file and watches
// the credentials file for changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alucardeht/braze-mcp/internal/braze"
)

type Config struct {
	LogLevel  string      `yaml:"log_level"`
	LogFormat string      `yaml:"log_format"`
	Braze     BrazeConfig `yaml:"braze"`
	Notes     NotesConfig `yaml:"notes"`
}

// BrazeConfig carries optional initial credentials. Credentials set here
// or via the credentials file pre-open the auth gate; the configure-braze
// tool can still overwrite them at runtime.
type BrazeConfig struct {
	APIToken        string `yaml:"api_token"`
	BaseURL         string `yaml:"base_url"`
	CredentialsFile string `yaml:"credentials_file"`
}

// NotesConfig seeds the note collection from files on disk at startup.
// Include patterns are doublestar globs relative to SeedDir.
type NotesConfig struct {
	SeedDir string   `yaml:"seed_dir"`
	Include []string `yaml:"include"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Braze: BrazeConfig{
			BaseURL: braze.DefaultBaseURL,
		},
		Notes: NotesConfig{
			Include: []string{"**/*.txt", "**/*.md"},
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Notes.Include) == 0 {
		cfg.Notes.Include = Default().Notes.Include
	}
	return cfg, nil
}
