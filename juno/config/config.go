package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const EnvVariable = "JUNO_CONFIG"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type DumpFormat string

const (
	DumpTree DumpFormat = "tree"
	DumpSpew DumpFormat = "spew"
)

// Config holds the settings of the command line tool.
type Config struct {
	Color      ColorMode  `yaml:"color" toml:"color"`
	ShowTokens bool       `yaml:"show_tokens" toml:"show_tokens"`
	Dump       DumpFormat `yaml:"dump" toml:"dump"`
	// Maximum number of files parsed at the same time, 0 means one per CPU.
	Workers int `yaml:"workers" toml:"workers"`
}

func Default() Config {
	config := Config{}
	config.applyDefaults()
	return config
}

// Load reads a YAML (`.yaml`, `.yml`) or TOML (`.toml`) configuration file.
func Load(path string) (Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	var config Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config `%s`: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config `%s`: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format `%s`: expected .yaml, .yml or .toml", ext)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config `%s`: %w", path, err)
	}

	return config, nil
}

// LoadFromEnv loads the file named by `JUNO_CONFIG`, falling back to the defaults if it is unset.
func LoadFromEnv() (Config, error) {
	path := os.Getenv(EnvVariable)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (self *Config) applyDefaults() {
	if self.Color == "" {
		self.Color = ColorAuto
	}
	if self.Dump == "" {
		self.Dump = DumpTree
	}
}

func (self Config) Validate() error {
	switch self.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("illegal color mode `%s`: valid values are `auto`, `always` and `never`", self.Color)
	}

	switch self.Dump {
	case DumpTree, DumpSpew:
	default:
		return fmt.Errorf("illegal dump format `%s`: valid values are `tree` and `spew`", self.Dump)
	}

	if self.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", self.Workers)
	}

	return nil
}
