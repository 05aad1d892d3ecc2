package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Section names shared by the INI and YAML formats.
const (
	SectionPostgres = "postgresql"
	SectionOutput   = "output"
)

// ErrSectionNotFound is returned when the [postgresql] section is absent.
var ErrSectionNotFound = errors.New("section not found")

// envRef matches ${VAR} only; bare $name and $$ are left as written.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with their environment values.
// Unset variables expand to the empty string.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(envRef.FindStringSubmatch(ref)[1])
	})
}

// Load reads a config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := []byte(expandEnv(string(data)))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(expanded)
	default:
		return parseINI(expanded)
	}
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func parseINI(data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse config ini: %w", err)
	}

	pg, err := f.GetSection(SectionPostgres)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, SectionPostgres)
	}

	var cfg Config
	if err := pg.MapTo(&cfg.Database); err != nil {
		return nil, fmt.Errorf("parse section %q: %w", SectionPostgres, err)
	}

	if out, err := f.GetSection(SectionOutput); err == nil {
		if err := out.MapTo(&cfg.Output); err != nil {
			return nil, fmt.Errorf("parse section %q: %w", SectionOutput, err)
		}
	}

	return &cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	var raw struct {
		Postgres *DBConfig    `yaml:"postgresql"`
		Output   OutputConfig `yaml:"output"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if raw.Postgres == nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, SectionPostgres)
	}

	return &Config{
		Database: *raw.Postgres,
		Output:   raw.Output,
	}, nil
}
