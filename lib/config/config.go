// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint matches the web client's fallback.
const DefaultEndpoint = "http://localhost:8000/graphql"

// Config is the complete pokedex configuration.
type Config struct {
	// Endpoint is the GraphQL URL.
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// PerPage is the list page size requested from the server.
	PerPage int `yaml:"per_page" json:"per_page"`

	// RequestTimeout bounds each GraphQL request, as a Go duration.
	RequestTimeout string `yaml:"request_timeout" json:"request_timeout"`

	// Snapshot, when set, serves the catalog from this snapshot file
	// instead of the endpoint.
	Snapshot string `yaml:"snapshot" json:"snapshot"`

	Sprites SpritesConfig `yaml:"sprites" json:"sprites"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// SpritesConfig controls artwork in the detail view.
type SpritesConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Width is the rendered width in terminal cells.
	Width int `yaml:"width" json:"width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		PerPage:        15,
		RequestTimeout: "10s",
		Sprites: SpritesConfig{
			Enabled: true,
			Width:   32,
		},
		LogLevel: "info",
	}
}

// Options controls Load.
type Options struct {
	// Path is the config file. Empty falls back to POKEDEX_CONFIG, and
	// to defaults alone when that is unset too.
	Path string

	// EnvFile is loaded into the process environment before the
	// environment is read. Defaults to ".env"; a missing file is not an
	// error. Variables already set in the environment are kept.
	EnvFile string
}

// Load builds the configuration from defaults, file and environment.
// It does not validate; apply flag overrides first, then call Validate.
func Load(options Options) (*Config, error) {
	envFile := options.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading %s: %w", envFile, err)
	}

	path := options.Path
	if path == "" {
		path = os.Getenv("POKEDEX_CONFIG")
	}

	config := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if err := config.applyEnvironment(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile reads path over the defaults and expands ${VAR}
// references.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), config); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	config.expandVariables()
	return config, nil
}

func (config *Config) applyEnvironment() error {
	if value := os.Getenv("VITE_API_URL"); value != "" {
		config.Endpoint = value
	}
	if value := os.Getenv("POKEDEX_API_URL"); value != "" {
		config.Endpoint = value
	}
	if value := os.Getenv("POKEDEX_PER_PAGE"); value != "" {
		perPage, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: POKEDEX_PER_PAGE=%q is not an integer", value)
		}
		config.PerPage = perPage
	}
	if value := os.Getenv("POKEDEX_SNAPSHOT"); value != "" {
		config.Snapshot = value
	}
	if value := os.Getenv("POKEDEX_LOG_LEVEL"); value != "" {
		config.LogLevel = value
	}
	return nil
}

func (config *Config) expandVariables() {
	config.Endpoint = expandVars(config.Endpoint)
	config.Snapshot = expandVars(config.Snapshot)
	config.RequestTimeout = expandVars(config.RequestTimeout)
	config.LogLevel = expandVars(config.LogLevel)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${NAME} and ${NAME:-default} with environment
// values. An empty variable takes the default.
func expandVars(value string) string {
	return varPattern.ReplaceAllStringFunc(value, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if environment := os.Getenv(parts[1]); environment != "" {
			return environment
		}
		return parts[2]
	})
}

// Validate reports every problem at once.
func (config *Config) Validate() error {
	var errs []error

	if parsed, err := url.Parse(config.Endpoint); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint %q must be an absolute http or https URL", config.Endpoint))
	}
	if config.PerPage < 1 || config.PerPage > 100 {
		errs = append(errs, fmt.Errorf("per_page must be between 1 and 100, got %d", config.PerPage))
	}
	if timeout, err := time.ParseDuration(config.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("request_timeout %q: %w", config.RequestTimeout, err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %s", config.RequestTimeout))
	}
	if _, err := parseLevel(config.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if config.Sprites.Enabled && (config.Sprites.Width < 8 || config.Sprites.Width > 96) {
		errs = append(errs, fmt.Errorf("sprites.width must be between 8 and 96, got %d", config.Sprites.Width))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Timeout returns RequestTimeout parsed. Call after Validate; an
// unparseable value yields the default.
func (config *Config) Timeout() time.Duration {
	timeout, err := time.ParseDuration(config.RequestTimeout)
	if err != nil || timeout <= 0 {
		return 10 * time.Second
	}
	return timeout
}

// Level returns LogLevel as a slog.Level, defaulting to info.
func (config *Config) Level() slog.Level {
	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", name)
}
