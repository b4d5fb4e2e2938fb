// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnvironment unsets every variable Load reads, restoring them
// when the test ends.
func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"POKEDEX_CONFIG", "POKEDEX_API_URL", "VITE_API_URL", "POKEDEX_PER_PAGE",
		"POKEDEX_SNAPSHOT", "POKEDEX_LOG_LEVEL", "POKEDEX_TEST_HOST",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestDefault(t *testing.T) {
	config := Default()
	if config.Endpoint != "http://localhost:8000/graphql" {
		t.Errorf("Endpoint = %q", config.Endpoint)
	}
	if config.PerPage != 15 {
		t.Errorf("PerPage = %d, want 15", config.PerPage)
	}
	if !config.Sprites.Enabled || config.Sprites.Width != 32 {
		t.Errorf("Sprites = %+v", config.Sprites)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	clearEnvironment(t)
	config, err := Load(Options{EnvFile: missingEnvFile(t)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Endpoint != DefaultEndpoint || config.PerPage != 15 {
		t.Errorf("config = %+v, want defaults", config)
	}
}

func TestLoadFileYAML(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("POKEDEX_TEST_HOST", "graphql.internal")
	path := writeFile(t, "pokedex.yaml", `
endpoint: https://${POKEDEX_TEST_HOST}/graphql
per_page: 20
snapshot: ${POKEDEX_SNAPSHOT_DIR:-/var/lib/pokedex}/catalog.pkdx
sprites:
  width: 48
`)
	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if config.Endpoint != "https://graphql.internal/graphql" {
		t.Errorf("Endpoint = %q", config.Endpoint)
	}
	if config.PerPage != 20 {
		t.Errorf("PerPage = %d, want 20", config.PerPage)
	}
	if config.Snapshot != "/var/lib/pokedex/catalog.pkdx" {
		t.Errorf("Snapshot = %q, want default expansion", config.Snapshot)
	}
	if !config.Sprites.Enabled || config.Sprites.Width != 48 {
		t.Errorf("Sprites = %+v, want enabled kept from defaults and width 48", config.Sprites)
	}
	if config.RequestTimeout != "10s" {
		t.Errorf("RequestTimeout = %q, want default", config.RequestTimeout)
	}
}

func TestLoadFileJSONC(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "pokedex.jsonc", `{
  // local development server
  "endpoint": "http://127.0.0.1:9000/graphql",
  "per_page": 30,
  "sprites": {"enabled": false, "width": 32},
}`)
	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if config.Endpoint != "http://127.0.0.1:9000/graphql" || config.PerPage != 30 || config.Sprites.Enabled {
		t.Errorf("config = %+v", config)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile succeeded for a missing file")
	}
	path := writeFile(t, "broken.yaml", "per_page: [not, a, number]\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile succeeded for malformed YAML")
	}
}

func TestLoadEnvironmentPrecedence(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "pokedex.yaml", "endpoint: http://from-file/graphql\nper_page: 20\n")
	t.Setenv("POKEDEX_CONFIG", path)
	t.Setenv("VITE_API_URL", "http://from-vite/graphql")

	config, err := Load(Options{EnvFile: missingEnvFile(t)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Endpoint != "http://from-vite/graphql" {
		t.Errorf("Endpoint = %q, want VITE_API_URL over file", config.Endpoint)
	}
	if config.PerPage != 20 {
		t.Errorf("PerPage = %d, want file value", config.PerPage)
	}

	t.Setenv("POKEDEX_API_URL", "http://from-pokedex/graphql")
	config, err = Load(Options{EnvFile: missingEnvFile(t)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Endpoint != "http://from-pokedex/graphql" {
		t.Errorf("Endpoint = %q, want POKEDEX_API_URL over VITE_API_URL", config.Endpoint)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnvironment(t)
	envFile := writeFile(t, ".env", "VITE_API_URL=http://dotenv-host:8000/graphql\nPOKEDEX_PER_PAGE=25\n")

	config, err := Load(Options{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Endpoint != "http://dotenv-host:8000/graphql" || config.PerPage != 25 {
		t.Errorf("config = %+v, want values from .env", config)
	}
}

func TestLoadRejectsBadPerPageVariable(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("POKEDEX_PER_PAGE", "lots")
	if _, err := Load(Options{EnvFile: missingEnvFile(t)}); err == nil {
		t.Error("Load accepted a non-integer POKEDEX_PER_PAGE")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	config := &Config{
		Endpoint:       "localhost:8000",
		PerPage:        0,
		RequestTimeout: "soon",
		LogLevel:       "chatty",
		Sprites:        SpritesConfig{Enabled: true, Width: 2},
	}
	err := config.Validate()
	if err == nil {
		t.Fatal("Validate accepted an invalid config")
	}
	for _, fragment := range []string{"endpoint", "per_page", "request_timeout", "log_level", "sprites.width"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("Validate error %q does not mention %s", err, fragment)
		}
	}
}

func TestTimeoutAndLevel(t *testing.T) {
	config := Default()
	config.RequestTimeout = "2500ms"
	config.LogLevel = "WARN"
	if got := config.Timeout(); got != 2500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 2.5s", got)
	}
	if got := config.Level(); got != slog.LevelWarn {
		t.Errorf("Level() = %v, want WARN", got)
	}

	config.RequestTimeout = "garbage"
	if got := config.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v for garbage, want 10s", got)
	}
}
