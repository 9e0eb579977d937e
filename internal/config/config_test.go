package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/appshell/internal/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E141") {
		t.Fatalf("missing config err = %v, want E141", err)
	}

	writeConfig(t, tmpDir, `{
  "name": "shop",
  "server": {
    "host": "0.0.0.0",
    "port": 8080
  },
  "render": {
    "pretty": true
  },
  "metrics": {
    "enabled": false
  }
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "shop" {
		t.Errorf("Name = %q, want shop", cfg.Name)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	// Defaults fill the rest
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %q", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Render.Title != "shop" {
		t.Errorf("Render.Title = %q, want name fallback", cfg.Render.Title)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoad_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"server": {`)

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E120") {
		t.Fatalf("err = %v, want E120", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"server": {"port": 8080}}`)

	t.Setenv("APPSHELL_SERVER_PORT", "9000")
	t.Setenv("APPSHELL_LOG_FORMAT", "json")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want env override 9000", cfg.Server.Port)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("APPSHELL_SERVER_HOST", "127.0.0.1")

	cfg, err := resolveIn(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != DefaultPort {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestResolve_ExplicitMissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.HasCode(err, "E141") {
		t.Errorf("err = %v, want E141", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"bad timeout", func(c *Config) { c.Server.ShutdownTimeout = "soon" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.HasCode(err, "E122") {
				t.Errorf("Validate() = %v, want E122", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	cfg.Server.Port = 4000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"shutdownTimeout": "5s"`) {
		t.Errorf("saved file should use camelCase keys:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "saved" || loaded.Server.Port != 4000 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestAddressAndTimeout(t *testing.T) {
	cfg := New()
	if got := cfg.Address(); got != "localhost:3000" {
		t.Errorf("Address() = %q", got)
	}
	if got := cfg.ShutdownTimeout(); got != 5*time.Second {
		t.Errorf("ShutdownTimeout() = %v", got)
	}
	cfg.Server.ShutdownTimeout = "bogus"
	if got := cfg.ShutdownTimeout(); got != 5*time.Second {
		t.Errorf("invalid timeout should fall back, got %v", got)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("expected JSON log line, got %q", out)
	}
}
