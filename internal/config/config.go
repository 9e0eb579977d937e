package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vango-dev/appshell/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "appshell.json"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "APPSHELL"

	// DefaultPort is the default HTTP port.
	DefaultPort = 3000

	// DefaultHost is the default HTTP host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "5s"

	// DefaultMetricsPath is where Prometheus metrics are exposed.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace prefixes metric names and names the trace service.
	DefaultNamespace = "appshell"
)

// Config represents the complete appshell.json configuration.
type Config struct {
	// Name is the application name.
	Name string `json:"name,omitempty" mapstructure:"name"`

	// Server contains HTTP host settings.
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render" mapstructure:"render"`

	// Log contains logger settings.
	Log LogConfig `json:"log" mapstructure:"log"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing" mapstructure:"tracing"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP host settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" mapstructure:"host"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" mapstructure:"port"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "5s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" mapstructure:"shutdownTimeout"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented HTML.
	Pretty bool `json:"pretty,omitempty" mapstructure:"pretty"`

	// Title is the document title.
	Title string `json:"title,omitempty" mapstructure:"title"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format,omitempty" mapstructure:"format"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" mapstructure:"enabled"`
	Path      string `json:"path,omitempty" mapstructure:"path"`
	Namespace string `json:"namespace,omitempty" mapstructure:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `json:"enabled" mapstructure:"enabled"`
	ServiceName string `json:"serviceName,omitempty" mapstructure:"serviceName"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: DefaultNamespace,
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Render: RenderConfig{
			Title: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			ServiceName: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for appshell.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path and applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --config")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Resolve loads path when it is set. Otherwise it looks for appshell.json in
// the working directory and falls back to defaults when there is none.
// Environment overrides apply in every case.
func Resolve(path string) (*Config, error) {
	return resolveIn(".", path)
}

func resolveIn(dir, path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	cfg, err := Load(dir)
	if errors.HasCode(err, "E141") {
		return decode(newViper())
	}
	return cfg, err
}

// newViper returns a viper instance with defaults and env overrides set up.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")

	d := New()
	v.SetDefault("name", d.Name)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdownTimeout", d.Server.ShutdownTimeout)
	v.SetDefault("render.pretty", d.Render.Pretty)
	v.SetDefault("render.title", d.Render.Title)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.serviceName", d.Tracing.ServiceName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("E120").Wrap(err).
			WithDetail("A configuration value has the wrong type")
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultNamespace
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Render.Title == "" {
		c.Render.Title = c.Name
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.Name
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil || d < 0 {
		return errors.New("E122").
			WithDetail(fmt.Sprintf("server.shutdownTimeout %q is not a duration", c.Server.ShutdownTimeout)).
			WithSuggestion(`Use a Go duration such as "5s"`)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return errors.New("E122").WithDetail(err.Error())
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E122").
			WithDetail(fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E122").
			WithDetail("metrics.path must start with /")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the parsed shutdown timeout, or the default when
// the configured value does not parse.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d < 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// Logger builds the slog logger described by the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log.level %q must be debug, info, warn or error", s)
}
