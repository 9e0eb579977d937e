package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/appshell/pkg/render"
)

// Config configures the HTTP host.
type Config struct {
	// Address is the host:port to listen on.
	// Default: "localhost:3000"
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 5s
	ShutdownTimeout time.Duration

	// Title is the document title of every page.
	Title string

	// Lang is the html lang attribute.
	// Default: "en"
	Lang string

	// Meta, StyleSheets and Scripts are added to every page.
	Meta        []render.MetaTag
	StyleSheets []string
	Scripts     []string

	// Pretty enables indented HTML output.
	Pretty bool

	// MetricsPath is where Prometheus metrics are served.
	// Empty disables metrics entirely.
	MetricsPath string

	// MetricsNamespace prefixes metric names.
	// Default: "appshell"
	MetricsNamespace string

	// Registry receives the host's collectors and backs MetricsPath.
	// Default: a fresh registry per server.
	Registry *prometheus.Registry

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool

	// TracerName names the tracer. Default: "appshell".
	TracerName string

	// TracerProvider supplies spans. Default: the global provider.
	TracerProvider trace.TracerProvider

	// Middleware runs inside the host's own middleware, around every
	// endpoint.
	Middleware []func(http.Handler) http.Handler

	// OnPage runs once per canonical page request that matched a route.
	// Redirects, bad paths and unmatched paths never reach it.
	OnPage PageHook

	// Logger receives request logs and render errors.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:          "localhost:3000",
		ShutdownTimeout:  5 * time.Second,
		Lang:             "en",
		MetricsPath:      "/metrics",
		MetricsNamespace: "appshell",
		TracerName:       "appshell",
	}
}

// Clone returns a shallow copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Middleware = append([]func(http.Handler) http.Handler(nil), c.Middleware...)
	return &clone
}

// withDefaults fills zero values from DefaultConfig.
func (c *Config) withDefaults() *Config {
	out := c.Clone()
	d := DefaultConfig()
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.Lang == "" {
		out.Lang = d.Lang
	}
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = d.MetricsNamespace
	}
	if out.TracerName == "" {
		out.TracerName = d.TracerName
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.MetricsPath != "" && out.Registry == nil {
		out.Registry = prometheus.NewRegistry()
	}
	return out
}
