// Package middleware provides HTTP middleware for appshell hosts.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware
//   - Structured request logging with slog
//
// All middleware has the chi signature func(http.Handler) http.Handler:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.NewMetrics().Handler)
//	r.Use(middleware.Tracing())
//
// # Route Labels
//
// Pages are served by a single catch-all handler, so the chi route pattern
// says little. Handlers report the page pattern they rendered with SetRoute
// and the middleware above them label metrics and spans with it:
//
//	middleware.SetRoute(r.Context(), match.Pattern)
//
// # Prometheus Metrics
//
//   - appshell_requests_total{route,status}: Requests served
//   - appshell_request_duration_seconds{route}: Request duration histogram
//   - appshell_render_errors_total: Pages that failed to render
//
// Expose them with promhttp:
//
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
