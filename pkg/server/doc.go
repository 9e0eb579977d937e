// Package server serves an appshell Root over HTTP.
//
// Every GET request outside the host's own endpoints renders the Root around
// a router outlet for the request location and writes a complete HTML page:
//
//	srv := server.New(root, server.DefaultConfig())
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The handler is a chi router, so it mounts under other chi routers or any
// http.ServeMux:
//
//	mux.Handle("/", srv.Handler())
//
// # Endpoints
//
//   - GET /healthz: liveness probe, always "ok"
//   - GET /metrics: Prometheus exposition when metrics are enabled
//   - GET /*: rendered pages; 404 when no route matches
//
// Non-canonical paths (trailing slashes, duplicate slashes, dot segments)
// are redirected permanently to their canonical form. Paths that cannot be
// canonicalized are rejected with 400.
package server
