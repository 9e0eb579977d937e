package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no handler claimed.
const unmatchedRoute = "unmatched"

type routeInfoKey struct{}

// routeInfo is shared by every middleware layer of one request. The
// innermost handler fills it in; outer layers read it after next returns.
type routeInfo struct {
	pattern string
}

// withRouteInfo returns r with a routeInfo attached, reusing one that an
// outer middleware already attached.
func withRouteInfo(r *http.Request) (*http.Request, *routeInfo) {
	if info, ok := r.Context().Value(routeInfoKey{}).(*routeInfo); ok {
		return r, info
	}
	info := &routeInfo{}
	return r.WithContext(context.WithValue(r.Context(), routeInfoKey{}, info)), info
}

// SetRoute records the page pattern that served the request. It is a no-op
// when no middleware from this package wraps the handler.
func SetRoute(ctx context.Context, pattern string) {
	if info, ok := ctx.Value(routeInfoKey{}).(*routeInfo); ok {
		info.pattern = pattern
	}
}

// routeLabel picks the most specific route name known for r.
func routeLabel(r *http.Request, info *routeInfo) string {
	if info.pattern != "" {
		return info.pattern
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
