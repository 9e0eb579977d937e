package router

import (
	"net/url"

	"github.com/vango-dev/appshell/pkg/vdom"
)

// PageHandler renders a matched page. The env carries everything provided
// above the router outlet (store, router, match).
type PageHandler func(env *vdom.Env, m *Match) *vdom.VNode

// Location is the navigation state the router matches against.
type Location struct {
	// Path is the URL path (e.g., "/items/42").
	Path string

	// RawQuery is the query string without the leading "?".
	RawQuery string
}

// ParseLocation splits a request target into a Location.
func ParseLocation(target string) Location {
	path, query := SplitPathAndQuery(target)
	return Location{Path: path, RawQuery: query}
}

// String returns the location as a request target.
func (l Location) String() string {
	if l.RawQuery == "" {
		return l.Path
	}
	return l.Path + "?" + l.RawQuery
}

// Match contains the result of matching a location against the router.
type Match struct {
	// Pattern is the registered pattern (e.g., "/items/:id").
	Pattern string

	// Path is the canonical path that matched.
	Path string

	// Params are the extracted route parameters.
	Params map[string]string

	// Query is the parsed query string.
	Query url.Values

	page PageHandler
}

// Param returns a route parameter, or "" if absent.
func (m *Match) Param(name string) string {
	if m == nil {
		return ""
	}
	return m.Params[name]
}
