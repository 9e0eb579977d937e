package router

import (
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/appshell/internal/errors"
)

// Router manages route registration and matching.
// Registration and matching may happen from different goroutines.
type Router struct {
	mu       sync.RWMutex
	root     *routeNode
	patterns map[string]struct{}
	notFound PageHandler
	logger   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithNotFound sets the page rendered when no route matches.
func WithNotFound(h PageHandler) Option {
	return func(r *Router) {
		r.notFound = h
	}
}

// New creates a new router.
func New(opts ...Option) *Router {
	r := &Router{
		root:     newRouteNode(""),
		patterns: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Handle registers a page handler for a pattern.
//
// Example:
//
//	r.Handle("/items/:id", func(env *vdom.Env, m *router.Match) *vdom.VNode {
//	    return vdom.H1(vdom.Text("Item " + m.Param("id")))
//	})
func (r *Router) Handle(pattern string, h PageHandler) error {
	if h == nil {
		return errors.New("E104").WithDetail("nil handler for " + pattern)
	}
	canonical, err := canonicalPattern(pattern)
	if err != nil {
		return errors.New("E104").Wrap(err).WithDetail("pattern " + pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.patterns[canonical]; exists {
		return errors.New("E102").WithDetail("a page is already registered for " + canonical)
	}
	node, err := r.root.insertRoute(canonical)
	if err != nil {
		return errors.New("E102").Wrap(err).WithDetail("pattern " + canonical)
	}
	node.page = h
	node.pattern = canonical
	r.patterns[canonical] = struct{}{}

	r.logger.Debug("route registered", "pattern", canonical)
	return nil
}

// MustHandle is like Handle but panics on error.
func (r *Router) MustHandle(pattern string, h PageHandler) {
	if err := r.Handle(pattern, h); err != nil {
		panic(err)
	}
}

// NotFound sets the page rendered when no route matches.
func (r *Router) NotFound(h PageHandler) {
	r.mu.Lock()
	r.notFound = h
	r.mu.Unlock()
}

// NotFoundHandler returns the configured not-found page, or nil.
func (r *Router) NotFoundHandler() PageHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notFound
}

// Routes returns the registered patterns in sorted order.
func (r *Router) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.patterns))
	for p := range r.patterns {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Match finds the route for a location path. The path is canonicalized
// first; an invalid path never matches.
func (r *Router) Match(path string) (*Match, bool) {
	return r.MatchLocation(ParseLocation(path))
}

// MatchLocation finds the route for loc.
func (r *Router) MatchLocation(loc Location) (*Match, bool) {
	canonical, err := Canonicalize(loc.Path)
	if err != nil {
		r.logger.Debug("rejected path", "path", loc.Path, "error", err)
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	params := make(map[string]string)
	node, ok := r.root.match(splitPath(canonical), params)
	if !ok {
		return nil, false
	}

	for name, value := range params {
		if decoded, err := url.PathUnescape(value); err == nil {
			params[name] = decoded
		}
	}

	query, _ := url.ParseQuery(loc.RawQuery)
	return &Match{
		Pattern: node.pattern,
		Path:    canonical,
		Params:  params,
		Query:   query,
		page:    node.page,
	}, true
}

// canonicalPattern normalizes a pattern the same way paths are normalized,
// keeping :param and *rest markers.
func canonicalPattern(pattern string) (string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return "", ErrInvalidPattern
	}
	canonical, err := Canonicalize(pattern)
	if err != nil {
		return "", err
	}
	return canonical, nil
}
