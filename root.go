package appshell

import (
	"io"
	"log/slog"

	"github.com/vango-dev/appshell/internal/errors"
	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/store"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// DefaultClassName is the class of the container element.
const DefaultClassName = "App"

// StoreFactory constructs the application store.
type StoreFactory func() (*store.Store, error)

// Root holds the store and router shared by every render.
type Root struct {
	store     *store.Store
	router    *router.Router
	className string
	logger    *slog.Logger
}

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the root logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Root) {
		r.logger = logger
	}
}

// WithClassName sets the class of the container element.
func WithClassName(name string) Option {
	return func(r *Root) {
		r.className = name
	}
}

// NewRoot calls factory exactly once and binds the resulting store and r to
// a new Root. A factory error is returned wrapped; errors.Is still finds it.
func NewRoot(factory StoreFactory, r *router.Router, opts ...Option) (*Root, error) {
	root := &Root{
		router:    r,
		className: DefaultClassName,
	}
	for _, opt := range opts {
		opt(root)
	}
	if root.logger == nil {
		root.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if factory == nil {
		return nil, errors.New("E100").WithDetail("no store factory given")
	}
	if r == nil {
		return nil, errors.New("E101")
	}

	s, err := factory()
	if err != nil {
		return nil, errors.New("E100").Wrap(err)
	}
	if s == nil {
		return nil, errors.New("E100").WithDetail("the store factory returned no store")
	}
	root.store = s

	root.logger.Debug("root ready",
		"store_id", s.ID(),
		"routes", len(r.Routes()),
	)
	return root, nil
}

// Render composes the providers around children:
//
//	store provider > router provider > div.App > children
//
// The container holds the given nodes in order; the nodes are shared,
// never cloned.
// Render never builds a store.
func (r *Root) Render(children ...*vdom.VNode) *vdom.VNode {
	forwarded := make([]*vdom.VNode, len(children))
	copy(forwarded, children)

	container := &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      "div",
		Props:    vdom.Props{"class": r.className},
		Children: forwarded,
	}
	return store.Provider(r.store, r.router.Provider(container))
}

// Store returns the store built at construction.
func (r *Root) Store() *store.Store {
	return r.store
}

// Router returns the router given at construction.
func (r *Root) Router() *router.Router {
	return r.router
}
