package router

import (
	"github.com/vango-dev/appshell/pkg/scope"
	"github.com/vango-dev/appshell/pkg/vdom"
)

var (
	// LocationContext carries the location being rendered. Hosts seed it
	// with WithLocation; without it the router renders "/".
	LocationContext = scope.New("location", Location{Path: "/"})

	// RouteContext carries the match for the current location, nil on miss.
	RouteContext = scope.New[*Match]("route", nil)

	// RouterContext carries the router that produced the match.
	RouterContext = scope.New[*Router]("router", nil)

	resolvedContext = scope.New("resolved", resolution{})
)

// resolution is a match computed by a host before rendering.
type resolution struct {
	router *Router
	loc    Location
	match  *Match
}

// Resolve matches loc once and returns env bound to loc and the match. A
// Provider for r rendered below the returned env reuses that match instead
// of matching again, so the host and the page always agree.
func (r *Router) Resolve(env *vdom.Env, loc Location) (*vdom.Env, *Match) {
	m, _ := r.MatchLocation(loc)
	env = WithLocation(env, loc)
	return resolvedContext.With(env, resolution{router: r, loc: loc, match: m}), m
}

// WithLocation binds the location to render on env.
func WithLocation(env *vdom.Env, loc Location) *vdom.Env {
	return LocationContext.With(env, loc)
}

// UseLocation returns the location being rendered.
func UseLocation(env *vdom.Env) Location {
	return LocationContext.Use(env)
}

// UseMatch returns the route match provided above env, or nil.
func UseMatch(env *vdom.Env) *Match {
	return RouteContext.Use(env)
}

// FromEnv returns the router provided above env, or nil.
func FromEnv(env *vdom.Env) *Router {
	return RouterContext.Use(env)
}

// Provider returns a component node that matches the current location and
// exposes the router and the match to children.
func (r *Router) Provider(children ...any) *vdom.VNode {
	return vdom.Comp(&ProviderComponent{
		router:   r,
		children: vdom.Nodes(children...),
	})
}

// ProviderComponent is the component behind Router.Provider.
type ProviderComponent struct {
	router   *Router
	children []*vdom.VNode
}

// Router returns the router this provider matches with.
func (p *ProviderComponent) Router() *Router {
	return p.router
}

// Children returns the provider's child nodes.
func (p *ProviderComponent) Children() []*vdom.VNode {
	return p.children
}

// Provide implements vdom.Providing.
func (p *ProviderComponent) Provide(env *vdom.Env) *vdom.Env {
	loc := LocationContext.Use(env)
	var m *Match
	if res, ok := resolvedContext.Lookup(env); ok && res.router == p.router && res.loc == loc {
		m = res.match
	} else {
		m, _ = p.router.MatchLocation(loc)
	}
	env = RouterContext.With(env, p.router)
	return RouteContext.With(env, m)
}

// Render implements vdom.Component.
func (p *ProviderComponent) Render(*vdom.Env) *vdom.VNode {
	return &vdom.VNode{
		Kind:     vdom.KindFragment,
		Children: p.children,
	}
}

// ProviderOf returns the router provider behind node and whether node is one.
func ProviderOf(node *vdom.VNode) (*ProviderComponent, bool) {
	if node == nil || node.Kind != vdom.KindComponent {
		return nil, false
	}
	p, ok := node.Comp.(*ProviderComponent)
	return p, ok
}

// Outlet renders the page for the current match. Without a match it renders
// the router's not-found page, or a plain "Not Found" heading.
func Outlet() *vdom.VNode {
	return vdom.Comp(vdom.Func(func(env *vdom.Env) *vdom.VNode {
		if m := UseMatch(env); m != nil && m.page != nil {
			return m.page(env, m)
		}
		if r := FromEnv(env); r != nil {
			if h := r.NotFoundHandler(); h != nil {
				return h(env, nil)
			}
		}
		return vdom.H1(vdom.Text("Not Found"))
	}))
}
