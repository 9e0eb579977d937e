package router

import (
	"github.com/vango-dev/appshell/pkg/vdom"
)

// Link creates an anchor element for in-app navigation.
func Link(href string, children ...any) *vdom.VNode {
	return vdom.A(
		vdom.Href(href),
		vdom.Attr{Key: "data-link", Value: "true"},
		children,
	)
}

// NavLink is a Link that marks itself as the current page when env's
// location matches href.
func NavLink(env *vdom.Env, href string, children ...any) *vdom.VNode {
	link := Link(href, children...)
	if IsActive(env, href) {
		link.Props["aria-current"] = "page"
		link.Props["class"] = "active"
	}
	return link
}

// IsActive reports whether href is the location being rendered.
func IsActive(env *vdom.Env, href string) bool {
	want, err := Canonicalize(href)
	if err != nil {
		return false
	}
	have, err := Canonicalize(UseLocation(env).Path)
	if err != nil {
		return false
	}
	return want == have
}
