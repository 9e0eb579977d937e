package store

import (
	"github.com/vango-dev/appshell/pkg/scope"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// Context exposes the application store to descendants.
var Context = scope.New[*Store]("store", nil)

// Provider makes s available to every descendant of children.
func Provider(s *Store, children ...any) *vdom.VNode {
	return Context.Provider(s, children...)
}

// FromEnv returns the store provided above env, or nil.
func FromEnv(env *vdom.Env) *Store {
	return Context.Use(env)
}

// ProviderOf returns the store bound by a provider node and whether node is one.
func ProviderOf(node *vdom.VNode) (*scope.ProviderComponent[*Store], bool) {
	if node == nil || node.Kind != vdom.KindComponent {
		return nil, false
	}
	p, ok := node.Comp.(*scope.ProviderComponent[*Store])
	if !ok || p.Context() != Context {
		return nil, false
	}
	return p, true
}
