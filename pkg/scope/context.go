package scope

import (
	"github.com/vango-dev/appshell/pkg/vdom"
)

// Context provides dependency injection through the component tree.
// Create a context with New, provide values with Provider,
// and consume values with Use.
//
// Example:
//
//	var ThemeContext = scope.New("theme", "light")
//
//	func App() *vdom.VNode {
//	    return ThemeContext.Provider("dark",
//	        Header(),
//	        Main(),
//	    )
//	}
//
//	func Button(env *vdom.Env) *vdom.VNode {
//	    theme := ThemeContext.Use(env)
//	    return vdom.El("button", vdom.Class("btn-"+theme))
//	}
type Context[T any] struct {
	// key uniquely identifies this context in the env chain
	key any

	// name is used in debugging output only
	name string

	// defaultValue is returned when no provider is found
	defaultValue T
}

// contextKey wraps Context to create a unique key type
type contextKey[T any] struct {
	ctx *Context[T]
}

// New creates a new context with the given default value.
// The default value is returned by Use() when no Provider is found
// above the caller.
func New[T any](name string, defaultValue T) *Context[T] {
	ctx := &Context[T]{
		name:         name,
		defaultValue: defaultValue,
	}
	// Use the context pointer itself as the key to ensure uniqueness
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Name returns the debugging name of the context.
func (c *Context[T]) Name() string {
	return c.name
}

// Provider wraps children with this context's value.
// Descendant components can access the value via Use().
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Comp(&ProviderComponent[T]{
		ctx:      c,
		value:    value,
		children: vdom.Nodes(children...),
	})
}

// With binds value directly on env. Hosts use this to seed values
// before the first component renders.
func (c *Context[T]) With(env *vdom.Env, value T) *vdom.Env {
	return env.With(c.key, value)
}

// Lookup returns the value from the nearest Provider and whether one was found.
func (c *Context[T]) Lookup(env *vdom.Env) (T, bool) {
	if v, ok := env.Lookup(c.key); ok {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Use retrieves the context value from the nearest Provider ancestor.
// If no Provider is found, returns the default value.
func (c *Context[T]) Use(env *vdom.Env) T {
	if v, ok := c.Lookup(env); ok {
		return v
	}
	return c.defaultValue
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// ProviderComponent is the component behind Context.Provider.
type ProviderComponent[T any] struct {
	ctx      *Context[T]
	value    T
	children []*vdom.VNode
}

// Context returns the context this provider binds.
func (p *ProviderComponent[T]) Context() *Context[T] {
	return p.ctx
}

// Value returns the provided value.
func (p *ProviderComponent[T]) Value() T {
	return p.value
}

// Children returns the provider's child nodes.
func (p *ProviderComponent[T]) Children() []*vdom.VNode {
	return p.children
}

// Provide implements vdom.Providing.
func (p *ProviderComponent[T]) Provide(env *vdom.Env) *vdom.Env {
	return p.ctx.With(env, p.value)
}

// Render implements vdom.Component. The children are returned as a fragment;
// the renderer supplies the env produced by Provide.
func (p *ProviderComponent[T]) Render(*vdom.Env) *vdom.VNode {
	return &vdom.VNode{
		Kind:     vdom.KindFragment,
		Children: p.children,
	}
}
