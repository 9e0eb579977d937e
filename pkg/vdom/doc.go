// Package vdom provides the render tree used by appshell.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds element attributes and
// Attr is used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Child nodes are appended by reference, in argument order.
//
// # Environment
//
// Env is the scoped environment a component sees while it renders. It is an
// immutable chain: a component implementing Providing returns an extended env
// that only its own subtree observes. Typed access lives in package scope.
package vdom
