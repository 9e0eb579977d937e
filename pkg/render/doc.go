// Package render writes appshell render trees as HTML.
//
// Component nodes are rendered with the environment of their position in
// the tree. A component that implements vdom.Providing extends that
// environment for its own subtree only, so sibling subtrees never observe
// each other's providers.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(root.Render(router.Outlet()))
//
// RenderPage wraps rendered content in a complete HTML document.
package render
