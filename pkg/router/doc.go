// Package router provides the routing provider for appshell.
//
// The router provides:
//   - A route tree with static, :param and *catch-all segments
//   - Path canonicalization before matching
//   - A provider component that matches the current location and exposes
//     the match to descendants through the render environment
//   - An Outlet component that renders the matched page
//
// # Patterns
//
//	/                 → home
//	/about            → static
//	/items/:id        → Param("id")
//	/docs/*path       → Param("path") holds the remaining segments
//
// Static segments take precedence over parameters, and parameters over
// catch-alls.
//
// # Usage
//
//	r := router.New()
//	r.MustHandle("/", HomePage)
//	r.MustHandle("/items/:id", ItemPage)
//
//	tree := r.Provider(
//	    Layout(router.Outlet()),
//	)
//
// The host seeds the request location with WithLocation before rendering.
package router
