// Package vtest provides testing helpers for appshell pages.
//
// The vtest package reduces boilerplate when testing pages by building
// render environments and asserting on rendered HTML.
//
// # Quick Start
//
//	func TestItemPage(t *testing.T) {
//	    html := vtest.RenderPath(t, root, "/items/2")
//	    vtest.Contains(t, html, "<h1>Item 2</h1>")
//	}
//
// # Fluent Env Builder
//
// Pages can also be rendered on their own. The builder seeds the env the
// providers of a Root would have set up:
//
//	env := vtest.NewEnv().
//	    WithStore(s).
//	    WithLocation("/items/2").
//	    WithRouter(r).
//	    Build()
//
//	vtest.ExpectContains(t, env, demo.ItemPage(env, router.UseMatch(env)), "Item 2")
package vtest
