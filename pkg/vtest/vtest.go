package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/appshell"
	"github.com/vango-dev/appshell/pkg/render"
	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/store"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// EnvBuilder allows fluent construction of render environments.
type EnvBuilder struct {
	env *vdom.Env
}

// NewEnv creates a new env builder for testing.
func NewEnv() *EnvBuilder {
	return &EnvBuilder{env: vdom.NewEnv()}
}

// WithStore provides s as the application store.
func (b *EnvBuilder) WithStore(s *store.Store) *EnvBuilder {
	b.env = store.Context.With(b.env, s)
	return b
}

// WithLocation sets the location being rendered. The target may carry a
// query string.
func (b *EnvBuilder) WithLocation(target string) *EnvBuilder {
	b.env = router.WithLocation(b.env, router.ParseLocation(target))
	return b
}

// WithRouter provides r and its match for the current location, the way
// the router provider does. Call it after WithLocation.
func (b *EnvBuilder) WithRouter(r *router.Router) *EnvBuilder {
	m, _ := r.MatchLocation(router.UseLocation(b.env))
	b.env = router.RouterContext.With(b.env, r)
	b.env = router.RouteContext.With(b.env, m)
	return b
}

// Build returns the final env for use in tests.
func (b *EnvBuilder) Build() *vdom.Env {
	return b.env
}

// Render renders node with env and fails the test on a render error.
func Render(t testing.TB, env *vdom.Env, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToStringWithEnv(node, env)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

// RenderPath renders root around a router outlet at target.
//
// Example:
//
//	html := vtest.RenderPath(t, root, "/items/2?tab=specs")
func RenderPath(t testing.TB, root *appshell.Root, target string) string {
	t.Helper()
	env := NewEnv().WithLocation(target).Build()
	return Render(t, env, root.Render(router.Outlet()))
}

// Contains asserts that html contains expected.
func Contains(t testing.TB, html, expected string) {
	t.Helper()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// NotContains asserts that html does not contain unexpected.
func NotContains(t testing.TB, html, unexpected string) {
	t.Helper()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectContains renders node with env and asserts on the output.
//
// Example:
//
//	vtest.ExpectContains(t, env, page, "Welcome")
func ExpectContains(t testing.TB, env *vdom.Env, node *vdom.VNode, expected string) {
	t.Helper()
	Contains(t, Render(t, env, node), expected)
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, env, page, "nav")
func ExpectElement(t testing.TB, env *vdom.Env, node *vdom.VNode, tag string) {
	t.Helper()
	html := Render(t, env, node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, env, page, "aria-current", "page")
func ExpectAttribute(t testing.TB, env *vdom.Env, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := Render(t, env, node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
