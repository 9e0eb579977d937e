package router

import (
	"testing"

	"github.com/vango-dev/appshell/pkg/vdom"
)

// renderOutlet provides the router for loc and renders an outlet below it.
func renderOutlet(r *Router, loc Location) *vdom.VNode {
	node := r.Provider()
	p, _ := ProviderOf(node)
	env := p.Provide(WithLocation(vdom.NewEnv(), loc))
	outlet := Outlet()
	return outlet.Comp.Render(env)
}

func TestProvider_Structure(t *testing.T) {
	r := New()
	child := vdom.Div()
	node := r.Provider(child)

	p, ok := ProviderOf(node)
	if !ok {
		t.Fatalf("ProviderOf = false for %+v", node)
	}
	if p.Router() != r {
		t.Error("provider should keep its router")
	}
	if len(p.Children()) != 1 || p.Children()[0] != child {
		t.Error("provider should keep the child node")
	}

	out := p.Render(nil)
	if out.Kind != vdom.KindFragment || out.Children[0] != child {
		t.Errorf("Render = %+v", out)
	}
}

func TestProvider_ProvidesMatch(t *testing.T) {
	r := New()
	r.MustHandle("/items/:id", textPage("item"))

	p, _ := ProviderOf(r.Provider())
	env := p.Provide(WithLocation(nil, Location{Path: "/items/7"}))

	if FromEnv(env) != r {
		t.Error("FromEnv should return the router")
	}
	m := UseMatch(env)
	if m == nil || m.Param("id") != "7" {
		t.Errorf("UseMatch = %+v", m)
	}
}

func TestProvider_DefaultLocationIsRoot(t *testing.T) {
	r := New()
	r.MustHandle("/", textPage("home"))

	p, _ := ProviderOf(r.Provider())
	env := p.Provide(vdom.NewEnv())
	if m := UseMatch(env); m == nil || m.Pattern != "/" {
		t.Errorf("UseMatch = %+v, want root match", m)
	}
}

func TestOutlet(t *testing.T) {
	r := New()
	r.MustHandle("/", textPage("home"))
	r.MustHandle("/items/:id", func(env *vdom.Env, m *Match) *vdom.VNode {
		return vdom.Text("item " + m.Param("id"))
	})

	if out := renderOutlet(r, Location{Path: "/"}); out.Text != "home" {
		t.Errorf("/ rendered %+v", out)
	}
	if out := renderOutlet(r, Location{Path: "/items/9"}); out.Text != "item 9" {
		t.Errorf("/items/9 rendered %+v", out)
	}
}

func TestOutlet_NotFound(t *testing.T) {
	r := New()
	out := renderOutlet(r, Location{Path: "/nope"})
	if out.Tag != "h1" || out.Children[0].Text != "Not Found" {
		t.Errorf("default not found = %+v", out)
	}

	r.NotFound(func(env *vdom.Env, m *Match) *vdom.VNode {
		if m != nil {
			t.Error("not-found page should get a nil match")
		}
		return vdom.Text("custom 404 for " + UseLocation(env).Path)
	})
	out = renderOutlet(r, Location{Path: "/nope"})
	if out.Text != "custom 404 for /nope" {
		t.Errorf("custom not found = %+v", out)
	}
}

func TestOutlet_WithoutProvider(t *testing.T) {
	out := Outlet().Comp.Render(vdom.NewEnv())
	if out.Tag != "h1" {
		t.Errorf("outlet without provider = %+v", out)
	}
}

func TestNavLink(t *testing.T) {
	env := WithLocation(nil, Location{Path: "/about/"})

	active := NavLink(env, "/about", "About")
	if active.Props["aria-current"] != "page" {
		t.Errorf("active link props = %v", active.Props)
	}
	if active.Props["data-link"] != "true" || active.Props["href"] != "/about" {
		t.Errorf("link props = %v", active.Props)
	}
	if len(active.Children) != 1 || active.Children[0].Text != "About" {
		t.Errorf("link children = %+v", active.Children)
	}

	inactive := NavLink(env, "/", "Home")
	if _, ok := inactive.Props["aria-current"]; ok {
		t.Error("inactive link should not be marked current")
	}
}

func TestWithOptions(t *testing.T) {
	r := New(WithNotFound(textPage("gone")))
	if r.NotFoundHandler() == nil {
		t.Fatal("WithNotFound should set the handler")
	}
	out := renderOutlet(r, Location{Path: "/x"})
	if out.Text != "gone" {
		t.Errorf("rendered %+v", out)
	}
}

func TestResolve_ProviderReusesMatch(t *testing.T) {
	r := New()
	r.MustHandle("/items/:id", textPage("item"))

	env, m := r.Resolve(vdom.NewEnv(), Location{Path: "/items/7"})
	if m == nil || m.Pattern != "/items/:id" {
		t.Fatalf("Resolve match = %+v", m)
	}
	if got := UseLocation(env).Path; got != "/items/7" {
		t.Errorf("UseLocation = %q", got)
	}

	// Routes added after resolving must not change what the provider sees.
	r.MustHandle("/items/7", textPage("static"))

	p, _ := ProviderOf(r.Provider())
	if got := UseMatch(p.Provide(env)); got != m {
		t.Errorf("provider matched again: got %+v, want %+v", got, m)
	}
}

func TestResolve_OtherRouterMatchesAgain(t *testing.T) {
	a := New()
	a.MustHandle("/", textPage("a"))
	b := New()

	env, m := a.Resolve(vdom.NewEnv(), Location{Path: "/"})
	if m == nil {
		t.Fatal("router a should match /")
	}

	p, _ := ProviderOf(b.Provider())
	if got := UseMatch(p.Provide(env)); got != nil {
		t.Errorf("router b has no routes, UseMatch = %+v", got)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	r := New()
	env, m := r.Resolve(vdom.NewEnv(), Location{Path: "/missing"})
	if m != nil {
		t.Errorf("Resolve match = %+v, want nil", m)
	}

	p, _ := ProviderOf(r.Provider())
	if UseMatch(p.Provide(env)) != nil {
		t.Error("provider should see no match")
	}
}
