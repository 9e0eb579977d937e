package demo

import (
	"sort"

	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/store"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// Items listed on the home page.
var Items = []string{"1", "2", "3"}

// Routes registers the demo pages on r.
func Routes(r *router.Router) error {
	pages := map[string]router.PageHandler{
		"/":          HomePage,
		"/about":     AboutPage,
		"/items/:id": ItemPage,
	}
	patterns := make([]string, 0, len(pages))
	for p := range pages {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	for _, p := range patterns {
		if err := r.Handle(p, pages[p]); err != nil {
			return err
		}
	}
	r.NotFound(NotFoundPage)
	return nil
}

// Layout wraps page content with the site navigation.
func Layout(env *vdom.Env, content ...any) *vdom.VNode {
	s := store.FromEnv(env)
	footer := "no store"
	if s != nil {
		footer = "store " + s.ID()
	}

	return vdom.Fragment(
		vdom.Header(
			vdom.Nav(
				router.NavLink(env, "/", "Home"),
				router.NavLink(env, "/about", "About"),
			),
		),
		vdom.Main(content...),
		vdom.Footer(vdom.Text(footer)),
	)
}

// HomePage lists the items and the total visit count.
func HomePage(env *vdom.Env, m *router.Match) *vdom.VNode {
	visits := VisitsOf(store.FromEnv(env))
	return Layout(env,
		vdom.H1(vdom.Text("Home")),
		vdom.P(vdom.Textf("%d visits so far", visits.Total)),
		vdom.Ul(vdom.Range(Items, func(id string, _ int) *vdom.VNode {
			return vdom.Li(vdom.Key(id), router.Link("/items/"+id, "Item "+id))
		})),
	)
}

// AboutPage describes the demo.
func AboutPage(env *vdom.Env, m *router.Match) *vdom.VNode {
	app := "This app"
	if s := store.FromEnv(env); s != nil {
		if name, ok := s.Get("app").(string); ok {
			app = name
		}
	}
	return Layout(env,
		vdom.H1(vdom.Text("About")),
		vdom.P(vdom.Textf("%s renders every page inside one store and one router.", app)),
	)
}

// ItemPage shows one item and how often it was visited.
func ItemPage(env *vdom.Env, m *router.Match) *vdom.VNode {
	id := m.Param("id")
	visits := VisitsOf(store.FromEnv(env))
	tab := m.Query.Get("tab")

	return Layout(env,
		vdom.H1(vdom.Text("Item "+id)),
		vdom.P(vdom.Textf("Visited %d times", visits.ByPath[m.Path])),
		vdom.If(tab != "", vdom.P(vdom.Text("Tab: "+tab))),
	)
}

// NotFoundPage is rendered when no route matches.
func NotFoundPage(env *vdom.Env, m *router.Match) *vdom.VNode {
	return Layout(env,
		vdom.H1(vdom.Text("Not Found")),
		vdom.P(vdom.Text("No page at "+router.UseLocation(env).Path)),
	)
}
