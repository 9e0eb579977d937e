package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/appshell/internal/errors"
	"github.com/vango-dev/appshell/pkg/scope"
	"github.com/vango-dev/appshell/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderEmptyElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	html, err := renderer.RenderToString(vdom.Div(vdom.Class("App")))
	if err != nil {
		t.Fatal(err)
	}
	if html != `<div class="App"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "meta",
			node: vdom.Meta(vdom.Name("description"), vdom.Content("x")),
			want: `<meta content="x" name="description">`,
		},
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "link",
			node: vdom.Link(vdom.Rel("stylesheet"), vdom.Href("/app.css")),
			want: `<link href="/app.css" rel="stylesheet">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.El("input",
		vdom.Attr{Key: "className", Value: "field"},
		vdom.Attr{Key: "required", Value: true},
		vdom.Attr{Key: "disabled", Value: false},
		vdom.Attr{Key: "_internal", Value: "x"},
		vdom.Attr{Key: "onclick", Value: func() {}},
		vdom.Attr{Key: "tabindex", Value: 3},
		vdom.Attr{Key: "title", Value: "a \"quoted\"\nvalue"},
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `<input class="field" required tabindex="3" title="a &quot;quoted&quot;&#10;value">`
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}

func TestRenderFragmentAndRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.Fragment(vdom.Text("a"), vdom.Raw("<b>b</b>"), vdom.Text("c"))

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if html != "a<b>b</b>c" {
		t.Errorf("got %q", html)
	}
}

func TestRenderComponent(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	comp := vdom.Func(func(*vdom.Env) *vdom.VNode {
		return vdom.Span(vdom.Text("from component"))
	})

	html, err := renderer.RenderToString(vdom.Div(comp))
	if err != nil {
		t.Fatal(err)
	}
	if html != "<div><span>from component</span></div>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderProviderScoping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	theme := scope.New("theme", "light")

	reader := func() *vdom.VNode {
		return vdom.Comp(vdom.Func(func(env *vdom.Env) *vdom.VNode {
			return vdom.Span(vdom.Text(theme.Use(env)))
		}))
	}

	tree := vdom.Div(
		theme.Provider("dark",
			reader(),
			theme.Provider("blue", reader()),
			reader(),
		),
		reader(),
	)

	html, err := renderer.RenderToString(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "<div><span>dark</span><span>blue</span><span>dark</span><span>light</span></div>"
	if html != want {
		t.Errorf("got %q\nwant %q", html, want)
	}
}

func TestRenderWithEnv(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	user := scope.New("user", "anonymous")
	env := user.With(vdom.NewEnv(), "ada")

	node := vdom.Comp(vdom.Func(func(env *vdom.Env) *vdom.VNode {
		return vdom.Text("hi " + user.Use(env))
	}))

	html, err := renderer.RenderToStringWithEnv(node, env)
	if err != nil {
		t.Fatal(err)
	}
	if html != "hi ada" {
		t.Errorf("got %q", html)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	_, err := renderer.RenderToString(vdom.Div(&vdom.VNode{Kind: vdom.VKind(42)}))
	if !errors.HasCode(err, "E103") {
		t.Errorf("err = %v, want E103", err)
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement})
	if !errors.HasCode(err, "E103") {
		t.Errorf("err = %v, want E103", err)
	}
}

func TestRenderNilNodes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("nil node = (%q, %v)", html, err)
	}

	html, err = renderer.RenderToString(&vdom.VNode{Kind: vdom.KindComponent})
	if err != nil || html != "" {
		t.Errorf("component without Comp = (%q, %v)", html, err)
	}
}

func TestRenderComponentPanicPropagates(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.Comp(vdom.Func(func(*vdom.Env) *vdom.VNode {
		panic("component failed")
	}))

	defer func() {
		if r := recover(); r != "component failed" {
			t.Errorf("recover() = %v, want component failed", r)
		}
	}()
	renderer.RenderToString(node)
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	node := vdom.Div(vdom.P(vdom.Text("x")), vdom.Span(vdom.Text("y")))

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "\n  <p>x</p>\n") {
		t.Errorf("pretty output should indent children, got %q", html)
	}
	if !strings.Contains(html, "<span>y</span>") {
		t.Errorf("inline children stay on one line, got %q", html)
	}
}

func TestRenderToWriter(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(RendererConfig{})
	if err := renderer.RenderToWriter(&buf, vdom.P(vdom.Text("w"))); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<p>w</p>" {
		t.Errorf("got %q", buf.String())
	}
}
