package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/appshell/internal/errors"
	"github.com/vango-dev/appshell/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config: config,
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	return r.RenderToStringWithEnv(node, vdom.NewEnv())
}

// RenderToStringWithEnv renders a VNode tree starting from env.
func (r *Renderer) RenderToStringWithEnv(node *vdom.VNode, env *vdom.Env) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderWithEnv(&buf, node, env); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.RenderWithEnv(w, node, vdom.NewEnv())
}

// RenderWithEnv streams a VNode tree to w. Components at the top of the
// tree see env; providers extend it for their descendants.
func (r *Renderer) RenderWithEnv(w io.Writer, node *vdom.VNode, env *vdom.Env) error {
	return r.renderNode(w, node, env, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, env *vdom.Env, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, env, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, env, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, env, depth)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return errors.New("E103").WithDetail(fmt.Sprintf("unknown node kind: %d", node.Kind))
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, env *vdom.Env, depth int) error {
	tag := node.Tag
	if tag == "" {
		return errors.New("E103").WithDetail("element without a tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	// Newline after opening tag if has children and pretty printing
	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag) && !textOnly(node.Children)
	if r.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}

	childDepth := depth + 1
	if !hasBlockChildren {
		childDepth = 0
	}
	if err := r.renderChildren(w, node.Children, env, childDepth); err != nil {
		return err
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, env *vdom.Env, depth int) error {
	for _, child := range children {
		if err := r.renderNode(w, child, env, depth); err != nil {
			return err
		}
	}
	return nil
}

// textOnly reports whether children are all text, which keeps them on the
// parent's line in pretty output.
func textOnly(children []*vdom.VNode) bool {
	for _, child := range children {
		if child != nil && child.Kind != vdom.KindText {
			return false
		}
	}
	return true
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderComponent renders a component's output with the component's env.
// Panics raised by components are not recovered.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, env *vdom.Env, depth int) error {
	if node.Comp == nil {
		return nil
	}
	if p, ok := node.Comp.(vdom.Providing); ok {
		env = p.Provide(env)
	}
	return r.renderNode(w, node.Comp.Render(env), env, depth)
}

// renderAttributes renders all attributes for an element in sorted order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") {
			continue
		}
		// Functions are never attributes
		if isFunc(value) {
			continue
		}

		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if s := attrToString(value); s != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
				return err
			}
		}
	}

	return nil
}

// isFunc returns true if the value looks like an event handler.
func isFunc(value any) bool {
	if value == nil {
		return false
	}
	return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
