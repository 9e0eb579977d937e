package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Links and metadata

func Href(href string) Attr       { return attr("href", href) }
func Rel(rel string) Attr         { return attr("rel", rel) }
func Src(src string) Attr         { return attr("src", src) }
func Lang(lang string) Attr       { return attr("lang", lang) }
func Charset(charset string) Attr { return attr("charset", charset) }
func Name(name string) Attr       { return attr("name", name) }
func Content(content string) Attr { return attr("content", content) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// Boolean attributes

// Hidden sets the hidden attribute.
func Hidden(hidden bool) Attr { return attr("hidden", hidden) }

// Defer sets the defer attribute on scripts.
func Defer() Attr { return attr("defer", true) }
