package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Bootstrap Errors (E100-E101)
	// ============================================

	"E100": {
		Category: CategoryBootstrap,
		Message:  "Store construction failed",
		Detail:   "The state container factory returned an error or no store. The application root cannot be built without a store.",
	},
	"E101": {
		Category: CategoryBootstrap,
		Message:  "Router missing",
		Detail:   "The application root needs a router to provide navigation context.",
	},

	// ============================================
	// Routing Errors (E102-E105)
	// ============================================

	"E102": {
		Category: CategoryRouting,
		Message:  "Route conflict",
		Detail:   "A page is already registered for this pattern, or a parameter name conflicts with an existing route.",
	},
	"E104": {
		Category: CategoryRouting,
		Message:  "Invalid route pattern",
		Detail:   "Route patterns are slash-separated segments. Use :name for a parameter and *name for a trailing catch-all.",
	},
	"E105": {
		Category: CategoryRouting,
		Message:  "Invalid path",
		Detail:   "The request path contains a backslash, a NUL byte, a malformed percent-escape, or escapes the root.",
	},

	// ============================================
	// Render Errors (E103)
	// ============================================

	"E103": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The render tree contains a node the renderer cannot write.",
	},

	// ============================================
	// Config Errors (E120-E141)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Config parse failed",
		Detail:   "appshell.json could not be read or is not valid JSON.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is out of range.",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Config not found",
		Detail:   "No appshell.json was found in the given directory.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
