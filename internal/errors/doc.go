// Package errors provides structured, actionable error messages for appshell.
//
// Each error has a unique code (e.g., "E100") that maps to a short message,
// a detailed explanation, and a category. Errors wrap their cause so that
// errors.Is and errors.As see through them.
//
// # Error Categories
//
//   - bootstrap: Building the application root (store factory, router)
//   - routing: Route registration and path handling
//   - render: Turning the render tree into HTML
//   - config: Loading and validating appshell.json
//
// # Usage
//
//	err := errors.New("E100").
//	    Wrap(cause).
//	    WithSuggestion("Check the store factory passed to NewRoot")
//
//	errors.PrintError(err)
package errors
