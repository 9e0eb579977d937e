package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryBootstrap Category = "bootstrap"
	CategoryRouting   Category = "routing"
	CategoryRender    Category = "render"
	CategoryConfig    Category = "config"
)

// AppError is a structured error with a code, explanation, and suggestion.
type AppError struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AppError) WithSuggestion(s string) *AppError {
	e.Suggestion = s
	return e
}

// WithDetail adds or replaces the detailed explanation.
func (e *AppError) WithDetail(d string) *AppError {
	e.Detail = d
	return e
}

// Wrap sets the underlying error.
func (e *AppError) Wrap(err error) *AppError {
	e.Wrapped = err
	return e
}

// New creates an AppError from a registered error code.
func New(code string) *AppError {
	template, ok := registry[code]
	if !ok {
		return &AppError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AppError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new AppError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AppError {
	return &AppError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AppError.
// An error that already is an AppError is returned unchanged.
func FromError(err error, code string) *AppError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AppError); ok {
		return ae
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or anything it wraps is an AppError with code.
func HasCode(err error, code string) bool {
	for err != nil {
		if ae, ok := err.(*AppError); ok && ae.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
