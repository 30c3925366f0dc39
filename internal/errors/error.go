package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryServer   Category = "server"
	CategoryRuntime  Category = "runtime"
	CategoryProtocol Category = "protocol"
	CategoryCLI      Category = "cli"
)

// LumenError is a structured error with a code, suggestions and a
// documentation pointer.
type LumenError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, server, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LumenError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LumenError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *LumenError) WithDetail(d string) *LumenError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LumenError) WithSuggestion(s string) *LumenError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *LumenError) Wrap(err error) *LumenError {
	e.Wrapped = err
	return e
}

// New creates a LumenError from a registered error code.
func New(code string) *LumenError {
	template, ok := registry[code]
	if !ok {
		return &LumenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LumenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LumenError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LumenError {
	return &LumenError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LumenError.
func FromError(err error, code string) *LumenError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LumenError); ok {
		return le
	}
	return New(code).Wrap(err)
}
