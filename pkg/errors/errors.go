package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors identify the failure class independent of the typed wrapper
// carrying its context. Match them with errors.Is.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnresolvedToken    = errors.New("unresolved token")
	ErrCyclicReference    = errors.New("cyclic reference")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingSection     = errors.New("missing or invalid section")
	ErrNonFiniteNumber    = errors.New("non-finite number")
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrInvalidYAML        = errors.New("invalid YAML")
	ErrUnsafeValue        = errors.New("unsafe CSS value")
)

// ColorError reports a malformed colour value.
type ColorError struct {
	Value  string
	Reason string
	Err    error
}

// NewColorError constructs a ColorError wrapping ErrInvalidColorFormat.
func NewColorError(value, reason string) error {
	return &ColorError{Value: value, Reason: reason, Err: ErrInvalidColorFormat}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid color format %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid color format %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TokenError reports a token reference that could not be resolved.
type TokenError struct {
	Path  string
	Chain []string
	Err   error
}

// NewUnresolvedTokenError constructs a TokenError for a missing path segment.
func NewUnresolvedTokenError(path string, chain []string) error {
	return &TokenError{Path: path, Chain: append([]string(nil), chain...), Err: ErrUnresolvedToken}
}

// NewCyclicReferenceError constructs a TokenError for a reference cycle.
func NewCyclicReferenceError(path string, chain []string) error {
	return &TokenError{Path: path, Chain: append([]string(nil), chain...), Err: ErrCyclicReference}
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	if errors.Is(e.Err, ErrCyclicReference) && len(e.Chain) > 0 {
		return fmt.Sprintf("cyclic reference: %s", strings.Join(e.Chain, " -> "))
	}
	if len(e.Chain) > 1 {
		return fmt.Sprintf("unresolved token %q (via %s)", e.Path, strings.Join(e.Chain, " -> "))
	}
	return fmt.Sprintf("unresolved token %q", e.Path)
}

// Unwrap exposes the underlying error.
func (e *TokenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SanitizeError reports a structural problem in an untrusted theme document.
// Field names the offending section or dotted field path.
type SanitizeError struct {
	Field   string
	Message string
	Err     error
}

// NewSanitizeError constructs a SanitizeError.
func NewSanitizeError(field, message string, err error) error {
	return &SanitizeError{Field: field, Message: message, Err: err}
}

func (e *SanitizeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap exposes the underlying error.
func (e *SanitizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a configuration parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
