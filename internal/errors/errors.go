package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("not initialized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStaleSession   = errors.New("stale session")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "element", "panel", "config"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotInitializedError indicates colorbox has no project config.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("colorbox not initialized in %s (run 'colorbox init')", e.Path)
	}
	return "colorbox not initialized (run 'colorbox init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// StaleSessionError indicates a request made against a session that has
// since been replaced, usually because the document was reloaded.
type StaleSessionError struct {
	ID      string
	Current string
}

func (e *StaleSessionError) Error() string {
	return fmt.Sprintf("session %s was replaced by %s", e.ID, e.Current)
}

func (e *StaleSessionError) Unwrap() error {
	return ErrStaleSession
}

// Helper constructors for common cases

func ElementNotFound(id string) error {
	return &NotFoundError{Resource: "element", ID: id}
}

func PanelNotFound(styleType string) error {
	return &NotFoundError{Resource: "panel", ID: styleType}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func InvalidColor(raw string) error {
	return &ValidationError{Field: "color", Message: fmt.Sprintf("%q is not a recognizable color", raw)}
}

// IsStaleSession checks if an error is a stale-session error.
func IsStaleSession(err error) bool {
	return errors.Is(err, ErrStaleSession)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
