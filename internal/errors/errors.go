// Package errors defines the workflow error taxonomy. Failures are explicit
// values handed back to the user with concrete next steps; nothing is retried
// automatically.
package errors

import (
	"errors"
	"fmt"
)

// Type groups workflow errors by what went wrong.
type Type int

const (
	// TypeUnknown is anything not covered below.
	TypeUnknown Type = iota
	// TypeRepository means the working directory is not a git repository.
	TypeRepository
	// TypeUpstream means the upstream tracking ref could not be resolved.
	TypeUpstream
	// TypeIntegration means a rebase or merge stopped; the repository is in
	// a recoverable mid-integration state.
	TypeIntegration
	// TypePush means the remote rejected the push.
	TypePush
	// TypeCancelled is a deliberate user exit, not a failure.
	TypeCancelled
	// TypeConfig covers preference and progress store problems.
	TypeConfig
	// TypeEditor covers external editor invocation problems.
	TypeEditor
)

// WorkflowError is the unified error value for the whole CLI.
type WorkflowError struct {
	Type       Type
	Message    string
	Cause      error
	Suggestion string
}

func (e *WorkflowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports errors.Is and errors.As.
func (e *WorkflowError) Unwrap() error {
	return e.Cause
}

// WithSuggestion attaches a recovery hint shown to the user.
func (e *WorkflowError) WithSuggestion(suggestion string) *WorkflowError {
	e.Suggestion = suggestion
	return e
}

// New creates a WorkflowError without a cause.
func New(t Type, message string) *WorkflowError {
	return &WorkflowError{Type: t, Message: message}
}

// Wrap creates a WorkflowError around an underlying error.
func Wrap(t Type, message string, cause error) *WorkflowError {
	return &WorkflowError{Type: t, Message: message, Cause: cause}
}

// Sentinels for the fixed taxonomy. They may be wrapped as causes so that
// errors.Is keeps working through the chain.
var (
	ErrNotARepository       = New(TypeRepository, "not a git repository")
	ErrUpstreamUnresolvable = New(TypeUpstream, "upstream branch could not be resolved")
	ErrIntegrationConflict  = New(TypeIntegration, "integration stopped on conflicts")
	ErrPushRejected         = New(TypePush, "push rejected by the remote")
	ErrUserCancelled        = New(TypeCancelled, "cancelled by user")
)

// TypeOf returns the taxonomy type of err, or TypeUnknown for foreign errors.
func TypeOf(err error) Type {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Type
	}
	return TypeUnknown
}

// GetSuggestion returns the recovery hint attached to err, if any.
func GetSuggestion(err error) string {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Suggestion
	}
	return ""
}

// Is reports whether err matches target, following wrapped causes.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
