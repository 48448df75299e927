package errors

import (
	"strings"

	"github.com/fatih/color"
)

// Process exit codes. Cancelled runs are deliberate exits and share the
// success code.
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

// Handler formats workflow errors for the terminal.
type Handler struct{}

// NewHandler creates a new error handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Format renders err as a red message plus an optional suggestion block.
// Cancellation renders as a plain notice since it is not a failure.
func (h *Handler) Format(err error) string {
	if err == nil {
		return ""
	}

	if TypeOf(err) == TypeCancelled {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(color.RedString("Error: %s", err.Error()))

	if suggestion := GetSuggestion(err); suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(color.YellowString(suggestion))
	}

	return sb.String()
}

// ExitCode maps an error to the process exit code. A nil error and a user
// cancellation both exit zero; everything else is a failure.
func (h *Handler) ExitCode(err error) int {
	if err == nil || TypeOf(err) == TypeCancelled {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
