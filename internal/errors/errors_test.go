package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkflowError_Error(t *testing.T) {
	t.Parallel()

	err := New(TypePush, "push rejected")
	require.Equal(t, "push rejected", err.Error())

	cause := stderrors.New("exit status 1")
	wrapped := Wrap(TypePush, "push rejected", cause)
	require.Equal(t, "push rejected: exit status 1", wrapped.Error())
}

func TestWorkflowError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("underlying")
	err := Wrap(TypeIntegration, "rebase stopped", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, cause, err.Unwrap())
}

func TestWorkflowError_Sentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("run failed: %w", ErrNotARepository)
	require.ErrorIs(t, wrapped, ErrNotARepository)
	require.Equal(t, TypeRepository, TypeOf(wrapped))

	chained := Wrap(TypePush, "git push failed", ErrPushRejected)
	require.ErrorIs(t, chained, ErrPushRejected)
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, TypeRepository, TypeOf(ErrNotARepository))
	require.Equal(t, TypeUpstream, TypeOf(ErrUpstreamUnresolvable))
	require.Equal(t, TypeIntegration, TypeOf(ErrIntegrationConflict))
	require.Equal(t, TypePush, TypeOf(ErrPushRejected))
	require.Equal(t, TypeCancelled, TypeOf(ErrUserCancelled))
	require.Equal(t, TypeUnknown, TypeOf(stderrors.New("foreign")))
	require.Equal(t, TypeUnknown, TypeOf(nil))
}

func TestGetSuggestion(t *testing.T) {
	t.Parallel()

	err := New(TypeUpstream, "no upstream").WithSuggestion("git push -u origin main")
	require.Equal(t, "git push -u origin main", GetSuggestion(err))

	wrapped := fmt.Errorf("outer: %w", err)
	require.Equal(t, "git push -u origin main", GetSuggestion(wrapped))

	require.Empty(t, GetSuggestion(stderrors.New("plain")))
}
