package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandler_Format(t *testing.T) {
	t.Parallel()

	h := NewHandler()

	t.Run("nil", func(t *testing.T) {
		require.Empty(t, h.Format(nil))
	})

	t.Run("plain_error", func(t *testing.T) {
		out := h.Format(stderrors.New("something broke"))
		require.Contains(t, out, "something broke")
	})

	t.Run("with_suggestion", func(t *testing.T) {
		err := New(TypePush, "push rejected").WithSuggestion("run gghelper --resolve-only")
		out := h.Format(err)
		require.Contains(t, out, "push rejected")
		require.Contains(t, out, "run gghelper --resolve-only")
	})

	t.Run("cancellation_is_plain", func(t *testing.T) {
		out := h.Format(ErrUserCancelled)
		require.Equal(t, ErrUserCancelled.Error(), out)
	})
}

func TestHandler_ExitCode(t *testing.T) {
	t.Parallel()

	h := NewHandler()

	require.Equal(t, ExitCodeSuccess, h.ExitCode(nil))
	require.Equal(t, ExitCodeSuccess, h.ExitCode(ErrUserCancelled))
	require.Equal(t, ExitCodeFailure, h.ExitCode(ErrNotARepository))
	require.Equal(t, ExitCodeFailure, h.ExitCode(ErrPushRejected))
	require.Equal(t, ExitCodeFailure, h.ExitCode(stderrors.New("boom")))
}
