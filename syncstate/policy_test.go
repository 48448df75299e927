package syncstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fakeIntegrator counts integration calls and returns a preset error.
type fakeIntegrator struct {
	rebaseCalls int
	mergeCalls  int
	err         error
}

func (f *fakeIntegrator) IntegrateRebase(_ context.Context) error {
	f.rebaseCalls++
	return f.err
}

func (f *fakeIntegrator) IntegrateMerge(_ context.Context) error {
	f.mergeCalls++
	return f.err
}

func confirmWith(answer bool) ConfirmFunc {
	return func(_ context.Context) (bool, error) { return answer, nil }
}

func TestReconcile_UpToDateNeedsNothing(t *testing.T) {
	t.Parallel()

	fi := &fakeIntegrator{}
	asked := false
	r := NewReconciler(fi, func(_ context.Context) (bool, error) {
		asked = true
		return true, nil
	}, false)

	outcome, err := r.Reconcile(context.Background(), StateUpToDate, ModeRebase, true)
	require.NoError(t, err)
	require.Equal(t, OutcomeNoActionNeeded, outcome)
	require.Zero(t, fi.rebaseCalls)
	require.Zero(t, fi.mergeCalls)
	require.False(t, asked)
}

func TestReconcile_LocalAheadNeedsNothing(t *testing.T) {
	t.Parallel()

	fi := &fakeIntegrator{}
	r := NewReconciler(fi, confirmWith(true), false)

	outcome, err := r.Reconcile(context.Background(), StateLocalAhead, ModeRebase, true)
	require.NoError(t, err)
	require.Equal(t, OutcomeNoActionNeeded, outcome)
	require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
}

func TestReconcile_RemoteAhead(t *testing.T) {
	t.Parallel()

	t.Run("confirmed_rebase", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, confirmWith(true), false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeSynced, outcome)
		require.Equal(t, 1, fi.rebaseCalls)
		require.Zero(t, fi.mergeCalls)
	})

	t.Run("confirmed_merge", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, confirmWith(true), false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeMerge, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeSynced, outcome)
		require.Equal(t, 1, fi.mergeCalls)
		require.Zero(t, fi.rebaseCalls)
	})

	t.Run("declined", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, confirmWith(false), false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeDeclined, outcome)
		require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
	})

	t.Run("confirm_error", func(t *testing.T) {
		fi := &fakeIntegrator{}
		promptErr := errors.New("interrupted")
		r := NewReconciler(fi, func(_ context.Context) (bool, error) {
			return false, promptErr
		}, false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, true)
		require.ErrorIs(t, err, promptErr)
		require.Equal(t, OutcomeDeclined, outcome)
		require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
	})

	t.Run("non_interactive_skips_prompt", func(t *testing.T) {
		fi := &fakeIntegrator{}
		asked := false
		r := NewReconciler(fi, func(_ context.Context) (bool, error) {
			asked = true
			return false, nil
		}, false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, false)
		require.NoError(t, err)
		require.Equal(t, OutcomeSynced, outcome)
		require.False(t, asked)
		require.Equal(t, 1, fi.rebaseCalls)
	})

	t.Run("nil_confirm_proceeds", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, nil, false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeSynced, outcome)
	})

	t.Run("integration_conflict", func(t *testing.T) {
		fi := &fakeIntegrator{err: errors.New("CONFLICT (content): merge conflict in main.go")}
		r := NewReconciler(fi, confirmWith(true), false)

		outcome, err := r.Reconcile(context.Background(), StateRemoteAhead, ModeRebase, true)
		require.Error(t, err)
		require.Equal(t, OutcomeConflict, outcome)
		require.Equal(t, 1, fi.rebaseCalls)
	})
}

func TestReconcile_DivergedIsAlwaysManual(t *testing.T) {
	t.Parallel()

	fi := &fakeIntegrator{}
	r := NewReconciler(fi, confirmWith(true), false)

	for _, mode := range []Mode{ModeRebase, ModeMerge} {
		outcome, err := r.Reconcile(context.Background(), StateDiverged, mode, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeConflict, outcome)
	}
	require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
}

func TestReconcile_Unknown(t *testing.T) {
	t.Parallel()

	t.Run("aborts_by_default", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, confirmWith(true), false)

		outcome, err := r.Reconcile(context.Background(), StateUnknown, ModeRebase, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeAborted, outcome)
		require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
	})

	t.Run("forced_lets_push_proceed", func(t *testing.T) {
		fi := &fakeIntegrator{}
		r := NewReconciler(fi, confirmWith(true), true)

		outcome, err := r.Reconcile(context.Background(), StateUnknown, ModeRebase, true)
		require.NoError(t, err)
		require.Equal(t, OutcomeNoActionNeeded, outcome)
		require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
	})
}

// The integrator must run exactly once for RemoteAhead and never otherwise,
// whatever the mode, interactivity or force settings.
func TestProperty_IntegrationOnlyForRemoteAhead(t *testing.T) {
	states := []State{StateUnknown, StateUpToDate, StateLocalAhead, StateRemoteAhead, StateDiverged}
	modes := []Mode{ModeRebase, ModeMerge}

	rapid.Check(t, func(t *rapid.T) {
		state := rapid.SampledFrom(states).Draw(t, "state")
		mode := rapid.SampledFrom(modes).Draw(t, "mode")
		interactive := rapid.Bool().Draw(t, "interactive")
		force := rapid.Bool().Draw(t, "force")

		fi := &fakeIntegrator{}
		r := NewReconciler(fi, nil, force)

		_, err := r.Reconcile(context.Background(), state, mode, interactive)
		require.NoError(t, err)

		if state == StateRemoteAhead {
			require.Equal(t, 1, fi.rebaseCalls+fi.mergeCalls)
		} else {
			require.Zero(t, fi.rebaseCalls+fi.mergeCalls)
		}
	})
}
