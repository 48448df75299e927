package syncstate

import (
	"context"
)

// Mode selects the integration strategy used when the upstream has commits
// the local branch lacks.
type Mode int

const (
	// ModeRebase replays local commits onto the upstream tip (linear history).
	ModeRebase Mode = iota
	// ModeMerge joins the histories with a merge commit.
	ModeMerge
)

func (m Mode) String() string {
	if m == ModeMerge {
		return "merge"
	}
	return "rebase"
}

// Outcome is the result of reconciling a classified sync state.
type Outcome int

const (
	// OutcomeNoActionNeeded means nothing had to be integrated; pushing may
	// proceed.
	OutcomeNoActionNeeded Outcome = iota
	// OutcomeSynced means remote changes were integrated successfully.
	OutcomeSynced
	// OutcomeConflict means integration is required but must be done by hand;
	// the repository may be mid-rebase or mid-merge.
	OutcomeConflict
	// OutcomeDeclined means the user refused the integration; pushing with a
	// stale base must not happen.
	OutcomeDeclined
	// OutcomeAborted means the state could not be determined and the run
	// stops rather than guessing.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoActionNeeded:
		return "no-action-needed"
	case OutcomeSynced:
		return "synced"
	case OutcomeConflict:
		return "conflict-needs-manual-resolution"
	case OutcomeDeclined:
		return "user-declined"
	default:
		return "aborted"
	}
}

// Integrator runs the actual integration commands against the repository.
// The production implementation shells out to the VCS; tests inject fakes.
type Integrator interface {
	IntegrateRebase(ctx context.Context) error
	IntegrateMerge(ctx context.Context) error
}

// ConfirmFunc asks the user whether remote changes should be pulled in.
// It blocks until the user answers or interrupts.
type ConfirmFunc func(ctx context.Context) (bool, error)

// Reconciler decides, per classified state, whether to integrate remote
// changes, ask first, or hand the situation back to the user.
type Reconciler struct {
	integrator Integrator
	confirm    ConfirmFunc
	force      bool
}

// NewReconciler builds a Reconciler. confirm may be nil, in which case
// interactive reconciliation proceeds as if the user had agreed. force
// controls whether an Unknown state lets the run continue (push without a
// verified upstream) instead of aborting.
func NewReconciler(integrator Integrator, confirm ConfirmFunc, force bool) *Reconciler {
	return &Reconciler{integrator: integrator, confirm: confirm, force: force}
}

// Reconcile applies the synchronization policy:
//
//	UpToDate, LocalAhead -> NoActionNeeded, no integration command runs
//	RemoteAhead          -> confirm (interactive only), then rebase or merge
//	Diverged             -> Conflict immediately, no automatic integration
//	Unknown              -> Aborted, unless the reconciler was forced
//
// Diverged histories are never integrated automatically: a rebase or merge
// across them can silently reorder or duplicate the user's commits. A failed
// integration returns OutcomeConflict together with the command error; the
// repository is left in the mid-integration state for manual resolution.
func (r *Reconciler) Reconcile(ctx context.Context, state State, mode Mode, interactive bool) (Outcome, error) {
	switch state {
	case StateUpToDate, StateLocalAhead:
		return OutcomeNoActionNeeded, nil

	case StateRemoteAhead:
		if interactive && r.confirm != nil {
			ok, err := r.confirm(ctx)
			if err != nil {
				return OutcomeDeclined, err
			}
			if !ok {
				return OutcomeDeclined, nil
			}
		}
		var err error
		if mode == ModeMerge {
			err = r.integrator.IntegrateMerge(ctx)
		} else {
			err = r.integrator.IntegrateRebase(ctx)
		}
		if err != nil {
			return OutcomeConflict, err
		}
		return OutcomeSynced, nil

	case StateDiverged:
		return OutcomeConflict, nil

	default: // StateUnknown
		if r.force {
			return OutcomeNoActionNeeded, nil
		}
		return OutcomeAborted, nil
	}
}
