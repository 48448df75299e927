// Package workflow sequences one gghelper run: check the repository,
// stage, commit, synchronize with the upstream and push, narrated by
// the tutor at the user's level.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"github.com/gyongyosigabor/gghelper/catalog"
	"github.com/gyongyosigabor/gghelper/internal/config"
	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
	"github.com/gyongyosigabor/gghelper/syncstate"
	"github.com/gyongyosigabor/gghelper/tutor"
	"github.com/gyongyosigabor/gghelper/ui"
)

// ExitOutcome is how a run ended. It decides the process exit code and
// nothing else; all user feedback has been printed by the time it is
// returned.
type ExitOutcome int

const (
	// OutcomeSuccess means the workflow ran to completion.
	OutcomeSuccess ExitOutcome = iota
	// OutcomeUserCancelled means the user backed out deliberately.
	OutcomeUserCancelled
	// OutcomeConflictPending means integration needs manual resolution;
	// the repository may be mid-rebase or mid-merge.
	OutcomeConflictPending
	// OutcomeNoGitRepository means the working directory is not a repository.
	OutcomeNoGitRepository
	// OutcomePushFailed means the final push was rejected.
	OutcomePushFailed
	// OutcomeUpstreamMissing means the upstream state could not be verified
	// and the run stopped rather than guessing.
	OutcomeUpstreamMissing
	// OutcomeFailure covers unexpected command failures.
	OutcomeFailure
)

func (o ExitOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUserCancelled:
		return "user-cancelled"
	case OutcomeConflictPending:
		return "conflict-pending"
	case OutcomeNoGitRepository:
		return "no-git-repository"
	case OutcomePushFailed:
		return "push-failed"
	case OutcomeUpstreamMissing:
		return "upstream-missing"
	default:
		return "failure"
	}
}

// ExitCode maps the outcome to the process exit code. Cancelling is a
// deliberate exit at zero cost, never an error.
func (o ExitOutcome) ExitCode() int {
	switch o {
	case OutcomeSuccess, OutcomeUserCancelled:
		return apperrors.ExitCodeSuccess
	default:
		return apperrors.ExitCodeFailure
	}
}

// Repo is the slice of the git layer the workflow drives directly.
type Repo interface {
	IsRepository(ctx context.Context) error
	ShortStatus(ctx context.Context) (string, error)
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) bool
	CurrentBranch(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// StateProbe fetches the remote and classifies the local/upstream
// relationship.
type StateProbe interface {
	Probe(ctx context.Context) (ui.SyncReport, error)
}

// Composer produces the approved commit message, or ErrUserCancelled.
type Composer interface {
	Compose(ctx context.Context) (string, error)
}

// ProgressRecorder persists learning progress across runs. Recording
// failures never stop a run.
type ProgressRecorder interface {
	RecordUse() (*config.Progress, error)
	RecordCommand(command string) error
	RecordScenario(scenario string) error
	RecordTip(tip string) error
}

// Options are the per-run flags.
type Options struct {
	// DryRun prints the plan without staging, committing or pushing.
	DryRun bool
	// ResolveOnly skips the commit phase; synchronize and push still run.
	ResolveOnly bool
	// Safe integrates with a merge instead of the default rebase.
	Safe bool
	// Force pushes even when the upstream state cannot be verified.
	Force bool
}

// Deps are the collaborators one run needs.
type Deps struct {
	Repo       Repo
	Probe      StateProbe
	Composer   Composer
	Integrator syncstate.Integrator
	Confirm    syncstate.ConfirmFunc
	Tutor      *tutor.Tutor
	Progress   ProgressRecorder
	Messages   *catalog.Catalog
	In         io.Reader // quiz answers
	Out        io.Writer
	Rand       *rand.Rand  // nil picks first variants, used by tests
	Logger     *zap.Logger // nil disables logging
}

// Orchestrator runs the workflow. It holds no state between runs.
type Orchestrator struct {
	deps Deps
}

// New creates an orchestrator from its collaborators.
func New(deps Deps) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Orchestrator{deps: deps}
}

// Run executes one workflow run and reports how it ended.
func (o *Orchestrator) Run(ctx context.Context, opts Options) ExitOutcome {
	o.deps.Logger.Debug("workflow starting",
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("resolve_only", opts.ResolveOnly),
		zap.Bool("safe", opts.Safe),
		zap.Bool("force", opts.Force),
	)

	outcome := o.run(ctx, opts)

	o.deps.Logger.Debug("workflow finished",
		zap.Stringer("outcome", outcome),
		zap.Int("exit_code", outcome.ExitCode()),
	)
	return outcome
}

func (o *Orchestrator) run(ctx context.Context, opts Options) ExitOutcome {
	d := o.deps

	fmt.Fprintf(d.Out, "\n%s\n", d.Messages.Getf(catalog.MsgWelcome, d.Tutor.Level()))
	if d.Tutor.Level() == tutor.LevelNovice {
		o.line(catalog.MsgNoviceIntro)
	}

	if opts.DryRun {
		return o.dryRun(ctx, opts)
	}

	usage := o.recordUse()

	o.banner(catalog.MsgStepCheckRepo)
	if err := d.Repo.IsRepository(ctx); err != nil {
		o.line(catalog.MsgNotARepository)
		return OutcomeNoGitRepository
	}

	o.banner(catalog.MsgStepStage)
	o.explain(tutor.ConceptStaging)
	if err := d.Repo.StageAll(ctx); err != nil {
		return o.fail(ctx, err)
	}
	o.recordCommand("git_add")

	switch {
	case opts.ResolveOnly:
		o.banner(catalog.MsgResolveOnly)
	case !d.Repo.HasStagedChanges(ctx):
		o.line(catalog.MsgNothingToCommit)
	default:
		if outcome, stop := o.commitPhase(ctx); stop {
			return outcome
		}
	}

	o.banner(catalog.MsgStepRemote)
	report, err := d.Probe.Probe(ctx)
	if err != nil {
		return o.fail(ctx, err)
	}

	switch report.State {
	case syncstate.StateUpToDate, syncstate.StateLocalAhead:
		// already based on the upstream tip, pushing is safe

	case syncstate.StateRemoteAhead:
		if outcome, stop := o.pullRemote(ctx, opts); stop {
			return outcome
		}

	case syncstate.StateDiverged:
		o.banner(catalog.MsgStepReconcile)
		o.line(catalog.MsgDiverged)
		fmt.Fprintln(d.Out, d.Messages.Getf(catalog.MsgDivergedSteps, o.branchOrHead(ctx)))
		o.explain(tutor.ConceptMergeVsRebase)
		return OutcomeConflictPending

	default: // StateUnknown
		if opts.Force {
			o.line(catalog.MsgUpstreamForced)
			break
		}
		if report.Cause != nil && !errors.Is(report.Cause, apperrors.ErrUpstreamUnresolvable) {
			// Not a missing upstream: the fetch or the merge base failed.
			return o.fail(ctx, report.Cause)
		}
		o.line(catalog.MsgUpstreamMissing)
		fmt.Fprintln(d.Out, d.Messages.Getf(catalog.MsgUpstreamSetHint, o.branchOrHead(ctx)))
		return OutcomeUpstreamMissing
	}

	return o.push(ctx, usage)
}

// commitPhase captures, reviews and commits the message. stop is true
// when the run must end with the returned outcome.
func (o *Orchestrator) commitPhase(ctx context.Context) (outcome ExitOutcome, stop bool) {
	d := o.deps

	o.banner(catalog.MsgStepCommit)
	o.explain(tutor.ConceptCommit)

	message, err := d.Composer.Compose(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserCancelled) {
			return OutcomeUserCancelled, true
		}
		return o.fail(ctx, err), true
	}
	if err := d.Repo.Commit(ctx, message); err != nil {
		return o.fail(ctx, err), true
	}
	o.recordCommand("git_commit")
	o.line(catalog.MsgCommitted)
	return OutcomeSuccess, false
}

// pullRemote integrates upstream commits when the remote is strictly
// ahead. stop is true when the run must end with the returned outcome.
func (o *Orchestrator) pullRemote(ctx context.Context, opts Options) (outcome ExitOutcome, stop bool) {
	d := o.deps

	o.banner(catalog.MsgStepReconcile)
	o.explain(tutor.ConceptActionsConflict)

	mode := syncstate.ModeRebase
	if opts.Safe {
		o.explain(tutor.ConceptMergeVsRebase)
		o.line(catalog.MsgUsingMerge)
		mode = syncstate.ModeMerge
	} else {
		o.explain(tutor.ConceptPullRebase)
		o.line(catalog.MsgUsingRebase)
	}

	reconciler := syncstate.NewReconciler(d.Integrator, d.Confirm, opts.Force)
	result, err := reconciler.Reconcile(ctx, syncstate.StateRemoteAhead, mode, true)
	switch result {
	case syncstate.OutcomeSynced:
		o.line(catalog.MsgSynced)
		if mode == syncstate.ModeMerge {
			o.recordCommand("git_merge")
		} else {
			o.recordCommand("git_rebase")
		}
		return OutcomeSuccess, false

	case syncstate.OutcomeDeclined:
		if err != nil {
			// The confirmation prompt was interrupted, not answered.
			fmt.Fprintf(d.Out, "\n%s\n", d.Messages.Get(catalog.MsgCancelled))
			return OutcomeUserCancelled, true
		}
		o.line(catalog.MsgDeclined)
		return OutcomeUserCancelled, true

	default: // OutcomeConflict
		o.line(catalog.MsgConflict)
		o.line(catalog.MsgConflictSteps)
		if tip := tutor.Tip(tutor.ScenarioConflictResolution, d.Messages.Locale(), d.Rand); tip != "" {
			fmt.Fprintf(d.Out, "\n%s\n", tip)
			o.recordScenario(tutor.ScenarioConflictResolution)
		}
		d.Tutor.AskQuiz(tutor.ConflictQuiz(d.Messages.Locale()), d.In)
		return OutcomeConflictPending, true
	}
}

// push sends the local commits upstream and celebrates.
func (o *Orchestrator) push(ctx context.Context, usage int) ExitOutcome {
	d := o.deps

	o.banner(catalog.MsgStepPush)
	o.explain(tutor.ConceptPush)
	if err := d.Repo.Push(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(d.Out, "\n%s\n", d.Messages.Get(catalog.MsgCancelled))
			return OutcomeUserCancelled
		}
		o.line(catalog.MsgPushFailed)
		o.line(catalog.MsgPushFailedAdvice)
		return OutcomePushFailed
	}
	o.recordCommand("git_push")

	fmt.Fprintf(d.Out, "\n%s\n", d.Messages.RandomSuccess(d.Rand))
	if usage > 0 && usage%5 == 0 {
		fmt.Fprintf(d.Out, "\n%s\n", d.Messages.Getf(catalog.MsgMilestone, usage))
	}
	return OutcomeSuccess
}

// dryRun verifies the repository, probes the remote and prints what a
// real run would do. Nothing is staged, committed, recorded or pushed;
// the probe's fetch is the only remote interaction.
func (o *Orchestrator) dryRun(ctx context.Context, opts Options) ExitOutcome {
	d := o.deps

	o.banner(catalog.MsgDryRunTitle)

	o.banner(catalog.MsgStepCheckRepo)
	if err := d.Repo.IsRepository(ctx); err != nil {
		o.line(catalog.MsgNotARepository)
		return OutcomeNoGitRepository
	}

	status, err := d.Repo.ShortStatus(ctx)
	if err != nil {
		return o.fail(ctx, err)
	}
	dirty := status != ""

	o.banner(catalog.MsgStepRemote)
	report, err := d.Probe.Probe(ctx)
	if err != nil {
		return o.fail(ctx, err)
	}

	fmt.Fprintf(d.Out, "\n%s\n", d.Messages.Getf(catalog.MsgDryRunState, report.State))
	if dirty {
		o.line(catalog.MsgDryRunWouldStage)
		if !opts.ResolveOnly {
			o.line(catalog.MsgDryRunWouldCommit)
		}
	}

	mode := syncstate.ModeRebase
	if opts.Safe {
		mode = syncstate.ModeMerge
	}

	switch report.State {
	case syncstate.StateRemoteAhead:
		fmt.Fprintln(d.Out, d.Messages.Getf(catalog.MsgDryRunWouldIntegrate, mode))
		o.line(catalog.MsgDryRunWouldPush)
	case syncstate.StateDiverged:
		o.line(catalog.MsgDryRunManual)
	case syncstate.StateUnknown:
		if opts.Force {
			o.line(catalog.MsgDryRunWouldPush)
		} else {
			o.line(catalog.MsgDryRunManual)
		}
	default: // UpToDate, LocalAhead
		o.line(catalog.MsgDryRunWouldPush)
	}

	return OutcomeSuccess
}

// banner prints a message with a blank line before it.
func (o *Orchestrator) banner(id catalog.ID) {
	fmt.Fprintf(o.deps.Out, "\n%s\n", o.deps.Messages.Get(id))
}

func (o *Orchestrator) line(id catalog.ID) {
	fmt.Fprintln(o.deps.Out, o.deps.Messages.Get(id))
}

// fail reports a step failure. An interrupt is not a failure: when the
// context was cancelled the run ends as a user cancellation instead.
func (o *Orchestrator) fail(ctx context.Context, err error) ExitOutcome {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		fmt.Fprintf(o.deps.Out, "\n%s\n", o.deps.Messages.Get(catalog.MsgCancelled))
		return OutcomeUserCancelled
	}
	fmt.Fprintf(o.deps.Out, "\n%s %v\n", o.deps.Messages.Get(catalog.MsgErrorPrefix), err)
	return OutcomeFailure
}

// explain lets the tutor introduce a concept and records the tip
// scenario when one was shown.
func (o *Orchestrator) explain(concept tutor.Concept) {
	if scenario := o.deps.Tutor.Explain(concept); scenario != "" {
		o.recordScenario(scenario)
	}
}

func (o *Orchestrator) recordUse() int {
	progress, err := o.deps.Progress.RecordUse()
	if err != nil {
		o.deps.Logger.Debug("recording usage failed", zap.Error(err))
		return 0
	}
	return progress.UsageCount
}

func (o *Orchestrator) recordCommand(command string) {
	if err := o.deps.Progress.RecordCommand(command); err != nil {
		o.deps.Logger.Debug("recording command failed", zap.Error(err))
	}
}

func (o *Orchestrator) recordScenario(scenario string) {
	if err := o.deps.Progress.RecordScenario(scenario); err != nil {
		o.deps.Logger.Debug("recording scenario failed", zap.Error(err))
	}
	if err := o.deps.Progress.RecordTip(scenario); err != nil {
		o.deps.Logger.Debug("recording tip failed", zap.Error(err))
	}
}

// branchOrHead names the current branch for command hints. HEAD keeps
// the hint usable from a detached checkout.
func (o *Orchestrator) branchOrHead(ctx context.Context) string {
	branch, err := o.deps.Repo.CurrentBranch(ctx)
	if err != nil || branch == "" {
		return "HEAD"
	}
	return branch
}
