package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gyongyosigabor/gghelper/catalog"
	"github.com/gyongyosigabor/gghelper/syncstate"
)

// RemoteService is the slice of git the probe needs. Declared here to
// keep the ui package decoupled from the git layer.
type RemoteService interface {
	Fetch(ctx context.Context) error
	Head(ctx context.Context) (syncstate.Ref, error)
	UpstreamHead(ctx context.Context) (syncstate.Ref, error)
	MergeBase(ctx context.Context) (syncstate.Ref, error)
}

// SyncReport is the outcome of one remote probe.
type SyncReport struct {
	State syncstate.State
	// Cause explains why classification failed when State is Unknown:
	// a failed fetch, a missing upstream, or an unresolvable merge base.
	Cause error
}

type syncStage int

const (
	stageFetch syncStage = iota
	stageClassify
	stageDone
)

// SyncModel shows a spinner while the remote is fetched and the sync
// state classified. The work runs in staged tea.Cmds; the model only
// routes messages.
type SyncModel struct {
	stage   syncStage
	spinner spinner.Model

	ctx    context.Context
	remote RemoteService
	msgs   *catalog.Catalog

	report SyncReport
	err    error
	done   bool
}

// NewSyncModel creates the probe model.
func NewSyncModel(ctx context.Context, remote RemoteService, msgs *catalog.Catalog) *SyncModel {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	return &SyncModel{
		stage:   stageFetch,
		spinner: sp,
		ctx:     ctx,
		remote:  remote,
		msgs:    msgs,
	}
}

func (m *SyncModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchCmd(m.ctx, m.remote))
}

func (m *SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = context.Canceled
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		if msg.err != nil {
			// A failed fetch means the remote state cannot be trusted.
			m.report = SyncReport{State: syncstate.StateUnknown, Cause: msg.err}
			m.stage = stageDone
			m.done = true
			return m, tea.Quit
		}
		m.stage = stageClassify
		return m, classifyCmd(m.ctx, m.remote)
	case refsResolvedMsg:
		m.report = SyncReport{
			State: syncstate.Classify(msg.local, msg.remote, msg.base),
			Cause: msg.cause,
		}
		m.stage = stageDone
		m.done = true
		return m, tea.Quit
	case probeErrorMsg:
		m.err = msg.err
		m.stage = stageDone
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *SyncModel) View() string {
	styles := DefaultStyles()
	switch m.stage {
	case stageFetch:
		return m.spinner.View() + " " + styles.Progress.Render(m.msgs.Get(catalog.MsgFetching))
	case stageClassify:
		return m.spinner.View() + " " + styles.Progress.Render(m.msgs.Get(catalog.MsgClassifying))
	default:
		return ""
	}
}

// Result returns the probe outcome. The error is fatal (broken HEAD or
// cancellation); Unknown states with a cause are reported, not errors.
func (m *SyncModel) Result() (SyncReport, error) {
	return m.report, m.err
}

// ---------------- tea.Msg definitions ----------------

type fetchDoneMsg struct{ err error }

type refsResolvedMsg struct {
	local  syncstate.Ref
	remote syncstate.Ref
	base   syncstate.Ref
	cause  error
}

type probeErrorMsg struct{ err error }

// ---------------- tea.Cmd implementations ----------------

func fetchCmd(ctx context.Context, remote RemoteService) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{err: remote.Fetch(ctx)}
	}
}

func classifyCmd(ctx context.Context, remote RemoteService) tea.Cmd {
	return func() tea.Msg {
		local, err := remote.Head(ctx)
		if err != nil {
			return probeErrorMsg{err: err}
		}
		remoteRef, err := remote.UpstreamHead(ctx)
		if err != nil {
			return refsResolvedMsg{local: local, cause: err}
		}
		base, err := remote.MergeBase(ctx)
		if err != nil {
			return refsResolvedMsg{local: local, remote: remoteRef, cause: err}
		}
		return refsResolvedMsg{local: local, remote: remoteRef, base: base}
	}
}

// SyncProbe runs the probe as a standalone program.
type SyncProbe struct {
	remote RemoteService
	msgs   *catalog.Catalog
}

// NewSyncProbe wires the probe for the given remote.
func NewSyncProbe(remote RemoteService, msgs *catalog.Catalog) *SyncProbe {
	return &SyncProbe{remote: remote, msgs: msgs}
}

// Probe fetches origin and classifies the local/upstream relationship,
// spinning while it works.
func (p *SyncProbe) Probe(ctx context.Context) (SyncReport, error) {
	final, err := tea.NewProgram(NewSyncModel(ctx, p.remote, p.msgs)).Run()
	if err != nil {
		return SyncReport{}, err
	}
	return final.(*SyncModel).Result()
}
