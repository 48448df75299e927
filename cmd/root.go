package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gyongyosigabor/gghelper/catalog"
	"github.com/gyongyosigabor/gghelper/gitops"
	"github.com/gyongyosigabor/gghelper/internal/config"
	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
	"github.com/gyongyosigabor/gghelper/internal/logger"
	"github.com/gyongyosigabor/gghelper/syncstate"
	"github.com/gyongyosigabor/gghelper/tutor"
	"github.com/gyongyosigabor/gghelper/ui"
	"github.com/gyongyosigabor/gghelper/workflow"
)

// version is set at build time via ldflags.
var version = "2.0.0"

// VersionString returns the formatted version banner.
func VersionString() string {
	return fmt.Sprintf("gghelper v%s - Git Workflow Mentor", version)
}

// Key dependencies go through provider variables so tests can inject
// fakes without a real repository or config directory.
var (
	gitProvider           = defaultGitProvider
	probeProvider         = defaultProbeProvider
	composerProvider      = defaultComposerProvider
	prefStoreProvider     = defaultPrefStoreProvider
	progressStoreProvider = defaultProgressStoreProvider
	exitFunc              = os.Exit
)

// gitService is everything a full run needs from the git layer.
type gitService interface {
	workflow.Repo
	ui.RemoteService
	syncstate.Integrator
	CommitCountByAuthor(ctx context.Context) (int, error)
}

type preferenceStore interface {
	Load() (*config.Preferences, error)
	SetLanguage(lang string) error
	SetLevel(level string) error
}

type progressRecorder interface {
	workflow.ProgressRecorder
	Load() (*config.Progress, error)
}

func defaultGitProvider(log *zap.Logger) gitService {
	return gitops.New(gitops.NewExecRunner(log))
}

func defaultProbeProvider(remote ui.RemoteService, msgs *catalog.Catalog) workflow.StateProbe {
	return ui.NewSyncProbe(remote, msgs)
}

func defaultComposerProvider(in io.Reader, out io.Writer, msgs *catalog.Catalog, novice bool) workflow.Composer {
	capture := ui.NewCapture(in, out, msgs)
	review := func(message string) (ui.Decision, string, error) {
		return ui.ReviewMessage(msgs, message)
	}
	return ui.NewMessageFlow(capture, review, ui.Edit, out, msgs, novice)
}

func defaultPrefStoreProvider() (preferenceStore, error) {
	base, err := config.DefaultBaseDir()
	if err != nil {
		return nil, err
	}
	return config.NewPreferenceStore(filepath.Join(base, "preferences.json"))
}

func defaultProgressStoreProvider() (progressRecorder, error) {
	base, err := config.DefaultBaseDir()
	if err != nil {
		return nil, err
	}
	return config.NewProgressStore(filepath.Join(base, "progress.json"))
}

// nullRecorder keeps a run going when the progress file is unusable.
type nullRecorder struct{}

func (nullRecorder) Load() (*config.Progress, error) {
	return config.NewProgress(), nil
}

func (nullRecorder) RecordUse() (*config.Progress, error) {
	return config.NewProgress(), nil
}

func (nullRecorder) RecordCommand(string) error {
	return nil
}

func (nullRecorder) RecordScenario(string) error {
	return nil
}

func (nullRecorder) RecordTip(string) error {
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "gghelper",
	Short: "Git workflow mentor that teaches while it works",
	Long: `gghelper walks you through the everyday git cycle (stage, commit,
synchronize with the upstream, push) and explains each step at your
level, in English or Hungarian.

Before pushing, the local branch is compared with its upstream and the
relationship is classified as up-to-date, local ahead, remote ahead or
diverged. Remote-ahead branches are reconciled with a rebase, or a merge
when --safe is given. Conflicts are never resolved automatically; you
get concrete manual steps instead.`,
	Args: cobra.NoArgs,
	RunE: run,
}

var (
	flagDryRun      bool
	flagResolveOnly bool
	flagSafe        bool
	flagLang        string
	flagLevel       string
	flagSetLang     string
	flagSetLevel    string
	flagStats       bool
	flagSmartHelp   bool
	flagForce       bool
	flagDebug       bool
	flagVersion     bool
)

func init() {
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would happen without changing anything")
	rootCmd.Flags().BoolVar(&flagResolveOnly, "resolve-only", false, "skip the commit phase; synchronize and push only")
	rootCmd.Flags().BoolVar(&flagSafe, "safe", false, "integrate remote changes with a merge instead of a rebase")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "message language for this run (en or hu)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "learning level for this run (novice, intermediate, expert or auto)")
	rootCmd.Flags().StringVar(&flagSetLang, "set-lang", "", "save the default message language and exit")
	rootCmd.Flags().StringVar(&flagSetLevel, "set-level", "", "save the default learning level and exit")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "show usage statistics and exit")
	rootCmd.Flags().BoolVar(&flagSmartHelp, "smart-help", false, "show help tailored to the state of the repository")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "push even when the upstream state cannot be verified")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug output for troubleshooting")
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "show version information")
}

func Execute() error { return rootCmd.Execute() }

func ExecuteContext(ctx context.Context) error { return rootCmd.ExecuteContext(ctx) }

func run(cmd *cobra.Command, args []string) error {
	if flagVersion {
		fmt.Fprintln(cmd.OutOrStdout(), VersionString())
		return nil
	}

	if flagLang != "" {
		if _, ok := catalog.ParseLocale(flagLang); !ok {
			return fmt.Errorf("invalid --lang %q: expected en or hu", flagLang)
		}
	}
	if flagLevel != "" && flagLevel != "auto" {
		if _, ok := tutor.ParseLevel(flagLevel); !ok {
			return fmt.Errorf("invalid --level %q: expected novice, intermediate, expert or auto", flagLevel)
		}
	}
	if flagSetLang != "" {
		if _, ok := catalog.ParseLocale(flagSetLang); !ok {
			return fmt.Errorf("invalid --set-lang %q: expected en or hu", flagSetLang)
		}
	}
	if flagSetLevel != "" && !config.ValidLevel(flagSetLevel) {
		return fmt.Errorf("invalid --set-level %q: expected novice, intermediate, expert or auto", flagSetLevel)
	}

	log, err := logger.New(flagDebug)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	prefs := loadPreferences(log)
	msgs := catalog.New(resolveLocale(prefs))
	out := cmd.OutOrStdout()

	if flagSetLang != "" || flagSetLevel != "" {
		return saveSettings(out, msgs)
	}
	if flagStats {
		return showStats(out, msgs)
	}

	ctx := cmd.Context()
	git := gitProvider(log)

	if flagSmartHelp {
		return showSmartHelp(ctx, out, git, msgs, log)
	}

	in := cmd.InOrStdin()
	level := resolveLevel(ctx, git, prefs, log)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	prompt := ui.NewPrompt(in, out)

	orch := workflow.New(workflow.Deps{
		Repo:       git,
		Probe:      probeProvider(git, msgs),
		Composer:   composerProvider(in, out, msgs, level == tutor.LevelNovice),
		Integrator: git,
		Confirm: func(ctx context.Context) (bool, error) {
			return prompt.Confirm(ctx, msgs.Get(catalog.MsgSyncConfirm))
		},
		Tutor:    tutor.New(out, msgs, level, rng),
		Progress: progressRecorderOrNull(log),
		Messages: msgs,
		In:       in,
		Out:      out,
		Rand:     rng,
		Logger:   log,
	})

	outcome := orch.Run(ctx, workflow.Options{
		DryRun:      flagDryRun,
		ResolveOnly: flagResolveOnly,
		Safe:        flagSafe,
		Force:       flagForce,
	})
	if code := outcome.ExitCode(); code != apperrors.ExitCodeSuccess {
		// The workflow already printed what went wrong.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		exitFunc(code)
	}
	return nil
}

func loadPreferences(log *zap.Logger) *config.Preferences {
	store, err := prefStoreProvider()
	if err != nil {
		log.Debug("preference store unavailable", zap.Error(err))
		return &config.Preferences{}
	}
	prefs, err := store.Load()
	if err != nil {
		log.Debug("stored preferences unreadable", zap.Error(err))
		return &config.Preferences{}
	}
	return prefs
}

// resolveLocale picks the message language: explicit flag, then the
// saved preference, then the LANG environment variable.
func resolveLocale(prefs *config.Preferences) catalog.Locale {
	if locale, ok := catalog.ParseLocale(flagLang); ok {
		return locale
	}
	if locale, ok := catalog.ParseLocale(prefs.Language); ok {
		return locale
	}
	return catalog.DetectLocale(os.Getenv("LANG"))
}

// resolveLevel picks the learning level: explicit flag, then the saved
// preference. "auto" or nothing detects it from the commit history.
func resolveLevel(ctx context.Context, git gitService, prefs *config.Preferences, log *zap.Logger) tutor.Level {
	effective := prefs.Level
	if flagLevel != "" {
		effective = flagLevel
	}
	if level, ok := tutor.ParseLevel(effective); ok {
		return level
	}
	count, err := git.CommitCountByAuthor(ctx)
	if err != nil {
		log.Debug("level detection failed", zap.Error(err))
		return tutor.LevelNovice
	}
	level := tutor.DetectLevel(count)
	log.Debug("level detected from history",
		zap.Int("commits", count),
		zap.String("level", string(level)))
	return level
}

func progressRecorderOrNull(log *zap.Logger) workflow.ProgressRecorder {
	store, err := progressStoreProvider()
	if err != nil {
		log.Debug("progress store unavailable", zap.Error(err))
		return nullRecorder{}
	}
	return store
}

// saveSettings persists --set-lang and --set-level. Both may be given
// in one invocation; nothing else runs afterwards.
func saveSettings(out io.Writer, msgs *catalog.Catalog) error {
	store, err := prefStoreProvider()
	if err != nil {
		return err
	}
	if flagSetLang != "" {
		if err := store.SetLanguage(flagSetLang); err != nil {
			return err
		}
		fmt.Fprintln(out, msgs.Getf(catalog.MsgLangSaved, flagSetLang))
	}
	if flagSetLevel != "" {
		if err := store.SetLevel(flagSetLevel); err != nil {
			return err
		}
		fmt.Fprintln(out, msgs.Getf(catalog.MsgLevelSaved, flagSetLevel))
	}
	return nil
}

func showStats(out io.Writer, msgs *catalog.Catalog) error {
	store, err := progressStoreProvider()
	if err != nil {
		return err
	}
	progress, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", msgs.Get(catalog.MsgStatsTitle))
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintln(out, msgs.Getf(catalog.MsgStatsTotal, progress.UsageCount))
	if display := progress.LastUsedDisplay(); display != "" {
		fmt.Fprintln(out, msgs.Getf(catalog.MsgStatsLastUsed, display))
	}
	if len(progress.CommandsUsed) > 0 {
		fmt.Fprintf(out, "\n%s\n", msgs.Get(catalog.MsgStatsCommands))
		for _, entry := range commandsByCount(progress.CommandsUsed) {
			fmt.Fprintln(out, msgs.Getf(catalog.MsgStatsCommandEntry, entry.name, entry.count))
		}
	}
	fmt.Fprintf(out, "\n%s\n", msgs.Getf(catalog.MsgStatsNextStep, progress.NextLearningStep()))
	return nil
}

type commandCount struct {
	name  string
	count int
}

// commandsByCount sorts usage descending; ties go alphabetically so the
// output is stable.
func commandsByCount(used map[string]int) []commandCount {
	entries := make([]commandCount, 0, len(used))
	for name, count := range used {
		entries = append(entries, commandCount{name: name, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

// showSmartHelp prints advice based on the working tree, the upstream
// state and the recorded progress. It never fails: a repository that
// cannot be inspected simply contributes no advice.
func showSmartHelp(ctx context.Context, out io.Writer, git gitService, msgs *catalog.Catalog, log *zap.Logger) error {
	hasChanges := false
	if status, err := git.ShortStatus(ctx); err == nil {
		hasChanges = status != ""
	}

	behind := false
	if state, err := classifyQuietly(ctx, git); err == nil {
		behind = state == syncstate.StateRemoteAhead || state == syncstate.StateDiverged
	} else {
		log.Debug("remote state unavailable for smart help", zap.Error(err))
	}

	divider := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", divider, msgs.Get(catalog.MsgHelpHeader), divider)

	if !hasChanges {
		fmt.Fprintln(out, msgs.Get(catalog.MsgHelpNoChanges))
	}
	if behind {
		fmt.Fprintln(out, msgs.Get(catalog.MsgHelpBehind))
	}

	progress := loadProgressOrEmpty(log)
	fmt.Fprintf(out, "\n%s\n", msgs.Getf(catalog.MsgHelpStats, progress.UsageCount))
	if progress.UsageCount > 0 {
		fmt.Fprintf(out, "\n%s\n", msgs.Get(catalog.MsgHelpNextHeader))
		fmt.Fprintln(out, msgs.Get(nextStepMessage(progress.NextLearningStep())))
	}

	fmt.Fprintf(out, "\n%s\n", msgs.Get(catalog.MsgHelpCommands))
	fmt.Fprintf(out, "\n%s\n", msgs.Get(catalog.MsgHelpResources))
	fmt.Fprintln(out, divider)
	return nil
}

// classifyQuietly resolves the upstream state without the interactive
// spinner.
func classifyQuietly(ctx context.Context, git gitService) (syncstate.State, error) {
	if err := git.Fetch(ctx); err != nil {
		return syncstate.StateUnknown, err
	}
	local, err := git.Head(ctx)
	if err != nil {
		return syncstate.StateUnknown, err
	}
	remote, err := git.UpstreamHead(ctx)
	if err != nil {
		return syncstate.StateUnknown, err
	}
	base, err := git.MergeBase(ctx)
	if err != nil {
		return syncstate.StateUnknown, err
	}
	return syncstate.Classify(local, remote, base), nil
}

func loadProgressOrEmpty(log *zap.Logger) *config.Progress {
	store, err := progressStoreProvider()
	if err != nil {
		log.Debug("progress store unavailable", zap.Error(err))
		return config.NewProgress()
	}
	progress, err := store.Load()
	if err != nil {
		log.Debug("stored progress unreadable", zap.Error(err))
		return config.NewProgress()
	}
	return progress
}

func nextStepMessage(step string) catalog.ID {
	switch step {
	case "first_steps":
		return catalog.MsgHelpFirstSteps
	case "basic_workflow":
		return catalog.MsgHelpBasics
	case "advanced_topics":
		return catalog.MsgHelpAdvanced
	default:
		return catalog.MsgHelpExpert
	}
}
