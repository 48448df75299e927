package gitops

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
	"github.com/gyongyosigabor/gghelper/syncstate"
)

// Git wraps the handful of git operations the guided workflow performs.
// Every method shells out through the injected Runner; none of them keep
// state between calls.
type Git struct {
	runner Runner
}

// New creates a Git facade over the given runner.
func New(r Runner) *Git {
	return &Git{runner: r}
}

// detail prefers git's own message over the bare exit error.
func detail(out []byte, err error) string {
	if s := strings.TrimSpace(string(out)); s != "" {
		return s
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsRepository reports whether the working directory is inside a git
// repository.
func (g *Git) IsRepository(ctx context.Context) error {
	if _, err := g.runner.Run(ctx, "git", "rev-parse", "--git-dir"); err != nil {
		return apperrors.ErrNotARepository
	}
	return nil
}

// ShortStatus returns the porcelain status, one changed path per line.
// Empty output means a clean working tree.
func (g *Git) ShortStatus(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("git status failed: %s", detail(out, err))
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// StageAll stages every change under the current directory, untracked
// files included.
func (g *Git) StageAll(ctx context.Context) error {
	if out, err := g.runner.Run(ctx, "git", "add", "."); err != nil {
		return fmt.Errorf("git add failed: %s", detail(out, err))
	}
	return nil
}

// HasStagedChanges reports whether anything is staged for commit.
// git diff --cached --quiet exits 1 when the index differs from HEAD.
func (g *Git) HasStagedChanges(ctx context.Context) bool {
	_, err := g.runner.Run(ctx, "git", "diff", "--cached", "--quiet")
	return err != nil
}

// Commit records the staged changes with the given message.
func (g *Git) Commit(ctx context.Context, message string) error {
	if out, err := g.runner.Run(ctx, "git", "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit failed: %s", detail(out, err))
	}
	return nil
}

// Fetch updates the remote tracking refs from origin.
func (g *Git) Fetch(ctx context.Context) error {
	if out, err := g.runner.Run(ctx, "git", "fetch", "origin"); err != nil {
		return fmt.Errorf("git fetch failed: %s", detail(out, err))
	}
	return nil
}

// Head resolves the local branch head.
func (g *Git) Head(ctx context.Context) (syncstate.Ref, error) {
	out, err := g.runner.Run(ctx, "git", "rev-parse", "@")
	if err != nil {
		return "", fmt.Errorf("cannot resolve HEAD: %s", detail(out, err))
	}
	return syncstate.Ref(strings.TrimSpace(string(out))), nil
}

// UpstreamHead resolves the upstream tracking ref. A branch without an
// upstream yields ErrUpstreamUnresolvable.
func (g *Git) UpstreamHead(ctx context.Context) (syncstate.Ref, error) {
	out, err := g.runner.Run(ctx, "git", "rev-parse", "@{u}")
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUpstreamUnresolvable, detail(out, err))
	}
	return syncstate.Ref(strings.TrimSpace(string(out))), nil
}

// MergeBase resolves the common ancestor of HEAD and its upstream.
func (g *Git) MergeBase(ctx context.Context) (syncstate.Ref, error) {
	out, err := g.runner.Run(ctx, "git", "merge-base", "@", "@{u}")
	if err != nil {
		return "", fmt.Errorf("cannot resolve merge base: %s", detail(out, err))
	}
	return syncstate.Ref(strings.TrimSpace(string(out))), nil
}

// CurrentBranch returns the checked-out branch name, empty on detached
// HEAD.
func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("cannot resolve current branch: %s", detail(out, err))
	}
	return strings.TrimSpace(string(out)), nil
}

// IntegrateRebase replays local commits on top of the upstream with
// git pull --rebase. A stopped rebase surfaces as ErrIntegrationConflict.
func (g *Git) IntegrateRebase(ctx context.Context) error {
	return g.integrate(ctx, "--rebase")
}

// IntegrateMerge merges the upstream into the local branch with
// git pull --no-rebase. A stopped merge surfaces as ErrIntegrationConflict.
func (g *Git) IntegrateMerge(ctx context.Context) error {
	return g.integrate(ctx, "--no-rebase")
}

func (g *Git) integrate(ctx context.Context, strategy string) error {
	branch, err := g.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch == "" {
		return fmt.Errorf("%w: detached HEAD", apperrors.ErrUpstreamUnresolvable)
	}
	if out, err := g.runner.Run(ctx, "git", "pull", strategy, "origin", branch); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrIntegrationConflict, detail(out, err))
	}
	return nil
}

// Push publishes the local branch. Rejections surface as ErrPushRejected
// with git's own explanation attached.
func (g *Git) Push(ctx context.Context) error {
	if out, err := g.runner.Run(ctx, "git", "push"); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrPushRejected, detail(out, err))
	}
	return nil
}

// CommitCountByAuthor counts commits across all branches written by the
// configured user. Used for experience-level detection; a missing email
// counts as zero.
func (g *Git) CommitCountByAuthor(ctx context.Context) (int, error) {
	out, err := g.runner.Run(ctx, "git", "config", "user.email")
	if err != nil {
		return 0, nil
	}
	email := strings.TrimSpace(string(out))
	if email == "" {
		return 0, nil
	}

	out, err = g.runner.Run(ctx, "git", "log", "--oneline", "--author="+email, "--all")
	if err != nil {
		return 0, fmt.Errorf("git log failed: %s", detail(out, err))
	}
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return 0, nil
	}
	return len(strings.Split(trimmed, "\n")), nil
}
