package gitops

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
	"github.com/gyongyosigabor/gghelper/syncstate"
)

// mockRunner returns scripted results in call order and records every
// command line for assertions.
type mockRunner struct {
	outputs [][]byte
	errs    []error
	idx     int
	calls   [][]string
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.idx >= len(m.outputs) {
		return nil, errors.New("unexpected call")
	}
	out := m.outputs[m.idx]
	err := m.errs[m.idx]
	m.idx++
	return out, err
}

func TestGit_IsRepository(t *testing.T) {
	t.Parallel()

	t.Run("inside_repo", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte(".git\n")}, errs: []error{nil}}
		require.NoError(t, New(mr).IsRepository(context.Background()))
		require.Equal(t, []string{"git", "rev-parse", "--git-dir"}, mr.calls[0])
	})

	t.Run("outside_repo", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("fatal: not a git repository")},
			errs:    []error{errors.New("exit status 128")},
		}
		err := New(mr).IsRepository(context.Background())
		require.ErrorIs(t, err, apperrors.ErrNotARepository)
	})
}

func TestGit_ShortStatus(t *testing.T) {
	t.Parallel()

	mr := &mockRunner{
		outputs: [][]byte{[]byte(" M main.go\n?? notes.txt\n")},
		errs:    []error{nil},
	}
	status, err := New(mr).ShortStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, " M main.go\n?? notes.txt", status)
	require.Equal(t, []string{"git", "status", "--porcelain"}, mr.calls[0])
}

func TestGit_StageAll(t *testing.T) {
	t.Parallel()

	mr := &mockRunner{outputs: [][]byte{nil}, errs: []error{nil}}
	require.NoError(t, New(mr).StageAll(context.Background()))
	require.Equal(t, []string{"git", "add", "."}, mr.calls[0])
}

func TestGit_HasStagedChanges(t *testing.T) {
	t.Parallel()

	t.Run("staged", func(t *testing.T) {
		// git diff --cached --quiet exits 1 when the index is dirty.
		mr := &mockRunner{outputs: [][]byte{nil}, errs: []error{errors.New("exit status 1")}}
		require.True(t, New(mr).HasStagedChanges(context.Background()))
	})

	t.Run("clean", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{nil}, errs: []error{nil}}
		require.False(t, New(mr).HasStagedChanges(context.Background()))
	})
}

func TestGit_Commit(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte("[main abc1234] fix parser")}, errs: []error{nil}}
		require.NoError(t, New(mr).Commit(context.Background(), "fix parser"))
		require.Equal(t, []string{"git", "commit", "-m", "fix parser"}, mr.calls[0])
	})

	t.Run("failure_includes_git_output", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("nothing to commit, working tree clean")},
			errs:    []error{errors.New("exit status 1")},
		}
		err := New(mr).Commit(context.Background(), "fix parser")
		require.Error(t, err)
		require.Contains(t, err.Error(), "nothing to commit")
	})
}

func TestGit_Fetch(t *testing.T) {
	t.Parallel()

	mr := &mockRunner{outputs: [][]byte{nil}, errs: []error{nil}}
	require.NoError(t, New(mr).Fetch(context.Background()))
	require.Equal(t, []string{"git", "fetch", "origin"}, mr.calls[0])
}

func TestGit_RefResolution(t *testing.T) {
	t.Parallel()

	t.Run("head", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte("aaa111\n")}, errs: []error{nil}}
		ref, err := New(mr).Head(context.Background())
		require.NoError(t, err)
		require.Equal(t, syncstate.Ref("aaa111"), ref)
		require.Equal(t, []string{"git", "rev-parse", "@"}, mr.calls[0])
	})

	t.Run("upstream", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte("bbb222\n")}, errs: []error{nil}}
		ref, err := New(mr).UpstreamHead(context.Background())
		require.NoError(t, err)
		require.Equal(t, syncstate.Ref("bbb222"), ref)
		require.Equal(t, []string{"git", "rev-parse", "@{u}"}, mr.calls[0])
	})

	t.Run("upstream_missing", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("fatal: no upstream configured for branch 'main'")},
			errs:    []error{errors.New("exit status 128")},
		}
		_, err := New(mr).UpstreamHead(context.Background())
		require.ErrorIs(t, err, apperrors.ErrUpstreamUnresolvable)
	})

	t.Run("merge_base", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte("ccc333\n")}, errs: []error{nil}}
		ref, err := New(mr).MergeBase(context.Background())
		require.NoError(t, err)
		require.Equal(t, syncstate.Ref("ccc333"), ref)
		require.Equal(t, []string{"git", "merge-base", "@", "@{u}"}, mr.calls[0])
	})
}

func TestGit_CurrentBranch(t *testing.T) {
	t.Parallel()

	mr := &mockRunner{outputs: [][]byte{[]byte("feature/login\n")}, errs: []error{nil}}
	branch, err := New(mr).CurrentBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "feature/login", branch)
	require.Equal(t, []string{"git", "branch", "--show-current"}, mr.calls[0])
}

func TestGit_Integrate(t *testing.T) {
	t.Parallel()

	t.Run("rebase_pulls_current_branch", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("main\n"), []byte("Successfully rebased")},
			errs:    []error{nil, nil},
		}
		require.NoError(t, New(mr).IntegrateRebase(context.Background()))
		require.Equal(t, []string{"git", "pull", "--rebase", "origin", "main"}, mr.calls[1])
	})

	t.Run("merge_pulls_current_branch", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("main\n"), []byte("Merge made by the 'ort' strategy.")},
			errs:    []error{nil, nil},
		}
		require.NoError(t, New(mr).IntegrateMerge(context.Background()))
		require.Equal(t, []string{"git", "pull", "--no-rebase", "origin", "main"}, mr.calls[1])
	})

	t.Run("conflict", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("main\n"), []byte("CONFLICT (content): Merge conflict in main.go")},
			errs:    []error{nil, errors.New("exit status 1")},
		}
		err := New(mr).IntegrateRebase(context.Background())
		require.ErrorIs(t, err, apperrors.ErrIntegrationConflict)
		require.Contains(t, err.Error(), "CONFLICT")
	})

	t.Run("detached_head", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{[]byte("\n")}, errs: []error{nil}}
		err := New(mr).IntegrateRebase(context.Background())
		require.ErrorIs(t, err, apperrors.ErrUpstreamUnresolvable)
	})
}

func TestGit_Push(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		mr := &mockRunner{outputs: [][]byte{nil}, errs: []error{nil}}
		require.NoError(t, New(mr).Push(context.Background()))
		require.Equal(t, []string{"git", "push"}, mr.calls[0])
	})

	t.Run("rejected", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("! [rejected] main -> main (fetch first)")},
			errs:    []error{errors.New("exit status 1")},
		}
		err := New(mr).Push(context.Background())
		require.ErrorIs(t, err, apperrors.ErrPushRejected)
		require.Contains(t, err.Error(), "rejected")
	})
}

func TestGit_CommitCountByAuthor(t *testing.T) {
	t.Parallel()

	t.Run("counts_lines", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{
				[]byte("dev@example.com\n"),
				[]byte("abc fix\ndef feat\nghi docs\n"),
			},
			errs: []error{nil, nil},
		}
		count, err := New(mr).CommitCountByAuthor(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, count)
		require.Equal(t, []string{"git", "log", "--oneline", "--author=dev@example.com", "--all"}, mr.calls[1])
	})

	t.Run("no_email_configured", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{nil},
			errs:    []error{errors.New("exit status 1")},
		}
		count, err := New(mr).CommitCountByAuthor(context.Background())
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("no_commits", func(t *testing.T) {
		mr := &mockRunner{
			outputs: [][]byte{[]byte("dev@example.com\n"), []byte("")},
			errs:    []error{nil, nil},
		}
		count, err := New(mr).CommitCountByAuthor(context.Background())
		require.NoError(t, err)
		require.Zero(t, count)
	})
}
