package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper builds the gghelper binary once and drives it against
// throwaway repositories.
type TestHelper struct {
	t       *testing.T
	binPath string
	// home isolates preference and progress files from the real user.
	home string
}

// NewTestHelper compiles the binary and prepares an isolated home.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	return &TestHelper{
		t:       t,
		binPath: buildBinary(t),
		home:    t.TempDir(),
	}
}

// buildBinary compiles gghelper into a temporary location.
func buildBinary(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "gghelper-bin")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", binPath, "github.com/gyongyosigabor/gghelper")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v, output: %s", err, string(out))
	}
	return binPath
}

// RepoConfig describes the throwaway repository to create.
type RepoConfig struct {
	UserEmail     string
	UserName      string
	InitialCommit bool
}

// DefaultRepoConfig returns a repository with one commit by a test user.
func DefaultRepoConfig() RepoConfig {
	return RepoConfig{
		UserEmail:     "test@example.com",
		UserName:      "Test User",
		InitialCommit: true,
	}
}

// CreateGitRepo initializes a repository under a temporary directory.
func (h *TestHelper) CreateGitRepo(config RepoConfig) string {
	dir := h.t.TempDir()

	h.runGit(dir, "init")
	h.runGit(dir, "config", "user.email", config.UserEmail)
	h.runGit(dir, "config", "user.name", config.UserName)

	if config.InitialCommit {
		readmePath := filepath.Join(dir, "README.md")
		err := os.WriteFile(readmePath, []byte("# Test Repository\n"), 0644)
		require.NoError(h.t, err)
		h.runGit(dir, "add", "README.md")
		h.runGit(dir, "commit", "-m", "chore: initial commit")
	}

	return dir
}

// AddFile writes a file into the repository working tree.
func (h *TestHelper) AddFile(repoDir, filename, content string) {
	filePath := filepath.Join(repoDir, filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(h.t, err)
}

// runGit executes a git command in the given directory.
func (h *TestHelper) runGit(dir string, args ...string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		h.t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

// Run executes gghelper in dir with the isolated home and a pinned
// English locale. Extra environment entries override both.
func (h *TestHelper) Run(dir string, args []string, env map[string]string) (string, error) {
	cmd := exec.Command(h.binPath, args...)
	cmd.Dir = dir

	cmdEnv := append(os.Environ(),
		"HOME="+h.home,
		"LANG=en_US.UTF-8",
	)
	for k, v := range env {
		cmdEnv = append(cmdEnv, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = cmdEnv

	out, err := cmd.CombinedOutput()
	return string(out), err
}

// AssertExitCode checks the exit code carried by an exec.ExitError.
func (h *TestHelper) AssertExitCode(err error, expectedCode int) {
	exitErr, ok := err.(*exec.ExitError)
	require.True(h.t, ok, "expected exec.ExitError, got %T", err)
	require.Equal(h.t, expectedCode, exitErr.ExitCode())
}
