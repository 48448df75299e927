// Package gitops talks to git through an injectable command runner so the
// workflow can be exercised in tests without a real repository.
package gitops

import (
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// Runner abstracts command execution. Production code uses ExecRunner;
// unit tests inject scripted fakes.
//
// Contract: combined stdout+stderr on return, non-nil error when the
// command could not run or exited non-zero.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner executes commands with exec.CommandContext and captures
// combined output so nothing bypasses the rendered UI.
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a runner. A nil logger disables command tracing.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.logger.Debug("running command",
		zap.String("command", name),
		zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Debug("command failed",
			zap.Error(err),
			zap.String("output", string(output)))
	}
	return output, err
}
