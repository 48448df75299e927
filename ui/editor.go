package ui

import (
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
)

// resolveEditor picks the editor command: $VISUAL, then $EDITOR, then vi.
func resolveEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// Edit opens the user's editor on a temp file seeded with content and
// returns the saved text with trailing newlines trimmed. The temp file
// is removed on every path.
func Edit(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "gghelper-edit-*.txt")
	if err != nil {
		return "", apperrors.Wrap(apperrors.TypeEditor, "cannot create temp file", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		return "", apperrors.Wrap(apperrors.TypeEditor, "cannot seed temp file", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", apperrors.Wrap(apperrors.TypeEditor, "cannot close temp file", err)
	}

	// #nosec G204 -- editor comes from trusted env vars or is hardcoded vi
	cmd := exec.Command(resolveEditor(), tmpPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", apperrors.Wrap(apperrors.TypeEditor, "editor failed", err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.TypeEditor, "cannot read edited message", err)
	}
	return strings.TrimRight(string(edited), "\n"), nil
}
