package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gyongyosigabor/gghelper/catalog"
	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
)

// Capture reads a multi-line commit message from a plain terminal,
// line by line until EOF. Paste-friendly on purpose: no TUI, no line
// editing beyond what the terminal gives.
type Capture struct {
	in   io.Reader
	out  io.Writer
	msgs *catalog.Catalog
}

// NewCapture creates a capture reading from in and printing its
// instructions to out.
func NewCapture(in io.Reader, out io.Writer, msgs *catalog.Catalog) *Capture {
	return &Capture{in: in, out: out, msgs: msgs}
}

// Read prints the input instructions and collects lines until EOF.
// The result is trimmed; an empty result is not an error, the caller
// decides what an empty message means. Cancellation of ctx during the
// read returns ErrUserCancelled.
func (c *Capture) Read(ctx context.Context) (string, error) {
	fmt.Fprintf(c.out, "\n%s\n", c.msgs.Get(catalog.MsgCaptureHeader))
	fmt.Fprintln(c.out, c.msgs.Get(catalog.MsgCaptureInstructions))
	fmt.Fprintln(c.out, strings.Repeat("-", 50))

	type readResult struct {
		lines []string
		err   error
	}
	done := make(chan readResult, 1)

	go func() {
		var lines []string
		scanner := bufio.NewScanner(c.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		done <- readResult{lines: lines, err: scanner.Err()}
	}()

	select {
	case <-ctx.Done():
		// The blocked stdin read is abandoned; the process is about to
		// exit anyway.
		return "", fmt.Errorf("%w: %v", apperrors.ErrUserCancelled, ctx.Err())
	case result := <-done:
		if result.err != nil {
			return "", fmt.Errorf("reading commit message: %w", result.err)
		}
		return strings.TrimSpace(strings.Join(result.lines, "\n")), nil
	}
}
