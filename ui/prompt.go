package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
)

// Prompt asks single-line yes/no questions on the terminal.
type Prompt struct {
	in  io.Reader
	out io.Writer
}

// NewPrompt creates a prompt reading from in and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

// yesAnswers accepts both English and Hungarian affirmatives, whatever
// locale is active.
var yesAnswers = map[string]bool{
	"y": true, "yes": true,
	"i": true, "igen": true,
}

// Confirm prints the question and reads one answer line. Anything that
// is not an affirmative counts as no; EOF counts as no. Cancellation of
// ctx returns ErrUserCancelled.
func (p *Prompt) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/n] ", question)

	type readResult struct {
		line string
		err  error
	}
	done := make(chan readResult, 1)

	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%w: %v", apperrors.ErrUserCancelled, ctx.Err())
	case result := <-done:
		if result.err != nil && result.line == "" {
			return false, nil
		}
		answer := strings.ToLower(strings.TrimSpace(result.line))
		return yesAnswers[answer], nil
	}
}
