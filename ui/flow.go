package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gyongyosigabor/gghelper/catalog"
	apperrors "github.com/gyongyosigabor/gghelper/internal/errors"
)

type captureService interface {
	Read(ctx context.Context) (string, error)
}

// MessageFlow composes capture, preview and external editing into the
// commit message loop: capture once, then preview until the user
// accepts, cancels, or empties the message in the editor. The review
// func returns the message alongside the decision because the preview
// can edit it inline.
type MessageFlow struct {
	capture captureService
	review  func(message string) (Decision, string, error)
	edit    func(message string) (string, error)
	out     io.Writer
	msgs    *catalog.Catalog
	novice  bool
}

// NewMessageFlow wires the loop. novice adds the good-practice hint
// after capture.
func NewMessageFlow(
	capture captureService,
	review func(message string) (Decision, string, error),
	edit func(message string) (string, error),
	out io.Writer,
	msgs *catalog.Catalog,
	novice bool,
) *MessageFlow {
	return &MessageFlow{
		capture: capture,
		review:  review,
		edit:    edit,
		out:     out,
		msgs:    msgs,
		novice:  novice,
	}
}

// Compose returns the approved commit message. Every way out that does
// not produce a message returns ErrUserCancelled: interrupt during
// capture, an empty message, or an explicit decline on the preview.
func (f *MessageFlow) Compose(ctx context.Context) (string, error) {
	message, err := f.capture.Read(ctx)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserCancelled) {
			fmt.Fprintf(f.out, "\n%s\n", f.msgs.Get(catalog.MsgCaptureCancelled))
		}
		return "", err
	}
	if message == "" {
		fmt.Fprintf(f.out, "\n%s\n", f.msgs.Get(catalog.MsgEmptyMessage))
		return "", apperrors.ErrUserCancelled
	}

	if f.novice {
		fmt.Fprintf(f.out, "\n%s\n", f.msgs.Get(catalog.MsgGoodPractice))
	}

	for {
		decision, reviewed, err := f.review(message)
		if err != nil {
			return "", err
		}
		message = reviewed
		switch decision {
		case DecisionAccept:
			return message, nil
		case DecisionEdit:
			edited, err := f.edit(message)
			if err != nil {
				// Editor trouble never loses the message; back to the
				// preview with the text unchanged.
				fmt.Fprintf(f.out, "%s %v\n", f.msgs.Get(catalog.MsgErrorPrefix), err)
				continue
			}
			edited = strings.TrimSpace(edited)
			if edited == "" {
				fmt.Fprintf(f.out, "\n%s\n", f.msgs.Get(catalog.MsgEmptyMessage))
				return "", apperrors.ErrUserCancelled
			}
			message = edited
		default:
			return "", apperrors.ErrUserCancelled
		}
	}
}
