package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gyongyosigabor/gghelper/catalog"
)

// Decision is the user's choice on the commit message preview.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionAccept
	// DecisionEdit hands the message to an external editor; the caller
	// reopens the review with the edited text.
	DecisionEdit
	DecisionCancel
)

type reviewButton int

const (
	buttonYes reviewButton = iota
	buttonEdit
	buttonNo
)

// ReviewModel shows the captured commit message and waits for a
// accept / edit / cancel choice. Shortcut keys work in both languages:
// y and i accept, e edits, n cancels. A one-line message is edited
// inline; a multi-line message goes to the external editor instead.
type ReviewModel struct {
	message  string
	msgs     *catalog.Catalog
	decision Decision
	done     bool
	selected reviewButton
	editing  bool
	input    textinput.Model
}

// NewReviewModel builds the initial model. Carriage returns are dropped
// so pasted Windows line endings cannot break rendering.
func NewReviewModel(msgs *catalog.Catalog, message string) *ReviewModel {
	clean := strings.TrimSpace(strings.ReplaceAll(message, "\r", ""))
	ti := textinput.New()
	ti.CharLimit = 256
	return &ReviewModel{message: clean, msgs: msgs, selected: buttonYes, input: ti}
}

func (m *ReviewModel) Init() tea.Cmd { return nil }

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m.decide(DecisionCancel)
	}
	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "left", "h", "up", "k":
		m.selected--
		if m.selected < buttonYes {
			m.selected = buttonNo
		}
	case "right", "l", "down", "j", "tab":
		m.selected++
		if m.selected > buttonNo {
			m.selected = buttonYes
		}
	case "y", "Y", "i", "I":
		return m.decide(DecisionAccept)
	case "e", "E":
		return m.startEdit()
	case "n", "N", "q", "Q", "esc":
		return m.decide(DecisionCancel)
	case "enter":
		switch m.selected {
		case buttonYes:
			return m.decide(DecisionAccept)
		case buttonEdit:
			return m.startEdit()
		case buttonNo:
			return m.decide(DecisionCancel)
		}
	}
	return m, nil
}

// startEdit opens the inline editor seeded with the current message.
// The single-line input cannot hold a message with a body, so those
// fall through to the external editor.
func (m *ReviewModel) startEdit() (tea.Model, tea.Cmd) {
	if strings.Contains(m.message, "\n") {
		return m.decide(DecisionEdit)
	}
	m.editing = true
	m.input.SetValue(m.message)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *ReviewModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		// An emptied input keeps the original message instead of
		// letting an empty subject through to commit.
		if edited := strings.TrimSpace(m.input.Value()); edited != "" {
			m.message = edited
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *ReviewModel) decide(d Decision) (tea.Model, tea.Cmd) {
	m.decision = d
	m.done = true
	return m, tea.Quit
}

func (m *ReviewModel) View() string {
	if m.editing {
		box := RenderBox(m.msgs.Get(catalog.MsgEditTitle), m.input.View(), 58)
		hint := DefaultStyles().Hint.Render(m.msgs.Get(catalog.MsgEditHint))
		return "\n" + box + "\n" + hint + "\n"
	}

	colors := DefaultColors()

	box := RenderBox(m.msgs.Get(catalog.MsgPreview), m.message, 58)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton(Button{Hint: "[Y/I]", Text: m.msgs.Get(catalog.MsgBtnYes), SelectedBg: colors.Green}, m.selected == buttonYes),
		RenderButton(Button{Hint: "[E]", Text: m.msgs.Get(catalog.MsgBtnEdit), SelectedBg: colors.Yellow}, m.selected == buttonEdit),
		RenderButton(Button{Hint: "[N]", Text: m.msgs.Get(catalog.MsgBtnNo), SelectedBg: colors.Red}, m.selected == buttonNo),
	)

	hint := DefaultStyles().Hint.Render(strings.TrimSpace(m.msgs.Get(catalog.MsgConfirmOptions)))

	return "\n" + box + "\n" + buttons + "\n" + hint + "\n"
}

// Decision returns the user's choice once the model is done.
func (m *ReviewModel) Decision() Decision {
	return m.decision
}

// Message returns the message as last shown, including any inline
// edits.
func (m *ReviewModel) Message() string {
	return m.message
}

// IsDone reports whether a decision was made.
func (m *ReviewModel) IsDone() bool {
	return m.done
}

// ReviewMessage runs the preview in its own program and returns the
// decision together with the possibly inline-edited message.
func ReviewMessage(msgs *catalog.Catalog, message string) (Decision, string, error) {
	final, err := tea.NewProgram(NewReviewModel(msgs, message)).Run()
	if err != nil {
		return DecisionNone, "", fmt.Errorf("review failed: %w", err)
	}
	model := final.(*ReviewModel)
	return model.Decision(), model.Message(), nil
}
