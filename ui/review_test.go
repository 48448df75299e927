package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gyongyosigabor/gghelper/catalog"
)

func enCatalog() *catalog.Catalog {
	return catalog.New(catalog.LocaleEnglish)
}

func TestNewReviewModel(t *testing.T) {
	t.Parallel()

	model := NewReviewModel(enCatalog(), "  fix: trailing space \r\n")
	require.Equal(t, "fix: trailing space", model.message)
	require.False(t, model.IsDone())
	require.Equal(t, DecisionNone, model.Decision())
	require.Nil(t, model.Init())
}

func TestReviewModel_Update_Shortcuts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key      string
		decision Decision
	}{
		{"y", DecisionAccept},
		{"Y", DecisionAccept},
		{"i", DecisionAccept},
		{"I", DecisionAccept},
		{"n", DecisionCancel},
		{"N", DecisionCancel},
		{"q", DecisionCancel},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			model := NewReviewModel(enCatalog(), "feat: test")
			updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)})

			rm := updated.(*ReviewModel)
			require.True(t, rm.IsDone())
			require.Equal(t, tc.decision, rm.Decision())
			require.NotNil(t, cmd)
		})
	}
}

func TestReviewModel_Update_CtrlCCancels(t *testing.T) {
	t.Parallel()

	model := NewReviewModel(enCatalog(), "feat: test")
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	rm := updated.(*ReviewModel)
	require.True(t, rm.IsDone())
	require.Equal(t, DecisionCancel, rm.Decision())
	require.NotNil(t, cmd)
}

func TestReviewModel_Update_NavigationAndEnter(t *testing.T) {
	t.Parallel()

	t.Run("right_then_enter_starts_editing", func(t *testing.T) {
		model := NewReviewModel(enCatalog(), "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyRight})
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

		rm := updated.(*ReviewModel)
		require.True(t, rm.editing)
		require.False(t, rm.IsDone())
	})

	t.Run("left_wraps_to_no", func(t *testing.T) {
		model := NewReviewModel(enCatalog(), "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyLeft})
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, DecisionCancel, updated.(*ReviewModel).Decision())
	})

	t.Run("enter_defaults_to_accept", func(t *testing.T) {
		model := NewReviewModel(enCatalog(), "feat: test")
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, DecisionAccept, updated.(*ReviewModel).Decision())
	})
}

func TestReviewModel_InlineEdit(t *testing.T) {
	t.Parallel()

	startEditing := func(t *testing.T, message string) *ReviewModel {
		t.Helper()
		model := NewReviewModel(enCatalog(), message)
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
		require.True(t, model.editing)
		return model
	}

	t.Run("typed_runes_and_enter_rewrite_message", func(t *testing.T) {
		model := startEditing(t, "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-v2")})
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.False(t, model.editing)
		require.False(t, model.IsDone())
		require.Equal(t, "feat: test-v2", model.Message())
	})

	t.Run("accept_after_edit_returns_new_message", func(t *testing.T) {
		model := startEditing(t, "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

		require.True(t, model.IsDone())
		require.Equal(t, DecisionAccept, model.Decision())
		require.Equal(t, "feat: test!", model.Message())
	})

	t.Run("esc_keeps_original", func(t *testing.T) {
		model := startEditing(t, "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("junk")})
		model.Update(tea.KeyMsg{Type: tea.KeyEsc})

		require.False(t, model.editing)
		require.Equal(t, "feat: test", model.Message())
	})

	t.Run("emptied_input_keeps_original", func(t *testing.T) {
		model := startEditing(t, "feat: test")
		model.input.SetValue("   ")
		model.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.False(t, model.editing)
		require.Equal(t, "feat: test", model.Message())
	})

	t.Run("ctrl_c_cancels_while_editing", func(t *testing.T) {
		model := startEditing(t, "feat: test")
		model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		require.True(t, model.IsDone())
		require.Equal(t, DecisionCancel, model.Decision())
	})

	t.Run("multiline_message_goes_to_external_editor", func(t *testing.T) {
		model := NewReviewModel(enCatalog(), "feat: subject\n\nlonger body")
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

		require.False(t, model.editing)
		require.True(t, model.IsDone())
		require.Equal(t, DecisionEdit, model.Decision())
	})
}

func TestReviewModel_View(t *testing.T) {
	t.Parallel()

	t.Run("english", func(t *testing.T) {
		view := NewReviewModel(enCatalog(), "feat: add login").View()
		require.Contains(t, view, "feat: add login")
		require.Contains(t, view, "Preview")
		require.Contains(t, view, "Yes")
		require.Contains(t, view, "Edit")
		require.Contains(t, view, "No")
	})

	t.Run("hungarian", func(t *testing.T) {
		view := NewReviewModel(catalog.New(catalog.LocaleHungarian), "feat: add login").View()
		require.Contains(t, view, "Előnézet")
		require.Contains(t, view, "Igen")
		require.Contains(t, view, "Nem")
	})

	t.Run("editing", func(t *testing.T) {
		model := NewReviewModel(enCatalog(), "feat: add login")
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

		view := model.View()
		require.Contains(t, view, "Edit message")
		require.Contains(t, view, "Enter: save / Esc: cancel")
		require.NotContains(t, view, "Preview")
	})
}
