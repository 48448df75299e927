package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors is the shared color theme for all views.
type Colors struct {
	Gray   lipgloss.Color
	Blue   lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	White  lipgloss.Color
	Black  lipgloss.Color
}

// DefaultColors returns the default color theme.
func DefaultColors() Colors {
	return Colors{
		Gray:   lipgloss.Color("245"),
		Blue:   lipgloss.Color("39"),
		Green:  lipgloss.Color("42"),
		Yellow: lipgloss.Color("220"),
		Red:    lipgloss.Color("196"),
		White:  lipgloss.Color("255"),
		Black:  lipgloss.Color("0"),
	}
}

// Styles bundles the lipgloss styles the views share.
type Styles struct {
	Colors   Colors
	Title    lipgloss.Style
	Border   lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Progress lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	colors := DefaultColors()
	return Styles{
		Colors:   colors,
		Title:    lipgloss.NewStyle().Foreground(colors.White).Bold(true),
		Border:   lipgloss.NewStyle().Foreground(colors.Blue),
		Hint:     lipgloss.NewStyle().Foreground(colors.Gray),
		Success:  lipgloss.NewStyle().Foreground(colors.Green),
		Warning:  lipgloss.NewStyle().Foreground(colors.Yellow),
		Error:    lipgloss.NewStyle().Foreground(colors.Red),
		Progress: lipgloss.NewStyle().Foreground(colors.Yellow),
	}
}

// Button is one labeled choice in a button row.
type Button struct {
	Hint       string
	Text       string
	SelectedBg lipgloss.Color
}

// RenderButton renders a single button, inverted when selected.
func RenderButton(b Button, selected bool) string {
	hintStyle := DefaultStyles().Hint
	textStyle := lipgloss.NewStyle()

	if selected {
		colors := DefaultColors()
		fg := colors.Black
		if b.SelectedBg == colors.Red {
			fg = colors.White
		}
		hintStyle = hintStyle.Background(b.SelectedBg).Foreground(fg)
		textStyle = textStyle.Background(b.SelectedBg).Foreground(fg)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		hintStyle.Padding(0, 1).Render(b.Hint),
		textStyle.Padding(0, 1).Render(b.Text),
	)
}

// RenderStatusLine renders an icon plus a styled one-line status.
func RenderStatusLine(icon, text string, style lipgloss.Style) string {
	return icon + " " + style.Render(text)
}

// RenderBox draws content inside a rounded, titled border.
func RenderBox(title, content string, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DefaultColors().Blue).
		Padding(0, 1).
		Width(width)
	return DefaultStyles().Title.Render(title) + "\n" + box.Render(content)
}
