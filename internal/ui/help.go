package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys

	sections := []helpSection{
		{title: "Swiping", bindings: []key.Binding{k.Adopt, k.Pass, k.NudgeRight, k.NudgeLeft, k.Release, k.Escape}},
		{title: "Deck", bindings: []key.Binding{k.Refill, k.Likes, k.Activity}},
		{title: "General", bindings: []key.Binding{k.ToggleURLs, k.CycleTheme, k.Help, k.Quit}},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(styles.Key.Width(14).Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Drag the card with the mouse to swipe."))

	modal := styles.Modal.Width(46).Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
