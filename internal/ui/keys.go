package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Verdicts
	Adopt key.Binding
	Pass  key.Binding

	// Keyboard drag
	NudgeRight key.Binding
	NudgeLeft  key.Binding
	Release    key.Binding
	Escape     key.Binding

	// Deck
	Refill key.Binding

	// Views
	Likes    key.Binding
	Activity key.Binding
	Help     key.Binding

	// Preferences
	ToggleURLs key.Binding
	CycleTheme key.Binding

	// Overlay navigation
	Up   key.Binding
	Down key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Adopt: key.NewBinding(
			key.WithKeys("right", "l", "y"),
			key.WithHelp("→/l/y", "Adopt"),
		),
		Pass: key.NewBinding(
			key.WithKeys("left", "h", "n"),
			key.WithHelp("←/h/n", "Pass"),
		),

		NudgeRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "Drag card right"),
		),
		NudgeLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "Drag card left"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "Let go of card"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Snap back / close"),
		),

		Refill: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Look again"),
		),

		Likes: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Liked pets"),
		),
		Activity: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),

		ToggleURLs: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Toggle image URLs"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "Quit"),
		),
	}
}
