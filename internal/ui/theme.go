package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string // adopt
	Warning string
	Danger  string // pass
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Key    lipgloss.Style
	Card   lipgloss.Style
	Modal  lipgloss.Style
}

// CardBorder returns the border color for a card dragged by offset cells.
// Past the threshold the border previews the verdict.
func (t Theme) CardBorder(offset, threshold int) string {
	switch {
	case threshold > 0 && offset >= threshold:
		return t.Success
	case threshold > 0 && offset <= -threshold:
		return t.Danger
	case offset != 0:
		return t.BorderFocus
	default:
		return t.Border
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Kennel":   kennelTheme(),
	"Midnight": midnightTheme(),
	"Meadow":   meadowTheme(),
}

var themeOrder = []string{"Kennel", "Midnight", "Meadow"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return kennelTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func kennelTheme() Theme {
	// Warm browns and greens, after the shelter's brand colors.
	return Theme{
		Name: "Kennel",

		Background: "#1c1714",
		Surface:    "#2a221d",

		Border:      "#5c4a3d",
		BorderFocus: "#e0a458",

		Text:    "#f3e9dc",
		Muted:   "#b8a48f",
		Faint:   "#7d6b5c",
		Accent:  "#e0a458",
		Success: "#68b684",
		Warning: "#f2c14e",
		Danger:  "#e5625e",
		Info:    "#8fc1d4",
	}
}

func midnightTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Midnight",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func meadowTheme() Theme {
	// Light palette for bright terminals.
	return Theme{
		Name: "Meadow",

		Background: "#f7f5ee",
		Surface:    "#ebe7d9",

		Border:      "#b9b29c",
		BorderFocus: "#2f7d5b",

		Text:    "#2b2a26",
		Muted:   "#5f5b4e",
		Faint:   "#8a8573",
		Accent:  "#2f7d5b",
		Success: "#2f7d5b",
		Warning: "#a66a00",
		Danger:  "#b3362c",
		Info:    "#2d6a9f",
	}
}
