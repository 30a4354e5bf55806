package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pawsmatch/internal/deck"
)

const maxCardWidth = 52

// failingStreak is how many fetches in a row must fail before the header
// flags the pet source as down; one full initial burst.
const failingStreak = deck.DefaultBufferSize

// renderMain renders header, body and footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.overlay {
	case overlayConfirm:
		body = m.renderConfirmation()
	case overlayLikes, overlayActivity:
		body = m.renderListOverlay()
	default:
		body = m.renderDeck()
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{bg.Render("pawsmatch", styles.Logo)}

	switch {
	case snap.Disposed:
		parts = append(parts, bg.Render("● Closed", styles.MutedText))
	case snap.Phase() == deck.PhaseLoading:
		parts = append(parts, bg.Render("● Finding pets", styles.WarningText))
	case snap.Exhausted():
		parts = append(parts, bg.Render("● Out of pets", styles.DangerText))
	default:
		parts = append(parts, bg.Render("● Browsing", styles.SuccessText))
	}

	parts = append(parts,
		bg.Render("Deck:", styles.MutedText)+bg.Spaces(1)+bg.Render(fmt.Sprintf("%d", snap.Len()), styles.Text),
		bg.Render("Seen:", styles.MutedText)+bg.Spaces(1)+bg.Render(fmt.Sprintf("%d", snap.Stats.Consumed), styles.Text),
		bg.Render("Liked:", styles.MutedText)+bg.Spaces(1)+bg.Render(fmt.Sprintf("%d", m.likedCount), styles.SuccessText),
	)
	if snap.InFlight > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("fetching %d", snap.InFlight), styles.InfoText))
	}
	switch {
	case snap.Stats.ConsecutiveFailures >= failingStreak:
		parts = append(parts, bg.Render(fmt.Sprintf("source failing (%d in a row)", snap.Stats.ConsecutiveFailures), styles.DangerText))
	case snap.Stats.Failed > 0:
		parts = append(parts, bg.Render(fmt.Sprintf("%d failed", snap.Stats.Failed), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints []string
	switch m.overlay {
	case overlayConfirm:
		hints = []string{"enter book a visit", "esc keep browsing"}
	case overlayLikes, overlayActivity:
		hints = []string{"j/k scroll", "esc close"}
	default:
		switch m.snapshot.Phase() {
		case deck.PhaseExhausted:
			hints = []string{"r look again", "L likes", "a activity", "? help", "q quit"}
		default:
			hints = []string{"← pass", "→ adopt", "shift+←/→ drag", "L likes", "? help", "q quit"}
		}
	}
	line := styles.Footer.Width(m.width).Render(strings.Join(hints, "  ·  "))

	if m.status == "" {
		return line
	}
	var statusStyle lipgloss.Style
	switch m.statusKind {
	case statusSuccess:
		statusStyle = styles.SuccessText
	case statusError:
		statusStyle = styles.DangerText
	default:
		statusStyle = styles.MutedText
	}
	status := statusStyle.Padding(0, 1).Render(truncate(m.status, m.width-2))
	return lipgloss.JoinVertical(lipgloss.Left, status, line)
}

// renderDeck renders one of the three deck states.
func (m Model) renderDeck() string {
	styles := m.theme.Styles()

	switch m.snapshot.Phase() {
	case deck.PhaseLoading:
		return m.centerLine(m.spinner.View() + " " + styles.Text.Render("Finding pets near you..."))

	case deck.PhaseExhausted:
		reason := "Every shelter friend has been shown."
		if m.snapshot.Stats.ConsecutiveFailures >= failingStreak {
			reason = "The pet service is not answering."
		}
		msg := lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Bold(true).Render("No more pets right now"),
			"",
			styles.MutedText.Render(reason),
			styles.MutedText.Render("Press "+styles.Key.Render("r")+" to look again."),
		)
		return m.centerLine(msg)
	}

	current := m.snapshot.Current()
	card := m.renderCard(*current)

	// The card follows the drag; keep it on screen.
	margin := (m.width-lipgloss.Width(card))/2 + m.swipe.Offset()
	if limit := m.width - lipgloss.Width(card); margin > limit {
		margin = limit
	}
	if margin < 0 {
		margin = 0
	}
	card = lipgloss.NewStyle().MarginLeft(margin).Render(card)

	if next := m.snapshot.Next(); next != nil {
		card = lipgloss.JoinVertical(lipgloss.Left, card, m.centerLine(m.renderNextCue(*next)))
	}
	return card
}

// renderCard renders the profile at the front of the deck.
func (m Model) renderCard(p deck.Profile) string {
	styles := m.theme.Styles()
	width := m.cardWidth()
	inner := width - 6 // border + padding

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(p.Name))
	if p.Breed != "" {
		b.WriteString(styles.MutedText.Render(" · " + p.Breed))
	}
	b.WriteString("\n\n")

	for _, line := range strings.Split(p.Bio, "\n") {
		for _, wrapped := range wrapText(line, inner) {
			b.WriteString(styles.Text.Render(wrapped))
			b.WriteString("\n")
		}
	}

	if m.showURLs {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(truncateMiddle(p.ImageURL, inner)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderVerdictHint(inner))

	border := m.theme.CardBorder(m.swipe.Offset(), m.swipe.Threshold)
	return styles.Card.
		BorderForeground(lipgloss.Color(border)).
		Width(width - 2).
		Render(b.String())
}

// renderVerdictHint shows which way the card is leaning.
func (m Model) renderVerdictHint(width int) string {
	styles := m.theme.Styles()
	pass := styles.DangerText.Render("← Pass")
	adopt := styles.SuccessText.Render("Adopt! →")

	offset := m.swipe.Offset()
	switch {
	case offset < 0:
		adopt = styles.FaintText.Render("Adopt! →")
	case offset > 0:
		pass = styles.FaintText.Render("← Pass")
	}

	gap := width - lipgloss.Width(pass) - lipgloss.Width(adopt)
	if gap < 1 {
		gap = 1
	}
	return pass + strings.Repeat(" ", gap) + adopt
}

// renderNextCue says whether another card is queued without revealing it.
func (m Model) renderNextCue(next deck.Profile) string {
	styles := m.theme.Styles()
	if m.warmer != nil && m.warmer.Warmed(next.ImageURL) {
		return styles.FaintText.Render("next card ready") + styles.SuccessText.Render(" ✓")
	}
	return styles.FaintText.Render("next card on its way")
}

func (m Model) cardWidth() int {
	width := m.width - 4
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}

func (m Model) centerLine(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}
