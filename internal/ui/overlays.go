package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// shelterInfo is the contact card shown after an adoption swipe.
var shelterInfo = []struct{ label, value string }{
	{"Location", "PawsMatch Shelter"},
	{"Phone", "+502 1234-5678"},
	{"Email", "adopta@pawsmatch.com"},
	{"Visiting hours", "Mon-Sat, 9AM - 6PM"},
}

// renderConfirmation renders the adoption confirmation overlay.
func (m Model) renderConfirmation() string {
	if m.accepted == nil {
		return ""
	}
	styles := m.theme.Styles()
	p := m.accepted
	width := m.cardWidth()

	var b strings.Builder
	b.WriteString(styles.SuccessText.Render("♥ You like " + p.Name + "!"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Ready to meet your new best friend?"))
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Bold(true).Render(p.Name))
	if p.Breed != "" {
		b.WriteString(styles.MutedText.Render(" · " + p.Breed))
	}
	b.WriteString("\n")
	if first, _, _ := strings.Cut(p.Bio, "\n"); first != "" {
		b.WriteString(styles.Text.Render(truncate(first, width-6)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Adoption info"))
	b.WriteString("\n")
	for _, row := range shelterInfo {
		b.WriteString(styles.MutedText.Width(16).Render(row.label))
		b.WriteString(styles.Text.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Key.Render("esc") + styles.MutedText.Render(" Keep browsing") + "   " +
		styles.Key.Render("enter") + styles.SuccessText.Render(" Book a visit"))

	return m.centerLine(styles.Modal.Width(width - 2).Render(b.String()))
}

// renderListOverlay renders the likes or activity overlay around the viewport.
func (m Model) renderListOverlay() string {
	styles := m.theme.Styles()
	title := "Liked pets"
	if m.overlay == overlayActivity {
		title = "Activity"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.AccentText.Bold(true).Render(title),
		styles.FaintText.Render(strings.Repeat("─", m.overlayWidth())),
		m.viewport.View(),
	)
	return m.centerLine(styles.Modal.Render(content))
}

// refreshViewport loads the active overlay's content into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	switch m.overlay {
	case overlayLikes:
		m.viewport.SetContent(m.likesContent())
	case overlayActivity:
		m.viewport.SetContent(m.activityContent())
	}
}

func (m Model) likesContent() string {
	styles := m.theme.Styles()
	if len(m.likes) == 0 {
		return styles.MutedText.Render("No liked pets yet. Swipe right on someone!")
	}
	var b strings.Builder
	for _, rec := range m.likes {
		line := fmt.Sprintf("%-12s", truncate(rec.Name, 12))
		b.WriteString(styles.Text.Bold(true).Render(line))
		if rec.Breed != "" {
			b.WriteString(styles.MutedText.Render(" " + truncate(rec.Breed, 22)))
		}
		b.WriteString(styles.FaintText.Render("  " + rec.RecordedAt.Local().Format("Jan 2 15:04")))
		b.WriteString("\n")
		if m.showURLs {
			b.WriteString(styles.FaintText.Render("  " + truncateMiddle(rec.ImageURL, m.overlayWidth()-2)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) activityContent() string {
	styles := m.theme.Styles()
	if m.logPath == "" {
		return styles.MutedText.Render("Logging is disabled (log_file is empty).")
	}
	if len(m.activity) == 0 {
		return styles.MutedText.Render("Nothing logged yet.")
	}
	lines := make([]string, 0, len(m.activity))
	for _, e := range m.activity {
		style := styles.Text
		switch e.Level {
		case "WARN":
			style = styles.WarningText
		case "ERROR", "DPANIC", "PANIC", "FATAL":
			style = styles.DangerText
		case "DEBUG":
			style = styles.FaintText
		}
		lines = append(lines, style.Render(truncate(e.Summary(), m.overlayWidth())))
	}
	return strings.Join(lines, "\n")
}

func (m Model) overlayWidth() int {
	w := m.width - 10
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) overlayHeight() int {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}
