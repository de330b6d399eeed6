package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/scores"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// menuView renders the mode picker with per-mode statistics.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  T Y P E F A L L  "), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a practice mode", m.config.ScreenW))
	b.WriteString("\n\n")

	window := m.windows[m.windowIdx]
	stats := scores.Summaries(m.history, window)

	for _, mode := range game.Modes() {
		line := fmt.Sprintf("%d) %s", mode.Level(), mode.Title())
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")

		s := stats[mode.Level()]
		stat := fmt.Sprintf("sessions %d   best %d   avg(last %d) %d",
			s.Count, s.Best, window, s.RecentAvg)
		b.WriteString(centerText(menuStatStyle.Render(stat), m.config.ScreenW))
		b.WriteString("\n\n")
	}

	controls := "1/2/3: Play  |  s: History  |  t: Stat window  |  e/m: Report  |  v: Chart  |  q: Quit"
	b.WriteString(centerText(menuStatStyle.Render(controls), m.config.ScreenW))
	b.WriteString("\n")

	if m.notice != "" && time.Now().Before(m.noticeUntil) {
		b.WriteString("\n")
		b.WriteString(centerText(menuNoticeStyle.Render(m.notice), m.config.ScreenW))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
