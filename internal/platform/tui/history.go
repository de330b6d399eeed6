package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/scores"
)

// History screen layout constants
const (
	historyMaxRows = 200 // Most recent sessions shown
)

// historyKeyMap defines the key bindings for the history screen.
type historyKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k historyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k historyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

func defaultHistoryKeyMap() historyKeyMap {
	return historyKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyModel is the session history screen: a scrollable table of past
// sessions, filterable by practice mode. Level 0 means all modes.
type historyModel struct {
	records   []scores.Record
	level     int
	table     table.Model
	help      help.Model
	keys      historyKeyMap
	width     int
	height    int
	goingBack bool
}

func newHistoryModel(records []scores.Record, width, height int) historyModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := historyModel{
		records: records,
		keys:    defaultHistoryKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *historyModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 19},
		{Title: "Mode", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Duration", Width: 10},
		{Title: "Completed", Width: 10},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the filtered history, newest first.
func (m *historyModel) updateTableRows() {
	var filtered []scores.Record
	for _, r := range m.records {
		if m.level == 0 || r.Level == m.level {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) > historyMaxRows {
		filtered = filtered[len(filtered)-historyMaxRows:]
	}

	rows := make([]table.Row, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		r := filtered[i]
		rows = append(rows, table.Row{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Mode,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%ds", r.DurationSec),
			fmt.Sprintf("%d", r.Completed),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// update handles messages for the history screen.
func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.level = (m.level + 1) % 4
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.level--
			if m.level < 0 {
				m.level = 3
			}
			m.updateTableRows()
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// view renders the history screen.
func (m historyModel) view() string {
	var b strings.Builder

	title := "SESSION HISTORY - All modes"
	if m.level != 0 {
		if mode, err := game.ParseMode(m.level); err == nil {
			title = fmt.Sprintf("SESSION HISTORY - %s", mode.Title())
		}
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No sessions recorded yet.\nPlay a round to start your history!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}
