package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/chart"
	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/report"
	"github.com/vovakirdan/typefall/internal/scores"
)

// screenState identifies which screen the model is currently showing.
type screenState int

const (
	stateMenu screenState = iota
	statePlaying
	stateHistory
)

// noticeTTL is how long a status line stays visible in the menu.
const noticeTTL = 4 * time.Second

// Model is the Bubble Tea model driving the whole application: the mode
// menu, the running practice session, and the score history screen.
type Model struct {
	state  screenState
	cfg    config.Config
	config core.RuntimeConfig
	store  *scores.Store

	// Session state, valid while playing.
	game       *game.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time

	// Menu state. history mirrors the store so the stat lines update
	// without re-reading the file after every session.
	history     []scores.Record
	windows     []int
	windowIdx   int
	notice      string
	noticeUntil time.Time

	hist      historyModel
	keyMapper *KeyMapper
	startMode game.Mode // skip the menu when set
	baseSeed  int64     // configured seed; 0 means reseed every session
	quitting  bool
}

// startSessionMsg asks the model to begin a session straight away, used
// when the CLI was given an explicit level.
type startSessionMsg struct {
	mode game.Mode
}

// NewModel creates the application model. The store may be nil, in which
// case sessions still run but nothing is persisted.
func NewModel(store *scores.Store, cfg config.Config, rc core.RuntimeConfig) Model {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		baseSeed:   rc.Seed,
		state:      stateMenu,
		cfg:        cfg,
		config:     rc,
		store:      store,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		inputFrame: core.NewInputFrame(),
		windows:    cfg.Stats.RecentWindows,
		keyMapper:  NewKeyMapper(),
	}
	if len(m.windows) == 0 {
		m.windows = config.Default().Stats.RecentWindows
	}

	if store != nil {
		// Best-effort load; a broken log just means empty stats.
		if recs, err := store.ReadAll(); err == nil {
			m.history = recs
		}
	}
	return m
}

// Init initializes the model. The tick loop starts when a session does.
func (m Model) Init() tea.Cmd {
	if m.startMode != 0 {
		mode := m.startMode
		return func() tea.Msg { return startSessionMsg{mode: mode} }
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case startSessionMsg:
		return m.startSession(msg.mode)
	}

	if m.state == stateHistory {
		var cmd tea.Cmd
		m.hist, cmd = m.hist.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes keyboard input to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePlaying:
		return m.handlePlayKey(msg)
	case stateHistory:
		return m.handleHistoryKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionStartUppercase:
		return m.startSession(game.ModeUppercase)
	case MenuActionStartLowercase:
		return m.startSession(game.ModeLowercase)
	case MenuActionStartPinyin:
		return m.startSession(game.ModePinyin)

	case MenuActionToggleWindow:
		m.windowIdx = (m.windowIdx + 1) % len(m.windows)

	case MenuActionExportWeekly:
		m.exportReport(report.PeriodWeekly)
	case MenuActionExportMonthly:
		m.exportReport(report.PeriodMonthly)

	case MenuActionChart:
		m.writeChart()

	case MenuActionHistory:
		m.state = stateHistory
		m.hist = newHistoryModel(m.history, m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)

	if m.inputFrame.Has(core.ActionQuit) {
		m.finalize()
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.finalize()
		m.state = stateMenu
		m.game = nil
		m.inputFrame.Clear()
		return m, nil
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.hist, cmd = m.hist.update(msg)
	if m.hist.goingBack {
		m.state = stateMenu
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.game != nil {
		m.game.Resize(m.config)
	}
	if m.state == stateHistory {
		m.hist = newHistoryModel(m.history, msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks while a session runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state != statePlaying || m.game == nil {
		// Stale tick from a session that already ended.
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// startSession creates a fresh game and enters play. A configured seed
// reproduces the same spawn sequence every session; without one, each
// session reseeds from the clock.
func (m Model) startSession(mode game.Mode) (tea.Model, tea.Cmd) {
	m.config.Seed = m.baseSeed
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game = game.New(mode, m.cfg)
	m.game.Reset(m.config)
	m.gameState = core.GameState{}
	m.inputFrame.Clear()
	m.startedAt = time.Now()
	m.state = statePlaying
	return m, tickCmd(m.config.TickRate)
}

// finalize closes the running session: it builds the record from the final
// score and elapsed time, appends it to the store, and keeps the in-memory
// history in sync. Zero-score sessions are recorded too. Persistence
// failures surface only as a menu notice.
func (m *Model) finalize() {
	if m.game == nil {
		return
	}
	mode := m.game.Mode()
	rec := scores.New(mode.Level(), mode.Label(), m.gameState.Score, m.startedAt, time.Now())

	if m.store != nil {
		if err := m.store.Append(rec); err != nil {
			m.setNotice(fmt.Sprintf("Score not saved: %v", err))
		} else {
			m.setNotice(fmt.Sprintf("Saved: %s score %d (%ds)", mode.Title(), rec.Score, rec.DurationSec))
		}
	}
	m.history = append(m.history, rec)
}

// exportReport aggregates the history and writes the periodic CSV next to
// the score log.
func (m *Model) exportReport(p report.Period) {
	rows := report.Aggregate(m.history, p)
	out := filepath.Join(m.dataDir(), report.DefaultOutName(p))
	if err := report.ExportFile(out, rows); err != nil {
		m.setNotice(fmt.Sprintf("Export failed: %v", err))
		return
	}
	m.setNotice(fmt.Sprintf("Report written to %s (%d rows)", out, len(rows)))
}

// writeChart renders the HTML report next to the score log. The line-chart
// window follows the stat window currently shown in the menu.
func (m *Model) writeChart() {
	out := filepath.Join(m.dataDir(), "report.html")
	if err := chart.WriteFile(out, m.history, m.windows[m.windowIdx]); err != nil {
		m.setNotice(fmt.Sprintf("Chart failed: %v", err))
		return
	}
	m.setNotice(fmt.Sprintf("Chart written to %s", out))
}

func (m *Model) dataDir() string {
	if m.store != nil {
		return filepath.Dir(m.store.Path())
	}
	return "."
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeUntil = time.Now().Add(noticeTTL)
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case statePlaying:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	case stateHistory:
		return m.hist.view()
	default:
		return m.menuView()
	}
}

// Run starts the Bubble Tea program. A valid level skips the menu and
// drops straight into that mode; level 0 opens the menu.
func Run(store *scores.Store, cfg config.Config, rc core.RuntimeConfig, level int) error {
	model := NewModel(store, cfg, rc)
	if mode, err := game.ParseMode(level); err == nil {
		model.startMode = mode
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
