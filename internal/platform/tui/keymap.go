package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/core"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionStartUppercase
	MenuActionStartLowercase
	MenuActionStartPinyin
	MenuActionToggleWindow
	MenuActionExportWeekly
	MenuActionExportMonthly
	MenuActionChart
	MenuActionHistory
	MenuActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "1":
		return MenuActionStartUppercase
	case "2":
		return MenuActionStartLowercase
	case "3":
		return MenuActionStartPinyin
	case "t":
		return MenuActionToggleWindow
	case "e":
		return MenuActionExportWeekly
	case "m":
		return MenuActionExportMonthly
	case "v":
		return MenuActionChart
	case "s":
		return MenuActionHistory
	}
	return MenuActionNone
}

// MapKeyToFrame updates the play input frame from a key message. Typed
// characters go in as match attempts; only Esc and Ctrl+C act as platform
// actions so every letter, "q" included, stays typeable during practice.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	switch msg.Type {
	case tea.KeyEsc:
		frame.Set(core.ActionBack)
	case tea.KeyCtrlC:
		frame.Set(core.ActionQuit)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			frame.PushRune(r)
		}
	}
}
