// Package game implements the falling-target typing game: practice modes,
// target spawning and matching, and the tick-stepped game loop. It contains
// pure logic with no terminal dependencies.
package game

import "fmt"

// Mode is one of the three practice categories. The numeric values are
// order-significant and persisted as the "level" column of the score log.
type Mode int

const (
	ModeUppercase Mode = iota + 1 // A-Z
	ModeLowercase                 // a-z
	ModePinyin                    // two-character consonant-vowel syllables
)

// Prompts for the syllable mode. Fixed list, simple initials plus finals.
var pinyinPrompts = []string{"ba", "bo", "ma", "fo", "de", "te", "ni", "le", "ge", "ke", "he"}

// Modes returns all practice modes in level order.
func Modes() []Mode {
	return []Mode{ModeUppercase, ModeLowercase, ModePinyin}
}

// ParseMode converts a numeric level to a Mode.
func ParseMode(level int) (Mode, error) {
	switch level {
	case 1:
		return ModeUppercase, nil
	case 2:
		return ModeLowercase, nil
	case 3:
		return ModePinyin, nil
	default:
		return 0, fmt.Errorf("game: unknown level %d", level)
	}
}

// Level returns the numeric level used in persisted records.
func (m Mode) Level() int {
	return int(m)
}

// Label returns the stable mode label written to the score log.
func (m Mode) Label() string {
	switch m {
	case ModeUppercase:
		return "uppercase"
	case ModeLowercase:
		return "lowercase"
	case ModePinyin:
		return "pinyin"
	default:
		return fmt.Sprintf("level-%d", int(m))
	}
}

// Title returns the display name shown in the menu.
func (m Mode) Title() string {
	switch m {
	case ModeUppercase:
		return "Uppercase Letters"
	case ModeLowercase:
		return "Lowercase Letters"
	case ModePinyin:
		return "Pinyin Syllables"
	default:
		return m.Label()
	}
}

// Prompts returns the symbol set targets are drawn from in this mode.
func (m Mode) Prompts() []string {
	switch m {
	case ModeUppercase:
		return letterPrompts('A')
	case ModeLowercase:
		return letterPrompts('a')
	case ModePinyin:
		return pinyinPrompts
	default:
		return nil
	}
}

func letterPrompts(first rune) []string {
	prompts := make([]string, 26)
	for i := range prompts {
		prompts[i] = string(first + rune(i))
	}
	return prompts
}
