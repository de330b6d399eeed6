package game

import (
	"math/rand"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
)

// Target is an active falling prompt.
type Target struct {
	Text    string     // Full prompt text
	Matched string     // Prefix of Text already typed correctly
	X       int        // Column, fixed at spawn
	Y       float64    // Row, increases as the target falls
	Color   core.Color // Display color, picked at spawn
}

// targetPalette is cycled through randomly at spawn.
var targetPalette = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
}

// Done reports whether the whole prompt has been typed.
func (t Target) Done() bool {
	return t.Matched == t.Text
}

// Next returns the next character the player has to type.
// ok is false when the target is already complete.
func (t Target) Next() (r rune, ok bool) {
	if len(t.Matched) >= len(t.Text) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(t.Text[len(t.Matched):])
	return r, true
}

// MatchResult reports the outcome of one keystroke against the field.
type MatchResult struct {
	Advanced  bool // Keystroke matched and extended a prefix
	Completed bool // The target was fully typed and removed
	Points    int  // Score delta (pointsPerTarget on completion, else 0)
}

const pointsPerTarget = 10

// Field manages spawning, movement, matching, and removal of targets.
type Field struct {
	targets []Target
	rng     *rand.Rand
	prompts []string
	width   int
	height  int
	cfg     config.TargetsConfig
}

// NewField creates a field for the given mode with a seeded RNG.
func NewField(mode Mode, seed int64, width, height int, cfg config.TargetsConfig) *Field {
	f := &Field{
		targets: make([]Target, 0, 16),
		prompts: mode.Prompts(),
		width:   width,
		height:  height,
		cfg:     cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all targets and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.targets = f.targets[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Resize updates the field dimensions.
func (f *Field) Resize(width, height int) {
	f.width = width
	f.height = height
}

// Spawn adds one target: a random prompt at a random column inside the side
// margins, placed just above the visible top edge with an empty prefix.
func (f *Field) Spawn() {
	if len(f.prompts) == 0 {
		return
	}
	text := f.prompts[f.rng.Intn(len(f.prompts))]

	minX := f.cfg.SideMargin
	maxX := f.width - f.cfg.SideMargin - len(text)
	if maxX < minX {
		maxX = minX
	}
	x := minX
	if maxX > minX {
		x = minX + f.rng.Intn(maxX-minX+1)
	}

	f.targets = append(f.targets, Target{
		Text:  text,
		X:     x,
		Y:     -1,
		Color: targetPalette[f.rng.Intn(len(targetPalette))],
	})
}

// Advance moves every target down by the configured fall speed, then removes
// targets that have left the bottom of the field. A target that escapes is
// dropped silently with no score penalty, whatever its matched prefix.
func (f *Field) Advance() {
	for i := range f.targets {
		f.targets[i].Y += f.cfg.FallSpeed
	}

	alive := f.targets[:0]
	for _, t := range f.targets {
		if t.Y <= float64(f.height) {
			alive = append(alive, t)
		}
	}
	f.targets = alive
}

// Match plays one keystroke against the field. The candidate is the target
// with the smallest Y, i.e. the one nearest the top of the screen; the
// keystroke is compared case-insensitively against its next needed
// character. With no targets, or on a mismatch, nothing changes.
func (f *Field) Match(r rune) MatchResult {
	if len(f.targets) == 0 {
		return MatchResult{}
	}

	idx := 0
	for i := 1; i < len(f.targets); i++ {
		if f.targets[i].Y < f.targets[idx].Y {
			idx = i
		}
	}

	t := &f.targets[idx]
	need, ok := t.Next()
	if !ok || unicode.ToLower(r) != unicode.ToLower(need) {
		return MatchResult{}
	}

	t.Matched = t.Text[:len(t.Matched)+utf8.RuneLen(need)]
	if !t.Done() {
		return MatchResult{Advanced: true}
	}

	f.targets = append(f.targets[:idx], f.targets[idx+1:]...)
	return MatchResult{Advanced: true, Completed: true, Points: pointsPerTarget}
}

// Targets returns the current targets in spawn order.
func (f *Field) Targets() []Target {
	return f.targets
}

// Len returns the number of active targets.
func (f *Field) Len() int {
	return len(f.targets)
}
