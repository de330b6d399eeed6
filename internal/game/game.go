package game

import (
	"fmt"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
)

// Game is one typing session in a single mode, advanced by fixed ticks.
type Game struct {
	mode       Mode
	field      *Field
	score      int
	spawnTimer int
	tickCount  int
	runtime    core.RuntimeConfig
	cfg        config.Config
}

// New creates a game for the given mode with the given gameplay tunables.
func New(mode Mode, cfg config.Config) *Game {
	return &Game{
		mode: mode,
		cfg:  cfg,
	}
}

// Mode returns the practice mode this game runs.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes or restarts the session state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.score = 0
	g.spawnTimer = 0
	g.tickCount = 0

	if g.field == nil {
		g.field = NewField(g.mode, rc.Seed, rc.ScreenW, rc.ScreenH, g.cfg.Targets)
	} else {
		g.field.Resize(rc.ScreenW, rc.ScreenH)
		g.field.Reset(rc.Seed)
	}
}

// Step advances the simulation by one fixed tick: targets fall, the spawn
// cadence runs, and every keystroke queued this frame plays one match event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	g.field.Advance()

	g.spawnTimer++
	if g.spawnTimer >= g.cfg.Targets.SpawnEveryTicks {
		g.spawnTimer = 0
		g.field.Spawn()
	}

	for _, r := range in.Runes {
		res := g.field.Match(r)
		g.score += res.Points
	}

	return core.StepResult{State: g.State()}
}

// Resize updates the play field to new terminal dimensions mid-session.
func (g *Game) Resize(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.field != nil {
		g.field.Resize(rc.ScreenW, rc.ScreenH)
	}
}

// Render draws the falling targets and the HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, t := range g.field.Targets() {
		y := int(t.Y)
		if y < 0 {
			continue
		}
		dst.DrawTextColored(t.X, y, t.Text, t.Color)
		if t.Matched != "" {
			// Overlay the typed part in gray so progress reads at a glance.
			dst.DrawTextColored(t.X, y, t.Matched, core.ColorGray)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf("Score: %d", g.score))
	hint := "Esc: back (saves score)"
	dst.DrawTextColored(dst.Width()-len(hint)-2, 0, hint, core.ColorGray)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		ActiveTargets: g.field.Len(),
	}
}
