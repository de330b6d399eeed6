package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the terminal size and for deterministic
// target spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the snapshot the game reports to the platform after each tick.
type GameState struct {
	Score         int // Accumulated score for the running session
	ActiveTargets int // Number of targets currently on screen
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
