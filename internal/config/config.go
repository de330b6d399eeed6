// Package config provides YAML-based gameplay configuration loading
// for typefall.
package config

// Config contains all gameplay tunables. Difficulty is static within a
// session: speed and cadence stay at their configured values.
type Config struct {
	Targets TargetsConfig `yaml:"targets"`
	Stats   StatsConfig   `yaml:"stats"`
}

// TargetsConfig defines spawning and falling behavior for text targets.
type TargetsConfig struct {
	FallSpeed       float64 `yaml:"fall_speed"`        // Rows per tick
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"` // One spawn attempt per interval
	SideMargin      int     `yaml:"side_margin"`       // Columns kept clear on each edge
}

// StatsConfig defines display-only statistics behavior.
type StatsConfig struct {
	RecentWindows []int `yaml:"recent_windows"` // Cycled by the menu stat toggle
}

// normalize fills zero or invalid fields from the defaults so a partial
// user config still yields a playable game.
func (c *Config) normalize() {
	def := Default()
	if c.Targets.FallSpeed <= 0 {
		c.Targets.FallSpeed = def.Targets.FallSpeed
	}
	if c.Targets.SpawnEveryTicks <= 0 {
		c.Targets.SpawnEveryTicks = def.Targets.SpawnEveryTicks
	}
	if c.Targets.SideMargin < 0 {
		c.Targets.SideMargin = def.Targets.SideMargin
	}
	if len(c.Stats.RecentWindows) == 0 {
		c.Stats.RecentWindows = def.Stats.RecentWindows
	}
}
