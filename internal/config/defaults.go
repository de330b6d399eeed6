package config

import (
	_ "embed"
)

//go:embed defaults/typing.yaml
var defaultTypingYAML []byte

// Default returns the hardcoded default configuration.
// A full screen crossing takes about eight seconds at 60 ticks per second,
// with a new target every two seconds.
func Default() Config {
	return Config{
		Targets: TargetsConfig{
			FallSpeed:       0.05,
			SpawnEveryTicks: 120,
			SideMargin:      4,
		},
		Stats: StatsConfig{
			RecentWindows: []int{5, 10, 30},
		},
	}
}
