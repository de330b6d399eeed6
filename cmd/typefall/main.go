// typefall is a falling-text typing trainer for the terminal.
//
// Usage:
//
//	typefall play             - Open the mode menu and practice
//	typefall play --level 1   - Jump straight into a mode (1-3)
//	typefall report           - Export a weekly or monthly score summary CSV
//	typefall chart            - Render the HTML learning report
//	typefall scores           - Show recent sessions and per-mode statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible target spawning
//	--data <dir>    - Set data directory (default: ~/.typefall)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/scores"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDataDir string
)

// logger reports CLI-level warnings and results on stderr, keeping stdout
// clean for command output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "typefall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typefall",
	Short: "Typefall - falling-text typing practice in your terminal",
	Long: `Typefall is a terminal typing trainer: letters and pinyin syllables
fall from the top of the screen and you type them before they reach
the bottom. Every session is logged to a CSV file, and the log can be
summarized into periodic reports or an HTML chart page.

Available commands:
  play     - Practice (menu, or a specific mode via --level)
  report   - Export weekly/monthly aggregate CSV
  chart    - Render the HTML learning report
  scores   - Show recent sessions and statistics

Examples:
  typefall play
  typefall play --level 3
  typefall report --period monthly
  typefall chart --recent 50
  typefall scores --last 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "~/.typefall", "Data directory for the score log and exports")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(scoresCmd)
}

// dataPath resolves a file name inside the data directory, expanding a
// leading ~ so every consumer sees the real path.
func dataPath(name string) string {
	return filepath.Join(expandHome(flagDataDir), name)
}

// expandHome replaces a leading ~ with the user's home directory.
// Paths without one, or with no resolvable home, pass through unchanged.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openStore opens the score log inside the data directory.
func openStore() (*scores.Store, error) {
	return scores.Open(dataPath("scores.csv"))
}
