package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/chart"
)

var (
	flagRecent   int
	flagChartOut string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the HTML learning report",
	Long: `Render an HTML page with per-mode statistics, a line chart of the
most recent scores, and a bar chart of weekly averages. The page is
self-contained SVG with no scripts.

Examples:
  typefall chart
  typefall chart --recent 50
  typefall chart --out ./report.html`,
	Args: cobra.NoArgs,
	Run:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagRecent, "recent", 30, "Line chart window (last N sessions per mode)")
	chartCmd.Flags().StringVar(&flagChartOut, "out", "", "Output path (default: <data>/report.html)")
}

func runChart(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score log: %v\n", err)
		os.Exit(1)
	}
	records, err := store.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading score log: %v\n", err)
		os.Exit(1)
	}

	out := flagChartOut
	if out == "" {
		out = dataPath("report.html")
	}

	if err := chart.WriteFile(out, records, flagRecent); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		os.Exit(1)
	}
	logger.Info("chart written", "path", out, "sessions", len(records))
}
