package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/report"
)

var (
	flagPeriod string
	flagOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a periodic score summary CSV",
	Long: `Aggregate the score log into per-period, per-mode summary rows and
write them as CSV. Weekly grouping uses ISO week numbers.

Examples:
  typefall report
  typefall report --period monthly
  typefall report --period weekly --out ./weekly.csv`,
	Args: cobra.NoArgs,
	Run:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagPeriod, "period", "weekly", "Grouping period: weekly or monthly")
	reportCmd.Flags().StringVar(&flagOut, "out", "", "Output path (default: <data>/report_<period>.csv)")
}

func runReport(cmd *cobra.Command, args []string) {
	period, err := report.ParsePeriod(flagPeriod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	out := flagOut
	if out == "" {
		out = dataPath(report.DefaultOutName(period))
	}

	rows := report.Aggregate(records, period)
	if err := report.ExportFile(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
	logger.Info("report written", "path", out, "rows", len(rows))
}
