package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// reportHeader is the schema of the exported aggregate report.
var reportHeader = []string{
	"period", "level", "mode", "count",
	"avg_score", "best_score", "avg_duration_sec", "avg_completed",
}

// WriteCSV emits the aggregate rows with a header. The completed-count
// average is formatted with two decimals.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("report: cannot write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Period,
			strconv.Itoa(r.Level),
			r.Mode,
			strconv.Itoa(r.Count),
			strconv.Itoa(r.AvgScore),
			strconv.Itoa(r.BestScore),
			strconv.Itoa(r.AvgDurationSec),
			fmt.Sprintf("%.2f", r.AvgCompleted),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: cannot write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: cannot flush: %w", err)
	}
	return nil
}

// ExportFile writes the rows to a CSV file, creating parent directories.
func ExportFile(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: cannot create %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: cannot close %s: %w", path, err)
	}
	return nil
}

// DefaultOutName returns the conventional report file name for a period.
func DefaultOutName(p Period) string {
	return fmt.Sprintf("report_%s.csv", p)
}
