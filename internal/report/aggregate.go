// Package report aggregates the score history into weekly or monthly
// summary rows and exports them as CSV.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vovakirdan/typefall/internal/scores"
)

// Period selects the grouping granularity.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period name from user input.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("report: unknown period %q (want weekly or monthly)", s)
	}
}

// Key returns the grouping key for a timestamp: the ISO-8601 week
// identifier (YYYY-Www) for weekly grouping, else the year-month. Both
// forms are zero-padded so lexicographic order is chronological.
func Key(p Period, t time.Time) string {
	if p == PeriodWeekly {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return t.Format("2006-01")
}

// Row is one aggregated group: all sessions of one level inside one period.
type Row struct {
	Period         string
	Level          int
	Mode           string
	Count          int
	AvgScore       int // truncating mean
	BestScore      int
	AvgDurationSec int     // truncating mean
	AvgCompleted   float64 // reported with two decimals
}

// Aggregate groups records by period key, then by level, and computes the
// per-group statistics. Rows come back sorted ascending by period key and
// level; empty groups are omitted. Aggregating the same records twice
// yields identical output.
func Aggregate(records []scores.Record, p Period) []Row {
	groups := make(map[string]map[int][]scores.Record)
	for _, r := range records {
		key := Key(p, r.Timestamp)
		if groups[key] == nil {
			groups[key] = make(map[int][]scores.Record)
		}
		groups[key][r.Level] = append(groups[key][r.Level], r)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []Row
	for _, key := range keys {
		for lvl := 1; lvl <= 3; lvl++ {
			items := groups[key][lvl]
			if len(items) == 0 {
				continue
			}
			row := Row{
				Period: key,
				Level:  lvl,
				Mode:   items[0].Mode,
				Count:  len(items),
			}
			if row.Mode == "" {
				row.Mode = strconv.Itoa(lvl)
			}
			var scoreSum, durSum, completedSum int
			for _, it := range items {
				scoreSum += it.Score
				durSum += it.DurationSec
				completedSum += it.Completed
				if it.Score > row.BestScore {
					row.BestScore = it.Score
				}
			}
			row.AvgScore = scoreSum / row.Count
			row.AvgDurationSec = durSum / row.Count
			row.AvgCompleted = float64(completedSum) / float64(row.Count)
			rows = append(rows, row)
		}
	}
	return rows
}
