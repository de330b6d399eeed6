// Package chart builds the HTML learning report: per-mode overview cards,
// a line chart of recent scores and a bar chart of weekly averages, all
// rendered as inline SVG with no script dependencies.
package chart

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/scores"
)

// weeklyBars caps the bar chart at the most recent ISO weeks with data.
const weeklyBars = 12

// Point is one labeled sample on a chart axis.
type Point struct {
	Label string
	Value int
}

// ModeReport is everything the report shows for one practice mode.
type ModeReport struct {
	Level     int
	Name      string
	Color     string
	Count     int
	Best      int
	Avg       int
	RecentAvg int
	Recent    []Point // last N scores, oldest first, MM-DD labels
	Weekly    []Point // per-ISO-week average, Wxx labels
}

var modeColors = map[int]string{
	1: "#ff6a5c",
	2: "#4ecdc4",
	3: "#556cd6",
}

// NiceMax rounds v up to the next multiple of step, with a floor of one
// step so an empty or zero axis still gets a usable scale.
func NiceMax(v, step int) int {
	if v <= 0 {
		return step
	}
	m := (v + step - 1) / step * step
	if m < step {
		return step
	}
	return m
}

// BuildModeReports groups records by mode and assembles one report per
// practice mode, in level order. Modes with no records still appear so
// the page layout is stable.
func BuildModeReports(records []scores.Record, recentN int) []ModeReport {
	byLevel := make(map[int][]scores.Record)
	for _, r := range records {
		if r.Level >= 1 && r.Level <= 3 {
			byLevel[r.Level] = append(byLevel[r.Level], r)
		}
	}

	out := make([]ModeReport, 0, len(game.Modes()))
	for _, mode := range game.Modes() {
		items := byLevel[mode.Level()]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Timestamp.Before(items[j].Timestamp)
		})

		recent := items
		if recentN > 0 && len(recent) > recentN {
			recent = recent[len(recent)-recentN:]
		}

		rep := ModeReport{
			Level: mode.Level(),
			Name:  mode.Title(),
			Color: modeColors[mode.Level()],
			Count: len(items),
		}
		rep.Best, rep.Avg = summarize(items)
		_, rep.RecentAvg = summarize(recent)

		for _, r := range recent {
			rep.Recent = append(rep.Recent, Point{
				Label: r.Timestamp.Format("01-02"),
				Value: r.Score,
			})
		}
		rep.Weekly = weeklyAverages(items)
		out = append(out, rep)
	}
	return out
}

func summarize(items []scores.Record) (best, avg int) {
	if len(items) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range items {
		total += r.Score
		if r.Score > best {
			best = r.Score
		}
	}
	return best, total / len(items)
}

// weeklyAverages buckets scores by ISO week and returns the truncated
// per-week mean for the most recent weeks that have data. Labels carry
// only the Wxx suffix to keep the bar axis readable.
func weeklyAverages(items []scores.Record) []Point {
	type bucket struct {
		total int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, r := range items {
		year, week := r.Timestamp.ISOWeek()
		key := isoweekLabel(year, week)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += r.Score
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > weeklyBars {
		keys = keys[len(keys)-weeklyBars:]
	}

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		points = append(points, Point{
			Label: k[len(k)-3:], // "Wxx"
			Value: b.total / b.count,
		})
	}
	return points
}

func isoweekLabel(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}
