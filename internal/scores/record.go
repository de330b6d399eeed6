// Package scores provides the append-only CSV score log and per-mode
// summaries over it.
package scores

import (
	"strconv"
	"time"
)

// TimeLayout is the local ISO-8601 timestamp format with second precision
// used by the score log.
const TimeLayout = "2006-01-02T15:04:05"

// Record is one completed or abandoned play session. Records are immutable
// once written and the log is append-only.
type Record struct {
	Timestamp   time.Time
	Level       int    // 1..3
	Mode        string // display label derived from the level
	Score       int
	DurationSec int
	Completed   int // always Score/10
}

// New builds the record for a session that finished now.
// Duration and completed count are clamped to be non-negative.
func New(level int, mode string, score int, start, now time.Time) Record {
	duration := int(now.Sub(start).Seconds())
	if duration < 0 {
		duration = 0
	}
	completed := score / 10
	if completed < 0 {
		completed = 0
	}
	return Record{
		Timestamp:   now,
		Level:       level,
		Mode:        mode,
		Score:       score,
		DurationSec: duration,
		Completed:   completed,
	}
}

// header is the first row of a fresh score log.
var header = []string{"timestamp", "level", "mode", "score", "duration_sec", "completed"}

// fields returns the CSV row for the record.
func (r Record) fields() []string {
	return []string{
		r.Timestamp.Format(TimeLayout),
		strconv.Itoa(r.Level),
		r.Mode,
		strconv.Itoa(r.Score),
		strconv.Itoa(r.DurationSec),
		strconv.Itoa(r.Completed),
	}
}

// parseRecord converts a CSV row back to a record.
// ok is false for rows that are malformed in any field.
func parseRecord(row []string) (Record, bool) {
	if len(row) != len(header) {
		return Record{}, false
	}
	ts, err := time.Parse(TimeLayout, row[0])
	if err != nil {
		return Record{}, false
	}
	level, err := strconv.Atoi(row[1])
	if err != nil {
		return Record{}, false
	}
	score, err := strconv.Atoi(row[3])
	if err != nil {
		return Record{}, false
	}
	duration, err := strconv.Atoi(row[4])
	if err != nil {
		return Record{}, false
	}
	completed, err := strconv.Atoi(row[5])
	if err != nil {
		return Record{}, false
	}
	return Record{
		Timestamp:   ts,
		Level:       level,
		Mode:        row[2],
		Score:       score,
		DurationSec: duration,
		Completed:   completed,
	}, true
}
