package report

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/typefall/internal/scores"
)

func rec(ts time.Time, level int, mode string, score, duration, completed int) scores.Record {
	return scores.Record{
		Timestamp:   ts,
		Level:       level,
		Mode:        mode,
		Score:       score,
		DurationSec: duration,
		Completed:   completed,
	}
}

func TestISOWeekKey(t *testing.T) {
	// 2024-01-01 is a Monday in ISO week 1 of 2024.
	ts := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	if got := Key(PeriodWeekly, ts); got != "2024-W01" {
		t.Errorf("Key(weekly, 2024-01-01) = %q, expected 2024-W01", got)
	}

	// December days can belong to week 1 of the next ISO year.
	ts = time.Date(2024, 12, 30, 9, 0, 0, 0, time.Local)
	if got := Key(PeriodWeekly, ts); got != "2025-W01" {
		t.Errorf("Key(weekly, 2024-12-30) = %q, expected 2025-W01", got)
	}
}

func TestMonthlyKey(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	if got := Key(PeriodMonthly, ts); got != "2024-03" {
		t.Errorf("Key(monthly) = %q, expected 2024-03", got)
	}
}

func TestParsePeriod(t *testing.T) {
	if _, err := ParsePeriod("weekly"); err != nil {
		t.Errorf("ParsePeriod(weekly) failed: %v", err)
	}
	if _, err := ParsePeriod("monthly"); err != nil {
		t.Errorf("ParsePeriod(monthly) failed: %v", err)
	}
	if _, err := ParsePeriod("daily"); err == nil {
		t.Error("ParsePeriod(daily) should fail")
	}
}

func TestAggregateSameWeek(t *testing.T) {
	// Two level-1 sessions in the same ISO week collapse into one row.
	monday := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	records := []scores.Record{
		rec(monday, 1, "uppercase", 30, 60, 3),
		rec(monday.Add(48*time.Hour), 1, "uppercase", 50, 40, 5),
	}

	rows := Aggregate(records, PeriodWeekly)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	want := Row{
		Period: "2024-W01", Level: 1, Mode: "uppercase",
		Count: 2, AvgScore: 40, BestScore: 50,
		AvgDurationSec: 50, AvgCompleted: 4.0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row = %+v, expected %+v", got, want)
	}
}

func TestAggregateTruncatesMeans(t *testing.T) {
	day := time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)
	records := []scores.Record{
		rec(day, 2, "lowercase", 10, 31, 1),
		rec(day, 2, "lowercase", 25, 30, 2),
	}

	rows := Aggregate(records, PeriodMonthly)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].AvgScore != 17 { // 35/2 truncated
		t.Errorf("AvgScore = %d, expected 17", rows[0].AvgScore)
	}
	if rows[0].AvgDurationSec != 30 { // 61/2 truncated
		t.Errorf("AvgDurationSec = %d, expected 30", rows[0].AvgDurationSec)
	}
	if rows[0].AvgCompleted != 1.5 {
		t.Errorf("AvgCompleted = %v, expected 1.5", rows[0].AvgCompleted)
	}
}

func TestAggregateOrdering(t *testing.T) {
	w1 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local)
	w2 := time.Date(2024, 1, 9, 10, 0, 0, 0, time.Local)
	records := []scores.Record{
		rec(w2, 3, "pinyin", 20, 30, 2),
		rec(w1, 2, "lowercase", 10, 30, 1),
		rec(w2, 1, "uppercase", 40, 30, 4),
		rec(w1, 1, "uppercase", 30, 30, 3),
	}

	rows := Aggregate(records, PeriodWeekly)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	order := make([]string, len(rows))
	for i, r := range rows {
		order[i] = fmt.Sprintf("%s/%d", r.Period, r.Level)
	}
	want := []string{"2024-W01/1", "2024-W01/2", "2024-W02/1", "2024-W02/3"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("row order = %v, expected %v", order, want)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	day := time.Date(2024, 7, 1, 10, 0, 0, 0, time.Local)
	records := []scores.Record{
		rec(day, 1, "uppercase", 30, 60, 3),
		rec(day, 3, "pinyin", 50, 40, 5),
		rec(day.AddDate(0, 1, 0), 1, "uppercase", 20, 20, 2),
	}

	first := Aggregate(records, PeriodMonthly)
	second := Aggregate(records, PeriodMonthly)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{{
		Period: "2024-W01", Level: 1, Mode: "uppercase",
		Count: 2, AvgScore: 40, BestScore: 50,
		AvgDurationSec: 50, AvgCompleted: 4,
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "period,level,mode,count,avg_score,best_score,avg_duration_sec,avg_completed" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2024-W01,1,uppercase,2,40,50,50,4.00" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}
