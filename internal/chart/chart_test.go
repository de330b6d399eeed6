package chart

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/typefall/internal/scores"
)

func rec(ts time.Time, level, score int) scores.Record {
	return scores.Record{
		Timestamp: ts,
		Level:     level,
		Mode:      "uppercase",
		Score:     score,
	}
}

func TestNiceMax(t *testing.T) {
	cases := []struct {
		v, step, want int
	}{
		{0, 50, 50},
		{-10, 50, 50},
		{1, 50, 50},
		{50, 50, 50},
		{51, 50, 100},
		{149, 50, 150},
		{150, 50, 150},
	}
	for _, c := range cases {
		if got := NiceMax(c.v, c.step); got != c.want {
			t.Errorf("NiceMax(%d, %d) = %d, expected %d", c.v, c.step, got, c.want)
		}
	}
}

func TestBuildModeReportsAllModesPresent(t *testing.T) {
	reports := BuildModeReports(nil, 30)
	if len(reports) != 3 {
		t.Fatalf("expected 3 mode reports, got %d", len(reports))
	}
	for i, rep := range reports {
		if rep.Level != i+1 {
			t.Errorf("report %d has level %d", i, rep.Level)
		}
		if rep.Count != 0 || len(rep.Recent) != 0 || len(rep.Weekly) != 0 {
			t.Errorf("empty mode report %d carries data: %+v", i, rep)
		}
	}
}

func TestBuildModeReportsRecentWindow(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)
	var records []scores.Record
	for i := 0; i < 10; i++ {
		records = append(records, rec(base.Add(time.Duration(i)*time.Hour), 1, (i+1)*10))
	}

	reports := BuildModeReports(records, 5)
	rep := reports[0]
	if rep.Count != 10 {
		t.Errorf("Count = %d, expected 10", rep.Count)
	}
	if len(rep.Recent) != 5 {
		t.Fatalf("Recent window = %d points, expected 5", len(rep.Recent))
	}
	if rep.Recent[0].Value != 60 || rep.Recent[4].Value != 100 {
		t.Errorf("recent points wrong: %+v", rep.Recent)
	}
	if rep.Recent[0].Label != "03-04" {
		t.Errorf("recent label = %q, expected 03-04", rep.Recent[0].Label)
	}
	if rep.Best != 100 {
		t.Errorf("Best = %d, expected 100", rep.Best)
	}
	if rep.Avg != 55 { // 550/10
		t.Errorf("Avg = %d, expected 55", rep.Avg)
	}
	if rep.RecentAvg != 80 { // (60+70+80+90+100)/5
		t.Errorf("RecentAvg = %d, expected 80", rep.RecentAvg)
	}
}

func TestWeeklyAveragesCappedAtTwelve(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	var records []scores.Record
	for i := 0; i < 20; i++ {
		records = append(records, rec(base.AddDate(0, 0, 7*i), 1, 40))
	}

	rep := BuildModeReports(records, 30)[0]
	if len(rep.Weekly) != 12 {
		t.Fatalf("weekly bars = %d, expected 12", len(rep.Weekly))
	}
	for _, p := range rep.Weekly {
		if !strings.HasPrefix(p.Label, "W") {
			t.Errorf("weekly label %q missing W prefix", p.Label)
		}
		if p.Value != 40 {
			t.Errorf("weekly average = %d, expected 40", p.Value)
		}
	}
}

func TestRenderProducesSVG(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)
	records := []scores.Record{
		rec(base, 1, 30),
		rec(base.Add(time.Hour), 1, 50),
	}

	var buf bytes.Buffer
	if err := Render(&buf, records, 30); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "polyline", "Uppercase Letters", "Pinyin Syllables", "No data yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestWriteFileCreatesParentDir(t *testing.T) {
	path := t.TempDir() + "/nested/report.html"
	if err := WriteFile(path, nil, 30); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "Typing Report") {
		t.Error("written report missing title")
	}
}

func TestWriteFileReportsCreateError(t *testing.T) {
	// The target path is an existing directory, so the file cannot be
	// created and the error must surface.
	if err := WriteFile(t.TempDir(), nil, 30); err == nil {
		t.Error("WriteFile to a directory path should fail")
	}
}
