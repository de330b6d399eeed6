package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDataPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	old := flagDataDir
	defer func() { flagDataDir = old }()
	flagDataDir = "~/.typefall"

	got := dataPath("report_weekly.csv")
	want := filepath.Join(home, ".typefall", "report_weekly.csv")
	if got != want {
		t.Errorf("dataPath() = %q, expected %q", got, want)
	}
	if strings.Contains(got, "~") {
		t.Errorf("dataPath() left a literal ~ in %q", got)
	}
}

func TestDataPathPlainDirUnchanged(t *testing.T) {
	old := flagDataDir
	defer func() { flagDataDir = old }()
	flagDataDir = "/var/lib/typefall"

	if got := dataPath("scores.csv"); got != "/var/lib/typefall/scores.csv" {
		t.Errorf("dataPath() = %q, expected the directory untouched", got)
	}
}

func TestExpandHomeEdgeCases(t *testing.T) {
	if got := expandHome(""); got != "" {
		t.Errorf("expandHome(\"\") = %q", got)
	}
	if got := expandHome("relative/dir"); got != "relative/dir" {
		t.Errorf("expandHome should pass plain paths through, got %q", got)
	}
}
