package game

import (
	"testing"

	"github.com/vovakirdan/typefall/internal/config"
)

func testField(mode Mode) *Field {
	return NewField(mode, 42, 80, 24, config.Default().Targets)
}

func TestSpawnPlacesTargetAboveTop(t *testing.T) {
	f := testField(ModeUppercase)
	f.Spawn()

	if f.Len() != 1 {
		t.Fatalf("expected 1 target after Spawn, got %d", f.Len())
	}
	tgt := f.Targets()[0]
	if tgt.Y >= 0 {
		t.Errorf("spawned target should start above the visible top, Y = %v", tgt.Y)
	}
	if tgt.Matched != "" {
		t.Errorf("spawned target should have an empty matched prefix, got %q", tgt.Matched)
	}
	if tgt.Text == "" {
		t.Error("spawned target should have a non-empty prompt")
	}
	margin := config.Default().Targets.SideMargin
	if tgt.X < margin || tgt.X > 80-margin-len(tgt.Text) {
		t.Errorf("spawned target X = %d outside margins", tgt.X)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	f1 := testField(ModePinyin)
	f2 := testField(ModePinyin)
	for i := 0; i < 10; i++ {
		f1.Spawn()
		f2.Spawn()
	}
	for i := range f1.Targets() {
		a, b := f1.Targets()[i], f2.Targets()[i]
		if a.Text != b.Text || a.X != b.X {
			t.Fatalf("same seed should spawn identical targets, got %+v vs %+v", a, b)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	f := testField(ModeLowercase)
	f.targets = append(f.targets, Target{Text: "b", Y: 2})

	res := f.Match('B')
	if !res.Advanced || !res.Completed {
		t.Fatalf("uppercase keystroke should match lowercase target, got %+v", res)
	}
	if res.Points != 10 {
		t.Errorf("completion should score 10, got %d", res.Points)
	}
	if f.Len() != 0 {
		t.Error("completed target should be removed")
	}
}

func TestMatchSyllableSequence(t *testing.T) {
	f := testField(ModePinyin)
	f.targets = append(f.targets, Target{Text: "ba", Y: 3})

	res := f.Match('b')
	if !res.Advanced || res.Completed || res.Points != 0 {
		t.Fatalf("first keystroke: got %+v, expected advance without completion", res)
	}
	if got := f.Targets()[0].Matched; got != "b" {
		t.Fatalf("matched prefix = %q, expected %q", got, "b")
	}

	res = f.Match('a')
	if !res.Completed || res.Points != 10 {
		t.Fatalf("second keystroke: got %+v, expected completion with 10 points", res)
	}
	if f.Len() != 0 {
		t.Error("completed target should be removed")
	}
}

func TestMatchPicksTopmostTarget(t *testing.T) {
	f := testField(ModeUppercase)
	f.targets = append(f.targets,
		Target{Text: "A", Y: 10},
		Target{Text: "B", Y: 4}, // topmost, spawned last
	)

	res := f.Match('a')
	if res.Advanced {
		t.Error("keystroke for the lower target should miss; the topmost target is the candidate")
	}

	res = f.Match('b')
	if !res.Completed {
		t.Errorf("keystroke for the topmost target should complete it, got %+v", res)
	}
	if f.Len() != 1 || f.Targets()[0].Text != "A" {
		t.Error("only the topmost target should have been removed")
	}
}

func TestMatchMismatchLeavesStateUnchanged(t *testing.T) {
	f := testField(ModeUppercase)
	f.targets = append(f.targets, Target{Text: "C", Y: 5})

	res := f.Match('x')
	if res.Advanced || res.Completed || res.Points != 0 {
		t.Errorf("mismatch should be a no-op, got %+v", res)
	}
	if f.Targets()[0].Matched != "" {
		t.Error("mismatch should not extend the matched prefix")
	}
}

func TestMatchEmptyFieldIsNoop(t *testing.T) {
	f := testField(ModeUppercase)
	if res := f.Match('a'); res.Advanced || res.Points != 0 {
		t.Errorf("match with no targets should be a no-op, got %+v", res)
	}
}

func TestAdvanceMovesAndPrunes(t *testing.T) {
	f := testField(ModeUppercase)
	f.targets = append(f.targets,
		Target{Text: "A", Y: 1},
		Target{Text: "B", Matched: "", Y: 23.9},
		Target{Text: "ba", Matched: "b", Y: 24.5}, // partly typed, already past the bottom
	)

	f.Advance()

	if f.Len() != 2 {
		t.Fatalf("expected 2 targets after pruning, got %d", f.Len())
	}
	// Removal is unconditional regardless of matched prefix, and costs nothing.
	for _, tgt := range f.Targets() {
		if tgt.Text == "ba" {
			t.Error("off-screen target should be removed even when partly typed")
		}
	}
	if f.Targets()[0].Y <= 1 {
		t.Error("Advance should move targets down")
	}
}
