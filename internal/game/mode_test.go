package game

import "testing"

func TestModePrompts(t *testing.T) {
	tests := []struct {
		mode  Mode
		count int
		first string
		last  string
	}{
		{ModeUppercase, 26, "A", "Z"},
		{ModeLowercase, 26, "a", "z"},
		{ModePinyin, 11, "ba", "he"},
	}

	for _, tt := range tests {
		prompts := tt.mode.Prompts()
		if len(prompts) != tt.count {
			t.Errorf("%s: got %d prompts, expected %d", tt.mode.Label(), len(prompts), tt.count)
		}
		if prompts[0] != tt.first {
			t.Errorf("%s: first prompt %q, expected %q", tt.mode.Label(), prompts[0], tt.first)
		}
		if prompts[len(prompts)-1] != tt.last {
			t.Errorf("%s: last prompt %q, expected %q", tt.mode.Label(), prompts[len(prompts)-1], tt.last)
		}
	}
}

func TestModeLabels(t *testing.T) {
	expected := map[Mode]string{
		ModeUppercase: "uppercase",
		ModeLowercase: "lowercase",
		ModePinyin:    "pinyin",
	}
	for mode, label := range expected {
		if mode.Label() != label {
			t.Errorf("Mode %d label = %q, expected %q", mode, mode.Label(), label)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, lvl := range []int{1, 2, 3} {
		mode, err := ParseMode(lvl)
		if err != nil {
			t.Fatalf("ParseMode(%d) failed: %v", lvl, err)
		}
		if mode.Level() != lvl {
			t.Errorf("ParseMode(%d).Level() = %d", lvl, mode.Level())
		}
	}

	for _, lvl := range []int{0, 4, -1} {
		if _, err := ParseMode(lvl); err == nil {
			t.Errorf("ParseMode(%d) should fail", lvl)
		}
	}
}
