package dialog

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	s := Parse("hello\r\n\nfirst\\nsecond\n")

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}

	tests := []struct {
		id       int
		expected string
		ok       bool
	}{
		{0, "hello", true},
		{1, "", true},
		{2, `first\nsecond`, true},
		{3, "", false},
		{-1, "", false},
	}
	for _, tc := range tests {
		got, ok := s.Get(tc.id)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("Get(%d) = %q, %v, expected %q, %v", tc.id, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "\n"} {
		if n := Parse(text).Len(); n != 0 {
			t.Errorf("Parse(%q).Len() = %d, expected 0", text, n)
		}
	}
}

func TestLines(t *testing.T) {
	s := Parse(`Hi there!\nWelcome to town.` + "\nplain\n")

	lines, ok := s.Lines(0)
	if !ok {
		t.Fatal("Lines(0) not found")
	}
	expected := []string{"Hi there!", "Welcome to town."}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Lines(0) = %q, expected %q", lines, expected)
	}

	lines, _ = s.Lines(1)
	if !reflect.DeepEqual(lines, []string{"plain"}) {
		t.Errorf("Lines(1) = %q, expected [plain]", lines)
	}

	if _, ok := s.Lines(9); ok {
		t.Error("Lines(9) should not exist")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		expected []string
	}{
		{"fits", "short line", 20, []string{"short line"}},
		{"breaks on space", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"cuts long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
		{"empty", "", 5, []string{""}},
		{"no width", "anything goes", 0, []string{"anything goes"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.line, tc.width)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Wrap(%q, %d) = %q, expected %q", tc.line, tc.width, got, tc.expected)
			}
		})
	}
}
