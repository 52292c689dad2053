package cli

import (
	"strings"
	"testing"
)

func TestHighlightFold(t *testing.T) {
	got := highlightFold("Pasta with pasta sauce", "pasta")

	// Both occurrences should be wrapped, preserving original casing
	if !strings.Contains(got, "Pasta") || !strings.Contains(got, "pasta") {
		t.Errorf("highlightFold() lost text: %q", got)
	}
	if strings.Count(got, "\x1b") == 0 {
		// no ANSI means nothing was highlighted; lipgloss may strip styles in
		// test environments, so only check the text survived intact
		plain := got
		if plain != "Pasta with pasta sauce" {
			t.Errorf("highlightFold() mangled text: %q", plain)
		}
	}
}

func TestPagerSearchMatches(t *testing.T) {
	m := NewPager("one\ntwo pasta\nthree\nPASTA four")
	m.input.SetValue("pasta")
	m.performSearch()

	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want 2 lines", m.matches)
	}
	if m.matches[0] != 1 || m.matches[1] != 3 {
		t.Errorf("matches = %v, want [1 3]", m.matches)
	}
}

func TestPagerSearchCaseSensitive(t *testing.T) {
	m := NewPager("one\ntwo pasta\nthree\nPASTA four")
	m.input.SetValue("PASTA")
	m.performSearch()

	if len(m.matches) != 1 || m.matches[0] != 3 {
		t.Errorf("matches = %v, want [3]", m.matches)
	}
}
