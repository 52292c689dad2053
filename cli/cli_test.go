package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate arguments",
			args: []string{"chicken", "rice"},
			want: []string{"chicken", "rice"},
		},
		{
			name: "comma separated",
			args: []string{"chicken, rice,tomatoes"},
			want: []string{"chicken", "rice", "tomatoes"},
		},
		{
			name: "mixed with blanks",
			args: []string{"chicken,", " ", "rice"},
			want: []string{"chicken", "rice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitIngredients(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitIngredients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRecipeID(t *testing.T) {
	id, err := parseRecipeID("42")
	if err != nil || id != 42 {
		t.Errorf("parseRecipeID(42) = %d, %v", id, err)
	}

	for _, arg := range []string{"abc", "-1", "0", ""} {
		_, err := parseRecipeID(arg)
		if err == nil {
			t.Errorf("parseRecipeID(%q) expected error", arg)
			continue
		}
		if !failure.Is(err, InvalidRecipeID) {
			t.Errorf("parseRecipeID(%q) error = %v, want code %v", arg, err, InvalidRecipeID)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"italian", "Italian"},
		{"ITALIAN", "Italian"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long recipe title indeed", 10); len(got) > 13 {
		// 9 bytes plus the ellipsis rune
		t.Errorf("truncate() too long: %q", got)
	}
}
