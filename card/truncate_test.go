package card

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "0123456789", 10, "0123456789"},
		{"normalizes whitespace", "  a \n\t b  ", 10, "a b"},
		{"cuts at word boundary", "hello world foo", 10, "hello..."},
		{"no space", strings.Repeat("a", 30), 10, "aaaaaaa..."},
		{"space too far back", "a " + strings.Repeat("b", 40), 30, "a " + strings.Repeat("b", 25) + "..."},
		{"trims before ellipsis", "abcdef   ghijkl", 11, "abcdef..."},
		{"multibyte", strings.Repeat("é", 12), 10, strings.Repeat("é", 7) + "..."},
		{"limit below marker", "hello world foo", 1, "."},
		{"limit two", "hello world foo", 2, ".."},
		{"limit zero", "hello", 0, ""},
		{"negative limit", "hello", -4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateBoundAndIdempotence(t *testing.T) {
	inputs := []string{
		"",
		"A short description.",
		strings.Repeat("word ", 100),
		strings.Repeat("x", 500),
		"Notes on building procedural social cards in Go, with a seeded squircle texture, a perceptual contrast search and a tiny flexbox layout engine that feeds a display list into two backends.",
	}
	for _, in := range inputs {
		for _, limit := range []int{0, 1, 2, 3, 10, 50, DescriptionLimit} {
			once := Truncate(in, limit)
			if n := utf8.RuneCountInString(once); n > limit {
				t.Errorf("Truncate(%.20q, %d) has %d runes", in, limit, n)
			}
			if twice := Truncate(once, limit); twice != once {
				t.Errorf("Truncate not idempotent: %q -> %q", once, twice)
			}
		}
	}
}
