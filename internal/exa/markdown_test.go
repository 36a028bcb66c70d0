package exa

import (
	"strings"
	"testing"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "just plain text", "just plain text"},
		{"link", "see [the docs](https://example.com) here", "see the docs here"},
		{"image", "before ![alt text](https://example.com/x.png) after", "before alt text after"},
		{"header", "# Title\nbody", "Title\nbody"},
		{"bold", "this is **bold** text", "this is bold text"},
		{"bold underscore", "this is __bold__ text", "this is bold text"},
		{"italic", "this is *italic* text", "this is italic text"},
		{"inline code", "run `go build` now", "run go build now"},
		{"table separator dropped", "| a | b |\n|---|---|\n| 1 | 2 |", "a - b\n1 - 2"},
		{"excess newlines", "a\n\n\n\n\nb", "a\n\nb"},
		{"run spaces", "a    \t b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanMarkdown(tt.in); got != tt.want {
				t.Errorf("CleanMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "The answer is 42.", "The answer is 42."},
		{
			"inline citation",
			"Solar output rose 24% in 2024 [IEA Report](https://iea.org/r).",
			"Solar output rose 24% in 2024.",
		},
		{
			"grouped citation",
			"Emissions fell ([Source1](https://a.com), [Source2](https://b.com)).",
			"Emissions fell.",
		},
		{"bold stripped", "It was **significant** growth.", "It was significant growth."},
		{"header stripped", "## Summary\nAll good.", "Summary\nAll good."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAnswer(tt.in); got != tt.want {
				t.Errorf("CleanAnswer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanAnswerKeepsParagraphs(t *testing.T) {
	got := CleanAnswer("First paragraph.\n\nSecond paragraph.")
	if !strings.Contains(got, "\n\n") {
		t.Errorf("Paragraph break lost: %q", got)
	}
}
