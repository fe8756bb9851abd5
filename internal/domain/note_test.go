package domain

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean title unchanged",
			input: "Meeting notes",
			want:  "Meeting notes",
		},
		{
			name:  "forbidden characters replaced",
			input: `a/b\c:d"e*f?g<h>i|j`,
			want:  "a_b_c_d_e_f_g_h_i_j",
		},
		{
			name:  "consecutive run collapses to one underscore",
			input: "before//\\::after",
			want:  "before_after",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only forbidden characters",
			input: `\/:"*?<>|`,
			want:  "_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.input); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNoteBaseName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title",
			title: "Shopping list",
			want:  "Shopping list",
		},
		{
			name:  "empty title falls back to Untitled",
			title: "",
			want:  "Untitled",
		},
		{
			name:  "whitespace-only title falls back to Untitled",
			title: "   ",
			want:  "Untitled",
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  trimmed  ",
			want:  "trimmed",
		},
		{
			name:  "forbidden characters sanitized",
			title: "plan: 2024/2025",
			want:  "plan_ 2024_2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoteBaseName(tt.title); got != tt.want {
				t.Errorf("NoteBaseName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNoteBaseNameTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := NoteBaseName(long)
	if len([]rune(got)) != 100 {
		t.Errorf("expected 100 characters, got %d", len([]rune(got)))
	}
	if got != strings.Repeat("x", 100) {
		t.Errorf("truncated name does not match prefix")
	}

	// Exactly at the limit stays untouched.
	exact := strings.Repeat("y", 100)
	if got := NoteBaseName(exact); got != exact {
		t.Errorf("100-character title should be unchanged, got %q", got)
	}
}
