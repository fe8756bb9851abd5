package domain

import (
	"regexp"
	"strings"
)

// Note is one importable note row from the source database.
type Note struct {
	ID       string
	Title    string
	Body     string
	ParentID string
}

// maxBaseNameLen bounds note file name stems so deep vault paths stay within
// filesystem limits.
const maxBaseNameLen = 100

// Characters that are not safe in file names on common filesystems.
// Consecutive runs collapse to a single replacement.
var forbiddenChars = regexp.MustCompile(`[\\/:"*?<>|]+`)

// SanitizeTitle replaces every run of forbidden path characters in a folder
// or note title with a single underscore. Total: any input produces a valid
// path segment of equal or shorter length.
func SanitizeTitle(name string) string {
	return forbiddenChars.ReplaceAllString(name, "_")
}

// NoteBaseName derives the output file name stem for a note title.
// Empty titles fall back to "Untitled"; the sanitized result is truncated
// to 100 characters.
func NoteBaseName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	base := SanitizeTitle(title)
	if runes := []rune(base); len(runes) > maxBaseNameLen {
		base = string(runes[:maxBaseNameLen])
	}
	return base
}
