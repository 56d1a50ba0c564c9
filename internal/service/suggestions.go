package service

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxSuggestions caps how many items are shown on the results page.
const MaxSuggestions = 5

var (
	lineBreaks     = regexp.MustCompile(`\n+`)
	numberedPrefix = regexp.MustCompile(`^\d+\.`)
)

const bulletMarker = "•"

// isListSpace reports whether r counts as whitespace when trimming lines and
// list markers. Unicode White_Space plus U+FEFF, minus U+0085.
func isListSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// ParseSuggestions pulls list items out of free-form model output.
//
// A line is kept when its trimmed form starts with "<digits>." or when it
// contains a "•" anywhere. Only the first MaxSuggestions kept lines survive,
// in their original order. A leading "<digits>." marker (plus following
// whitespace) is removed from the untrimmed line; bullet markers are left in
// place. No matches yields an empty, non-nil slice.
func ParseSuggestions(raw string) []string {
	out := make([]string, 0, MaxSuggestions)

	for _, line := range lineBreaks.Split(raw, -1) {
		if len(out) == MaxSuggestions {
			break
		}

		trimmed := strings.TrimFunc(line, isListSpace)
		if !numberedPrefix.MatchString(trimmed) && !strings.Contains(trimmed, bulletMarker) {
			continue
		}

		out = append(out, stripNumberedMarker(line))
	}

	return out
}

func stripNumberedMarker(line string) string {
	loc := numberedPrefix.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return strings.TrimLeftFunc(line[loc[1]:], isListSpace)
}
