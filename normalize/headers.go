package normalize

import (
	"strings"
	"unicode"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
)

// IsHeaderLine returns true if the whole line is a recognized section
// header. Bullet-prefixed lines (demoted headers) and denylisted words are
// never headers.
func IsHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || textutil.HasBulletPrefix(trimmed) {
		return false
	}
	return lexicon.IsHeaderTerm(trimmed)
}

// SpaceHeaders ensures every header line has a blank line before and after
// it (except at the start and end of the text).
func SpaceHeaders(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+8)

	for i, line := range lines {
		if !IsHeaderLine(line) {
			out = append(out, line)
			continue
		}

		if len(out) > 0 && !textutil.IsBlank(out[len(out)-1]) {
			out = append(out, "")
		}
		out = append(out, line)
		if i+1 < len(lines) && !textutil.IsBlank(lines[i+1]) {
			out = append(out, "")
		}
	}

	return strings.Join(out, "\n")
}

// DemoteDuplicateHeaders keeps one primary occurrence of each repeated
// header and rewrites the others as "• HEADER:" sub-bullets placed directly
// above their content. The primary occurrence is the one owning the most
// content before the next header line; ties go to the earliest.
func DemoteDuplicateHeaders(text string) string {
	lines := strings.Split(text, "\n")

	var headerLines []int
	groups := make(map[string][]int)
	var order []string

	for i, line := range lines {
		if !IsHeaderLine(line) {
			continue
		}
		headerLines = append(headerLines, i)
		key := lexicon.Canonical(line)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	demote := make(map[int]bool)
	for _, key := range order {
		occurrences := groups[key]
		if len(occurrences) < 2 {
			continue
		}

		primary := occurrences[0]
		best := ownedContent(lines, headerLines, primary)
		for _, idx := range occurrences[1:] {
			if owned := ownedContent(lines, headerLines, idx); owned > best {
				best = owned
				primary = idx
			}
		}

		for _, idx := range occurrences {
			if idx != primary {
				demote[idx] = true
			}
		}
	}

	if len(demote) == 0 {
		return text
	}

	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if !demote[i] {
			out = append(out, lines[i])
			continue
		}

		out = append(out, DemotedHeader(lines[i]))
		for i+1 < len(lines) && textutil.IsBlank(lines[i+1]) {
			i++
		}
	}

	return strings.Join(out, "\n")
}

// DemotedHeader renders a header line as an inline sub-bullet
func DemotedHeader(line string) string {
	header := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	return "• " + header + ":"
}

// ownedContent counts the non-space characters between a header line and
// the next header line (or the end of the text).
func ownedContent(lines []string, headerLines []int, idx int) int {
	end := len(lines)
	for _, h := range headerLines {
		if h > idx {
			end = h
			break
		}
	}

	count := 0
	for _, line := range lines[idx+1 : end] {
		for _, r := range line {
			if !unicode.IsSpace(r) {
				count++
			}
		}
	}
	return count
}
