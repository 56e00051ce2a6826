package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
)

// connectors are words that cannot end a sentence, so a line ending in one
// continues on the next line
var connectors = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "by": true,
	"for": true, "from": true, "in": true, "of": true, "on": true, "or": true,
	"the": true, "to": true, "with": true,
}

var (
	monthYearEnd  = regexp.MustCompile(`\b` + lexicon.Alternation(lexicon.Months) + `\.?[ \t]*\d{4}$`)
	dateStart     = regexp.MustCompile(`^(?:` + lexicon.Alternation(lexicon.Months) + `\.?[ \t]*)?(?:19|20)\d{2}\b`)
	lastWordSplit = regexp.MustCompile(`[^\p{L}]+`)
)

// JoinBrokenLines joins lines that OCR broke in the middle of a sentence.
// Two adjacent lines are joined with a space when the second starts with a
// lowercase letter or the first ends with a connector word ("with", "of").
// A wrapped bullet joins its continuation, but a line never joins a blank
// line, a header, a following bullet, a date, contact details or anything
// after sentence punctuation.
func JoinBrokenLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if n := len(out); n > 0 && isBrokenLine(out[n-1], line) {
			out[n-1] = strings.TrimRight(out[n-1], " \t") + " " + strings.TrimLeft(line, " \t")
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// isBrokenLine returns true if next continues the sentence on prev
func isBrokenLine(prev, next string) bool {
	prev = strings.TrimSpace(prev)
	next = strings.TrimSpace(next)

	if prev == "" || next == "" {
		return false
	}
	if IsHeaderLine(prev) || IsHeaderLine(next) {
		return false
	}
	if textutil.HasBulletPrefix(next) {
		return false
	}
	if strings.ContainsAny(prev[len(prev)-1:], ".:;!?") {
		return false
	}
	if monthYearEnd.MatchString(prev) || dateStart.MatchString(next) {
		return false
	}
	if hasContactMarker(prev) || hasContactMarker(next) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLower(r) || endsWithConnector(prev)
}

func endsWithConnector(line string) bool {
	words := lastWordSplit.Split(strings.ToLower(line), -1)
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != "" {
			return connectors[words[i]]
		}
	}
	return false
}

func hasContactMarker(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "@") || strings.Contains(lower, "://") || strings.Contains(lower, "www.")
}
