package normalize

import (
	"regexp"
	"strings"

	"github.com/tsawler/vitae/lexicon"
)

var (
	tokenPattern = regexp.MustCompile(`\S+`)
	wordPattern  = regexp.MustCompile(`[A-Z][a-z]+`)
)

// SplitMergedWords separates capitalized words that OCR glued together.
// A known place followed by another word starts a new line (the place ended
// a header or address line); any other pair is split with a space.
// CamelCase product names, surname prefixes, email addresses and URLs are
// left alone.
func SplitMergedWords(text string) string {
	return tokenPattern.ReplaceAllStringFunc(text, splitToken)
}

// splitToken decides every joint between two adjacent capitalized words on
// its own, so a product name keeps its joint even when the words around it
// are split ("ProjectManagerBigQuery").
func splitToken(token string) string {
	if isProtectedToken(token) {
		return token
	}
	words := wordPattern.FindAllStringIndex(token, -1)
	if len(words) < 2 {
		return token
	}

	var sb strings.Builder
	last := 0
	for i := 1; i < len(words); i++ {
		prev, cur := words[i-1], words[i]
		if prev[1] != cur[0] {
			continue
		}
		sep := separator(token[prev[0]:prev[1]], token[cur[0]:cur[1]])
		if sep == "" {
			continue
		}
		sb.WriteString(token[last:cur[0]])
		sb.WriteString(sep)
		last = cur[0]
	}
	sb.WriteString(token[last:])
	return sb.String()
}

// separator returns what goes between two glued words: nothing, a space or
// a newline
func separator(first, second string) string {
	switch {
	case lexicon.IsCamelCaseTerm(first + second):
		return ""
	case lexicon.IsNamePrefix(first):
		return ""
	case lexicon.IsPlace(first):
		return "\n"
	case lexicon.IsTechSuffix(second):
		return ""
	default:
		return " "
	}
}

// isProtectedToken returns true for tokens that look like email addresses
// or URLs.
func isProtectedToken(token string) bool {
	lower := strings.ToLower(token)
	for _, marker := range []string{"@", "://", "www.", ".com", ".org", ".net", ".edu", ".io"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
