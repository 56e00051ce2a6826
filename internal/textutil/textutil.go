// Package textutil holds small text predicates shared by the normalization,
// scoring, classification and layout stages.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// bulletRunes are the list markers recognized at the start of a line
const bulletRunes = "•-*·▪●◦‣–"

// IsBlank returns true if s contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsAllCaps returns true if s has at least one letter and no lowercase
// letters.
func IsAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// IsTitleCase returns true if every word starts with an uppercase letter and
// continues in lowercase ("Work History", "Python, Java").
func IsTitleCase(s string) bool {
	hasLetter := false
	prevLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			prevLetter = false
			continue
		}
		hasLetter = true
		if prevLetter {
			if unicode.IsUpper(r) {
				return false
			}
		} else if unicode.IsLower(r) {
			return false
		}
		prevLetter = true
	}
	return hasLetter
}

// HasBulletPrefix returns true if the trimmed line starts with a list marker
func HasBulletPrefix(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune(bulletRunes, r)
}

// StripBullet removes a leading list marker and the whitespace after it
func StripBullet(s string) string {
	s = strings.TrimSpace(s)
	if HasBulletPrefix(s) {
		_, size := utf8.DecodeRuneInString(s)
		s = strings.TrimSpace(s[size:])
	}
	return s
}

// WordCount returns the number of whitespace separated words
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// StartsLowerOrDigit returns true if the first rune of s is a lowercase
// letter or a digit.
func StartsLowerOrDigit(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

// StartsWithMarker returns true if s begins with whitespace, a list marker
// or punctuation: anything that separates it from a preceding word.
func StartsWithMarker(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r) || unicode.IsPunct(r) || strings.ContainsRune(bulletRunes, r)
}

// EndsWithNewline returns true if s ends in a line break
func EndsWithNewline(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
