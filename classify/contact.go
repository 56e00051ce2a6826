package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/vitae/lexicon"
	"github.com/tsawler/vitae/model"
)

var (
	emailPattern      = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
	phonePattern      = regexp.MustCompile(`(?:\+\d{1,2}[ \t])?\b\d{3}[-. \t]?\d{3}[-. \t]?\d{4}\b`)
	phoneParenPattern = regexp.MustCompile(`(?:\+\d{1,2}[ \t])?\(\d{3}\)[ \t]*\d{3}[-. \t]?\d{4}\b`)
	linkedInPattern   = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	locationPattern   = regexp.MustCompile(`\b[A-Z][a-z]+(?:[ -][A-Z][a-z]+){0,2},[ \t]*(?:` +
		lexicon.Alternation(lexicon.States) + `|[A-Z]{2})\b`)
)

// ExtractContact pulls the first email address, phone number, LinkedIn
// profile and "City, ST" location out of text. LinkedIn profiles are
// returned as full https URLs.
func ExtractContact(text string) model.Contact {
	var c model.Contact

	c.Email = emailPattern.FindString(text)

	if phone := phonePattern.FindString(text); phone != "" {
		c.Phone = phone
	} else {
		c.Phone = phoneParenPattern.FindString(text)
	}

	if profile := linkedInPattern.FindString(text); profile != "" {
		c.LinkedIn = "https://www." + strings.ToLower(profile[:len("linkedin.com")]) + profile[len("linkedin.com"):]
	}

	c.Location = locationPattern.FindString(text)

	return c
}
