package rules

import (
	"github.com/tsawler/vitae/lexicon"
)

// Definition describes a rule before registration
type Definition struct {
	Name        string
	Pattern     string
	Replacement string
	Description string
	Category    Category
}

var (
	monthGroup  = `(` + lexicon.Alternation(lexicon.Months) + `)`
	dash        = `[-–—]`
	headerGroup = `(` + lexicon.Alternation(lexicon.EmbeddedHeaders) + `)`
	stateGroup  = `(` + lexicon.Alternation(lexicon.States) + `)`
	cityGroup   = `(` + lexicon.Alternation(lexicon.CompoundCities) + `)`
)

// StandardDefinitions returns the standard rule library in registration
// order.
func StandardDefinitions() []Definition {
	return []Definition{
		// Headers
		{
			Name:        "header_after_punctuation",
			Pattern:     `([.!?;,)])[ \t]*` + headerGroup + `([^a-z]|$)`,
			Replacement: "${1}\n\n${2}${3}",
			Description: "Header glued to the end of a sentence (tasks.SKILLS)",
			Category:    CategoryHeaders,
		},
		{
			Name:        "header_after_lowercase",
			Pattern:     `([a-z])` + headerGroup + `([^a-z]|$)`,
			Replacement: "${1}\n\n${2}${3}",
			Description: "Header glued to a lowercase word (experienceEDUCATION)",
			Category:    CategoryHeaders,
		},
		{
			Name:        "header_after_bullet",
			Pattern:     `[•*][ \t]*` + headerGroup + `([^a-z:]|$)`,
			Replacement: "\n\n${1}${2}",
			Description: "Header swallowed by a bullet marker",
			Category:    CategoryHeaders,
		},
		{
			Name:        "header_before_capitalized",
			Pattern:     `\b` + headerGroup + `([A-Z][a-z])`,
			Replacement: "${1}\n\n${2}",
			Description: "Header glued to the following word (SKILLSPython)",
			Category:    CategoryHeaders,
		},
		{
			Name:        "header_inline_content",
			Pattern:     `(?m)^` + headerGroup + `(:?)[ \t]+([A-Z][a-z]|\d|•)`,
			Replacement: "${1}${2}\n\n${3}",
			Description: "Header followed by content on the same line",
			Category:    CategoryHeaders,
		},

		// Dates
		{
			Name:        "date_newline_in_range",
			Pattern:     `\b` + monthGroup + `[ \t]*(\d{4})[ \t]*` + dash + `\s*` + monthGroup + `[ \t]*\n\s*(\d{4})\b`,
			Replacement: "${1} ${2} - ${3} ${4}",
			Description: "Range broken between the closing month and year",
			Category:    CategoryDates,
		},
		{
			Name:        "date_newline_before_dash",
			Pattern:     `\b` + monthGroup + `[ \t]*(\d{4})[ \t]*\n\s*` + dash + `[ \t]*` + monthGroup + `[ \t]*\n?[ \t]*(\d{4})\b`,
			Replacement: "${1} ${2} - ${3} ${4}",
			Description: "Range broken before the dash",
			Category:    CategoryDates,
		},
		{
			Name:        "date_no_spaces",
			Pattern:     `\b` + monthGroup + `(\d{4})` + dash + monthGroup + `(\d{4})\b`,
			Replacement: "${1} ${2} - ${3} ${4}",
			Description: "Range with no spaces (May2020-June2021)",
			Category:    CategoryDates,
		},
		{
			Name:        "date_dash_prefix",
			Pattern:     `(?m)^` + dash + monthGroup + `[ \t]*(\d{4})\b`,
			Replacement: "${1} ${2}",
			Description: "Stray dash in front of a date",
			Category:    CategoryDates,
		},
		{
			Name:        "date_dash_spacing",
			Pattern:     `\b` + monthGroup + `[ \t]*(\d{4})[ \t]*` + dash + `\s*` + monthGroup + `[ \t]*(\d{4})\b`,
			Replacement: "${1} ${2} - ${3} ${4}",
			Description: "Uneven spacing around the range dash",
			Category:    CategoryDates,
		},
		{
			Name:        "date_present",
			Pattern:     `\b` + monthGroup + `[ \t]*(\d{4})\s*` + dash + `\s*(Present|PRESENT|present|Current|CURRENT|current|Now|now)\b`,
			Replacement: "${1} ${2} - ${3}",
			Description: "Open range ending in Present",
			Category:    CategoryDates,
		},
		{
			Name:        "date_year_range",
			Pattern:     `\b((?:19|20)\d{2})[ \t]*` + dash + `[ \t]*((?:19|20)\d{2}|Present|Current)\b`,
			Replacement: "${1} - ${2}",
			Description: "Year range spacing (2019-2021)",
			Category:    CategoryDates,
		},
		{
			Name:        "date_month_year_glued",
			Pattern:     `\b` + monthGroup + `(\d{4})\b`,
			Replacement: "${1} ${2}",
			Description: "Month glued to its year (May2020)",
			Category:    CategoryDates,
		},

		// Locations
		{
			Name:        "state_verb_past",
			Pattern:     `\b` + stateGroup + `([A-Z][a-z]+ed)\b`,
			Replacement: "${1}\n${2}",
			Description: "State name glued to a past tense verb (UtahActed)",
			Category:    CategoryLocations,
		},
		{
			Name:        "state_verb_ing",
			Pattern:     `\b` + stateGroup + `([A-Z][a-z]+ing)\b`,
			Replacement: "${1}\n${2}",
			Description: "State name glued to a present participle (TexasLeading)",
			Category:    CategoryLocations,
		},
		{
			Name:        "state_capitalized",
			Pattern:     `\b` + stateGroup + `([A-Z][a-z]+)`,
			Replacement: "${1}\n${2}",
			Description: "State name glued to a capitalized word",
			Category:    CategoryLocations,
		},
		{
			Name:        "city_capitalized",
			Pattern:     `\b` + cityGroup + `([A-Z][a-z]+)`,
			Replacement: "${1}\n${2}",
			Description: "Compound city name glued to a capitalized word",
			Category:    CategoryLocations,
		},
		{
			Name:        "city_state_glued",
			Pattern:     `\b([A-Z][a-z]+),[ \t]*([A-Z]{2})([A-Z][a-z]+)`,
			Replacement: "${1}, ${2}\n${3}",
			Description: "City, ST glued to the next word (Provo, UTManaged)",
			Category:    CategoryLocations,
		},

		// Contact
		{
			Name:        "email_whitespace_at",
			Pattern:     `([A-Za-z0-9._%+-]+)\s*@\s*([A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*)`,
			Replacement: "${1}@${2}",
			Description: "Whitespace around @ in an email address",
			Category:    CategoryContact,
		},
		{
			Name:        "phone_dash_spacing",
			Pattern:     `(\(?\d{3}\)?[ \t.-]*\d{3})[ \t]*([-.])[ \t]*(\d{4})\b`,
			Replacement: "${1}${2}${3}",
			Description: "Spaces around the last dash of a phone number",
			Category:    CategoryContact,
		},
		{
			Name:        "profile_url_spacing",
			Pattern:     `(?i)\b((?:linkedin|github)\.com(?:/in)?)[ \t]*/[ \t]*`,
			Replacement: "${1}/",
			Description: "Spaces inside a profile URL path",
			Category:    CategoryContact,
		},

		// Special cases
		{
			Name:        "inline_bullet_after_sentence",
			Pattern:     `([a-z0-9%)][.!?])[ \t]*([•*])[ \t]*([A-Z])`,
			Replacement: "${1}\n${2} ${3}",
			Description: "Bullet glued to the end of the previous item",
			Category:    CategorySpecialCases,
		},
		{
			Name:        "caps_name_glued",
			Pattern:     `\b([A-Z]{2,}[ \t]+[A-Z]{2,})([A-Z][a-z]+)`,
			Replacement: "${1}\n${2}",
			Description: "Upper-case name glued to the next word (JOHN SMITHSalt)",
			Category:    CategorySpecialCases,
		},
		{
			Name:        "page_marker",
			Pattern:     `(?m)^[ \t]*(?:Page|PAGE)[ \t]+\d+(?:[ \t]+(?:of|OF)[ \t]+\d+)?[ \t]*$`,
			Replacement: "",
			Description: "Page number lines",
			Category:    CategorySpecialCases,
		},

		// General
		{
			Name:        "bullet_glyphs",
			Pattern:     `(?m)^([ \t]*)[●▪◦‣∙·■□➢➤►✓✔]`,
			Replacement: "${1}•",
			Description: "Bullet glyph variants",
			Category:    CategoryGeneral,
		},
		{
			Name:        "smart_single_quotes",
			Pattern:     `[‘’‚‛]`,
			Replacement: "'",
			Description: "Typographic single quotes",
			Category:    CategoryGeneral,
		},
		{
			Name:        "smart_double_quotes",
			Pattern:     `[“”„‟]`,
			Replacement: `"`,
			Description: "Typographic double quotes",
			Category:    CategoryGeneral,
		},
		{
			Name:        "invisible_characters",
			Pattern:     `[\x{00AD}\x{200B}\x{200C}\x{200D}\x{FEFF}]`,
			Replacement: "",
			Description: "Soft hyphens and zero-width characters",
			Category:    CategoryGeneral,
		},
	}
}

// Standard returns a new engine loaded with the standard rule library
func Standard() *Engine {
	e := NewEngine()
	for _, d := range StandardDefinitions() {
		e.MustRegister(d.Name, d.Pattern, d.Replacement, d.Description, d.Category)
	}
	return e
}
