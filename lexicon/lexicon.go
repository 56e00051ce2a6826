// Package lexicon holds the vocabularies used to recognize resume structure:
// section header terms per section type, the header denylist, place names,
// job titles and CamelCase terms that must never be split.
package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/model"
)

// Headers maps each section type to its header vocabulary (lowercase)
var Headers = map[model.SectionType][]string{
	model.SectionContact: {
		"contact", "contact information", "contact info", "contact details",
		"personal information", "personal details",
	},
	model.SectionSummary: {
		"summary", "professional summary", "career summary", "executive summary",
		"profile", "professional profile", "objective", "career objective",
		"about me", "overview", "qualifications", "summary of qualifications",
	},
	model.SectionExperience: {
		"experience", "work experience", "professional experience",
		"relevant experience", "employment", "employment history", "work history",
		"career history", "professional background", "career",
		"leadership", "leadership experience",
	},
	model.SectionEducation: {
		"education", "academic background", "educational background",
		"academics", "academic history", "education and training",
	},
	model.SectionSkills: {
		"skills", "technical skills", "core skills", "key skills",
		"core competencies", "competencies", "expertise", "areas of expertise",
		"proficiencies", "technical proficiencies", "technologies",
		"skills and abilities",
	},
	model.SectionProjects: {
		"projects", "key projects", "personal projects", "academic projects",
		"portfolio",
	},
	model.SectionCertifications: {
		"certifications", "certification", "certificates", "licenses",
		"licenses and certifications", "credentials",
	},
	model.SectionLanguages: {
		"languages", "language skills",
	},
	model.SectionAchievements: {
		"achievements", "accomplishments", "awards", "honors",
		"awards and honors", "honors and awards",
	},
	model.SectionInterests: {
		"interests", "hobbies", "activities", "hobbies and interests",
	},
	model.SectionReferences: {
		"references",
	},
	model.SectionVolunteer: {
		"volunteer", "volunteer experience", "volunteering", "community service",
	},
	model.SectionPublications: {
		"publications", "research", "presentations",
	},
}

// Denylist holds short common words that must never be treated as headers
var Denylist = []string{
	"resume", "cv", "curriculum vitae", "name", "page", "email", "phone",
	"address", "street", "city", "state", "zip",
}

// MajorHeaders is the short canonical list searched when peak picking finds
// too few boundaries.
var MajorHeaders = []string{"EXPERIENCE", "EDUCATION", "SKILLS", "SUMMARY", "PROJECTS"}

// EmbeddedHeaders are the upper-case headers that OCR commonly glues to
// neighbouring text. Multi-word forms come first.
var EmbeddedHeaders = []string{
	"PROFESSIONAL SUMMARY", "PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE",
	"TECHNICAL SKILLS", "WORK HISTORY", "SUMMARY", "PROFILE", "OBJECTIVE",
	"EXPERIENCE", "EMPLOYMENT", "EDUCATION", "SKILLS", "PROJECTS",
	"ACCOMPLISHMENTS", "ACHIEVEMENTS", "CERTIFICATIONS", "CERTIFICATES",
	"LANGUAGES", "INTERESTS", "REFERENCES", "AWARDS", "PUBLICATIONS",
	"VOLUNTEER",
}

// Months are the month names and abbreviations found in date ranges
var Months = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
	"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Sept",
	"Oct", "Nov", "Dec",
}

// JobTitles are upper-case words that mark a job title line
var JobTitles = []string{
	"MANAGER", "DIRECTOR", "ENGINEER", "SPECIALIST", "ANALYST", "DEVELOPER",
	"ASSISTANT", "COORDINATOR", "CONSULTANT", "ADMINISTRATOR",
	"REPRESENTATIVE", "SUPERVISOR", "LEAD", "HEAD", "CHIEF", "OFFICER",
	"INTERN", "ASSOCIATE", "TECHNICIAN", "DESIGNER", "ARCHITECT",
}

var (
	termIndex   map[string]model.SectionType
	termList    []string
	denySet     map[string]bool
	termPattern map[string]*regexp.Regexp
)

func init() {
	termIndex = make(map[string]model.SectionType)
	termPattern = make(map[string]*regexp.Regexp)
	for _, st := range model.SectionTypes {
		for _, term := range Headers[st] {
			termIndex[term] = st
			termList = append(termList, term)
			termPattern[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	// Longest first so multi-word terms win over their parts
	sort.SliceStable(termList, func(i, j int) bool {
		return len(termList[i]) > len(termList[j])
	})

	denySet = make(map[string]bool, len(Denylist))
	for _, w := range Denylist {
		denySet[w] = true
	}
}

// Canonical reduces a candidate header line to its lookup form: bullets,
// surrounding whitespace and a trailing colon removed, inner whitespace
// collapsed, lowercased.
func Canonical(line string) string {
	line = textutil.StripBullet(line)
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	return strings.ToLower(strings.Join(strings.Fields(line), " "))
}

// Lookup returns the section type for an exact (case-insensitive) header
// term.
func Lookup(line string) (model.SectionType, bool) {
	c := Canonical(line)
	if denySet[c] {
		return model.SectionUnknown, false
	}
	st, ok := termIndex[c]
	return st, ok
}

// IsHeaderTerm returns true if the whole line is a header term
func IsHeaderTerm(line string) bool {
	_, ok := Lookup(line)
	return ok
}

// IsDenied returns true if the line is on the header denylist
func IsDenied(line string) bool {
	return denySet[Canonical(line)]
}

// Terms returns every header term, longest first
func Terms() []string {
	out := make([]string, len(termList))
	copy(out, termList)
	return out
}

// FindWord returns the first (longest) header term that occurs in line as a
// whole word, and its type.
func FindWord(line string) (string, model.SectionType, bool) {
	lower := strings.ToLower(line)
	for _, term := range termList {
		if termPattern[term].MatchString(lower) {
			return term, termIndex[term], true
		}
	}
	return "", model.SectionUnknown, false
}

// FindSubstring returns the first (longest) header term contained anywhere
// in line, and its type. Terms of three letters or fewer are ignored.
func FindSubstring(line string) (string, model.SectionType, bool) {
	lower := strings.ToLower(line)
	for _, term := range termList {
		if len(term) > 3 && strings.Contains(lower, term) {
			return term, termIndex[term], true
		}
	}
	return "", model.SectionUnknown, false
}

// HasJobTitle returns true if the line contains a job title word
func HasJobTitle(line string) bool {
	for _, w := range strings.FieldsFunc(strings.ToUpper(line), isWordSeparator) {
		for _, title := range JobTitles {
			if w == title {
				return true
			}
		}
	}
	return false
}

func isWordSeparator(r rune) bool {
	return !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// Alternation builds a non-capturing regular expression alternation of the
// given words, longest first, with regex metacharacters escaped.
func Alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}
