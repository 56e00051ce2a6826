package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionType is the semantic type of a resume section
type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionContact
	SectionSummary
	SectionExperience
	SectionEducation
	SectionSkills
	SectionProjects
	SectionCertifications
	SectionLanguages
	SectionAchievements
	SectionInterests
	SectionReferences
	SectionVolunteer
	SectionPublications
)

// SectionTypes lists every known type except SectionUnknown, in a stable order
var SectionTypes = []SectionType{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionAchievements,
	SectionInterests,
	SectionReferences,
	SectionVolunteer,
	SectionPublications,
}

// String returns the lowercase name of the section type
func (t SectionType) String() string {
	switch t {
	case SectionContact:
		return "contact"
	case SectionSummary:
		return "summary"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionSkills:
		return "skills"
	case SectionProjects:
		return "projects"
	case SectionCertifications:
		return "certifications"
	case SectionLanguages:
		return "languages"
	case SectionAchievements:
		return "achievements"
	case SectionInterests:
		return "interests"
	case SectionReferences:
		return "references"
	case SectionVolunteer:
		return "volunteer"
	case SectionPublications:
		return "publications"
	default:
		return "unknown"
	}
}

// Key returns the section key used in extraction results (e.g. "SKILLS")
func (t SectionType) Key() string {
	return strings.ToUpper(t.String())
}

// DisplayName returns a human readable name (e.g. "Experience")
func (t SectionType) DisplayName() string {
	return cases.Title(language.English).String(t.String())
}

// MarshalText implements encoding.TextMarshaler
func (t SectionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *SectionType) UnmarshalText(data []byte) error {
	parsed, err := ParseSectionType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseSectionType converts a name such as "experience" or "SKILLS" to a
// SectionType.
func ParseSectionType(name string) (SectionType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "unknown" {
		return SectionUnknown, nil
	}
	for _, t := range SectionTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return SectionUnknown, fmt.Errorf("unknown section type %q", name)
}

// Section is one classified segment of a resume
type Section struct {
	// Key is unique within a document (e.g. "EXPERIENCE", "SKILLS_1")
	Key string `json:"key" yaml:"key"`

	// Type is the inferred semantic type
	Type SectionType `json:"type" yaml:"type"`

	// Confidence is in [0, 1]
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Content is the section body without its header line
	Content string `json:"content" yaml:"content"`

	// OriginalHeader is the header line as it appeared in the text
	// (empty for the implicit lead section)
	OriginalHeader string `json:"original_header" yaml:"original_header"`

	// StartLine and EndLine delimit the section in the normalized text
	// (EndLine is exclusive)
	StartLine int `json:"start_line" yaml:"start_line"`
	EndLine   int `json:"end_line" yaml:"end_line"`

	// Contact holds the details found in a contact section
	Contact *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// Contact is the structured contact information of a resume. Fields that
// were not found are empty.
type Contact struct {
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// IsEmpty returns true if no contact detail was found
func (c Contact) IsEmpty() bool {
	return c == Contact{}
}

// LowConfidence returns true if the section should be flagged for review
func (s Section) LowConfidence(threshold float64) bool {
	return s.Confidence < threshold
}
