package vitae

import (
	"github.com/tsawler/vitae/model"
)

var (
	// importantSections are expected in every resume
	importantSections = []model.SectionType{
		model.SectionContact,
		model.SectionExperience,
		model.SectionEducation,
		model.SectionSkills,
	}

	// idealOrder is the conventional order of resume sections. Contact
	// details are not ranked.
	idealOrder = []model.SectionType{
		model.SectionSummary,
		model.SectionExperience,
		model.SectionEducation,
		model.SectionSkills,
		model.SectionProjects,
		model.SectionCertifications,
		model.SectionAchievements,
		model.SectionPublications,
		model.SectionLanguages,
		model.SectionVolunteer,
		model.SectionInterests,
		model.SectionReferences,
	}
)

// Structure summarizes the shape of an extracted resume
type Structure struct {
	// Counts is the number of sections of each type, by type name
	Counts map[string]int `json:"counts" yaml:"counts"`

	// Missing lists the important sections (contact, experience, education,
	// skills) that were not found
	Missing []model.SectionType `json:"missing" yaml:"missing"`

	// Order is the section types in document order
	Order []model.SectionType `json:"order" yaml:"order"`

	// OrderScore is 1 when the ranked sections sit exactly at their
	// conventional positions and falls toward 0 as they drift away
	OrderScore float64 `json:"order_score" yaml:"order_score"`
}

// Structure analyzes the section types of the result. The order score
// averages, over all sections, one minus the distance between a section's
// position and its conventional position, scaled by the longer of the two
// orders. Sections without a conventional position add nothing.
func (r *Result) Structure() Structure {
	s := Structure{
		Counts:  make(map[string]int),
		Missing: []model.SectionType{},
		Order:   make([]model.SectionType, 0, len(r.Order)),
	}

	found := make(map[model.SectionType]bool)
	for _, section := range r.Ordered() {
		s.Counts[section.Type.String()]++
		s.Order = append(s.Order, section.Type)
		found[section.Type] = true
	}

	for _, st := range importantSections {
		if !found[st] {
			s.Missing = append(s.Missing, st)
		}
	}

	if len(s.Order) == 0 {
		return s
	}

	scale := float64(max(len(idealOrder), len(s.Order)))
	total := 0.0
	for i, st := range s.Order {
		pos := idealPosition(st)
		if pos < 0 {
			continue
		}
		diff := i - pos
		if diff < 0 {
			diff = -diff
		}
		total += 1 - float64(diff)/scale
	}
	s.OrderScore = total / float64(len(s.Order))

	return s
}

// idealPosition returns the conventional index of st, or -1
func idealPosition(st model.SectionType) int {
	for i, t := range idealOrder {
		if t == st {
			return i
		}
	}
	return -1
}
