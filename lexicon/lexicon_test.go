package lexicon

import (
	"regexp"
	"testing"

	"github.com/tsawler/vitae/model"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		line   string
		want   model.SectionType
		wantOK bool
	}{
		{"SKILLS", model.SectionSkills, true},
		{"Work Experience:", model.SectionExperience, true},
		{"  professional   summary ", model.SectionSummary, true},
		{"• EDUCATION", model.SectionEducation, true},
		{"RESUME", model.SectionUnknown, false},
		{"Senior Engineer", model.SectionUnknown, false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDenylist(t *testing.T) {
	for _, w := range []string{"RESUME", "CV", "Page", "Curriculum Vitae:"} {
		if !IsDenied(w) {
			t.Errorf("expected %q to be denied", w)
		}
		if IsHeaderTerm(w) {
			t.Errorf("denied word %q must not be a header", w)
		}
	}
}

func TestFindWordAndSubstring(t *testing.T) {
	term, st, ok := FindWord("Relevant Work Experience Details")
	if !ok || term != "work experience" || st != model.SectionExperience {
		t.Errorf("FindWord() = %q, %v, %v", term, st, ok)
	}

	if _, _, ok := FindWord("OBJECTIVEs with lower requirements."); ok {
		t.Error("fragment must not match as a whole word")
	}

	term, _, ok = FindSubstring("OBJECTIVEs with lower requirements.")
	if !ok || term != "objective" {
		t.Errorf("FindSubstring() = %q, %v", term, ok)
	}
}

func TestHasJobTitle(t *testing.T) {
	if !HasJobTitle("Senior Software Engineer") {
		t.Error("expected job title")
	}
	if HasJobTitle("Engineering degree") {
		t.Error("unexpected job title")
	}
}

func TestPlacesAndTerms(t *testing.T) {
	if !IsPlace("Utah") || !IsPlace("Provo") || IsPlace("Project") {
		t.Error("place lookup mismatch")
	}
	if !IsNamePrefix("Mc") || !IsCamelCaseTerm("JavaScript") {
		t.Error("protected word lookup mismatch")
	}
	if !IsCamelCaseTerm("BigQuery") || !IsTechSuffix("Ops") || IsTechSuffix("History") {
		t.Error("product name lookup mismatch")
	}
}

func TestAlternation(t *testing.T) {
	re := regexp.MustCompile(`^` + Alternation([]string{"Virginia", "West Virginia", "St. Louis"}) + `$`)
	for _, s := range []string{"Virginia", "West Virginia", "St. Louis"} {
		if !re.MatchString(s) {
			t.Errorf("alternation does not match %q", s)
		}
	}
	if re.MatchString("StX Louis") {
		t.Error("metacharacters were not escaped")
	}
}
