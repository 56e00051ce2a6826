package classify

import (
	"math"
	"testing"

	"github.com/tsawler/vitae/model"
)

const experienceContent = "Acme Corp\nSoftware Engineer\nJan 2019 - Present\n• Developed APIs"

func TestClassifyHeader(t *testing.T) {
	c := New()
	tests := []struct {
		header   string
		wantType model.SectionType
		wantConf float64
	}{
		{"EDUCATION", model.SectionEducation, 0.9},
		{"• Skills:", model.SectionSkills, 0.9},
		{"Work Experience", model.SectionExperience, 0.9},
		{"Relevant Coursework and Education", model.SectionEducation, 0.7},
		{"Skillset", model.SectionSkills, 0.6},
		{"RESUME", model.SectionUnknown, 0},
		{"", model.SectionUnknown, 0},
		{"Miscellaneous", model.SectionUnknown, 0},
	}

	for _, tt := range tests {
		gotType, gotConf := c.ClassifyHeader(tt.header)
		if gotType != tt.wantType || gotConf != tt.wantConf {
			t.Errorf("ClassifyHeader(%q) = (%v, %.2f), want (%v, %.2f)",
				tt.header, gotType, gotConf, tt.wantType, tt.wantConf)
		}
	}
}

func TestClassifyExactHeaderSkipsContent(t *testing.T) {
	st, conf := New().Classify("EDUCATION", experienceContent, false)
	if st != model.SectionEducation || conf != 0.9 {
		t.Errorf("Classify() = (%v, %.2f), want (education, 0.90)", st, conf)
	}
}

func TestClassifyFromContent(t *testing.T) {
	st, conf := New().Classify("", experienceContent, false)
	if st != model.SectionExperience {
		t.Errorf("expected experience, got %v", st)
	}
	if conf != 1.0 {
		t.Errorf("expected confidence 1.0, got %.2f", conf)
	}
}

func TestClassifyAgreementBoost(t *testing.T) {
	st, conf := New().Classify("My Education", "Bachelor of Science, State University, GPA 3.8", false)
	if st != model.SectionEducation {
		t.Fatalf("expected education, got %v", st)
	}
	// institution 0.8 + degree 0.8 + academic 0.6, scaled by 3, plus 0.15
	want := (0.8+0.8+0.6)/3 + 0.15
	if math.Abs(conf-want) > 1e-9 {
		t.Errorf("confidence = %.4f, want %.4f", conf, want)
	}
}

func TestClassifyDisagreementHigherWins(t *testing.T) {
	st, conf := New().Classify("Personal Projects Etc", experienceContent, false)
	if st != model.SectionExperience || conf != 1.0 {
		t.Errorf("Classify() = (%v, %.2f), want (experience, 1.00)", st, conf)
	}
}

func TestClassifyContactPrior(t *testing.T) {
	content := "Jane Doe\njane@example.com\n(555) 123-4567"
	c := New()

	st, first := c.Classify("", content, true)
	if st != model.SectionContact {
		t.Fatalf("expected contact for the first section, got %v", st)
	}
	if first != 1.0 {
		t.Errorf("expected full confidence with the prior, got %.2f", first)
	}

	st, later := c.Classify("", content, false)
	if st != model.SectionContact {
		t.Fatalf("expected contact, got %v", st)
	}
	if later >= first {
		t.Errorf("prior should raise confidence: first %.2f, later %.2f", first, later)
	}
}

func TestClassifyUnknown(t *testing.T) {
	st, conf := New().Classify("", "lorem ipsum dolor", false)
	if st != model.SectionUnknown || conf != 0 {
		t.Errorf("Classify() = (%v, %.2f), want (unknown, 0)", st, conf)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := New()
	t1, c1 := c.Classify("Projects", experienceContent, true)
	t2, c2 := c.Classify("Projects", experienceContent, true)
	if t1 != t2 || c1 != c2 {
		t.Error("Classify() should return the same result for the same input")
	}
}

func TestEvidenceBestTieBreak(t *testing.T) {
	ev := Evidence{model.SectionSkills: 1, model.SectionContact: 1}
	if st, score := ev.Best(); st != model.SectionContact || score != 1 {
		t.Errorf("Best() = (%v, %v), want (contact, 1)", st, score)
	}

	if st, score := (Evidence{}).Best(); st != model.SectionUnknown || score != 0 {
		t.Errorf("empty Best() = (%v, %v)", st, score)
	}
}

func TestEvidenceCertificationsYieldToEducation(t *testing.T) {
	c := New()

	ev := c.Evidence("Completed the Scrum course", false)
	if ev[model.SectionCertifications] != 0.5 {
		t.Errorf("expected certifications 0.5, got %v", ev[model.SectionCertifications])
	}

	ev = c.Evidence("Completed coursework at State University", false)
	if _, ok := ev[model.SectionCertifications]; ok {
		t.Errorf("education content should not count toward certifications: %v", ev)
	}
}

func TestLooksLikeName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Jane Doe\njane@example.com", true},
		{"\n  JOHN SMITH", true},
		{"Mary Ann Smith", true},
		{"Jane Q. Doe", true},
		{"Work History", false},
		{"jane doe", false},
		{"Senior software engineer at Acme", false},
	}
	for _, tt := range tests {
		if got := looksLikeName(tt.text); got != tt.want {
			t.Errorf("looksLikeName(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
