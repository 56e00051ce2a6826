package model

import (
	"encoding/json"
	"math"
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBox(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)
	if bbox.X != 10 || bbox.Y != 20 || bbox.Width != 100 || bbox.Height != 50 {
		t.Errorf("NewBBox() = %+v, want {10, 20, 100, 50}", bbox)
	}
	if bbox.Right() != 110 || bbox.Bottom() != 70 {
		t.Errorf("Right/Bottom = %v/%v, want 110/70", bbox.Right(), bbox.Bottom())
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 5, 10, 10)

	u := a.Union(b)
	want := BBox{0, 0, 30, 15}
	if u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}

	if got := (BBox{}).Union(b); got != b {
		t.Errorf("zero Union() = %+v, want %+v", got, b)
	}
}

func TestBBoxVerticalOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want float64
	}{
		{"identical", BBox{0, 0, 10, 10}, BBox{50, 0, 10, 10}, 1},
		{"half", BBox{0, 0, 10, 10}, BBox{50, 5, 10, 10}, 0.5},
		{"disjoint", BBox{0, 0, 10, 10}, BBox{0, 20, 10, 10}, 0},
		{"touching", BBox{0, 0, 10, 10}, BBox{0, 10, 10, 10}, 0},
		{"shorter contained", BBox{0, 0, 10, 20}, BBox{0, 5, 10, 5}, 1},
		{"zero height", BBox{0, 0, 10, 0}, BBox{0, 0, 10, 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.VerticalOverlap(tt.b)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("VerticalOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxHorizontalGap(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(15, 0, 10, 10)
	if gap := a.HorizontalGap(b); gap != 5 {
		t.Errorf("HorizontalGap() = %v, want 5", gap)
	}
}

// ============================================================================
// TextBlock Tests
// ============================================================================

func TestTextBlockGeometry(t *testing.T) {
	b := TextBlock{Text: "SKILLS", X0: 10, Y0: 100, Width: 40, Height: 12}

	if b.X1() != 50 || b.Y1() != 112 {
		t.Errorf("X1/Y1 = %v/%v, want 50/112", b.X1(), b.Y1())
	}
	if !b.HasGeometry() {
		t.Error("expected block to have geometry")
	}
	if (TextBlock{Text: "x"}).HasGeometry() {
		t.Error("zero block should not have geometry")
	}
}

func TestBlocksFromText(t *testing.T) {
	blocks := BlocksFromText("JOHN SMITH\r\n\nSKILLS")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "JOHN SMITH" || blocks[1].Text != "" || blocks[2].Text != "SKILLS" {
		t.Errorf("unexpected blocks: %+v", blocks)
	}
	if blocks[2].HasGeometry() {
		t.Error("synthesized blocks must have zero geometry")
	}

	if BlocksFromText("") != nil {
		t.Error("expected nil for empty text")
	}
}

// ============================================================================
// SectionType Tests
// ============================================================================

func TestSectionTypeNames(t *testing.T) {
	for _, st := range SectionTypes {
		parsed, err := ParseSectionType(st.Key())
		if err != nil {
			t.Fatalf("ParseSectionType(%q): %v", st.Key(), err)
		}
		if parsed != st {
			t.Errorf("round trip of %v gave %v", st, parsed)
		}
	}

	if SectionExperience.DisplayName() != "Experience" {
		t.Errorf("DisplayName() = %q", SectionExperience.DisplayName())
	}
	if SectionUnknown.Key() != "UNKNOWN" {
		t.Errorf("Key() = %q", SectionUnknown.Key())
	}

	if _, err := ParseSectionType("hobbit"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestSectionJSON(t *testing.T) {
	s := Section{Key: "SKILLS", Type: SectionSkills, Confidence: 0.9, Content: "Go"}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	var back Section
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Type != SectionSkills || back.Key != "SKILLS" {
		t.Errorf("unexpected decoded section: %+v", back)
	}
}
