package scoring

import (
	"reflect"
	"testing"
)

func findBoundaries(s *Scorer, lines []string) Boundaries {
	return s.FindBoundaries(lines, s.Score(lines, nil))
}

func TestFindBoundariesPeaks(t *testing.T) {
	lines := []string{
		"John Smith",
		"john@example.com",
		"",
		"EXPERIENCE",
		"",
		"Acme Corp",
		"• Built things",
		"",
		"EDUCATION",
		"",
		"State University",
	}

	b := findBoundaries(NewScorer(), lines)
	if want := []int{0, 3, 8}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("Indices = %v, want %v", b.Indices, want)
	}
	if b.Strategy != StrategyPeaks {
		t.Errorf("Strategy = %q, want %q", b.Strategy, StrategyPeaks)
	}
}

func TestFindBoundariesDemotedHeaderIsNotABoundary(t *testing.T) {
	lines := []string{"SKILLS", "", "Python, Java", "", "Some text", "", "• SKILLS:", "SQL, C++"}

	b := findBoundaries(NewScorer(), lines)
	if want := []int{0}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("Indices = %v, want %v", b.Indices, want)
	}
	if b.Strategy != StrategyPeaks {
		t.Errorf("no fallback should have contributed, got %q", b.Strategy)
	}
}

func TestFindBoundariesMajorHeaderFallback(t *testing.T) {
	lines := []string{
		"john smith, software engineer with ten years of building systems",
		"and a long history of shipping reliable production services daily",
		"based in the pacific northwest and open to remote opportunities",
		"EXPERIENCE at Acme building distributed systems for many customers",
		"and leading a small team of engineers across three time zones",
		"with weekly demos for stakeholders and customers in many regions",
		"EDUCATION at State University studying computer science and math",
		"with a minor in statistics from the college of natural science",
	}

	b := findBoundaries(NewScorer(), lines)
	if want := []int{0, 3, 6}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("Indices = %v, want %v", b.Indices, want)
	}
	if b.Strategy != "major_headers" {
		t.Errorf("Strategy = %q, want major_headers", b.Strategy)
	}
}

func TestFindBoundariesHierarchy(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"jane@example.com",
		"",
		"EXPERIENCE",
		"",
		"SENIOR ENGINEER",
		"Jan 2019 - Present",
		"• Led platform work",
		"• Shipped features",
		"",
		"SOFTWARE DEVELOPER",
		"2015 - 2018",
		"• Built apps",
	}

	b := findBoundaries(NewScorer(), lines)
	if want := []int{0, 3}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("hierarchy aware: Indices = %v, want %v", b.Indices, want)
	}

	cfg := DefaultConfig()
	cfg.HierarchyAware = false
	b = findBoundaries(NewScorerWithConfig(cfg), lines)
	if want := []int{0, 3, 10}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("flat: Indices = %v, want %v", b.Indices, want)
	}
}

func TestRefineBoundaries(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"WORK HISTORY",
		"Jan 2019 - Present",
		"LEAD DEVELOPER",
		"• Built apps",
		"RESUME",
		"this is a long line that mentions nothing useful at all",
		"EDUCATION",
	}

	got := refineBoundaries(lines, []int{0, 1, 3, 5, 6, 7})
	if want := []int{0, 1, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("refineBoundaries() = %v, want %v", got, want)
	}
}

func TestFindBoundariesEmpty(t *testing.T) {
	b := NewScorer().FindBoundaries(nil, nil)
	if b.Len() != 0 {
		t.Errorf("expected no boundaries, got %v", b.Indices)
	}

	b = findBoundaries(NewScorer(), []string{"just one line"})
	if want := []int{0}; !reflect.DeepEqual(b.Indices, want) {
		t.Errorf("Indices = %v, want %v", b.Indices, want)
	}
}

func TestChangePointStrategy(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "text"
	}
	scores := make([]float64, 12)
	scores[6] = 9

	got := ChangePointStrategy{Window: 3, Sigma: 1.5, MinSeparation: 3}.Find(lines, scores, []int{0})
	if want := []int{6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}

	flat := make([]float64, 12)
	if got := (ChangePointStrategy{Window: 3, Sigma: 1.5, MinSeparation: 3}).Find(lines, flat, []int{0}); got != nil {
		t.Errorf("flat series should have no change points, got %v", got)
	}
}

func TestEvenSegmentStrategy(t *testing.T) {
	strategy := EvenSegmentStrategy{Segments: 4, MinLines: 10, MinSeparation: 3}

	tests := []struct {
		n    int
		want []int
	}{
		{8, nil},
		{20, []int{10}},
		{40, []int{10, 20, 30}},
		{100, []int{25, 50, 75}},
	}

	for _, tt := range tests {
		got := strategy.Find(make([]string, tt.n), nil, []int{0})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("n=%d: Find() = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestBoundariesStrictlyIncreasing(t *testing.T) {
	inputs := [][]string{
		{"SUMMARY", "", "text", "SKILLS", "go", "SKILLS", "rust"},
		make([]string, 45),
	}
	for i := range inputs[1] {
		inputs[1][i] = "plain content line"
	}

	s := NewScorer()
	for _, lines := range inputs {
		b := findBoundaries(s, lines)
		if len(b.Indices) == 0 || b.Indices[0] != 0 {
			t.Fatalf("boundaries must start at 0: %v", b.Indices)
		}
		for i := 1; i < len(b.Indices); i++ {
			if b.Indices[i] <= b.Indices[i-1] {
				t.Errorf("boundaries not strictly increasing: %v", b.Indices)
			}
		}
	}
}
