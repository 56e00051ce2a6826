package rules

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine()
	e.MustRegister("upper_abc", `abc`, "ABC", "uppercase abc", CategoryGeneral)
	e.MustRegister("dash_date", `(\d{4})-(\d{4})`, "${1} - ${2}", "space year ranges", CategoryDates)
	e.MustRegister("abc_to_x", `ABC`, "X", "collapse ABC", CategoryGeneral)
	return e
}

func TestRegisterDuplicate(t *testing.T) {
	e := newTestEngine(t)

	err := e.Register("upper_abc", `x`, "y", "dup", CategoryHeaders)
	if !errors.Is(err, ErrDuplicateRule) {
		t.Fatalf("expected ErrDuplicateRule, got %v", err)
	}
	if e.Len() != 3 {
		t.Errorf("expected 3 rules, got %d", e.Len())
	}
}

func TestRegisterBadPattern(t *testing.T) {
	e := NewEngine()
	if err := e.Register("bad", `(unclosed`, "", "", CategoryGeneral); err == nil {
		t.Fatal("expected compile error")
	}
	if e.Len() != 0 {
		t.Errorf("failed registration must not add a rule")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	e := newTestEngine(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate rule")
		}
	}()
	e.MustRegister("upper_abc", `x`, "y", "", CategoryGeneral)
}

func TestApplyCountsWithoutMatch(t *testing.T) {
	e := newTestEngine(t)

	out, err := e.Apply("nothing here", "upper_abc")
	if err != nil {
		t.Fatal(err)
	}
	if out != "nothing here" {
		t.Errorf("unexpected output %q", out)
	}

	out, _ = e.Apply("xabcx", "upper_abc")
	if out != "xABCx" {
		t.Errorf("Apply() = %q, want xABCx", out)
	}

	stats, ok := e.Report().Rule("upper_abc")
	if !ok {
		t.Fatal("rule missing from report")
	}
	if stats.Count != 2 {
		t.Errorf("expected 2 invocations, got %d", stats.Count)
	}
}

func TestApplyUnknownRule(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Apply("text", "missing")
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	if out != "text" {
		t.Errorf("text must be returned unchanged, got %q", out)
	}
}

func TestApplyCategoryChainsInRegistrationOrder(t *testing.T) {
	e := newTestEngine(t)

	out := e.ApplyCategory("abc 2019-2021", CategoryGeneral)
	if out != "X 2019-2021" {
		t.Errorf("ApplyCategory() = %q, want %q", out, "X 2019-2021")
	}

	r := e.Report()
	if s, _ := r.Rule("dash_date"); s.Count != 0 {
		t.Errorf("rule outside the category ran %d times", s.Count)
	}
}

func TestApplyAll(t *testing.T) {
	e := newTestEngine(t)

	out := e.ApplyAll("abc 2019-2021")
	if out != "X 2019 - 2021" {
		t.Errorf("ApplyAll() = %q", out)
	}
	if r := e.Report(); r.TotalApplications != 3 {
		t.Errorf("expected 3 applications, got %d", r.TotalApplications)
	}

	e.Reset()
	out = e.ApplyAll("abc 2019-2021", CategoryDates)
	if out != "abc 2019 - 2021" {
		t.Errorf("ApplyAll(dates) = %q", out)
	}
	if r := e.Report(); r.TotalApplications != 1 {
		t.Errorf("expected 1 application after reset, got %d", r.TotalApplications)
	}
}

func TestReportAggregates(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyAll("abc")
	e.ApplyAll("abc")

	r := e.Report()
	if len(r.Rules) != 3 {
		t.Fatalf("expected 3 rule stats, got %d", len(r.Rules))
	}
	if r.Rules[0].Name != "upper_abc" || r.Rules[2].Name != "abc_to_x" {
		t.Errorf("rules not in registration order: %+v", r.Rules)
	}

	var general CategoryStats
	for _, c := range r.Categories {
		if c.Category == "general" {
			general = c
		}
	}
	if general.Rules != 2 || general.Count != 4 {
		t.Errorf("unexpected general aggregate %+v", general)
	}
	if r.Categories[0].Category != "dates" {
		t.Errorf("categories not in pipeline order: %+v", r.Categories)
	}

	// Reading the report must not change it
	if again := e.Report(); again.TotalApplications != r.TotalApplications {
		t.Error("Report() has side effects")
	}

	if !strings.Contains(r.String(), "upper_abc") {
		t.Error("String() does not list rules")
	}
	if len(r.Slowest(1)) != 1 {
		t.Error("Slowest(1) should return one rule")
	}
}

func TestCloneHasFreshCounters(t *testing.T) {
	e := newTestEngine(t)
	e.ApplyAll("abc")

	c := e.Clone()
	if c.Report().TotalApplications != 0 {
		t.Error("clone should start with zero counters")
	}
	if c.Len() != e.Len() {
		t.Error("clone should have the same rules")
	}

	c.ApplyAll("abc")
	if e.Report().TotalApplications != 3 {
		t.Error("clone counters leaked into the original")
	}
}

func TestReportMerge(t *testing.T) {
	a := newTestEngine(t)
	b := a.Clone()
	a.ApplyAll("abc")
	b.ApplyAll("abc")

	m := a.Report().Merge(b.Report())
	if m.TotalApplications != 6 {
		t.Errorf("expected 6 merged applications, got %d", m.TotalApplications)
	}
	if s, _ := m.Rule("upper_abc"); s.Count != 2 {
		t.Errorf("expected merged count 2, got %d", s.Count)
	}
}

func TestConcurrentApply(t *testing.T) {
	e := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.ApplyAll("abc 2019-2021")
		}()
	}
	wg.Wait()

	if r := e.Report(); r.TotalApplications != 60 {
		t.Errorf("expected 60 applications, got %d", r.TotalApplications)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range PipelineOrder {
		parsed, err := ParseCategory(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), parsed, err)
		}
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("expected error")
	}
}
