package rules

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RuleStats holds the counters of one rule
type RuleStats struct {
	Name     string        `json:"name" yaml:"name"`
	Category string        `json:"category" yaml:"category"`
	Count    int           `json:"count" yaml:"count"`
	Total    time.Duration `json:"total_ns" yaml:"total_ns"`
}

// Average returns the mean time per invocation
func (s RuleStats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// CategoryStats aggregates the counters of every rule in a category
type CategoryStats struct {
	Category string        `json:"category" yaml:"category"`
	Rules    int           `json:"rules" yaml:"rules"`
	Count    int           `json:"count" yaml:"count"`
	Total    time.Duration `json:"total_ns" yaml:"total_ns"`
}

// Report is a snapshot of an engine's counters
type Report struct {
	// Rules holds per-rule statistics in registration order
	Rules []RuleStats `json:"rules" yaml:"rules"`

	// Categories holds aggregates in pipeline order
	Categories []CategoryStats `json:"categories" yaml:"categories"`

	// TotalApplications is the sum of all rule invocations
	TotalApplications int `json:"total_applications" yaml:"total_applications"`

	// TotalTime is the sum of all rule timings
	TotalTime time.Duration `json:"total_time_ns" yaml:"total_time_ns"`
}

// Report returns a snapshot of the counters. It has no side effects.
func (e *Engine) Report() Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := Report{
		Rules: make([]RuleStats, len(e.rules)),
	}

	byCategory := make(map[Category]*CategoryStats)
	for i, rule := range e.rules {
		c := e.counters[i]
		r.Rules[i] = RuleStats{
			Name:     rule.Name,
			Category: rule.Category.String(),
			Count:    c.count,
			Total:    c.total,
		}
		r.TotalApplications += c.count
		r.TotalTime += c.total

		agg, ok := byCategory[rule.Category]
		if !ok {
			agg = &CategoryStats{Category: rule.Category.String()}
			byCategory[rule.Category] = agg
		}
		agg.Rules++
		agg.Count += c.count
		agg.Total += c.total
	}

	for _, c := range PipelineOrder {
		if agg, ok := byCategory[c]; ok {
			r.Categories = append(r.Categories, *agg)
		}
	}
	return r
}

// Rule returns the statistics of a named rule
func (r Report) Rule(name string) (RuleStats, bool) {
	for _, s := range r.Rules {
		if s.Name == name {
			return s, true
		}
	}
	return RuleStats{}, false
}

// Slowest returns up to n rules with the highest cumulative time
func (r Report) Slowest(n int) []RuleStats {
	sorted := make([]RuleStats, len(r.Rules))
	copy(sorted, r.Rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Merge adds the counters of other into r. Rules and categories are matched
// by name; unmatched entries are appended.
func (r Report) Merge(other Report) Report {
	out := Report{
		Rules:             append([]RuleStats(nil), r.Rules...),
		Categories:        append([]CategoryStats(nil), r.Categories...),
		TotalApplications: r.TotalApplications + other.TotalApplications,
		TotalTime:         r.TotalTime + other.TotalTime,
	}

	for _, s := range other.Rules {
		found := false
		for i := range out.Rules {
			if out.Rules[i].Name == s.Name {
				out.Rules[i].Count += s.Count
				out.Rules[i].Total += s.Total
				found = true
				break
			}
		}
		if !found {
			out.Rules = append(out.Rules, s)
		}
	}

	for _, c := range other.Categories {
		found := false
		for i := range out.Categories {
			if out.Categories[i].Category == c.Category {
				out.Categories[i].Count += c.Count
				out.Categories[i].Total += c.Total
				found = true
				break
			}
		}
		if !found {
			out.Categories = append(out.Categories, c)
		}
	}
	return out
}

// String renders the report as a plain text table
func (r Report) String() string {
	var sb strings.Builder

	sb.WriteString("Rule performance\n")
	fmt.Fprintf(&sb, "Total applications: %d\n", r.TotalApplications)
	fmt.Fprintf(&sb, "Total time: %s\n", r.TotalTime)

	sb.WriteString("\nBy category:\n")
	for _, c := range r.Categories {
		fmt.Fprintf(&sb, "  %-14s rules=%-3d count=%-6d time=%s\n", c.Category, c.Rules, c.Count, c.Total)
	}

	sb.WriteString("\nSlowest rules:\n")
	for _, s := range r.Slowest(10) {
		fmt.Fprintf(&sb, "  %-32s %-14s count=%-6d avg=%s\n", s.Name, s.Category, s.Count, s.Average())
	}

	return sb.String()
}
