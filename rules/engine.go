package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"
)

var (
	// ErrDuplicateRule is returned when a rule name is registered twice
	ErrDuplicateRule = errors.New("duplicate rule name")

	// ErrUnknownRule is returned when applying a rule that was never registered
	ErrUnknownRule = errors.New("unknown rule")
)

// Rule is a named text transformation. Rules are immutable once registered.
type Rule struct {
	// Name uniquely identifies the rule within an engine
	Name string

	// Category determines when the rule runs in the normalization pipeline
	Category Category

	// Pattern is the compiled match expression
	Pattern *regexp.Regexp

	// Replacement is the expansion template (${1} refers to the first group)
	Replacement string

	// Description explains what the rule repairs
	Description string
}

// counter holds the invocation statistics of one rule
type counter struct {
	count int
	total time.Duration
}

// Engine is a registry of rules that applies them in a controlled order and
// records how often and how long each one ran. An Engine is safe for
// concurrent use; use Clone to give each document its own counters.
type Engine struct {
	mu       sync.Mutex
	rules    []*Rule
	byName   map[string]int
	counters []counter
}

// NewEngine creates an empty engine
func NewEngine() *Engine {
	return &Engine{
		byName: make(map[string]int),
	}
}

// Register compiles pattern and adds a rule. It fails if name is already
// registered or the pattern does not compile.
func (e *Engine) Register(name, pattern, replacement, description string, category Category) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling rule %q: %w", name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}

	e.byName[name] = len(e.rules)
	e.rules = append(e.rules, &Rule{
		Name:        name,
		Category:    category,
		Pattern:     re,
		Replacement: replacement,
		Description: description,
	})
	e.counters = append(e.counters, counter{})
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// building rule sets at construction time.
func (e *Engine) MustRegister(name, pattern, replacement, description string, category Category) {
	if err := e.Register(name, pattern, replacement, description, category); err != nil {
		panic(err)
	}
}

// Apply runs a single rule over text. The attempt is counted and timed
// whether or not the pattern matched.
func (e *Engine) Apply(text, name string) (string, error) {
	e.mu.Lock()
	idx, ok := e.byName[name]
	e.mu.Unlock()

	if !ok {
		return text, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return e.applyIndex(text, idx), nil
}

// ApplyCategory runs every rule of the category in registration order, each
// rule receiving the previous rule's output.
func (e *Engine) ApplyCategory(text string, category Category) string {
	for _, idx := range e.indices(&category) {
		text = e.applyIndex(text, idx)
	}
	return text
}

// ApplyAll runs the given categories in the given order. With no categories
// every rule runs in registration order, regardless of category.
func (e *Engine) ApplyAll(text string, categories ...Category) string {
	if len(categories) == 0 {
		for _, idx := range e.indices(nil) {
			text = e.applyIndex(text, idx)
		}
		return text
	}

	for _, c := range categories {
		text = e.ApplyCategory(text, c)
	}
	return text
}

// applyIndex performs one substitution and records its cost
func (e *Engine) applyIndex(text string, idx int) string {
	e.mu.Lock()
	rule := e.rules[idx]
	e.mu.Unlock()

	start := time.Now()
	out := rule.Pattern.ReplaceAllString(text, rule.Replacement)
	elapsed := time.Since(start)

	e.mu.Lock()
	e.counters[idx].count++
	e.counters[idx].total += elapsed
	e.mu.Unlock()

	return out
}

// indices returns rule positions in registration order, optionally filtered
// by category.
func (e *Engine) indices(category *Category) []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]int, 0, len(e.rules))
	for i, r := range e.rules {
		if category == nil || r.Category == *category {
			out = append(out, i)
		}
	}
	return out
}

// Rules returns a copy of the registered rules in registration order
func (e *Engine) Rules() []Rule {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Rule, len(e.rules))
	for i, r := range e.rules {
		out[i] = *r
	}
	return out
}

// Len returns the number of registered rules
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.rules)
}

// Reset zeroes every counter
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.counters {
		e.counters[i] = counter{}
	}
}

// Clone returns an engine with the same rules and fresh counters. Rules are
// shared, not copied, since they never change after registration.
func (e *Engine) Clone() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := &Engine{
		rules:    make([]*Rule, len(e.rules)),
		byName:   make(map[string]int, len(e.byName)),
		counters: make([]counter, len(e.rules)),
	}
	copy(c.rules, e.rules)
	for name, idx := range e.byName {
		c.byName[name] = idx
	}
	return c
}
