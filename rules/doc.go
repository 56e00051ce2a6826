// Package rules provides a registry of named text-transformation rules
// grouped into categories.
//
// # Engine
//
// An [Engine] stores rules in registration order and applies them one at a
// time, by category, or all at once:
//
//	e := rules.NewEngine()
//	e.MustRegister("email_whitespace_at", `(\w+)\s*@\s*(\w+)`, "${1}@${2}",
//	    "Whitespace around @", rules.CategoryContact)
//	out := e.ApplyAll(text, rules.PipelineOrder...)
//
// Registering a name twice fails with [ErrDuplicateRule].
//
// # Counters
//
// Every application is counted and timed, matched or not. [Engine.Report]
// returns per-rule statistics, per-category aggregates and totals. Use
// [Engine.Clone] to give each document its own counters.
//
// # Standard Library
//
// [Standard] returns an engine loaded with rules that repair common OCR
// damage in resumes: headers glued to prose, broken date ranges, place names
// glued to verbs, malformed email addresses and phone numbers.
package rules
