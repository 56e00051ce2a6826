// Package vitae splits noisy resume text into classified sections.
//
// Text comes from OCR or a PDF text layer, optionally with positioned
// blocks. The pipeline reorders blocks into reading order, normalizes the
// text (merged words, broken dates, email spacing, duplicate headers),
// scores every line as a possible section header, cuts the text at the
// best-scoring lines and classifies each piece.
//
// Basic usage:
//
//	sections := vitae.ExtractSections(text)
//	if s, ok := sections["EXPERIENCE"]; ok {
//	    fmt.Println(s.Confidence, s.Content)
//	}
//
// With options:
//
//	res := vitae.New().
//	    WithFormatHints(false).
//	    WithLogger(slog.Default()).
//	    Extract(text, blocks)
//	fmt.Println(res.Strategy, res.Metrics.Rules.TotalApplications)
//
// Data quality problems never produce errors. They show up as low
// confidence or coarser sections, which callers should treat as a signal
// for review.
package vitae

import (
	"github.com/tsawler/vitae/classify"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/normalize"
)

// Normalize cleans raw text with the standard rules. Calls share no state.
func Normalize(raw string) string {
	return normalize.Normalize(raw)
}

// ExtractSections runs the default pipeline and returns the sections by key.
// Blocks, when given, are reordered into reading order and used instead of
// text.
func ExtractSections(text string, blocks ...model.TextBlock) map[string]model.Section {
	return New().Extract(text, blocks).Sections
}

// ClassifySection assigns a type and confidence to one section. isFirst
// enables the contact prior for the opening section of a document.
func ClassifySection(header, content string, isFirst bool) (model.SectionType, float64) {
	return classify.New().Classify(header, content, isFirst)
}
