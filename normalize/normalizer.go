package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/vitae/rules"
)

// Config controls the structural passes that run after the rule categories
type Config struct {
	// Categories are the rule categories to apply, in order
	// (default: rules.PipelineOrder)
	Categories []rules.Category

	// JoinBrokenLines joins lines broken in the middle of a sentence
	// (default: true)
	JoinBrokenLines bool

	// SplitMergedWords enables splitting of CamelCase words glued by OCR
	// (default: true)
	SplitMergedWords bool

	// SpaceHeaders surrounds standalone header lines with blank lines
	// (default: true)
	SpaceHeaders bool

	// DemoteDuplicates rewrites repeated headers as sub-bullets
	// (default: true)
	DemoteDuplicates bool
}

// DefaultConfig returns the configuration used by Normalize
func DefaultConfig() Config {
	return Config{
		Categories:       rules.PipelineOrder,
		JoinBrokenLines:  true,
		SplitMergedWords: true,
		SpaceHeaders:     true,
		DemoteDuplicates: true,
	}
}

// Normalizer turns raw extracted text into canonical, linearized text
type Normalizer struct {
	engine *rules.Engine
	config Config
}

// New creates a normalizer that applies rules from engine. A nil engine
// gets the standard rule library.
func New(engine *rules.Engine) *Normalizer {
	return NewWithConfig(engine, DefaultConfig())
}

// NewWithConfig creates a normalizer with custom configuration
func NewWithConfig(engine *rules.Engine, config Config) *Normalizer {
	if engine == nil {
		engine = rules.Standard()
	}
	if config.Categories == nil {
		config.Categories = rules.PipelineOrder
	}
	return &Normalizer{
		engine: engine,
		config: config,
	}
}

// Engine returns the rule engine, for reading its counters
func (n *Normalizer) Engine() *rules.Engine {
	return n.engine
}

// Normalize runs the full pipeline. It never fails: patterns that do not
// match leave the text unchanged.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	// Step 1: Unicode and line-ending cleanup
	text := prepare(raw)

	// Step 2: Rule categories in pipeline order
	text = n.engine.ApplyAll(text, n.config.Categories...)

	// Step 3: Broken lines, after headers have been split onto their own
	// lines and date ranges rejoined
	if n.config.JoinBrokenLines {
		text = JoinBrokenLines(text)
	}

	// Step 4: Merged words, after dates so ranges are already canonical
	if n.config.SplitMergedWords {
		text = SplitMergedWords(text)
	}

	// Step 5: Header spacing must precede demotion
	if n.config.SpaceHeaders {
		text = SpaceHeaders(text)
	}

	// Step 6: Duplicate headers
	if n.config.DemoteDuplicates {
		text = DemoteDuplicateHeaders(text)
	}

	// Step 7: Whitespace
	return CanonicalWhitespace(text)
}

// Normalize normalizes raw text with a fresh standard rule engine
func Normalize(raw string) string {
	return New(nil).Normalize(raw)
}

// prepare applies NFKC (ligatures, full-width forms, non-breaking spaces),
// unifies line endings and canonicalizes whitespace so line-anchored rules
// see the same input on every run.
func prepare(raw string) string {
	text, _, err := transform.String(norm.NFKC, raw)
	if err != nil {
		text = raw
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	return CanonicalWhitespace(text)
}

var (
	multiSpacePattern    = regexp.MustCompile(`[ \t]{2,}`)
	trailingSpacePattern = regexp.MustCompile(`(?m)[ \t]+$`)
	leadingSpacePattern  = regexp.MustCompile(`(?m)^[ \t]+`)
	blankRunPattern      = regexp.MustCompile(`\n{3,}`)
)

// CanonicalWhitespace collapses runs of spaces, trims every line, limits
// blank runs to a single blank line and trims the document.
func CanonicalWhitespace(text string) string {
	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = trailingSpacePattern.ReplaceAllString(text, "")
	text = leadingSpacePattern.ReplaceAllString(text, "")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
