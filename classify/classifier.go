package classify

import (
	"math"
	"strings"

	"github.com/tsawler/vitae/lexicon"
	"github.com/tsawler/vitae/model"
)

// Config holds confidence levels and combination rules for classification
type Config struct {
	// ExactConfidence is returned for a header that is a vocabulary term
	// Default: 0.9
	ExactConfidence float64

	// WordConfidence is returned for a header containing a vocabulary term
	// as a whole word
	// Default: 0.7
	WordConfidence float64

	// SubstringConfidence is returned for a header containing a vocabulary
	// term anywhere
	// Default: 0.6
	SubstringConfidence float64

	// EvidenceThreshold is the header confidence below which content
	// evidence is gathered
	// Default: 0.8
	EvidenceThreshold float64

	// EvidenceScale divides the best content score to give a confidence
	// Default: 3.0
	EvidenceScale float64

	// AgreementBoost is added when header and content agree, up to
	// AgreementCap
	// Default: 0.15 and 0.95
	AgreementBoost float64
	AgreementCap   float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		ExactConfidence:     0.9,
		WordConfidence:      0.7,
		SubstringConfidence: 0.6,
		EvidenceThreshold:   0.8,
		EvidenceScale:       3.0,
		AgreementBoost:      0.15,
		AgreementCap:        0.95,
	}
}

// Classifier assigns a section type and confidence to a header and its
// content. It holds no state between calls.
type Classifier struct {
	config Config
}

// New creates a classifier with default configuration
func New() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewWithConfig creates a classifier with custom configuration
func NewWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify returns the section type and confidence for a section. A
// confident header match is returned as is; otherwise content evidence is
// combined with it. isFirst enables the contact prior for the opening
// section of a document.
func (c *Classifier) Classify(header, content string, isFirst bool) (model.SectionType, float64) {
	headerType, headerConf := c.ClassifyHeader(header)
	if headerConf >= c.config.EvidenceThreshold {
		return headerType, headerConf
	}

	contentType, score := gather(header, content, isFirst).Best()
	contentConf := math.Min(score/c.config.EvidenceScale, 1)

	switch {
	case contentType == model.SectionUnknown || contentConf <= 0:
		return headerType, headerConf
	case contentType == headerType:
		return headerType, math.Min(c.config.AgreementCap, math.Max(headerConf, contentConf)+c.config.AgreementBoost)
	case contentConf > headerConf:
		return contentType, contentConf
	default:
		return headerType, headerConf
	}
}

// ClassifyHeader matches a header against the section vocabulary. Bullets,
// a trailing colon and case are ignored.
func (c *Classifier) ClassifyHeader(header string) (model.SectionType, float64) {
	header = strings.TrimSpace(header)
	if header == "" || lexicon.IsDenied(header) {
		return model.SectionUnknown, 0
	}

	if st, ok := lexicon.Lookup(header); ok {
		return st, c.config.ExactConfidence
	}

	canonical := lexicon.Canonical(header)
	if _, st, ok := lexicon.FindWord(canonical); ok {
		return st, c.config.WordConfidence
	}
	if _, st, ok := lexicon.FindSubstring(canonical); ok {
		return st, c.config.SubstringConfidence
	}
	return model.SectionUnknown, 0
}

// Evidence returns the content score of every section type that has one
func (c *Classifier) Evidence(content string, isFirst bool) Evidence {
	return gather("", content, isFirst)
}
