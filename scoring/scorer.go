package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
)

// Hint carries the layout formatting of one line, when the text source
// knows it.
type Hint struct {
	FontSize float64 `json:"font_size,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
}

// Config holds configuration for header scoring and boundary detection
type Config struct {
	// Weights is the feature weight table (default: DefaultWeights())
	Weights Weights

	// UseFormatHints enables the font size and bold features
	// Default: true
	UseFormatHints bool

	// HierarchyAware enables the job title penalty and the boundary
	// post-processing that keeps job titles inside experience sections
	// Default: true
	HierarchyAware bool

	// MinFontRatio is the smallest font size ratio (vs body text) that
	// contributes to the score
	// Default: 1.15
	MinFontRatio float64

	// ShortLength and MediumLength are the character limits of the length
	// features
	// Default: 20 and 30
	ShortLength  int
	MediumLength int

	// MaxHeaderWords is the word limit of the casing features
	// Default: 4
	MaxHeaderWords int

	// ProseWords is the word count above which a line is penalized as prose
	// Default: 8
	ProseWords int

	// Threshold is the score a line must exceed to be a boundary
	// Default: 3.0
	Threshold float64

	// Window is the half-width of the local maximum window
	// Default: 5
	Window int

	// MinSeparation is the minimum line distance between boundaries
	// Default: 3
	MinSeparation int

	// Fallbacks run in order when peak picking finds fewer than two
	// boundaries (default: DefaultFallbacks)
	Fallbacks []Strategy
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Weights:        DefaultWeights(),
		UseFormatHints: true,
		HierarchyAware: true,
		MinFontRatio:   1.15,
		ShortLength:    20,
		MediumLength:   30,
		MaxHeaderWords: 4,
		ProseWords:     8,
		Threshold:      3.0,
		Window:         5,
		MinSeparation:  3,
	}
}

// Scorer assigns header likelihood scores to lines and derives section
// boundaries from them.
type Scorer struct {
	config Config
}

// NewScorer creates a scorer with default configuration
func NewScorer() *Scorer {
	return NewScorerWithConfig(DefaultConfig())
}

// NewScorerWithConfig creates a scorer with custom configuration. Nil
// weights and fallbacks get the defaults.
func NewScorerWithConfig(config Config) *Scorer {
	if config.Weights == nil {
		config.Weights = DefaultWeights()
	}
	if config.Fallbacks == nil {
		config.Fallbacks = DefaultFallbacks(config)
	}
	return &Scorer{config: config}
}

// Config returns the scorer configuration
func (s *Scorer) Config() Config {
	return s.config
}

var (
	numberedPattern  = regexp.MustCompile(`^\d+\s*\.|^\(\d+\)`)
	contactPattern   = regexp.MustCompile(`@|http|www|\+\d|\(\d{3}\)|\d{3}-\d{3}-\d{4}`)
	dateRangePattern = regexp.MustCompile(`(?i)\d{4}\s*(?:-|–|to)\s*(?:\d{4}|present|current)`)
	yearPattern      = regexp.MustCompile(`\b\d{4}\b`)
)

// Score returns one header likelihood score per line. Blank and denylisted
// lines score 0. hints may be nil or shorter than lines.
func (s *Scorer) Score(lines []string, hints []Hint) []float64 {
	body := s.bodyFontSize(lines, hints)
	scores := make([]float64, len(lines))
	for i := range lines {
		scores[i] = Total(s.contributions(lines, hints, body, i))
	}
	return scores
}

// Explain returns the features that fired for line i, in evaluation order.
// Their values sum to the line's score.
func (s *Scorer) Explain(lines []string, hints []Hint, i int) []Contribution {
	if i < 0 || i >= len(lines) {
		return nil
	}
	return s.contributions(lines, hints, s.bodyFontSize(lines, hints), i)
}

func (s *Scorer) contributions(lines []string, hints []Hint, bodyFont float64, i int) []Contribution {
	line := strings.TrimSpace(lines[i])
	if line == "" || lexicon.IsDenied(line) {
		return nil
	}

	var out []Contribution
	add := func(f Feature, scale float64) {
		if w := s.config.Weights[f]; w != 0 {
			out = append(out, Contribution{Feature: f, Value: w * scale})
		}
	}

	bullet := textutil.HasBulletPrefix(line)
	length := utf8.RuneCountInString(line)
	words := textutil.WordCount(line)

	// Vocabulary
	if !bullet && lexicon.IsHeaderTerm(line) {
		add(FeatureExactVocabulary, 1)
	} else if _, _, ok := lexicon.FindWord(line); ok {
		add(FeatureWordVocabulary, 1)
	} else if _, _, ok := lexicon.FindSubstring(line); ok {
		add(FeatureSubstringVocabulary, 1)
	}

	// Casing. List items are content, whatever their case.
	if !bullet && length > 3 && words <= s.config.MaxHeaderWords {
		if textutil.IsAllCaps(line) {
			add(FeatureAllCapsShort, 1)
		} else if textutil.IsTitleCase(line) {
			add(FeatureTitleCaseShort, 1)
		}
	}

	if strings.HasSuffix(line, ":") {
		add(FeatureTrailingColon, 1)
	}

	if length < s.config.ShortLength {
		add(FeatureShortLength, 1)
	} else if length < s.config.MediumLength {
		add(FeatureMediumLength, 1)
	}

	// Position
	prevBlank := i > 0 && textutil.IsBlank(lines[i-1])
	nextBlank := i < len(lines)-1 && textutil.IsBlank(lines[i+1])
	if i == 0 {
		add(FeatureFirstLine, 1)
	} else if prevBlank {
		add(FeaturePrecededByBlank, 1)
	}
	if prevBlank && nextBlank {
		add(FeatureIsolated, 1)
	}

	// Next line context
	if i < len(lines)-1 {
		next := strings.TrimSpace(lines[i+1])
		if textutil.HasBulletPrefix(next) {
			add(FeatureNextLineBullet, 1)
		}
		if dateRangePattern.MatchString(next) {
			add(FeatureNextLineDateRange, 1)
		}
	}

	// Penalties
	if numberedPattern.MatchString(line) {
		add(FeatureNumberedList, 1)
	}
	if contactPattern.MatchString(line) {
		add(FeatureContactInfo, 1)
	}
	if bullet {
		add(FeatureBulletPrefixed, 1)
	}
	if words > s.config.ProseWords {
		add(FeatureProseLength, 1)
	}
	if s.config.HierarchyAware && jobTitleInContext(lines, i) {
		add(FeatureJobTitleInContext, 1)
	}

	// Format hints
	if s.config.UseFormatHints && i < len(hints) {
		h := hints[i]
		if h.FontSize > 0 && bodyFont > 0 {
			if ratio := h.FontSize / bodyFont; ratio >= s.config.MinFontRatio {
				add(FeatureFontSize, ratio)
			}
		}
		if h.Bold {
			add(FeatureBold, 1)
		}
	}

	return out
}

// jobTitleInContext returns true for a job title line that sits inside a
// job description: a year in the three lines above or a bullet in the three
// lines below.
func jobTitleInContext(lines []string, i int) bool {
	if i == 0 || i >= len(lines)-1 || !lexicon.HasJobTitle(lines[i]) {
		return false
	}

	for _, prev := range lines[max(0, i-3):i] {
		if yearPattern.MatchString(prev) {
			return true
		}
	}
	for _, next := range lines[i+1 : min(len(lines), i+4)] {
		if strings.HasPrefix(strings.TrimSpace(next), "•") {
			return true
		}
	}
	return false
}

// bodyFontSize returns the most common font size among hinted lines,
// bucketed to half points. Ties go to the smaller size. It returns 0 when
// no line carries a font size.
func (s *Scorer) bodyFontSize(lines []string, hints []Hint) float64 {
	if !s.config.UseFormatHints || len(hints) == 0 {
		return 0
	}

	const tolerance = 0.5
	counts := make(map[int]int)
	for i, h := range hints {
		if i >= len(lines) || h.FontSize <= 0 || textutil.IsBlank(lines[i]) {
			continue
		}
		counts[int(h.FontSize/tolerance)]++
	}

	best, bestCount := 0, 0
	for bucket, count := range counts {
		if count > bestCount || (count == bestCount && bucket < best) {
			best, bestCount = bucket, count
		}
	}
	return float64(best) * tolerance
}
