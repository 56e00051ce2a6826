package vitae

import (
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/vitae/classify"
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/normalize"
	"github.com/tsawler/vitae/rules"
	"github.com/tsawler/vitae/scoring"
)

const (
	// leadConfidence is the confidence of a lead section without a header
	leadConfidence = 0.9

	// unknownKeyLength limits keys derived from unrecognized headers
	unknownKeyLength = 20

	// fallbackKey is used for unknown sections without a header
	fallbackKey = "SECTION"

	// largeSectionWords is the content size above which a section is
	// searched for embedded headers
	largeSectionWords = 150

	// subsectionConfidence is the confidence of a section cut at an
	// embedded header
	subsectionConfidence = 0.7
)

// standardEngine compiles the standard rule library once. Extractions
// clone it so counters stay per document.
var standardEngine = sync.OnceValue(rules.Standard)

// Extractor runs the extraction pipeline. Each configuration method returns
// a new Extractor, so a configured Extractor is safe for concurrent use.
type Extractor struct {
	options Options

	engine          *rules.Engine
	normalizeConfig normalize.Config
	scorerConfig    scoring.Config
	reorderConfig   layout.ReorderConfig
	classifyConfig  classify.Config

	logger *slog.Logger
}

// Result is the outcome of one extraction
type Result struct {
	// ID identifies the run in logs
	ID string `json:"id" yaml:"id"`

	// Sections are keyed by section key
	Sections map[string]model.Section `json:"sections" yaml:"sections"`

	// Order lists the section keys in document order
	Order []string `json:"order" yaml:"order"`

	// Normalized is the text the sections were cut from
	Normalized string `json:"normalized" yaml:"normalized"`

	// Boundaries are the line indices where sections start
	Boundaries []int `json:"boundaries" yaml:"boundaries"`

	// Strategy names what produced the boundaries
	Strategy string `json:"strategy" yaml:"strategy"`

	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

// Ordered returns the sections in document order
func (r *Result) Ordered() []model.Section {
	out := make([]model.Section, 0, len(r.Order))
	for _, key := range r.Order {
		out = append(out, r.Sections[key])
	}
	return out
}

// Metrics records rule activity and stage timings for one extraction
type Metrics struct {
	Rules rules.Report `json:"rules" yaml:"rules"`

	Reorder   time.Duration `json:"reorder_ns" yaml:"reorder_ns"`
	Normalize time.Duration `json:"normalize_ns" yaml:"normalize_ns"`
	Score     time.Duration `json:"score_ns" yaml:"score_ns"`
	Classify  time.Duration `json:"classify_ns" yaml:"classify_ns"`
	Total     time.Duration `json:"total_ns" yaml:"total_ns"`
}

// New returns an Extractor with default configuration
//
// Example:
//
//	res := vitae.New().HierarchyAware(false).Extract(text, nil)
//	for _, s := range res.Ordered() {
//	    fmt.Println(s.Key, s.Type, s.Confidence)
//	}
func New() *Extractor {
	return &Extractor{
		options:         DefaultOptions(),
		normalizeConfig: normalize.DefaultConfig(),
		scorerConfig:    scoring.DefaultConfig(),
		reorderConfig:   layout.DefaultReorderConfig(),
		classifyConfig:  classify.DefaultConfig(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// clone creates a copy with its own weight table
func (e *Extractor) clone() *Extractor {
	c := *e
	c.scorerConfig.Weights = e.scorerConfig.Weights.Clone()
	c.normalizeConfig.Categories = append([]rules.Category(nil), e.normalizeConfig.Categories...)
	return &c
}

// Options returns the current strategy options
func (e *Extractor) Options() Options {
	return e.options
}

// WithOptions replaces the strategy options
func (e *Extractor) WithOptions(opts Options) *Extractor {
	c := e.clone()
	c.options = opts
	return c
}

// WithFormatHints enables or disables font size and bold scoring
func (e *Extractor) WithFormatHints(enabled bool) *Extractor {
	c := e.clone()
	c.options.UseFormatHints = enabled
	return c
}

// HierarchyAware enables or disables job title handling inside experience
// sections
func (e *Extractor) HierarchyAware(enabled bool) *Extractor {
	c := e.clone()
	c.options.HierarchyAware = enabled
	return c
}

// SplitLargeSections enables or disables cutting long sections at
// embedded header lines
func (e *Extractor) SplitLargeSections(enabled bool) *Extractor {
	c := e.clone()
	c.options.SplitLargeSections = enabled
	return c
}

// WithEngine uses the rules of engine instead of the standard library. The
// engine is cloned for every extraction, so its own counters never move.
func (e *Extractor) WithEngine(engine *rules.Engine) *Extractor {
	c := e.clone()
	c.engine = engine
	return c
}

// WithScorerConfig replaces the scoring configuration. Its UseFormatHints
// and HierarchyAware fields are overridden by the extractor options.
func (e *Extractor) WithScorerConfig(cfg scoring.Config) *Extractor {
	c := e.clone()
	c.scorerConfig = cfg
	c.scorerConfig.Weights = cfg.Weights.Clone()
	return c
}

// WithNormalizerConfig replaces the normalizer configuration
func (e *Extractor) WithNormalizerConfig(cfg normalize.Config) *Extractor {
	c := e.clone()
	c.normalizeConfig = cfg
	return c
}

// WithReorderConfig replaces the spatial reordering configuration
func (e *Extractor) WithReorderConfig(cfg layout.ReorderConfig) *Extractor {
	c := e.clone()
	c.reorderConfig = cfg
	return c
}

// WithClassifierConfig replaces the classifier configuration
func (e *Extractor) WithClassifierConfig(cfg classify.Config) *Extractor {
	c := e.clone()
	c.classifyConfig = cfg
	return c
}

// WithLogger sets the logger for stage timings. Nil restores the discarding
// logger.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	c := e.clone()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = logger
	return c
}

// WithConfig applies a loaded configuration file
func (e *Extractor) WithConfig(cfg config.Config) *Extractor {
	c := e.clone()
	c.options = Options{
		UseFormatHints:     cfg.Extract.FormatHints,
		HierarchyAware:     cfg.Extract.HierarchyAware,
		SplitLargeSections: cfg.Extract.SplitLargeSections,
	}
	c.normalizeConfig = cfg.NormalizerConfig()
	c.scorerConfig = cfg.ScorerConfig()
	c.reorderConfig = cfg.ReorderConfig()
	c.classifyConfig = cfg.ClassifierConfig()
	return c
}

// Extract runs the full pipeline. When blocks are given they are reordered
// into reading order and replace text, unless they hold no text at all.
// Extract never fails; non-empty input always yields at least one section.
func (e *Extractor) Extract(text string, blocks []model.TextBlock) *Result {
	start := time.Now()
	res := &Result{
		ID:       uuid.NewString(),
		Sections: make(map[string]model.Section),
	}
	log := e.logger.With("run_id", res.ID)

	// Step 1: Spatial reordering
	var doc *layout.Document
	if len(blocks) > 0 {
		t := time.Now()
		d, err := layout.NewReordererWithConfig(e.reorderConfig).Reorder(blocks)
		res.Metrics.Reorder = time.Since(t)
		switch {
		case err != nil:
			log.Warn("reordering failed, using plain text", "error", err)
		case strings.TrimSpace(d.Text()) != "":
			doc = d
			text = d.Text()
		}
	}

	// Step 2: Normalization
	t := time.Now()
	engine := e.engine
	if engine == nil {
		engine = standardEngine()
	}
	engine = engine.Clone()
	res.Normalized = normalize.NewWithConfig(engine, e.normalizeConfig).Normalize(text)
	res.Metrics.Normalize = time.Since(t)
	res.Metrics.Rules = engine.Report()

	if res.Normalized == "" {
		res.Strategy = scoring.StrategyPeaks
		res.Metrics.Total = time.Since(start)
		if strings.TrimSpace(text) == "" {
			log.Debug("nothing to extract")
			return res
		}
		// Rules stripped everything (page markers, invisible characters).
		// The input was not empty, so keep it as one unknown section.
		res.Boundaries = []int{0}
		addFallbackSection(res, normalize.CanonicalWhitespace(text))
		log.Debug("normalization removed all text", "input_length", len(text))
		return res
	}

	// Step 3: Scoring and boundaries
	t = time.Now()
	lines := strings.Split(res.Normalized, "\n")
	var hints []scoring.Hint
	if e.options.UseFormatHints && doc != nil {
		hints = doc.HintsFor(lines)
	}

	sc := e.scorerConfig
	sc.UseFormatHints = e.options.UseFormatHints
	sc.HierarchyAware = e.options.HierarchyAware
	scorer := scoring.NewScorerWithConfig(sc)
	boundaries := scorer.FindBoundaries(lines, scorer.Score(lines, hints))
	res.Boundaries = boundaries.Indices
	res.Strategy = boundaries.Strategy
	res.Metrics.Score = time.Since(t)

	// Step 4: Classification
	t = time.Now()
	e.classifySegments(res, lines, boundaries.Indices)
	if len(res.Order) == 0 {
		addFallbackSection(res, res.Normalized)
	}
	res.Metrics.Classify = time.Since(t)
	res.Metrics.Total = time.Since(start)

	log.Debug("extracted sections",
		"strategy", res.Strategy,
		"boundaries", len(res.Boundaries),
		"sections", len(res.Sections),
		"reorder", res.Metrics.Reorder,
		"normalize", res.Metrics.Normalize,
		"score", res.Metrics.Score,
		"classify", res.Metrics.Classify,
	)
	return res
}

// classifySegments cuts lines at the boundaries and classifies each
// non-empty segment. Long segments are split again at header lines left
// inside their content.
func (e *Extractor) classifySegments(res *Result, lines []string, boundaries []int) {
	classifier := classify.NewWithConfig(e.classifyConfig)
	used := make(map[string]bool)
	var cuts []int

	add := func(section model.Section, startLine, endLine int) {
		section.StartLine = startLine
		section.EndLine = endLine
		section.Key = uniqueKey(sectionKey(section), used)
		if section.Type == model.SectionContact {
			if c := classify.ExtractContact(section.Content); !c.IsEmpty() {
				section.Contact = &c
			}
		}
		res.Sections[section.Key] = section
		res.Order = append(res.Order, section.Key)
	}

	for k, startLine := range boundaries {
		endLine := len(lines)
		if k+1 < len(boundaries) {
			endLine = boundaries[k+1]
		}
		segment := lines[startLine:endLine]
		if textutil.IsBlank(strings.Join(segment, "")) {
			continue
		}

		lead := len(res.Order) == 0
		section := e.buildSection(classifier, segment, lead)

		var embedded []int
		if e.options.SplitLargeSections && textutil.WordCount(section.Content) > largeSectionWords {
			embedded = embeddedHeaders(lines, startLine, endLine)
		}
		if len(embedded) == 0 {
			add(section, startLine, endLine)
			continue
		}

		add(e.buildSection(classifier, lines[startLine:embedded[0]], lead), startLine, embedded[0])
		for i, cut := range embedded {
			subEnd := endLine
			if i+1 < len(embedded) {
				subEnd = embedded[i+1]
			}
			add(buildSubsection(classifier, lines[cut:subEnd]), cut, subEnd)
		}
		cuts = append(cuts, embedded...)
	}

	if len(cuts) > 0 {
		res.Boundaries = append(res.Boundaries, cuts...)
		slices.Sort(res.Boundaries)
	}
}

// embeddedHeaders returns the header lines inside a segment, skipping its
// own first line
func embeddedHeaders(lines []string, start, end int) []int {
	first := start
	for first < end && textutil.IsBlank(lines[first]) {
		first++
	}

	var out []int
	for i := first + 1; i < end; i++ {
		if normalize.IsHeaderLine(lines[i]) {
			out = append(out, i)
		}
	}
	return out
}

// buildSubsection classifies a segment that starts with an embedded header
func buildSubsection(classifier *classify.Classifier, segment []string) model.Section {
	header := strings.TrimSpace(segment[0])
	st, _ := classifier.ClassifyHeader(header)
	return model.Section{
		Type:           st,
		Confidence:     subsectionConfidence,
		Content:        strings.TrimSpace(strings.Join(segment[1:], "\n")),
		OriginalHeader: header,
	}
}

// buildSection splits a segment into header and content and classifies it.
// The lead segment only has a header when its first line is a header line;
// otherwise it is the contact block at the top of the resume. A demoted
// "• HEADER:" bullet is content, not a header.
func (e *Extractor) buildSection(classifier *classify.Classifier, segment []string, lead bool) model.Section {
	first := 0
	for first < len(segment) && textutil.IsBlank(segment[first]) {
		first++
	}
	header := strings.TrimSpace(segment[first])
	content := strings.TrimSpace(strings.Join(segment[first+1:], "\n"))

	if lead && !normalize.IsHeaderLine(header) {
		return model.Section{
			Type:       model.SectionContact,
			Confidence: leadConfidence,
			Content:    strings.TrimSpace(strings.Join(segment, "\n")),
		}
	}

	st, conf := classifier.Classify(header, content, lead)
	return model.Section{
		Type:           st,
		Confidence:     conf,
		Content:        content,
		OriginalHeader: header,
	}
}

// addFallbackSection records content as a single unknown section with no
// confidence, for inputs that produced no segments of their own
func addFallbackSection(res *Result, content string) {
	end := 0
	if res.Normalized != "" {
		end = strings.Count(res.Normalized, "\n") + 1
	}
	res.Sections[fallbackKey] = model.Section{
		Type:    model.SectionUnknown,
		Key:     fallbackKey,
		Content: content,
		EndLine: end,
	}
	res.Order = append(res.Order, fallbackKey)
}

// sectionKey is the type key, or for unknown sections a prefix of the
// header
func sectionKey(s model.Section) string {
	if s.Type != model.SectionUnknown {
		return s.Type.Key()
	}
	if key := strings.TrimSpace(textutil.Truncate(s.OriginalHeader, unknownKeyLength)); key != "" {
		return key
	}
	return fallbackKey
}

// uniqueKey appends _1, _2, ... until key is unused
func uniqueKey(key string, used map[string]bool) string {
	candidate := key
	for n := 1; used[candidate]; n++ {
		candidate = key + "_" + strconv.Itoa(n)
	}
	used[candidate] = true
	return candidate
}
