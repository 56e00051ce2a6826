// Package config loads extraction settings from TOML files.
//
// A file only needs the keys it changes; everything else keeps the value
// from [Default]:
//
//	[extract]
//	format_hints = false
//
//	[scoring]
//	threshold = 3.5
//
//	[scoring.weights]
//	bullet_prefixed = -8.0
//
//	[log]
//	level = "debug"
//	format = "json"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/vitae/classify"
	"github.com/tsawler/vitae/layout"
	"github.com/tsawler/vitae/normalize"
	"github.com/tsawler/vitae/scoring"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete set of tunable settings
type Config struct {
	Extract  ExtractConfig  `toml:"extract"`
	Scoring  ScoringConfig  `toml:"scoring"`
	Layout   LayoutConfig   `toml:"layout"`
	Classify ClassifyConfig `toml:"classify"`
	Log      LogConfig      `toml:"log"`
}

// ExtractConfig selects the extraction strategy
type ExtractConfig struct {
	// FormatHints enables font size and bold features when blocks carry them
	FormatHints bool `toml:"format_hints"`

	// HierarchyAware keeps job titles inside experience sections
	HierarchyAware bool `toml:"hierarchy_aware"`

	// SplitLargeSections splits long sections at embedded headers
	SplitLargeSections bool `toml:"split_large_sections"`

	JoinBrokenLines  bool `toml:"join_broken_lines"`
	SplitMergedWords bool `toml:"split_merged_words"`
	DemoteDuplicates bool `toml:"demote_duplicates"`

	// LowConfidence is the confidence below which the CLI flags a section
	// for review
	LowConfidence float64 `toml:"low_confidence"`

	// Jobs is the number of documents the CLI processes at once
	Jobs int `toml:"jobs"`
}

// ScoringConfig holds boundary detection settings. Weights maps feature
// names (see scoring.Feature) to weights; unnamed features keep their
// defaults.
type ScoringConfig struct {
	Threshold     float64            `toml:"threshold"`
	Window        int                `toml:"window"`
	MinSeparation int                `toml:"min_separation"`
	MinFontRatio  float64            `toml:"min_font_ratio"`
	Weights       map[string]float64 `toml:"weights"`
}

// LayoutConfig holds spatial reordering settings
type LayoutConfig struct {
	OverlapThreshold  float64 `toml:"overlap_threshold"`
	WordGapRatio      float64 `toml:"word_gap_ratio"`
	ParagraphGapRatio float64 `toml:"paragraph_gap_ratio"`
}

// ClassifyConfig holds classifier confidence levels
type ClassifyConfig struct {
	ExactConfidence     float64 `toml:"exact_confidence"`
	WordConfidence      float64 `toml:"word_confidence"`
	SubstringConfidence float64 `toml:"substring_confidence"`
	EvidenceThreshold   float64 `toml:"evidence_threshold"`
	AgreementBoost      float64 `toml:"agreement_boost"`
}

// LogConfig selects the CLI log handler
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`

	// Format is text or json
	Format string `toml:"format"`
}

// Default returns the built-in configuration
func Default() Config {
	sc := scoring.DefaultConfig()
	lc := layout.DefaultReorderConfig()
	cc := classify.DefaultConfig()
	nc := normalize.DefaultConfig()

	return Config{
		Extract: ExtractConfig{
			FormatHints:        sc.UseFormatHints,
			HierarchyAware:     sc.HierarchyAware,
			SplitLargeSections: true,
			JoinBrokenLines:    nc.JoinBrokenLines,
			SplitMergedWords:   nc.SplitMergedWords,
			DemoteDuplicates:   nc.DemoteDuplicates,
			LowConfidence:      0.5,
			Jobs:               4,
		},
		Scoring: ScoringConfig{
			Threshold:     sc.Threshold,
			Window:        sc.Window,
			MinSeparation: sc.MinSeparation,
			MinFontRatio:  sc.MinFontRatio,
		},
		Layout: LayoutConfig{
			OverlapThreshold:  lc.OverlapThreshold,
			WordGapRatio:      lc.WordGapRatio,
			ParagraphGapRatio: lc.ParagraphGapRatio,
		},
		Classify: ClassifyConfig{
			ExactConfidence:     cc.ExactConfidence,
			WordConfidence:      cc.WordConfidence,
			SubstringConfidence: cc.SubstringConfidence,
			EvidenceThreshold:   cc.EvidenceThreshold,
			AgreementBoost:      cc.AgreementBoost,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML file on top of the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and weight names
func (c Config) Validate() error {
	var problems []string

	if c.Scoring.Window < 1 {
		problems = append(problems, "scoring.window must be at least 1")
	}
	if c.Scoring.MinSeparation < 1 {
		problems = append(problems, "scoring.min_separation must be at least 1")
	}
	if c.Scoring.MinFontRatio < 1 {
		problems = append(problems, "scoring.min_font_ratio must be at least 1")
	}
	for name := range c.Scoring.Weights {
		if _, err := scoring.ParseFeature(name); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if c.Layout.OverlapThreshold <= 0 || c.Layout.OverlapThreshold > 1 {
		problems = append(problems, "layout.overlap_threshold must be in (0, 1]")
	}
	if c.Layout.WordGapRatio < 0 || c.Layout.ParagraphGapRatio < 0 {
		problems = append(problems, "layout gap ratios must not be negative")
	}

	for name, v := range map[string]float64{
		"exact_confidence":     c.Classify.ExactConfidence,
		"word_confidence":      c.Classify.WordConfidence,
		"substring_confidence": c.Classify.SubstringConfidence,
		"evidence_threshold":   c.Classify.EvidenceThreshold,
		"agreement_boost":      c.Classify.AgreementBoost,
		"low_confidence":       c.Extract.LowConfidence,
	} {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("%s must be in [0, 1]", name))
		}
	}

	if c.Extract.Jobs < 1 {
		problems = append(problems, "extract.jobs must be at least 1")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		problems = append(problems, err.Error())
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		problems = append(problems, fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ScorerConfig builds the scoring configuration. Weight names are assumed
// valid (see Validate); unknown names are skipped.
func (c Config) ScorerConfig() scoring.Config {
	sc := scoring.DefaultConfig()
	sc.UseFormatHints = c.Extract.FormatHints
	sc.HierarchyAware = c.Extract.HierarchyAware
	sc.Threshold = c.Scoring.Threshold
	sc.Window = c.Scoring.Window
	sc.MinSeparation = c.Scoring.MinSeparation
	sc.MinFontRatio = c.Scoring.MinFontRatio

	for name, v := range c.Scoring.Weights {
		_ = sc.Weights.Set(name, v)
	}
	return sc
}

// ReorderConfig builds the layout configuration
func (c Config) ReorderConfig() layout.ReorderConfig {
	return layout.ReorderConfig{
		OverlapThreshold:  c.Layout.OverlapThreshold,
		WordGapRatio:      c.Layout.WordGapRatio,
		ParagraphGapRatio: c.Layout.ParagraphGapRatio,
	}
}

// ClassifierConfig builds the classifier configuration
func (c Config) ClassifierConfig() classify.Config {
	cc := classify.DefaultConfig()
	cc.ExactConfidence = c.Classify.ExactConfidence
	cc.WordConfidence = c.Classify.WordConfidence
	cc.SubstringConfidence = c.Classify.SubstringConfidence
	cc.EvidenceThreshold = c.Classify.EvidenceThreshold
	cc.AgreementBoost = c.Classify.AgreementBoost
	return cc
}

// NormalizerConfig builds the normalizer configuration
func (c Config) NormalizerConfig() normalize.Config {
	nc := normalize.DefaultConfig()
	nc.JoinBrokenLines = c.Extract.JoinBrokenLines
	nc.SplitMergedWords = c.Extract.SplitMergedWords
	nc.DemoteDuplicates = c.Extract.DemoteDuplicates
	return nc
}

// SlogLevel parses Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", l.Level, err)
	}
	return level, nil
}

// Encode renders the configuration as TOML
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
