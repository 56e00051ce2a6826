package scoring

import (
	"errors"
	"fmt"
)

// ErrUnknownFeature is returned when a weight names no known feature
var ErrUnknownFeature = errors.New("unknown scoring feature")

// Feature identifies one weighted signal in the header likelihood score
type Feature int

const (
	FeatureExactVocabulary     Feature = iota // whole line is a header term
	FeatureWordVocabulary                     // header term as a whole word
	FeatureSubstringVocabulary                // header term as a substring
	FeatureAllCapsShort                       // ALL CAPS, at most four words
	FeatureTitleCaseShort                     // Title Case, at most four words
	FeatureTrailingColon
	FeatureShortLength  // fewer than 20 characters
	FeatureMediumLength // fewer than 30 characters
	FeatureFirstLine
	FeaturePrecededByBlank
	FeatureIsolated // blank line before and after
	FeatureNextLineBullet
	FeatureNextLineDateRange
	FeatureNumberedList
	FeatureContactInfo
	FeatureBulletPrefixed
	FeatureProseLength
	FeatureJobTitleInContext
	FeatureFontSize // scaled by the ratio to the body font size
	FeatureBold
)

// Features lists every feature in evaluation order
var Features = []Feature{
	FeatureExactVocabulary,
	FeatureWordVocabulary,
	FeatureSubstringVocabulary,
	FeatureAllCapsShort,
	FeatureTitleCaseShort,
	FeatureTrailingColon,
	FeatureShortLength,
	FeatureMediumLength,
	FeatureFirstLine,
	FeaturePrecededByBlank,
	FeatureIsolated,
	FeatureNextLineBullet,
	FeatureNextLineDateRange,
	FeatureNumberedList,
	FeatureContactInfo,
	FeatureBulletPrefixed,
	FeatureProseLength,
	FeatureJobTitleInContext,
	FeatureFontSize,
	FeatureBold,
}

// String returns the configuration name of the feature
func (f Feature) String() string {
	switch f {
	case FeatureExactVocabulary:
		return "exact_vocabulary"
	case FeatureWordVocabulary:
		return "word_vocabulary"
	case FeatureSubstringVocabulary:
		return "substring_vocabulary"
	case FeatureAllCapsShort:
		return "all_caps_short"
	case FeatureTitleCaseShort:
		return "title_case_short"
	case FeatureTrailingColon:
		return "trailing_colon"
	case FeatureShortLength:
		return "short_length"
	case FeatureMediumLength:
		return "medium_length"
	case FeatureFirstLine:
		return "first_line"
	case FeaturePrecededByBlank:
		return "preceded_by_blank"
	case FeatureIsolated:
		return "isolated"
	case FeatureNextLineBullet:
		return "next_line_bullet"
	case FeatureNextLineDateRange:
		return "next_line_date_range"
	case FeatureNumberedList:
		return "numbered_list"
	case FeatureContactInfo:
		return "contact_info"
	case FeatureBulletPrefixed:
		return "bullet_prefixed"
	case FeatureProseLength:
		return "prose_length"
	case FeatureJobTitleInContext:
		return "job_title_in_context"
	case FeatureFontSize:
		return "font_size"
	case FeatureBold:
		return "bold"
	default:
		return "unknown"
	}
}

// ParseFeature returns the feature with the given configuration name
func ParseFeature(name string) (Feature, error) {
	for _, f := range Features {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// Weights maps each feature to its contribution. Negative weights are
// penalties.
type Weights map[Feature]float64

// DefaultWeights returns the standard weight table
func DefaultWeights() Weights {
	return Weights{
		FeatureExactVocabulary:     5.0,
		FeatureWordVocabulary:      4.0,
		FeatureSubstringVocabulary: 2.5,
		FeatureAllCapsShort:        3.0,
		FeatureTitleCaseShort:      2.0,
		FeatureTrailingColon:       1.5,
		FeatureShortLength:         1.5,
		FeatureMediumLength:        0.75,
		FeatureFirstLine:           1.0,
		FeaturePrecededByBlank:     1.0,
		FeatureIsolated:            2.0,
		FeatureNextLineBullet:      1.5,
		FeatureNextLineDateRange:   1.5,
		FeatureNumberedList:        -2.0,
		FeatureContactInfo:         -2.0,
		FeatureBulletPrefixed:      -6.0,
		FeatureProseLength:         -2.0,
		FeatureJobTitleInContext:   -3.0,
		FeatureFontSize:            1.5,
		FeatureBold:                2.0,
	}
}

// Clone returns an independent copy of w. A nil table stays nil.
func (w Weights) Clone() Weights {
	if w == nil {
		return nil
	}
	out := make(Weights, len(w))
	for f, v := range w {
		out[f] = v
	}
	return out
}

// Set overrides the weight of the named feature
func (w Weights) Set(name string, value float64) error {
	f, err := ParseFeature(name)
	if err != nil {
		return err
	}
	w[f] = value
	return nil
}

// ByName returns the weights keyed by feature name
func (w Weights) ByName() map[string]float64 {
	out := make(map[string]float64, len(w))
	for f, v := range w {
		out[f.String()] = v
	}
	return out
}

// Contribution is one feature's share of a line's score
type Contribution struct {
	Feature Feature
	Value   float64
}

// String formats the contribution as "name:+1.50"
func (c Contribution) String() string {
	return fmt.Sprintf("%s:%+.2f", c.Feature, c.Value)
}

// Total sums a set of contributions
func Total(contributions []Contribution) float64 {
	total := 0.0
	for _, c := range contributions {
		total += c.Value
	}
	return total
}
