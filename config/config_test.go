package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/vitae/scoring"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultMatchesPackageDefaults(t *testing.T) {
	cfg := Default()

	sc := cfg.ScorerConfig()
	want := scoring.DefaultConfig()
	if sc.Threshold != want.Threshold || sc.Window != want.Window || sc.MinSeparation != want.MinSeparation {
		t.Errorf("ScorerConfig() = %+v, want defaults", sc)
	}
	for _, f := range scoring.Features {
		if sc.Weights[f] != want.Weights[f] {
			t.Errorf("weight %s = %v, want %v", f, sc.Weights[f], want.Weights[f])
		}
	}

	if rc := cfg.ReorderConfig(); rc.OverlapThreshold != 0.5 {
		t.Errorf("OverlapThreshold = %v, want 0.5", rc.OverlapThreshold)
	}
	if cc := cfg.ClassifierConfig(); cc.ExactConfidence != 0.9 {
		t.Errorf("ExactConfidence = %v, want 0.9", cc.ExactConfidence)
	}
	if nc := cfg.NormalizerConfig(); !nc.JoinBrokenLines || !nc.DemoteDuplicates {
		t.Errorf("NormalizerConfig() = %+v, want defaults", nc)
	}
	if !cfg.Extract.SplitLargeSections {
		t.Error("SplitLargeSections should default to true")
	}
}

func TestParseOverrides(t *testing.T) {
	data := `
[extract]
format_hints = false
join_broken_lines = false

[scoring]
threshold = 4.5

[scoring.weights]
bullet_prefixed = -8.0
bold = 0.0

[log]
level = "debug"
format = "json"
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Extract.FormatHints {
		t.Error("format_hints should be false")
	}
	if !cfg.Extract.HierarchyAware {
		t.Error("unset keys should keep their defaults")
	}
	if nc := cfg.NormalizerConfig(); nc.JoinBrokenLines || !nc.SplitMergedWords {
		t.Errorf("NormalizerConfig() = %+v, want only line joining disabled", nc)
	}

	sc := cfg.ScorerConfig()
	if sc.Threshold != 4.5 {
		t.Errorf("Threshold = %v, want 4.5", sc.Threshold)
	}
	if sc.Weights[scoring.FeatureBulletPrefixed] != -8 {
		t.Errorf("bullet_prefixed = %v, want -8", sc.Weights[scoring.FeatureBulletPrefixed])
	}
	if sc.Weights[scoring.FeatureBold] != 0 {
		t.Errorf("bold = %v, want 0", sc.Weights[scoring.FeatureBold])
	}
	if sc.Weights[scoring.FeatureExactVocabulary] != 5 {
		t.Error("unset weights should keep their defaults")
	}

	if level, _ := cfg.Log.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", level)
	}
}

func TestWeightOverrideChangesScores(t *testing.T) {
	cfg, err := Parse([]byte("[scoring.weights]\nexact_vocabulary = 10.0\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	lines := []string{"SKILLS", "", "Go"}
	base := scoring.NewScorer().Score(lines, nil)
	tuned := scoring.NewScorerWithConfig(cfg.ScorerConfig()).Score(lines, nil)
	if tuned[0]-base[0] != 5 {
		t.Errorf("score changed by %v, want 5", tuned[0]-base[0])
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown weight", "[scoring.weights]\nsparkle = 1.0\n"},
		{"bad window", "[scoring]\nwindow = 0\n"},
		{"bad overlap", "[layout]\noverlap_threshold = 1.5\n"},
		{"bad confidence", "[classify]\nexact_confidence = 2.0\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"no jobs", "[extract]\njobs = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("[extract]\nturbo = true\n")); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitae.toml")
	if err := os.WriteFile(path, []byte("[scoring]\nmin_separation = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.MinSeparation != 4 {
		t.Errorf("MinSeparation = %d, want 4", cfg.Scoring.MinSeparation)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scoring.Weights = map[string]float64{"bold": 1.25}

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "bold") {
		t.Errorf("encoded config lacks the weight override:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v", err)
	}
	if back.Scoring.Weights["bold"] != 1.25 {
		t.Errorf("bold = %v after round trip", back.Scoring.Weights["bold"])
	}
}
