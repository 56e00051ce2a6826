package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
)

// StrategyPeaks names boundaries found by local maximum peak picking alone
const StrategyPeaks = "peaks"

// Boundaries are the line indices where sections start, strictly
// increasing and starting at 0 for non-empty input.
type Boundaries struct {
	Indices []int `json:"indices"`

	// Strategy names what produced the boundaries: StrategyPeaks or the
	// fallback that added to them
	Strategy string `json:"strategy"`
}

// Len returns the number of boundaries
func (b Boundaries) Len() int {
	return len(b.Indices)
}

// Strategy finds extra boundaries when peak picking finds too few. Find
// returns the new indices only, or nil when it has nothing to add.
type Strategy interface {
	Name() string
	Find(lines []string, scores []float64, existing []int) []int
}

// DefaultFallbacks returns the fallback chain: major header search, then
// change-point detection, then even segmentation.
func DefaultFallbacks(config Config) []Strategy {
	return []Strategy{
		MajorHeaderStrategy{Headers: lexicon.MajorHeaders, MinSeparation: config.MinSeparation},
		ChangePointStrategy{Window: 3, Sigma: 1.5, MinSeparation: config.MinSeparation},
		EvenSegmentStrategy{Segments: 4, MinLines: 10, MinSeparation: config.MinSeparation},
	}
}

// FindBoundaries picks section starts from the scores: a line is a boundary
// if its score exceeds the threshold, it is the maximum within the window
// and it is far enough from earlier boundaries. Line 0 is always a boundary.
func (s *Scorer) FindBoundaries(lines []string, scores []float64) Boundaries {
	n := min(len(lines), len(scores))
	if n == 0 {
		return Boundaries{Strategy: StrategyPeaks}
	}
	scores = scores[:n]

	indices := []int{0}
	for i, score := range scores {
		if score <= s.config.Threshold {
			continue
		}
		lo := max(0, i-s.config.Window)
		hi := min(n, i+s.config.Window+1)
		if !isLocalMax(scores[lo:hi], score) {
			continue
		}
		if separated(indices, i, s.config.MinSeparation) {
			indices = append(indices, i)
		}
	}

	strategy := StrategyPeaks
	if len(indices) < 2 {
		for _, fallback := range s.config.Fallbacks {
			extra := fallback.Find(lines[:n], scores, indices)
			if len(extra) > 0 {
				indices = append(indices, extra...)
				strategy = fallback.Name()
				break
			}
		}
	}

	indices = cleanIndices(indices, n)
	if s.config.HierarchyAware {
		indices = refineBoundaries(lines, indices)
	}

	return Boundaries{Indices: indices, Strategy: strategy}
}

// MajorHeaderStrategy looks for lines starting with one of a short list of
// major headers.
type MajorHeaderStrategy struct {
	Headers       []string
	MinSeparation int
}

// Name returns "major_headers"
func (m MajorHeaderStrategy) Name() string {
	return "major_headers"
}

// Find returns the major header lines far enough from existing boundaries.
// Bullet lines (demoted headers) are skipped.
func (m MajorHeaderStrategy) Find(lines []string, scores []float64, existing []int) []int {
	accepted := append([]int(nil), existing...)
	var out []int

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || textutil.HasBulletPrefix(trimmed) {
			continue
		}
		upper := strings.ToUpper(trimmed)
		for _, header := range m.Headers {
			if strings.HasPrefix(upper, header) {
				if separated(accepted, i, m.MinSeparation) {
					accepted = append(accepted, i)
					out = append(out, i)
				}
				break
			}
		}
	}
	return out
}

// ChangePointStrategy finds abrupt changes in the moving average of the
// score series.
type ChangePointStrategy struct {
	// Window is the moving average width
	Window int

	// Sigma is how many standard deviations above the mean a change must
	// be
	Sigma float64

	MinSeparation int
}

// Name returns "change_point"
func (c ChangePointStrategy) Name() string {
	return "change_point"
}

// Find returns change points snapped forward to the next non-blank,
// non-bullet line with a positive score.
func (c ChangePointStrategy) Find(lines []string, scores []float64, existing []int) []int {
	n := min(len(lines), len(scores))
	if n < 3 {
		return nil
	}

	avg := movingAverage(scores[:n], c.Window)
	changes := make([]float64, n-1)
	for i := 1; i < n; i++ {
		changes[i-1] = math.Abs(avg[i] - avg[i-1])
	}
	mean, std := meanStd(changes)
	limit := mean + c.Sigma*std

	accepted := append([]int(nil), existing...)
	var out []int
	for i := 1; i < n; i++ {
		if changes[i-1] <= limit {
			continue
		}
		j := snapForward(lines, scores, i)
		if j < 0 || !separated(accepted, j, c.MinSeparation) {
			continue
		}
		accepted = append(accepted, j)
		out = append(out, j)
	}
	return out
}

// EvenSegmentStrategy splits the document into a fixed number of equal
// segments.
type EvenSegmentStrategy struct {
	Segments      int
	MinLines      int
	MinSeparation int
}

// Name returns "even_segments"
func (e EvenSegmentStrategy) Name() string {
	return "even_segments"
}

// Find returns segment starts of max(n/Segments, MinLines) lines each.
// Starts at or past the end of the document are dropped.
func (e EvenSegmentStrategy) Find(lines []string, scores []float64, existing []int) []int {
	if e.Segments < 2 {
		return nil
	}
	size := max(len(lines)/e.Segments, e.MinLines, 1)

	accepted := append([]int(nil), existing...)
	var out []int
	for k := 1; k < e.Segments; k++ {
		b := k * size
		if b >= len(lines) {
			break
		}
		if separated(accepted, b, e.MinSeparation) {
			accepted = append(accepted, b)
			out = append(out, b)
		}
	}
	return out
}

var (
	contextDatePattern = regexp.MustCompile(`(?i)\d{4}.*?(?:present|current|\d{4})`)
	experienceMarkers  = []string{"EXPERIENCE", "EMPLOYMENT", "WORK"}
)

// refineBoundaries drops boundaries that are denylisted words, job titles
// inside an experience section, or long lines with no header term.
func refineBoundaries(lines []string, indices []int) []int {
	if len(indices) <= 1 {
		return indices
	}

	out := []int{indices[0]}
	for _, b := range indices[1:] {
		header := strings.ToUpper(strings.TrimSpace(lines[b]))
		if lexicon.IsDenied(header) {
			continue
		}

		current := strings.ToUpper(lines[out[len(out)-1]])
		inExperience := false
		for _, marker := range experienceMarkers {
			if strings.Contains(current, marker) {
				inExperience = true
				break
			}
		}
		if inExperience && lexicon.HasJobTitle(header) && contextHasDate(lines, b) {
			continue
		}

		if utf8.RuneCountInString(header) > 30 {
			if _, _, ok := lexicon.FindSubstring(header); !ok {
				continue
			}
		}

		out = append(out, b)
	}
	return out
}

func contextHasDate(lines []string, i int) bool {
	context := strings.Join(lines[max(0, i-3):min(len(lines), i+4)], " ")
	return contextDatePattern.MatchString(context)
}

// cleanIndices sorts, removes duplicates and out-of-range entries, and
// makes sure 0 comes first.
func cleanIndices(indices []int, n int) []int {
	sort.Ints(indices)
	out := []int{0}
	for _, idx := range indices {
		if idx > out[len(out)-1] && idx < n {
			out = append(out, idx)
		}
	}
	return out
}

func isLocalMax(window []float64, value float64) bool {
	for _, v := range window {
		if v > value {
			return false
		}
	}
	return true
}

// separated returns true if idx is at least minSep lines from every
// accepted boundary.
func separated(accepted []int, idx, minSep int) bool {
	for _, b := range accepted {
		d := idx - b
		if d < 0 {
			d = -d
		}
		if d < minSep {
			return false
		}
	}
	return true
}

// movingAverage returns the centered moving average of values
func movingAverage(values []float64, window int) []float64 {
	half := max(window, 1) / 2
	out := make([]float64, len(values))
	for i := range values {
		lo := max(0, i-half)
		hi := min(len(values), i+half+1)
		sum := 0.0
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(variance / float64(len(values)))
}

func snapForward(lines []string, scores []float64, from int) int {
	for j := from; j < len(lines) && j < len(scores); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed != "" && !textutil.HasBulletPrefix(trimmed) && scores[j] > 0 {
			return j
		}
	}
	return -1
}
