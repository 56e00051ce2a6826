// Package scoring estimates how likely each line of a resume is to be a
// section header and derives section boundaries from those scores.
//
// # Features
//
// A line's score is the sum of named, weighted features (see [Feature] and
// [DefaultWeights]): header vocabulary matches, casing, length, position,
// the line that follows, penalties for list items, contact details and
// prose, and optional layout hints (font size relative to body text, bold).
// [Scorer.Explain] lists the features that fired for one line.
//
//	s := scoring.NewScorer()
//	scores := s.Score(lines, nil)
//	b := s.FindBoundaries(lines, scores)
//
// # Boundaries
//
// A line is a boundary when its score exceeds the threshold and it is the
// maximum within a symmetric window, at least MinSeparation lines from the
// previous boundary. When fewer than two boundaries are found the fallback
// [Strategy] chain runs in order until one adds something:
//
//   - [MajorHeaderStrategy]: lines starting with a major header word
//   - [ChangePointStrategy]: jumps in the moving average of the scores
//   - [EvenSegmentStrategy]: fixed-size segments
//
// Line 0 is always a boundary. With HierarchyAware set, job titles inside an
// experience section are not allowed to start a new section.
package scoring
