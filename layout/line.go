package layout

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/vitae/model"
)

// Line is a horizontal run of blocks on one page
type Line struct {
	// Blocks are the blocks that make up this line (sorted left to right
	// once the document has been sorted)
	Blocks []model.TextBlock

	// Page is the 0-based page index
	Page int

	// BBox is the union of the blocks' boxes (zero without geometry)
	BBox model.BBox

	// Text is the assembled text content of the line
	Text string

	// Height is the line height (max block height)
	Height float64

	// SpacingBefore is the vertical space from the previous line on the same
	// page (0 for the first line of a page)
	SpacingBefore float64

	// AverageFontSize is the average known font size of the blocks
	AverageFontSize float64

	// Bold is true when every non-blank block is bold
	Bold bool

	// IsHeader is true when the line holds a validated header block
	IsHeader bool
}

// HasGeometry returns true if the line has a usable bounding box
func (l *Line) HasGeometry() bool {
	return l.BBox.IsValid()
}

// groupIntoLines groups blocks into lines in input order. A block joins the
// first line on its page whose box overlaps it vertically by at least
// threshold of the shorter height.
func groupIntoLines(blocks []model.TextBlock, threshold float64) []Line {
	var lines []Line

	for _, b := range blocks {
		joined := false
		if b.HasGeometry() {
			for i := range lines {
				l := &lines[i]
				if l.Page != b.Page || !l.HasGeometry() {
					continue
				}
				if l.BBox.VerticalOverlap(b.BBox()) >= threshold {
					l.Blocks = append(l.Blocks, b)
					l.BBox = l.BBox.Union(b.BBox())
					joined = true
					break
				}
			}
		}

		if !joined {
			line := Line{Page: b.Page, Blocks: []model.TextBlock{b}}
			if b.HasGeometry() {
				line.BBox = b.BBox()
			}
			lines = append(lines, line)
		}
	}

	return lines
}

// sortLines orders lines by page then top edge, and blocks within a line by
// left edge. Both sorts are stable so zero-geometry input keeps its order.
func sortLines(lines []Line) {
	for i := range lines {
		blocks := lines[i].Blocks
		sort.SliceStable(blocks, func(a, b int) bool {
			return blocks[a].X0 < blocks[b].X0
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Page != lines[j].Page {
			return lines[i].Page < lines[j].Page
		}
		return lines[i].BBox.Top() < lines[j].BBox.Top()
	})
}

// rebuild recomputes the derived fields of a line from its blocks
func (l *Line) rebuild(wordGapRatio float64) {
	l.BBox = model.BBox{}
	l.Height = 0
	l.IsHeader = false

	fontTotal, fontCount := 0.0, 0
	bold, inked := true, false
	for _, b := range l.Blocks {
		if b.HasGeometry() {
			if l.BBox.IsValid() {
				l.BBox = l.BBox.Union(b.BBox())
			} else {
				l.BBox = b.BBox()
			}
		}
		l.Height = max(l.Height, b.Height)
		if b.FontSize > 0 {
			fontTotal += b.FontSize
			fontCount++
		}
		if strings.TrimSpace(b.Text) != "" {
			inked = true
			bold = bold && b.Bold
		}
		if b.IsHeader {
			l.IsHeader = true
		}
	}

	l.AverageFontSize = 0
	if fontCount > 0 {
		l.AverageFontSize = fontTotal / float64(fontCount)
	}
	l.Bold = inked && bold
	l.Text = assembleLineText(l.Blocks, wordGapRatio)
}

// assembleLineText joins blocks left to right, inserting a space where the
// gap between two boxes is wider than wordGapRatio of the line height.
func assembleLineText(blocks []model.TextBlock, wordGapRatio float64) string {
	var sb strings.Builder

	for i, b := range blocks {
		if i > 0 && needsSpace(blocks[i-1], b, wordGapRatio) {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.Text)
	}

	return strings.TrimRight(sb.String(), "\r\n")
}

func needsSpace(prev, cur model.TextBlock, wordGapRatio float64) bool {
	if endsWithSpace(prev.Text) || startsWithSpace(cur.Text) {
		return false
	}
	if !prev.HasGeometry() || !cur.HasGeometry() {
		return true
	}
	return wordGap(prev, cur, wordGapRatio)
}

// wordGap returns true if the horizontal gap between two boxes on one line
// is wide enough to separate words
func wordGap(prev, cur model.TextBlock, wordGapRatio float64) bool {
	height := max(prev.Height, cur.Height)
	return prev.BBox().HorizontalGap(cur.BBox()) > height*wordGapRatio
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

// calculateSpacing fills SpacingBefore for lines with geometry
func calculateSpacing(lines []Line) {
	for i := range lines {
		lines[i].SpacingBefore = 0
		if i == 0 {
			continue
		}
		prev := &lines[i-1]
		cur := &lines[i]
		if prev.Page != cur.Page || !prev.HasGeometry() || !cur.HasGeometry() {
			continue
		}
		if gap := cur.BBox.Top() - prev.BBox.Bottom(); gap > 0 {
			cur.SpacingBefore = gap
		}
	}
}

// medianSpacing returns the median positive SpacingBefore, or 0
func medianSpacing(lines []Line) float64 {
	var gaps []float64
	for _, l := range lines {
		if l.SpacingBefore > 0 {
			gaps = append(gaps, l.SpacingBefore)
		}
	}
	if len(gaps) == 0 {
		return 0
	}

	sort.Float64s(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 0 {
		return (gaps[mid-1] + gaps[mid]) / 2
	}
	return gaps[mid]
}
