package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/scoring"
)

// ErrStageOrder is returned when a stage transition is requested out of order
var ErrStageOrder = errors.New("layout: stage out of order")

// Stage is a step of the reordering state machine. Stages only move forward.
type Stage int

const (
	StageUngrouped Stage = iota
	StageLineGrouped
	StageSorted
	StageHeaderValidated
	StageFinal
)

// String returns a string representation of the stage
func (s Stage) String() string {
	switch s {
	case StageUngrouped:
		return "ungrouped"
	case StageLineGrouped:
		return "line_grouped"
	case StageSorted:
		return "sorted"
	case StageHeaderValidated:
		return "header_validated"
	case StageFinal:
		return "final"
	default:
		return "unknown"
	}
}

// ReorderConfig holds configuration for spatial reordering
type ReorderConfig struct {
	// OverlapThreshold is the minimum vertical overlap, as a fraction of the
	// shorter height, for two blocks to share a line
	// Default: 0.5
	OverlapThreshold float64

	// WordGapRatio is the horizontal gap, as a fraction of line height,
	// that separates two words on one line
	// Default: 0.1
	WordGapRatio float64

	// ParagraphGapRatio is how many times the median line gap a vertical gap
	// must exceed to start a new paragraph
	// Default: 1.5
	ParagraphGapRatio float64
}

// DefaultReorderConfig returns sensible default configuration
func DefaultReorderConfig() ReorderConfig {
	return ReorderConfig{
		OverlapThreshold:  0.5,
		WordGapRatio:      0.1,
		ParagraphGapRatio: 1.5,
	}
}

// Reorderer turns positioned blocks into reading-order text
type Reorderer struct {
	config ReorderConfig
}

// NewReorderer creates a new reorderer with default configuration
func NewReorderer() *Reorderer {
	return &Reorderer{config: DefaultReorderConfig()}
}

// NewReordererWithConfig creates a reorderer with custom configuration
func NewReordererWithConfig(config ReorderConfig) *Reorderer {
	return &Reorderer{config: config}
}

// Config returns the reorderer's configuration
func (r *Reorderer) Config() ReorderConfig {
	return r.config
}

// Document is the working state of one reordering run
type Document struct {
	config ReorderConfig
	stage  Stage
	blocks []model.TextBlock
	lines  []Line
	text   string
	hints  []scoring.Hint
}

// Begin starts a reordering run. The blocks are copied.
func (r *Reorderer) Begin(blocks []model.TextBlock) *Document {
	return &Document{
		config: r.config,
		stage:  StageUngrouped,
		blocks: append([]model.TextBlock(nil), blocks...),
	}
}

// Reorder runs every stage in order
func (r *Reorderer) Reorder(blocks []model.TextBlock) (*Document, error) {
	doc := r.Begin(blocks)

	steps := []func() error{doc.GroupLines, doc.Sort, doc.ValidateHeaders, doc.Finalize}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Stage returns the document's current stage
func (d *Document) Stage() Stage {
	return d.stage
}

// Lines returns the detected lines (nil before GroupLines)
func (d *Document) Lines() []Line {
	return d.lines
}

// Blocks returns the blocks in their current order
func (d *Document) Blocks() []model.TextBlock {
	if d.stage == StageUngrouped {
		return d.blocks
	}

	var blocks []model.TextBlock
	for _, l := range d.lines {
		blocks = append(blocks, l.Blocks...)
	}
	return blocks
}

// Text returns the reading-order text. It is empty until Finalize.
func (d *Document) Text() string {
	return d.text
}

// Hints returns one format hint per line of Text
func (d *Document) Hints() []scoring.Hint {
	return d.hints
}

// HintsFor maps lines of text derived from Text (for example after
// normalization) back to format hints by their trimmed content. Lines that
// do not appear in Text get a zero hint. It returns nil when the document
// carries no font information at all.
func (d *Document) HintsFor(lines []string) []scoring.Hint {
	index := make(map[string]scoring.Hint)
	informative := false
	for i, line := range strings.Split(d.text, "\n") {
		if i >= len(d.hints) {
			break
		}
		key := strings.TrimSpace(line)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = d.hints[i]
		}
		if d.hints[i].FontSize > 0 || d.hints[i].Bold {
			informative = true
		}
	}
	if !informative {
		return nil
	}

	hints := make([]scoring.Hint, len(lines))
	for i, line := range lines {
		hints[i] = index[strings.TrimSpace(line)]
	}
	return hints
}

func (d *Document) require(want Stage, op string) error {
	if d.stage != want {
		return fmt.Errorf("%w: %s needs %s, document is %s", ErrStageOrder, op, want, d.stage)
	}
	return nil
}

// GroupLines groups blocks that share a page and overlap vertically.
// Blocks without geometry each get their own line.
func (d *Document) GroupLines() error {
	if err := d.require(StageUngrouped, "GroupLines"); err != nil {
		return err
	}

	d.lines = groupIntoLines(d.blocks, d.config.OverlapThreshold)
	d.blocks = nil
	d.stage = StageLineGrouped
	return nil
}

// Sort orders lines by page and top edge and blocks within lines by left
// edge.
func (d *Document) Sort() error {
	if err := d.require(StageLineGrouped, "Sort"); err != nil {
		return err
	}

	sortLines(d.lines)
	d.rebuildLines()
	d.stage = StageSorted
	return nil
}

// ValidateHeaders checks every block whose text is a header term. A
// candidate that runs straight into a lowercase or numeric continuation,
// with nothing separating the two, is a word fragment such as "OBJECTIVE"
// followed by "s with lower requirements." and is merged with its
// successor. Every other candidate is marked as a header, and the blocks
// after it are tagged with its section until the next header.
func (d *Document) ValidateHeaders() error {
	if err := d.require(StageSorted, "ValidateHeaders"); err != nil {
		return err
	}

	for li := 0; li < len(d.lines); li++ {
		for bi := 0; bi < len(d.lines[li].Blocks); bi++ {
			cur := d.lines[li].Blocks[bi]
			st, ok := lexicon.Lookup(strings.TrimSpace(cur.Text))
			if !ok {
				continue
			}

			if nli, nbi, found := d.successor(li, bi); found {
				next := d.lines[nli].Blocks[nbi]
				if d.continues(cur, next, nli == li) {
					d.lines[li].Blocks[bi] = mergeBlocks(cur, next)
					d.removeBlock(nli, nbi)
					continue
				}
			}

			cur.IsHeader = true
			cur.Section = st.Key()
			d.lines[li].Blocks[bi] = cur
		}
	}

	section := ""
	for li := range d.lines {
		for bi := range d.lines[li].Blocks {
			b := &d.lines[li].Blocks[bi]
			if b.IsHeader {
				section = b.Section
			} else {
				b.Section = section
			}
		}
	}

	d.rebuildLines()
	d.stage = StageHeaderValidated
	return nil
}

// Finalize assembles the reading-order text and its format hints. Runs of
// blank lines collapse to one and leading blank lines are dropped.
func (d *Document) Finalize() error {
	if err := d.require(StageHeaderValidated, "Finalize"); err != nil {
		return err
	}

	median := medianSpacing(d.lines)

	var out []string
	var hints []scoring.Hint
	blank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
			hints = append(hints, scoring.Hint{})
		}
	}

	for i, l := range d.lines {
		if i > 0 {
			prev := d.lines[i-1]
			switch {
			case l.Page != prev.Page:
				blank()
			case l.IsHeader || prev.IsHeader:
				blank()
			case median > 0 && l.SpacingBefore > median*d.config.ParagraphGapRatio:
				blank()
			}
		}

		hint := scoring.Hint{FontSize: l.AverageFontSize, Bold: l.Bold}
		for _, part := range strings.Split(l.Text, "\n") {
			if textutil.IsBlank(part) {
				blank()
				continue
			}
			out = append(out, part)
			hints = append(hints, hint)
		}
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
		hints = hints[:len(hints)-1]
	}

	d.text = strings.Join(out, "\n")
	d.hints = hints
	d.stage = StageFinal
	return nil
}

// successor returns the position of the block that follows (li, bi) in
// reading order
func (d *Document) successor(li, bi int) (int, int, bool) {
	if bi+1 < len(d.lines[li].Blocks) {
		return li, bi + 1, true
	}
	for nli := li + 1; nli < len(d.lines); nli++ {
		if len(d.lines[nli].Blocks) > 0 {
			return nli, 0, true
		}
	}
	return 0, 0, false
}

// continues returns true if next is the rest of a word that cur starts
func (d *Document) continues(cur, next model.TextBlock, sameLine bool) bool {
	if endsWithSpace(cur.Text) || textutil.EndsWithNewline(cur.Text) {
		return false
	}
	if textutil.IsBlank(next.Text) || textutil.StartsWithMarker(next.Text) {
		return false
	}
	if !textutil.StartsLowerOrDigit(next.Text) {
		return false
	}

	if cur.HasGeometry() && next.HasGeometry() {
		if !sameLine {
			return false
		}
		if wordGap(cur, next, d.config.WordGapRatio) {
			return false
		}
	}
	return true
}

func (d *Document) removeBlock(li, bi int) {
	blocks := d.lines[li].Blocks
	d.lines[li].Blocks = append(blocks[:bi:bi], blocks[bi+1:]...)
	if len(d.lines[li].Blocks) == 0 {
		d.lines = append(d.lines[:li:li], d.lines[li+1:]...)
	}
}

func (d *Document) rebuildLines() {
	for i := range d.lines {
		d.lines[i].rebuild(d.config.WordGapRatio)
	}
	calculateSpacing(d.lines)
}

// mergeBlocks joins two blocks into one literal string
func mergeBlocks(cur, next model.TextBlock) model.TextBlock {
	merged := cur
	merged.Text = cur.Text + next.Text
	merged.Bold = cur.Bold && next.Bold
	merged.IsHeader = false
	if merged.FontSize == 0 {
		merged.FontSize = next.FontSize
	}

	if cur.HasGeometry() && next.HasGeometry() {
		box := cur.BBox().Union(next.BBox())
		merged.X0, merged.Y0 = box.X, box.Y
		merged.Width, merged.Height = box.Width, box.Height
	}
	return merged
}
