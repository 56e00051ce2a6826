package layout

import (
	"errors"
	"testing"

	"github.com/tsawler/vitae/model"
	"github.com/tsawler/vitae/scoring"
)

// makeBlock creates a positioned test block
func makeBlock(txt string, x, y, w, h, fontSize float64) model.TextBlock {
	return model.TextBlock{
		Text:     txt,
		X0:       x,
		Y0:       y,
		Width:    w,
		Height:   h,
		FontSize: fontSize,
	}
}

func reorder(t *testing.T, blocks []model.TextBlock) *Document {
	t.Helper()
	doc, err := NewReorderer().Reorder(blocks)
	if err != nil {
		t.Fatalf("Reorder() error: %v", err)
	}
	return doc
}

func TestHeaderFragmentIsMerged(t *testing.T) {
	doc := reorder(t, model.BlocksFromText("OBJECTIVE\ns with lower requirements."))

	blocks := doc.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].IsHeader {
		t.Error("merged fragment should not be a header")
	}
	if want := "OBJECTIVEs with lower requirements."; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestHeaderFragmentIsMergedOnOneLine(t *testing.T) {
	doc := reorder(t, []model.TextBlock{
		makeBlock("OBJECTIVE", 10, 100, 60, 10, 11),
		makeBlock("s with lower requirements.", 70, 100, 150, 10, 11),
	})

	if want := "OBJECTIVEs with lower requirements."; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
	if blocks := doc.Blocks(); len(blocks) != 1 || blocks[0].Width != 210 {
		t.Errorf("expected one merged block 210 wide, got %+v", blocks)
	}
}

func TestHeaderSeparatedByGapIsKept(t *testing.T) {
	doc := reorder(t, []model.TextBlock{
		makeBlock("OBJECTIVE", 10, 100, 60, 10, 11),
		makeBlock("seeking work", 90, 100, 80, 10, 11),
	})

	blocks := doc.Blocks()
	if len(blocks) != 2 || !blocks[0].IsHeader {
		t.Errorf("expected a validated header followed by text, got %+v", blocks)
	}
}

func TestTrueHeaderIsMarked(t *testing.T) {
	doc := reorder(t, model.BlocksFromText("\nOBJECTIVE\n\nSeeking a senior role."))

	var header *model.TextBlock
	blocks := doc.Blocks()
	for i := range blocks {
		if blocks[i].Text == "OBJECTIVE" {
			header = &blocks[i]
		}
	}
	if header == nil || !header.IsHeader {
		t.Fatalf("expected OBJECTIVE to be a header, got %+v", blocks)
	}
	if header.Section != "SUMMARY" {
		t.Errorf("header section = %q, want SUMMARY", header.Section)
	}
	if last := blocks[len(blocks)-1]; last.Section != "SUMMARY" {
		t.Errorf("following block section = %q, want SUMMARY", last.Section)
	}

	if want := "OBJECTIVE\n\nSeeking a senior role."; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestHeaderFollowedByUppercase(t *testing.T) {
	doc := reorder(t, model.BlocksFromText("EXPERIENCE\nAcme Corp"))

	if blocks := doc.Blocks(); !blocks[0].IsHeader {
		t.Error("a header followed by a capitalized line should be kept")
	}
	if want := "EXPERIENCE\n\nAcme Corp"; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestGroupAndSortLines(t *testing.T) {
	doc := reorder(t, []model.TextBlock{
		makeBlock("World", 60, 10, 40, 10, 11),
		makeBlock("Second", 10, 30, 50, 10, 11),
		makeBlock("Hello", 10, 11, 40, 10, 11),
	})

	lines := doc.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "Hello World" {
		t.Errorf("line 0 = %q, want %q", lines[0].Text, "Hello World")
	}
	if lines[1].SpacingBefore != 9 {
		t.Errorf("SpacingBefore = %v, want 9", lines[1].SpacingBefore)
	}
	if want := "Hello World\nSecond"; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestZeroHeightBlocksNeverGroup(t *testing.T) {
	doc := reorder(t, model.BlocksFromText("b\na\nc"))

	if len(doc.Lines()) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(doc.Lines()))
	}
	if doc.Text() != "b\na\nc" {
		t.Errorf("input order should be kept, got %q", doc.Text())
	}
}

func TestParagraphBreaks(t *testing.T) {
	doc := reorder(t, []model.TextBlock{
		makeBlock("one", 10, 0, 30, 10, 11),
		makeBlock("two", 10, 12, 30, 10, 11),
		makeBlock("three", 10, 24, 30, 10, 11),
		makeBlock("four", 10, 60, 30, 10, 11),
	})

	if want := "one\ntwo\nthree\n\nfour"; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestPagesAreSeparated(t *testing.T) {
	second := makeBlock("page two", 10, 10, 50, 10, 11)
	second.Page = 1
	doc := reorder(t, []model.TextBlock{second, makeBlock("page one", 10, 500, 50, 10, 11)})

	if want := "page one\n\npage two"; doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
}

func TestStageOrder(t *testing.T) {
	doc := NewReorderer().Begin(model.BlocksFromText("a"))
	if doc.Stage() != StageUngrouped {
		t.Fatalf("new document stage = %v", doc.Stage())
	}

	if err := doc.Sort(); !errors.Is(err, ErrStageOrder) {
		t.Errorf("Sort() before GroupLines: got %v, want ErrStageOrder", err)
	}
	if err := doc.GroupLines(); err != nil {
		t.Fatalf("GroupLines() error: %v", err)
	}
	if err := doc.GroupLines(); !errors.Is(err, ErrStageOrder) {
		t.Errorf("second GroupLines(): got %v, want ErrStageOrder", err)
	}
	if err := doc.Finalize(); !errors.Is(err, ErrStageOrder) {
		t.Errorf("Finalize() before ValidateHeaders: got %v, want ErrStageOrder", err)
	}

	for _, step := range []func() error{doc.Sort, doc.ValidateHeaders, doc.Finalize} {
		if err := step(); err != nil {
			t.Fatalf("step error: %v", err)
		}
	}
	if doc.Stage() != StageFinal {
		t.Errorf("stage = %v, want final", doc.Stage())
	}
	if err := doc.ValidateHeaders(); !errors.Is(err, ErrStageOrder) {
		t.Error("stages should not move backward")
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageUngrouped, "ungrouped"},
		{StageLineGrouped, "line_grouped"},
		{StageSorted, "sorted"},
		{StageHeaderValidated, "header_validated"},
		{StageFinal, "final"},
		{Stage(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestHints(t *testing.T) {
	header := makeBlock("EXPERIENCE", 10, 10, 80, 16, 16)
	header.Bold = true
	doc := reorder(t, []model.TextBlock{
		header,
		makeBlock("Acme Corp", 10, 40, 70, 11, 11),
	})

	if want := "EXPERIENCE\n\nAcme Corp"; doc.Text() != want {
		t.Fatalf("Text() = %q, want %q", doc.Text(), want)
	}

	hints := doc.Hints()
	want := []scoring.Hint{{FontSize: 16, Bold: true}, {}, {FontSize: 11}}
	if len(hints) != len(want) {
		t.Fatalf("expected %d hints, got %d", len(want), len(hints))
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hint %d = %+v, want %+v", i, hints[i], want[i])
		}
	}

	mapped := doc.HintsFor([]string{"Acme Corp", "EXPERIENCE", "elsewhere"})
	if mapped[0].FontSize != 11 || !mapped[1].Bold || mapped[2] != (scoring.Hint{}) {
		t.Errorf("HintsFor() = %+v", mapped)
	}
}

func TestHintsForPlainText(t *testing.T) {
	doc := reorder(t, model.BlocksFromText("SKILLS\nGo"))
	if hints := doc.HintsFor([]string{"SKILLS", "Go"}); hints != nil {
		t.Errorf("plain text should carry no hints, got %+v", hints)
	}
}

func TestReorderEmpty(t *testing.T) {
	doc := reorder(t, nil)
	if doc.Text() != "" || len(doc.Lines()) != 0 {
		t.Errorf("expected empty document, got %q", doc.Text())
	}
}
