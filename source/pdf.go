package source

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/tsawler/vitae/model"
)

const (
	// runGapRatio is the largest gap between glyphs, as a fraction of the
	// font size, that still continues a run
	runGapRatio = 0.15

	// baselineTolerance is how far apart two baselines may be on one run
	baselineTolerance = 0.5

	// defaultPageHeight is US Letter, used when a page has no MediaBox
	defaultPageHeight = 792.0
)

// OpenPDF reads the text layer of a PDF file
func OpenPDF(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return ReadPDF(f, info.Size())
}

// ReadPDF reads the text layer of a PDF. Each run of adjacent glyphs in one
// font becomes a block with page-relative top-left coordinates. Pages whose
// content cannot be decoded are skipped.
func ReadPDF(r io.ReaderAt, size int64) (*Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("parsing PDF: %w", err)
	}

	doc := &Document{Format: PDF}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		texts, err := pageText(page)
		if err != nil {
			continue
		}
		doc.Blocks = append(doc.Blocks, textRuns(texts, i-1, pageHeight(page))...)
	}

	if len(doc.Blocks) == 0 {
		return doc, nil
	}

	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.Text)
	}
	doc.Text = sb.String()
	return doc, nil
}

// pageText returns the glyphs of a page. The pdf package panics on content
// streams it cannot interpret.
func pageText(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding page content: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// pageHeight returns the MediaBox height, following the page tree for an
// inherited box
func pageHeight(page pdf.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
	}
	return defaultPageHeight
}

// textRuns joins glyphs into word runs. A space, a font change, a baseline
// change or a gap ends a run. PDF y grows upward from the baseline, so the
// top edge is the page height minus baseline and font size.
func textRuns(texts []pdf.Text, page int, height float64) []model.TextBlock {
	var blocks []model.TextBlock
	var cur *model.TextBlock
	var font string
	var baseline, end float64

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			blocks = append(blocks, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}

		size := t.FontSize
		if size <= 0 {
			size = 1
		}

		continues := cur != nil &&
			t.Font == font &&
			math.Abs(t.Y-baseline) < baselineTolerance &&
			math.Abs(t.X-end) <= size*runGapRatio
		if !continues {
			flush()
			cur = &model.TextBlock{
				Page:     page,
				X0:       t.X,
				Y0:       height - t.Y - size,
				Height:   size,
				FontSize: size,
				Bold:     isBoldFont(t.Font),
			}
			font = t.Font
			baseline = t.Y
		}

		cur.Text += t.S
		end = t.X + t.W
		cur.Width = end - cur.X0
	}
	flush()

	return blocks
}

// isBoldFont guesses the weight from a font name such as
// "ABCDEF+Helvetica-Bold"
func isBoldFont(name string) bool {
	if i := strings.IndexByte(name, '+'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "demi", "semibold"} {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
