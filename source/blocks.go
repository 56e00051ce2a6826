package source

import (
	"strings"

	"github.com/tsawler/vitae/model"
)

// blockWriter collects zero-geometry blocks for adapters that see
// paragraphs rather than positions. Blank blocks mark paragraph gaps.
type blockWriter struct {
	blocks []model.TextBlock
}

// emit adds one block per non-blank line of text
func (w *blockWriter) emit(text string, size float64, bold bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		w.blocks = append(w.blocks, model.TextBlock{Text: line, FontSize: size, Bold: bold})
	}
}

// gap adds a blank block unless the last block already is one
func (w *blockWriter) gap() {
	if n := len(w.blocks); n > 0 && w.blocks[n-1].Text != "" {
		w.blocks = append(w.blocks, model.TextBlock{})
	}
}

// document drops trailing gaps and joins the blocks into text
func (w *blockWriter) document(format Format) *Document {
	blocks := w.blocks
	for len(blocks) > 0 && blocks[len(blocks)-1].Text == "" {
		blocks = blocks[:len(blocks)-1]
	}

	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Text
	}
	return &Document{Format: format, Text: strings.Join(lines, "\n"), Blocks: blocks}
}
