// Package layout rebuilds reading-order text from positioned text blocks.
//
// OCR engines and PDF text layers emit blocks in whatever order they found
// them. A [Reorderer] runs each document through a fixed sequence of stages:
//
//	Ungrouped -> LineGrouped -> Sorted -> HeaderValidated -> Final
//
// Each stage has its own method on [Document] and calling one out of order
// returns [ErrStageOrder]; [Reorderer.Reorder] runs them all.
//
// # Lines
//
// Blocks on the same page whose boxes overlap vertically by at least half of
// the shorter height form a line. Lines are sorted by page and top edge,
// blocks within a line by left edge. Blocks without geometry (for example
// from [model.BlocksFromText]) each form their own line and keep their order.
//
// # Header Validation
//
// OCR often splits a word so that its first part looks like a section header:
// "OBJECTIVE" followed by "s with lower requirements.". A header candidate
// that runs straight into a lowercase or numeric continuation, with no
// newline, bullet, punctuation, blank block, line change or word gap between
// them, is merged back into one string. Other candidates are marked with
// IsHeader and their section key.
//
// # Output
//
// The final text puts a blank line around headers, between pages and where a
// vertical gap is well above the median line gap. [Document.Hints] carries
// per-line font size and weight for the header scorer.
package layout
