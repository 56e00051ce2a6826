// Package model defines the data passed between the stages of resume
// section extraction.
//
// # Text Blocks
//
// A [TextBlock] is one recognized text run with its page index and bounding
// box. OCR engines and PDF text layers produce them; [BlocksFromText]
// synthesizes zero-geometry blocks from plain text:
//
//	blocks := model.BlocksFromText(raw)
//
// # Sections
//
// Extraction returns [Section] values keyed by a unique section key. Each
// carries a [SectionType], a confidence in [0, 1], the section content and
// the header line as it originally appeared.
//
// # Geometry
//
// [BBox] uses image coordinates (Y grows downward) and provides the vertical
// overlap measure used to group blocks into lines.
package model
