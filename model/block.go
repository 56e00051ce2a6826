package model

import "strings"

// TextBlock is one recognized text run with its position on the page.
// Blocks come from an OCR engine or a PDF text layer; when no spatial data
// is available they are synthesized from plain lines with zero geometry.
type TextBlock struct {
	// Text is the recognized text of the run
	Text string `json:"text"`

	// Page is the 0-based page index
	Page int `json:"page"`

	// X0 and Y0 are the top-left corner in image coordinates
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`

	// Width and Height are the extent of the run
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// FontSize is the font size in points (0 when unknown)
	FontSize float64 `json:"font_size,omitempty"`

	// Bold is true when the run was rendered in a bold face
	Bold bool `json:"bold,omitempty"`

	// IsHeader is set by header validation during reordering
	IsHeader bool `json:"is_header,omitempty"`

	// Section is the key of the section the block belongs to, taken from the
	// nearest validated header at or before it
	Section string `json:"section,omitempty"`
}

// X1 returns the right edge of the block
func (b TextBlock) X1() float64 {
	return b.X0 + b.Width
}

// Y1 returns the bottom edge of the block
func (b TextBlock) Y1() float64 {
	return b.Y0 + b.Height
}

// BBox returns the block's bounding box
func (b TextBlock) BBox() BBox {
	return NewBBox(b.X0, b.Y0, b.Width, b.Height)
}

// HasGeometry returns true if the block carries a usable bounding box
func (b TextBlock) HasGeometry() bool {
	return b.Width > 0 && b.Height > 0
}

// BlocksFromText synthesizes one zero-geometry block per line of text.
// Blank lines are kept as empty blocks so paragraph breaks survive reordering.
func BlocksFromText(text string) []TextBlock {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	blocks := make([]TextBlock, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, TextBlock{Text: line})
	}
	return blocks
}
