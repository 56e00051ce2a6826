package ocr

import (
	"errors"
	"image"
	"strings"

	"github.com/tsawler/vitae/model"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode controls how Tesseract analyzes the page layout
type PageSegMode int

const (
	PSM_AUTO          PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK  PageSegMode = 6  // Single uniform block of text
	PSM_SPARSE_TEXT   PageSegMode = 11 // Find as much text as possible
)

// Config holds recognition settings
type Config struct {
	// Language is a "+" separated list of Tesseract languages
	// Default: "eng"
	Language string

	// PageSegMode is the layout analysis mode
	// Default: PSM_AUTO
	PageSegMode PageSegMode

	// MinConfidence drops words Tesseract is less sure of (0-100)
	// Default: 30
	MinConfidence float64

	// Prepare upscales and grayscales images before recognition
	// Default: true
	Prepare bool
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Language:      "eng",
		PageSegMode:   PSM_AUTO,
		MinConfidence: 30,
		Prepare:       true,
	}
}

// Word is one recognized word with its pixel box
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// wordsToBlocks converts recognized words into blocks on page. Boxes are
// divided by scale to undo preparation upscaling. Box height stands in for
// the font size so relative sizes survive.
func wordsToBlocks(words []Word, page int, scale, minConfidence float64) []model.TextBlock {
	if scale <= 0 {
		scale = 1
	}

	blocks := make([]model.TextBlock, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" || w.Confidence < minConfidence || w.Box.Empty() {
			continue
		}
		height := float64(w.Box.Dy()) / scale
		blocks = append(blocks, model.TextBlock{
			Text:     text,
			Page:     page,
			X0:       float64(w.Box.Min.X) / scale,
			Y0:       float64(w.Box.Min.Y) / scale,
			Width:    float64(w.Box.Dx()) / scale,
			Height:   height,
			FontSize: height,
		})
	}
	return blocks
}
