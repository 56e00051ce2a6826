package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/vitae/model"
)

// ErrUnsupportedSource is returned for input formats no adapter handles
var ErrUnsupportedSource = errors.New("unsupported source format")

// Document is raw text plus the blocks it was assembled from. Blocks are nil
// for plain text input.
type Document struct {
	Format Format
	Text   string
	Blocks []model.TextBlock
}

// Open reads a file with the adapter for its format. The extension decides;
// the leading bytes are consulted when the extension is unknown. Images need
// OCR and are not handled here.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	format := Detect(path)
	if format == Unknown {
		head := make([]byte, 512)
		n, _ := io.ReadFull(f, head)
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding %s: %w", path, err)
		}
		if format = DetectFromMagic(head[:n]); format == Unknown {
			format = Text
		}
	}

	switch format {
	case Text:
		return FromText(f)
	case PDF, DOCX:
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if format == DOCX {
			return ReadDOCX(f, info.Size())
		}
		return ReadPDF(f, info.Size())
	case HTML:
		return ReadHTML(f)
	case Blocks:
		return ReadBlocks(f)
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedSource, path, format)
	}
}

// FromText reads plain text. No blocks are synthesized; the pipeline works
// on the text directly.
func FromText(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return &Document{Format: Text, Text: string(data)}, nil
}

// ReadBlocks decodes a JSON array of text blocks, as produced by an external
// OCR step
func ReadBlocks(r io.Reader) (*Document, error) {
	var blocks []model.TextBlock
	if err := json.NewDecoder(r).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("decoding blocks: %w", err)
	}
	return &Document{Format: Blocks, Blocks: blocks}, nil
}
