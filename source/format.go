package source

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is an input file format
type Format int

const (
	Unknown Format = iota
	Text
	PDF
	HTML
	Image
	Blocks
	DOCX
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case PDF:
		return "pdf"
	case HTML:
		return "html"
	case Image:
		return "image"
	case Blocks:
		return "blocks"
	case DOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// Detect determines the format from a filename extension
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text", ".md":
		return Text
	case ".pdf":
		return PDF
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		return Image
	case ".json":
		return Blocks
	case ".docx":
		return DOCX
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes. It returns Unknown when the bytes
// are not conclusive.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")),
		bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}),
		bytes.HasPrefix(data, []byte("II*\x00")),
		bytes.HasPrefix(data, []byte("MM\x00*")),
		bytes.HasPrefix(data, []byte("BM")):
		return Image
	case looksLikeHTML(data):
		return HTML
	}
	return Unknown
}

func looksLikeHTML(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	head := strings.ToUpper(string(data[:min(len(data), 512)]))

	if strings.HasPrefix(head, "<!DOCTYPE HTML") || strings.HasPrefix(head, "<HTML") {
		return true
	}
	// XHTML
	return strings.HasPrefix(head, "<?XML") && strings.Contains(head, "<HTML")
}
