package source

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

const testStyles = `<?xml version="1.0" encoding="UTF-8"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:sz w:val="32"/></w:rPr></w:style>
  <w:style w:type="paragraph" w:styleId="SectionTitle"><w:name w:val="Section Title"/><w:basedOn w:val="Heading1"/><w:rPr><w:b w:val="0"/></w:rPr></w:style>
  <w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/></w:style>
</w:styles>`

const testDocument = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">jane@example.com </w:t></w:r><w:r><w:t>| Boston</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Experience</w:t></w:r></w:p>
    <w:p><w:pPr><w:pStyle w:val="ListBullet"/></w:pPr><w:r><w:t>Built APIs</w:t></w:r></w:p>
    <w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>Led a team</w:t></w:r></w:p>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>Acme Corp</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
    <w:p><w:pPr><w:pStyle w:val="SectionTitle"/></w:pPr><w:r><w:t>Skills</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go</w:t><w:br/><w:t>SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`

// makeDOCX builds a minimal Word package in memory
func makeDOCX(t *testing.T, parts map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadDOCX(t *testing.T) {
	r := makeDOCX(t, map[string]string{
		docxDocumentPart: testDocument,
		docxStylesPart:   testStyles,
	})

	doc, err := ReadDOCX(r, r.Size())
	if err != nil {
		t.Fatalf("ReadDOCX() error: %v", err)
	}

	want := "Jane Doe\njane@example.com | Boston\n\nExperience\n\n• Built APIs\n• Led a team\nAcme Corp\n\nSkills\n\nGo\nSQL"
	if doc.Text != want {
		t.Errorf("Text = %q, want %q", doc.Text, want)
	}
	if doc.Format != DOCX {
		t.Errorf("Format = %v", doc.Format)
	}

	byText := make(map[string]int)
	for i, b := range doc.Blocks {
		byText[b.Text] = i
	}
	tests := []struct {
		text string
		size float64
		bold bool
	}{
		{"Jane Doe", 18, true},
		{"jane@example.com | Boston", 11, false},
		{"Experience", 16, true},
		{"Skills", 16, false},
		{"• Built APIs", 11, false},
	}
	for _, tt := range tests {
		b := doc.Blocks[byText[tt.text]]
		if b.FontSize != tt.size || b.Bold != tt.bold {
			t.Errorf("%q: size %v bold %v, want %v %v", tt.text, b.FontSize, b.Bold, tt.size, tt.bold)
		}
	}
}

func TestReadDOCXWithoutStyles(t *testing.T) {
	r := makeDOCX(t, map[string]string{
		docxDocumentPart: strings.Replace(testDocument, "Heading1", "Heading2", 1),
	})

	doc, err := ReadDOCX(r, r.Size())
	if err != nil {
		t.Fatalf("ReadDOCX() error: %v", err)
	}
	for _, b := range doc.Blocks {
		if b.Text == "Experience" && (b.FontSize != headingSizes["h2"] || !b.Bold) {
			t.Errorf("built-in heading = %+v", b)
		}
		if b.Text == "Acme Corp" && b.FontSize != docxDefaultSize {
			t.Errorf("body size = %v, want %v", b.FontSize, docxDefaultSize)
		}
	}
}

func TestReadDOCXRejects(t *testing.T) {
	r := makeDOCX(t, map[string]string{"[Content_Types].xml": "<Types/>"})
	if _, err := ReadDOCX(r, r.Size()); err == nil || !strings.Contains(err.Error(), docxDocumentPart) {
		t.Errorf("expected a missing part error, got %v", err)
	}

	data := []byte("not a zip")
	if _, err := ReadDOCX(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("expected an error for non-ZIP input")
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		id, name string
		want     int
	}{
		{"Heading1", "", 1},
		{"", "heading 3", 3},
		{"Title", "", 1},
		{"Normal", "Normal", 0},
		{"Heading10", "", 0},
	}
	for _, tt := range tests {
		if got := headingLevel(tt.id, tt.name); got != tt.want {
			t.Errorf("headingLevel(%q, %q) = %d, want %d", tt.id, tt.name, got, tt.want)
		}
	}
}
