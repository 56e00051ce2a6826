package source

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	docxDocumentPart = "word/document.xml"
	docxStylesPart   = "word/styles.xml"

	// docxDefaultSize is Word's default body size in points
	docxDefaultSize = 11.0

	// maxStyleDepth bounds basedOn chains
	maxStyleDepth = 16
)

// stylesXML is the subset of word/styles.xml used for size and weight
type stylesXML struct {
	XMLName     xml.Name `xml:"styles"`
	DocDefaults struct {
		RPrDefault struct {
			RPr runPropsXML `xml:"rPr"`
		} `xml:"rPrDefault"`
	} `xml:"docDefaults"`
	Styles []styleXML `xml:"style"`
}

type styleXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Name    valXML `xml:"name"`
	BasedOn valXML `xml:"basedOn"`
	PPr     struct {
		OutlineLvl *valXML `xml:"outlineLvl"`
	} `xml:"pPr"`
	RPr runPropsXML `xml:"rPr"`
}

type runPropsXML struct {
	Bold *valXML `xml:"b"`
	Size *valXML `xml:"sz"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// paragraphStyle is a resolved paragraph style
type paragraphStyle struct {
	level int // heading level, 0 for body text
	size  float64
	bold  bool
	list  bool
}

// docxStyles resolves paragraph styles by ID
type docxStyles struct {
	byID        map[string]styleXML
	defaultSize float64
}

func newDocxStyles(sx *stylesXML) *docxStyles {
	s := &docxStyles{byID: make(map[string]styleXML), defaultSize: docxDefaultSize}
	if sx == nil {
		return s
	}
	if size, ok := halfPoints(sx.DocDefaults.RPrDefault.RPr.Size); ok {
		s.defaultSize = size
	}
	for _, st := range sx.Styles {
		if st.Type == "" || st.Type == "paragraph" {
			s.byID[st.StyleID] = st
		}
	}
	return s
}

// resolve walks the basedOn chain. The nearest style that sets a property
// wins.
func (s *docxStyles) resolve(id string) paragraphStyle {
	ps := paragraphStyle{level: headingLevel(id, "")}
	sizeSet, boldSet := false, false

	for depth := 0; id != "" && depth < maxStyleDepth; depth++ {
		st, ok := s.byID[id]
		if !ok {
			break
		}
		if ps.level == 0 {
			ps.level = headingLevel(st.StyleID, st.Name.Val)
		}
		if ps.level == 0 && st.PPr.OutlineLvl != nil {
			if n, err := strconv.Atoi(st.PPr.OutlineLvl.Val); err == nil && n >= 0 && n < 9 {
				ps.level = n + 1
			}
		}
		if strings.HasPrefix(strings.ToLower(st.Name.Val), "list") {
			ps.list = true
		}
		if size, ok := halfPoints(st.RPr.Size); ok && !sizeSet {
			ps.size, sizeSet = size, true
		}
		if st.RPr.Bold != nil && !boldSet {
			ps.bold, boldSet = onOff(st.RPr.Bold), true
		}
		id = st.BasedOn.Val
	}

	if !sizeSet {
		ps.size = s.defaultSize
		if ps.level > 0 {
			ps.size = headingSizes["h"+strconv.Itoa(min(ps.level, 6))]
		}
	}
	if ps.level > 0 && !boldSet {
		ps.bold = true
	}
	return ps
}

// headingLevel recognizes the built-in heading and title styles
func headingLevel(id, name string) int {
	for _, s := range []string{id, name} {
		s = strings.ReplaceAll(strings.ToLower(s), " ", "")
		if s == "title" {
			return 1
		}
		if rest, ok := strings.CutPrefix(s, "heading"); ok {
			if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 9 {
				return n
			}
		}
	}
	return 0
}

// halfPoints converts a w:sz value to points
func halfPoints(v *valXML) (float64, bool) {
	if v == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(v.Val, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n / 2, true
}

// onOff reads an OOXML toggle, which is on when present without a value
func onOff(v *valXML) bool {
	switch strings.ToLower(v.Val) {
	case "0", "false", "off":
		return false
	}
	return true
}

// docxRun is one run of a paragraph
type docxRun struct {
	text strings.Builder
	bold *bool
	size float64
}

// docxParagraph accumulates a w:p element
type docxParagraph struct {
	styleID string
	list    bool
	runs    []*docxRun
}

// ReadDOCX reads the paragraphs of a Word document. Each paragraph becomes
// zero-geometry blocks like the HTML adapter: headings and title styles get
// a larger size, runs set entirely in bold make a bold line, and numbered or
// bulleted paragraphs are prefixed with a bullet.
func ReadDOCX(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	var sx *stylesXML
	if f := findZipFile(zr, docxStylesPart); f != nil {
		sx = &stylesXML{}
		if err := decodeZipXML(f, sx); err != nil {
			// Styles are optional
			sx = nil
		}
	}
	styles := newDocxStyles(sx)

	f := findZipFile(zr, docxDocumentPart)
	if f == nil {
		return nil, fmt.Errorf("missing required file: %s", docxDocumentPart)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", docxDocumentPart, err)
	}
	defer rc.Close()

	w := &blockWriter{}
	if err := walkDocument(xml.NewDecoder(rc), func(p *docxParagraph) {
		writeParagraph(w, p, styles)
	}); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docxDocumentPart, err)
	}
	return w.document(DOCX), nil
}

// walkDocument streams document.xml and calls emit for every paragraph in
// document order, including paragraphs inside table cells
func walkDocument(dec *xml.Decoder, emit func(*docxParagraph)) error {
	var para *docxParagraph
	var run *docxRun
	inPPr, inRPr, inText := false, false, false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para = &docxParagraph{}
			case "pPr":
				inPPr = true
			case "pStyle":
				if para != nil && inPPr {
					para.styleID = attr(t, "val")
				}
			case "numPr":
				if para != nil && inPPr {
					para.list = true
				}
			case "r":
				if para != nil && !inPPr {
					run = &docxRun{}
				}
			case "rPr":
				inRPr = run != nil
			case "b":
				if inRPr {
					bold := onOff(&valXML{Val: attr(t, "val")})
					run.bold = &bold
				}
			case "sz":
				if inRPr {
					if size, ok := halfPoints(&valXML{Val: attr(t, "val")}); ok {
						run.size = size
					}
				}
			case "t":
				inText = run != nil
			case "tab":
				if run != nil && !inRPr {
					run.text.WriteByte('\t')
				}
			case "br", "cr":
				if run != nil {
					run.text.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText {
				run.text.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "pPr":
				inPPr = false
			case "rPr":
				inRPr = false
			case "t":
				inText = false
			case "r":
				if para != nil && run != nil {
					para.runs = append(para.runs, run)
				}
				run = nil
			case "p":
				if para != nil {
					emit(para)
				}
				para = nil
			}
		}
	}
}

// writeParagraph turns one paragraph into blocks
func writeParagraph(w *blockWriter, p *docxParagraph, styles *docxStyles) {
	ps := styles.resolve(p.styleID)

	var sb strings.Builder
	size := 0.0
	bold, inked := true, false
	for _, r := range p.runs {
		text := r.text.String()
		sb.WriteString(text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		inked = true
		size = max(size, r.size)
		runBold := ps.bold
		if r.bold != nil {
			runBold = *r.bold
		}
		bold = bold && runBold
	}
	if size == 0 {
		size = ps.size
	}

	text := strings.TrimSpace(sb.String())
	switch {
	case !inked || text == "":
		w.gap()
	case ps.level > 0:
		w.gap()
		w.emit(text, size, bold)
		w.gap()
	case p.list || ps.list:
		w.emit("• "+text, size, bold)
	default:
		w.emit(text, size, bold)
	}
}

func findZipFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func decodeZipXML(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}

func attr(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
