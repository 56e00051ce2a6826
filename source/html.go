package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// bodyFontSize is the nominal size of body text. Headings are scaled from
// it so the scorer's font feature sees them as larger.
const bodyFontSize = 12.0

var headingSizes = map[string]float64{
	"h1": 24,
	"h2": 20,
	"h3": 16,
	"h4": 14,
	"h5": 13,
	"h6": 12.5,
}

// ReadHTML parses an HTML resume into one block per rendered line. Blocks
// carry no geometry; headings get a larger font size, and lines set
// entirely in b or strong are bold. Blank blocks separate paragraphs.
func ReadHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	w := &htmlWalker{}
	w.walk(body)
	return w.document(HTML), nil
}

type htmlWalker struct {
	blockWriter
}

func (w *htmlWalker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.emit(n.Data, bodyFontSize, false)
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			w.gap()
			w.emit(textContent(n), headingSizes[n.Data], true)
			w.gap()
			return

		case "p", "blockquote", "pre", "div", "section", "article", "header", "footer", "main", "aside":
			if !isBlockContainer(n) {
				w.emit(textContent(n), bodyFontSize, allBold(n, false))
				if n.Data != "div" {
					w.gap()
				}
				return
			}

		case "li":
			if text := directText(n); text != "" {
				w.emit("• "+text, bodyFontSize, allBold(n, false))
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					w.walk(c)
				}
			}
			return

		case "ul", "ol", "table":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				w.walk(c)
			}
			w.gap()
			return

		case "tr":
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					if text := textContent(c); text != "" {
						cells = append(cells, strings.Join(strings.Fields(text), " "))
					}
				}
			}
			w.emit(strings.Join(cells, " "), bodyFontSize, allBold(n, false))
			return

		case "hr":
			w.gap()
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

// shouldSkipElement returns true for elements with no readable content
func shouldSkipElement(tag string) bool {
	switch tag {
	case "head", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlockContainer returns true if the element has block-level children
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6",
			"blockquote", "pre", "article", "section", "header", "footer":
			return true
		}
	}
	return false
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent returns the text under n with br as a line break
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// directText returns the text of n without nested lists
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		collectText(c, &sb)
	}
	return strings.TrimSpace(sb.String())
}

// allBold returns true if n has text and all of it is inside b or strong
func allBold(n *html.Node, inBold bool) bool {
	hasText, bold := boldText(n, inBold)
	return hasText && bold
}

func boldText(n *html.Node, inBold bool) (hasText, bold bool) {
	if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) == "" {
			return false, true
		}
		return true, inBold
	}
	if n.Type == html.ElementNode && (n.Data == "b" || n.Data == "strong") {
		inBold = true
	}

	bold = true
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t, b := boldText(c, inBold)
		hasText = hasText || t
		bold = bold && b
	}
	return hasText, bold
}
