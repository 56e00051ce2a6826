// Package source turns input files into raw text and positioned blocks for
// the extraction pipeline.
//
// Adapters:
//
//   - [FromText]: plain text, no blocks
//   - [ReadPDF] and [OpenPDF]: the PDF text layer, one block per word run
//     with page-relative top-left coordinates, font size and a bold guess
//     from the font name
//   - [ReadHTML]: one zero-geometry block per rendered line, with heading
//     sizes and bold runs
//   - [ReadDOCX]: Word paragraphs as zero-geometry blocks, sized from
//     heading and title styles
//   - [ReadBlocks]: a JSON array of model.TextBlock from an external OCR step
//
// [Open] picks the adapter from the file extension, falling back to the
// leading bytes. Scanned images need the ocr package and return
// [ErrUnsupportedSource] here.
package source
