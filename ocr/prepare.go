package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// decoders for image.Decode
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

const (
	// minOCRWidth is the width below which images are upscaled
	minOCRWidth = 2000

	upscaleFactor = 2
)

// Prepared is an image ready for recognition
type Prepared struct {
	// Data is the PNG encoded grayscale image
	Data []byte

	Width  int
	Height int

	// Scale is the factor applied to the source size
	Scale float64
}

// Prepare decodes an image (PNG, JPEG, TIFF or BMP), converts it to
// grayscale and doubles its size with Catmull-Rom resampling when it is
// narrower than 2000 pixels. Small scans recognize noticeably better at the
// larger size.
func Prepare(data []byte) (*Prepared, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)

	out := gray
	scale := 1.0
	if bounds.Dx() < minOCRWidth {
		scale = upscaleFactor
		out = image.NewGray(image.Rect(0, 0, bounds.Dx()*upscaleFactor, bounds.Dy()*upscaleFactor))
		draw.CatmullRom.Scale(out, out.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return &Prepared{
		Data:   buf.Bytes(),
		Width:  out.Bounds().Dx(),
		Height: out.Bounds().Dy(),
		Scale:  scale,
	}, nil
}
