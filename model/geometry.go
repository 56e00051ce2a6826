package model

import "math"

// BBox represents a bounding box in image coordinates: X grows to the right
// and Y grows downward, so Y is the top edge.
type BBox struct {
	X      float64 `json:"x"`      // Left
	Y      float64 `json:"y"`      // Top
	Width  float64 `json:"width"`  // Horizontal extent
	Height float64 `json:"height"` // Vertical extent
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	if b.IsZero() {
		return other
	}
	if other.IsZero() {
		return b
	}

	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// VerticalOverlap returns the overlap of the two boxes' vertical extents
// divided by the shorter height. Boxes with no height never overlap.
func (b BBox) VerticalOverlap(other BBox) float64 {
	minHeight := math.Min(b.Height, other.Height)
	if minHeight <= 0 {
		return 0
	}

	overlap := math.Min(b.Bottom(), other.Bottom()) - math.Max(b.Top(), other.Top())
	if overlap <= 0 {
		return 0
	}

	return overlap / minHeight
}

// HorizontalGap returns the distance from the right edge of b to the left
// edge of other. Negative values mean the boxes overlap horizontally.
func (b BBox) HorizontalGap(other BBox) float64 {
	return other.Left() - b.Right()
}

// IsZero returns true if every coordinate is zero
func (b BBox) IsZero() bool {
	return b.X == 0 && b.Y == 0 && b.Width == 0 && b.Height == 0
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}
