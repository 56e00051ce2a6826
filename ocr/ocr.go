//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/vitae/model"
)

// Client wraps Tesseract for OCR operations. It is not safe for concurrent
// use; create one client per goroutine.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates an OCR client with default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an OCR client with custom configuration
func NewWithConfig(config Config) (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client, config: config}

	if config.Language != "" {
		if err := client.SetLanguage(strings.Split(config.Language, "+")...); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting language: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(config.PageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	return c, nil
}

// Close releases OCR resources. It is safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage returns the text of an image (PNG, TIFF, JPEG, BMP).
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	data, _, err := c.prepare(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeBlocks returns one block per recognized word, in the image's
// coordinates, tagged with page.
func (c *Client) RecognizeBlocks(imageData []byte, page int) ([]model.TextBlock, error) {
	data, scale, err := c.prepare(imageData)
	if err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, len(boxes))
	for i, b := range boxes {
		words[i] = Word{Text: b.Word, Box: b.Box, Confidence: b.Confidence}
	}
	return wordsToBlocks(words, page, scale, c.config.MinConfidence), nil
}

// SetLanguage sets the language(s) for recognition, "+" separated
// (e.g. "eng+fra").
func (c *Client) SetLanguage(lang string) error {
	c.config.Language = lang
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	c.config.PageSegMode = mode
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

func (c *Client) prepare(imageData []byte) ([]byte, float64, error) {
	if !c.config.Prepare {
		return imageData, 1, nil
	}
	p, err := Prepare(imageData)
	if err != nil {
		return nil, 0, err
	}
	return p.Data, p.Scale, nil
}
