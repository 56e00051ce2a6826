// Package ocr recognizes word boxes in scanned resume images and returns
// them as blocks for the extraction pipeline.
//
// This package wraps the Tesseract OCR engine via gosseract and is only
// compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag every Client method returns ErrOCRNotEnabled. Tesseract
// must be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// [Prepare] works in both builds.
package ocr
