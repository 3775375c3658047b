// Package flatecodec implements the raw DEFLATE codec used to compress
// payload blocks (spec.md §4.2). A fresh codec is used per buffer; no
// state survives across calls.
package flatecodec

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses p with raw DEFLATE (no zlib wrapper) at best
// compression and returns the compressed bytes.
func Deflate(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("flatecodec: create writer: %w", err)
	}
	if _, err := w.Write(p); err != nil {
		return nil, fmt.Errorf("flatecodec: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flatecodec: finish: %w", err)
	}
	return buf.Bytes(), nil
}

// Inflate decompresses raw DEFLATE data, the inverse of Deflate. It
// exists for the round-trip tests in spec.md §8 and for any future
// reading collaborator that wants this package's exact codec settings.
func Inflate(p []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(p))
	defer r.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("flatecodec: read: %w", err)
	}
	return buf.Bytes(), nil
}
