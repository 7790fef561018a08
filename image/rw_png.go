package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// CompressionLevel of the PNG encoder
type CompressionLevel = png.CompressionLevel

const DefaultCompression = png.DefaultCompression

// ParseCompression maps default, none, speed, best to a png level
func ParseCompression(s string) (CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	}
	return png.DefaultCompression, fmt.Errorf("unknown png compression %q", s)
}

// EncodePNG writes m as PNG and returns the number of bytes written
func EncodePNG(w io.Writer, m image.Image, level CompressionLevel) (int64, error) {
	cw := NewCountWriter(w)
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(cw, m); err != nil {
		return cw.Len(), err
	}
	return cw.Len(), nil
}
