package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an encoded image in any registered format. Bytes that are not
// a known image yield ErrorFormat.
func Decode(r io.Reader) (image.Image, *Attr, error) {
	rr := asReader(r)
	head, err := readHead(rr)
	if err != nil {
		return nil, nil, err
	}
	if GuessType(head) == TYPE_NONE {
		return nil, nil, ErrorFormat
	}

	m, format, err := image.Decode(rr)
	if err != nil {
		if err == image.ErrFormat {
			return nil, nil, ErrorFormat
		}
		return nil, nil, fmt.Errorf("decode %s: %w", GuessType(head), err)
	}
	b := m.Bounds()
	if b.Empty() {
		return nil, nil, ErrEmptyImage
	}
	return m, NewAttr(uint(b.Dx()), uint(b.Dy()), format), nil
}

// DecodeBytes ...
func DecodeBytes(data []byte) (image.Image, *Attr, error) {
	m, ia, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	ia.Size = Size(len(data))
	return m, ia, nil
}

// ReadAttr decodes only the header of a file
func ReadAttr(filename string) (*Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rr := asReader(f)
	head, err := readHead(rr)
	if err != nil {
		return nil, err
	}
	if GuessType(head) == TYPE_NONE {
		return nil, ErrorFormat
	}
	cfg, format, err := image.DecodeConfig(rr)
	if err != nil {
		return nil, err
	}
	ia := NewAttr(uint(cfg.Width), uint(cfg.Height), format)
	if fi, err := f.Stat(); err == nil {
		ia.Size = Size(fi.Size())
	}
	return ia, nil
}
