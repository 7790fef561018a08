package image

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// TypeID is a sniffed image container type
type TypeID int

const (
	TYPE_NONE TypeID = iota
	TYPE_GIF
	TYPE_JPEG
	TYPE_PNG
	TYPE_BMP
	TYPE_TIFF
	TYPE_WEBP
)

const (
	SIG_GIF   = "GIF8"
	SIG_JPG   = "\xff\xd8\xff"
	SIG_PNG   = "\211PNG\r\n\032\n"
	SIG_BMP   = "BM"
	SIG_TIFLE = "II*\x00"
	SIG_TIFBE = "MM\x00*"
	SIG_RIFF  = "RIFF"
	SIG_WEBP  = "WEBP"
)

const _head_size = 12

// GuessType sniffs the leading bytes of an encoded image
func GuessType(head []byte) TypeID {
	switch {
	case bytes.HasPrefix(head, []byte(SIG_GIF)):
		return TYPE_GIF
	case bytes.HasPrefix(head, []byte(SIG_JPG)):
		return TYPE_JPEG
	case bytes.HasPrefix(head, []byte(SIG_PNG)):
		return TYPE_PNG
	case bytes.HasPrefix(head, []byte(SIG_TIFLE)), bytes.HasPrefix(head, []byte(SIG_TIFBE)):
		return TYPE_TIFF
	case len(head) >= 12 && bytes.HasPrefix(head, []byte(SIG_RIFF)) && string(head[8:12]) == SIG_WEBP:
		return TYPE_WEBP
	case bytes.HasPrefix(head, []byte(SIG_BMP)):
		return TYPE_BMP
	}

	return TYPE_NONE
}

func ExtByType(it TypeID) string {
	switch it {
	case TYPE_GIF:
		return ".gif"
	case TYPE_JPEG:
		return ".jpg"
	case TYPE_PNG:
		return ".png"
	case TYPE_BMP:
		return ".bmp"
	case TYPE_TIFF:
		return ".tiff"
	case TYPE_WEBP:
		return ".webp"
	default:
		return ""
	}
}

func (t TypeID) String() string {
	if ext := ExtByType(t); ext != "" {
		return ext[1:]
	}
	return "none"
}

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// GuessFile sniffs the type of a file on disk
func GuessFile(filename string) (TypeID, error) {
	file, err := os.Open(filename)
	if err != nil {
		return TYPE_NONE, err
	}
	defer file.Close()

	head, err := readHead(file)
	if err != nil && len(head) == 0 {
		return TYPE_NONE, err
	}
	return GuessType(head), nil
}

// readHead peeks at most _head_size bytes, short files return what they have
func readHead(r io.Reader) ([]byte, error) {
	rr := asReader(r)
	head, err := rr.Peek(_head_size)
	if err == io.EOF || err == bufio.ErrBufferFull {
		err = nil
	}
	return head, err
}
