package image

import (
	"errors"
)

var (
	ErrorFormat    = errors.New("Invalid or unsupported Image Format")
	ErrEmptyImage  = errors.New("Image has empty bounds")
	ErrInvalidSize = errors.New("invalid image size format")
	ErrFilter      = errors.New("unknown resample filter")
)
