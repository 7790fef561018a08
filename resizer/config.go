package resizer

import (
	"errors"
	"fmt"
	"path/filepath"

	cimg "github.com/go-imsto/imprep/image"
)

// Config describes one resize run
type Config struct {
	Source string // source root
	Output string // output root, created when missing

	Width, Height uint
	Mode          rune   // cimg.ModeScale or cimg.ModeCrop
	Filter        string // see cimg.ParseFilter

	Recursive   bool
	Workers     int
	Compression string // default, none, speed, best
	Dedup       bool
	Manifest    string // JSON lines file, optional
}

const (
	defaultDimension = 32
)

var errSameDir = errors.New("source and output must differ")

// SetSize applies a size string like "s64" or "c32x24"
func (c *Config) SetSize(s string) error {
	mode, w, h, err := cimg.ParseSize(s)
	if err != nil {
		return err
	}
	c.Mode, c.Width, c.Height = mode, w, h
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%s -> %s %c%dx%d r=%v", c.Source, c.Output, c.Mode, c.Width, c.Height, c.Recursive)
}

func (c *Config) normalize() (src, out string, err error) {
	if c.Source == "" || c.Output == "" {
		return "", "", errors.New("source and output are required")
	}
	if c.Width == 0 && c.Height == 0 {
		c.Width, c.Height = defaultDimension, defaultDimension
	}
	if c.Width == 0 || c.Height == 0 {
		return "", "", fmt.Errorf("%w: %dx%d", cimg.ErrInvalidSize, c.Width, c.Height)
	}
	if c.Mode == 0 {
		c.Mode = cimg.ModeScale
	}
	if c.Mode != cimg.ModeScale && c.Mode != cimg.ModeCrop {
		return "", "", fmt.Errorf("%w: mode %q", cimg.ErrInvalidSize, c.Mode)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if src, err = filepath.Abs(c.Source); err != nil {
		return
	}
	if out, err = filepath.Abs(c.Output); err != nil {
		return
	}
	if src == out {
		return "", "", errSameDir
	}
	return
}
