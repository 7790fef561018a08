package image

import (
	"fmt"
	"mime"
)

type Dimension uint32
type Size uint32

// Attr ...
type Attr struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Size   Size      `json:"size,omitempty"`
	Format string    `json:"format,omitempty"`
	Ext    string    `json:"ext,omitempty"`
	Mime   string    `json:"mime,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%s %dx%d %d bytes", a.Format, a.Width, a.Height, a.Size)
}

// export NewAttr
func NewAttr(w, h uint, format string) *Attr {
	a := &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
		Format: format,
	}
	if format != "" {
		a.Ext = formatExt(format)
		a.Mime = mime.TypeByExtension(a.Ext)
	}
	return a
}

func formatExt(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	default:
		return "." + format
	}
}
