package image

import "io"

// CountWriter ...
type CountWriter struct {
	w io.Writer
	n int64
}

// NewCountWriter wraps w, a nil w only counts
func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{w: w}
}

// Write implements for io.Writer
func (cw *CountWriter) Write(p []byte) (n int, err error) {
	if cw.w == nil {
		n = len(p)
	} else {
		n, err = cw.w.Write(p)
	}
	cw.n += int64(n)
	return
}

// Len return count value
func (cw *CountWriter) Len() int64 {
	return cw.n
}
