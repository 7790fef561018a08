package resizer

import (
	"time"

	zlog "github.com/go-imsto/imprep/log"
)

type Option func(*Resizer)

func WithLogger(l zlog.Logger) func(*Resizer) {
	return func(r *Resizer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSettle sets how long a watched file must stay unchanged before it is
// processed
func WithSettle(d time.Duration) func(*Resizer) {
	return func(r *Resizer) {
		if d > 0 {
			r.settle = d
		}
	}
}

// WithObserver is called with every result, in commit order
func WithObserver(fn func(Result)) func(*Resizer) {
	return func(r *Resizer) {
		r.observer = fn
	}
}
