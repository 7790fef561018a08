package resizer

import (
	"errors"
	"fmt"
	"time"

	cimg "github.com/go-imsto/imprep/image"
)

// Status of one source file
type Status int

const (
	StatusResized Status = iota
	StatusSkipped
)

func (s Status) String() string {
	if s == StatusResized {
		return "resized"
	}
	return "skipped"
}

// Stage where processing of a file stopped
type Stage string

const (
	StageRead      Stage = "read"
	StageDecode    Stage = "decode"
	StageResample  Stage = "resample"
	StageEncode    Stage = "encode"
	StageWrite     Stage = "write"
	StageDuplicate Stage = "duplicate"
)

// ErrDuplicate marks a source identical to one already written in this run
var ErrDuplicate = errors.New("duplicate content")

// ProcessError is the single failure kind for a source file. It never stops
// a run.
type ProcessError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Stage, e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Result of one source file
type Result struct {
	Status Status
	Source string
	Output string     // empty when skipped
	Attr   *cimg.Attr // source attributes, nil if not decoded
	Hash   string     // source fingerprint, when dedup or manifest is on
	Bytes  int64      // encoded PNG size
	Err    error      // *ProcessError when skipped
}

// Stage returns where a skipped file stopped
func (r Result) Stage() Stage {
	var pe *ProcessError
	if errors.As(r.Err, &pe) {
		return pe.Stage
	}
	return ""
}

// Report aggregates the results of a run
type Report struct {
	Results []Result
	Resized int
	Skipped int
	Bytes   int64
	Dirs    map[string]int // output dir -> files written
	Elapsed time.Duration
}

func newReport() *Report {
	return &Report{Dirs: make(map[string]int)}
}

func (r *Report) add(dir string, res Result) {
	r.Results = append(r.Results, res)
	if res.Status == StatusResized {
		r.Resized++
		r.Bytes += res.Bytes
		r.Dirs[dir]++
		return
	}
	r.Skipped++
}

// Failures returns the skipped results
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusSkipped {
			out = append(out, res)
		}
	}
	return out
}
