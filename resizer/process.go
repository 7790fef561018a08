package resizer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-imsto/imprep/hash"
	cimg "github.com/go-imsto/imprep/image"
	"github.com/go-imsto/imprep/utils"
)

// pending is a decoded, resampled and encoded source waiting for its number
type pending struct {
	src  string
	hash string
	attr *cimg.Attr
	data []byte
	err  error
}

func (r *Resizer) fail(p *pending, stage Stage, err error) *pending {
	p.err = &ProcessError{Path: p.src, Stage: stage, Err: err}
	return p
}

// prepare runs everything that does not depend on the counter. It is safe to
// call concurrently.
func (r *Resizer) prepare(src string) *pending {
	p := &pending{src: src}
	data, err := os.ReadFile(src)
	if err != nil {
		return r.fail(p, StageRead, err)
	}
	if r.cfg.Dedup || r.cfg.Manifest != "" {
		p.hash = hash.SumContent(data)
	}

	m, ia, err := cimg.DecodeBytes(data)
	if err != nil {
		return r.fail(p, StageDecode, err)
	}
	p.attr = ia

	out, err := cimg.Resample(m, r.ropt)
	if err != nil {
		return r.fail(p, StageResample, err)
	}

	var buf bytes.Buffer
	if _, err = cimg.EncodePNG(&buf, out, r.level); err != nil {
		return r.fail(p, StageEncode, err)
	}
	p.data = buf.Bytes()
	return p
}

// commit numbers and writes a prepared file. The counter only moves when the
// write succeeds.
func (r *Resizer) commit(outDir string, p *pending) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := Result{Source: p.src, Attr: p.attr, Hash: p.hash}
	if p.err == nil && r.cfg.Dedup {
		if first, ok := r.seen[p.hash]; ok {
			p.err = &ProcessError{Path: p.src, Stage: StageDuplicate,
				Err: fmt.Errorf("%w: same as %s", ErrDuplicate, first)}
		}
	}
	if p.err == nil {
		dest := filepath.Join(outDir, fmt.Sprintf("%d.png", r.counters[outDir]))
		if err := utils.SaveFile(dest, p.data); err != nil {
			p.err = &ProcessError{Path: p.src, Stage: StageWrite, Err: err}
		} else {
			r.counters[outDir]++
			if r.cfg.Dedup {
				r.seen[p.hash] = p.src
			}
			res.Status = StatusResized
			res.Output = dest
			res.Bytes = int64(len(p.data))
		}
	}

	if p.err != nil {
		res.Status = StatusSkipped
		res.Err = p.err
		r.logger.Warnw("missed it", "src", p.src, "err", p.err)
	} else {
		r.logger.Debugw("resized", "src", p.src, "out", res.Output, "bytes", res.Bytes)
		if r.manifest != nil {
			if err := r.manifest.Add(r.src, r.out, res); err != nil {
				r.logger.Warnw("manifest write fail", "src", p.src, "err", err)
			}
		}
	}
	if r.observer != nil {
		r.observer(res)
	}
	return res
}

// ProcessFile handles a single source file under the source root, numbering
// after whatever the last Run or ProcessFile wrote to the same directory.
func (r *Resizer) ProcessFile(src string) (Result, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return Result{}, err
	}
	if !utils.IsRegular(src) {
		return Result{}, fmt.Errorf("%s is not a regular file", src)
	}
	dir := filepath.Dir(src)
	if !utils.Within(r.src, dir) || r.underOutput(dir) {
		return Result{}, fmt.Errorf("%s is outside of %s", src, r.src)
	}
	if !r.cfg.Recursive && dir != r.src {
		return Result{}, fmt.Errorf("%s is in a subdirectory and recursion is off", src)
	}
	outDir, err := r.outDir(dir)
	if err != nil {
		return Result{}, err
	}
	if err = os.MkdirAll(outDir, os.FileMode(0755)); err != nil {
		return Result{}, err
	}

	r.mu.Lock()
	if r.counters == nil {
		r.counters = make(map[string]int)
		r.seen = make(map[string]string)
	}
	r.mu.Unlock()

	return r.commit(outDir, r.prepare(src)), nil
}
