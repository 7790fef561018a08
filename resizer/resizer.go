// Package resizer walks a source tree and writes every decodable image as a
// fixed size PNG named by a per directory counter.
package resizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	cimg "github.com/go-imsto/imprep/image"
	zlog "github.com/go-imsto/imprep/log"
	"github.com/go-imsto/imprep/utils"
)

const defaultSettle = 500 * time.Millisecond

// Resizer runs a Config. A Resizer is reusable, each Run starts numbering
// from zero again.
type Resizer struct {
	cfg   Config
	src   string
	out   string
	ropt  cimg.ResampleOption
	level cimg.CompressionLevel

	logger   zlog.Logger
	settle   time.Duration
	observer func(Result)

	mu       sync.Mutex
	ran      bool
	counters map[string]int    // output dir -> next number
	seen     map[string]string // fingerprint -> first source
	manifest *manifest
}

// New validates cfg
func New(cfg Config, opts ...Option) (*Resizer, error) {
	src, out, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	filter, err := cimg.ParseFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	level, err := cimg.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	r := &Resizer{
		cfg:    cfg,
		src:    src,
		out:    out,
		level:  level,
		logger: zlog.Get(),
		settle: defaultSettle,
		ropt: cimg.ResampleOption{
			Width:  cfg.Width,
			Height: cfg.Height,
			Mode:   cfg.Mode,
			Filter: filter,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Config returns the normalized config
func (r *Resizer) Config() Config {
	return r.cfg
}

// Run processes the whole source tree once. Per file failures are recorded in
// the report; the error is only for problems with the run itself.
func (r *Resizer) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	fi, err := os.Stat(r.src)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", r.cfg.Source)
	}
	if err = os.MkdirAll(r.out, os.FileMode(0755)); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.counters = make(map[string]int)
	r.seen = make(map[string]string)
	if r.manifest != nil {
		r.manifest.Close()
		r.manifest = nil
	}
	if r.cfg.Manifest != "" {
		if r.manifest, err = openManifest(r.cfg.Manifest); err != nil {
			r.mu.Unlock()
			return nil, err
		}
	}
	r.ran = true
	r.mu.Unlock()

	r.logger.Infow("run start", "src", r.src, "out", r.out,
		"size", r.ropt.String(), "recursive", r.cfg.Recursive, "workers", r.cfg.Workers)

	rep := newReport()
	err = r.visit(ctx, r.src, rep)
	rep.Elapsed = time.Since(start)
	if err != nil {
		r.logger.Warnw("run stopped", "err", err, "resized", rep.Resized, "skipped", rep.Skipped)
		return rep, err
	}
	r.logger.Infow("run done", "resized", rep.Resized, "skipped", rep.Skipped,
		"bytes", rep.Bytes, "dirs", len(rep.Dirs), "elapsed", rep.Elapsed)
	return rep, nil
}

// Close releases the manifest file
func (r *Resizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.manifest != nil {
		err := r.manifest.Close()
		r.manifest = nil
		return err
	}
	return nil
}

// visit handles the files of dir first, then its subdirectories
func (r *Resizer) visit(ctx context.Context, dir string, rep *Report) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == r.src {
			return err
		}
		r.logger.Warnw("read dir fail", "dir", dir, "err", err)
		return nil
	}

	outDir, err := r.outDir(dir)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(outDir, os.FileMode(0755)); err != nil {
		if dir == r.src {
			return err
		}
		r.logger.Warnw("mkdir fail", "dir", outDir, "err", err)
		return nil
	}
	if _, ok := rep.Dirs[outDir]; !ok {
		rep.Dirs[outDir] = 0
	}

	var files, dirs []string
	for _, ent := range entries {
		p := filepath.Join(dir, ent.Name())
		switch {
		case ent.Type().IsRegular():
			files = append(files, p)
		case ent.IsDir() && r.cfg.Recursive && !r.isOutput(p):
			dirs = append(dirs, p)
		}
	}

	if err = r.processFiles(ctx, outDir, files, rep); err != nil {
		return err
	}

	for _, d := range dirs {
		if err = r.visit(ctx, d, rep); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resizer) processFiles(ctx context.Context, outDir string, files []string, rep *Report) error {
	if r.cfg.Workers <= 1 {
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep.add(outDir, r.commit(outDir, r.prepare(f)))
		}
		return nil
	}

	// decode and encode in parallel, number and write in listing order
	pendings := make([]*pending, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pendings[i] = r.prepare(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range pendings {
		rep.add(outDir, r.commit(outDir, p))
	}
	return nil
}

// outDir maps a source directory to its output directory
func (r *Resizer) outDir(dir string) (string, error) {
	rel, err := filepath.Rel(r.src, dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.out, rel), nil
}

func (r *Resizer) isOutput(p string) bool {
	return p == r.out
}

// underOutput reports whether dir is inside an output root nested in the
// source root
func (r *Resizer) underOutput(dir string) bool {
	return utils.Within(r.src, r.out) && utils.Within(r.out, dir)
}
