package resizer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

var errNotRun = errors.New("watch needs a completed Run first")

// Watch keeps processing files that appear in the source tree until ctx is
// done. A file is handled once it has been quiet for the settle duration.
// Numbering continues from the preceding Run.
func (r *Resizer) Watch(ctx context.Context) error {
	r.mu.Lock()
	ran := r.ran
	r.mu.Unlock()
	if !ran {
		return errNotRun
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err = r.watchTree(w, r.src); err != nil {
		return err
	}
	r.logger.Infow("watching", "src", r.src, "recursive", r.cfg.Recursive, "settle", r.settle)

	every := r.settle / 2
	if every <= 0 {
		every = r.settle
	}
	tick := time.NewTicker(every)
	defer tick.Stop()
	queued := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			r.logger.Infow("watch stopped", "queued", len(queued))
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			r.onEvent(w, ev, queued)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warnw("watch error", "err", err)
		case now := <-tick.C:
			r.flush(now, queued)
		}
	}
}

func (r *Resizer) onEvent(w *fsnotify.Watcher, ev fsnotify.Event, queued map[string]time.Time) {
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		delete(queued, ev.Name)
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	fi, err := os.Lstat(ev.Name)
	if err != nil {
		return
	}
	switch {
	case fi.Mode().IsRegular():
		queued[ev.Name] = time.Now()
	case fi.IsDir() && ev.Has(fsnotify.Create) && r.cfg.Recursive && !r.isOutput(ev.Name):
		if err = r.watchTree(w, ev.Name); err != nil {
			r.logger.Warnw("watch dir fail", "dir", ev.Name, "err", err)
			return
		}
		// files moved in together with the directory raise no events
		now := time.Now()
		_ = filepath.WalkDir(ev.Name, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() && r.isOutput(p) {
				return filepath.SkipDir
			}
			if d.Type().IsRegular() {
				queued[p] = now
			}
			return nil
		})
	}
}

// flush processes the quiet files in name order
func (r *Resizer) flush(now time.Time, queued map[string]time.Time) {
	var ready []string
	for p, t := range queued {
		if now.Sub(t) >= r.settle {
			ready = append(ready, p)
		}
	}
	sort.Strings(ready)
	for _, p := range ready {
		delete(queued, p)
		if _, err := r.ProcessFile(p); err != nil {
			r.logger.Debugw("ignored", "src", p, "err", err)
		}
	}
}

// watchTree adds dir, and in recursive mode every directory below it
func (r *Resizer) watchTree(w *fsnotify.Watcher, dir string) error {
	if !r.cfg.Recursive {
		return w.Add(dir)
	}
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if r.isOutput(p) {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}
