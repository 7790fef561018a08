package resizer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type manifestEntry struct {
	Src    string `json:"src"`
	Out    string `json:"out"`
	Hash   string `json:"hash,omitempty"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Format string `json:"format"`
	Bytes  int64  `json:"bytes"`
}

// manifest is a JSON lines record of every written file
type manifest struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

func openManifest(filename string) (*manifest, error) {
	if err := os.MkdirAll(filepath.Dir(filename), os.FileMode(0755)); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return nil, err
	}
	return &manifest{f: f, enc: json.NewEncoder(f)}, nil
}

// Add records res with paths relative to the roots
func (m *manifest) Add(srcRoot, outRoot string, res Result) error {
	e := manifestEntry{
		Src:   relOr(srcRoot, res.Source),
		Out:   relOr(outRoot, res.Output),
		Hash:  res.Hash,
		Bytes: res.Bytes,
	}
	if res.Attr != nil {
		e.Width = uint32(res.Attr.Width)
		e.Height = uint32(res.Attr.Height)
		e.Format = res.Attr.Format
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enc.Encode(&e)
}

func (m *manifest) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.f.Close()
}

func relOr(root, p string) string {
	if rel, err := filepath.Rel(root, p); err == nil {
		return filepath.ToSlash(rel)
	}
	return p
}
