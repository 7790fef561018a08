package resizer

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, fn string, w, h int, seed uint8) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{uint8(x) + seed, uint8(y), seed, 255})
		}
	}
	f, err := os.Create(fn)
	require.NoError(t, err)
	defer f.Close()
	switch filepath.Ext(fn) {
	case ".png":
		require.NoError(t, png.Encode(f, m))
	default:
		require.NoError(t, jpeg.Encode(f, m, &jpeg.Options{Quality: 90}))
	}
}

func writeText(t *testing.T, fn, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
	require.NoError(t, os.WriteFile(fn, []byte(text), 0644))
}

// listNames returns the regular file names of dir, sorted
func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func pngSize(t *testing.T, fn string) (int, int) {
	t.Helper()
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}
