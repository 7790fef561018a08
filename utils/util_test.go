package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a", "b", "0.png")
	require.NoError(t, SaveFile(fn, []byte("first")))
	require.NoError(t, SaveFile(fn, []byte("second")))

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.True(t, IsRegular(fn))
	assert.False(t, IsRegular(filepath.Dir(fn)))

	entries, err := os.ReadDir(filepath.Dir(fn))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWithin(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"/data/munch", "/data/munch", true},
		{"/data/munch", "/data/munch/resized", true},
		{"/data/munch", "/data/munch/a/b", true},
		{"/data/munch", "/data/munchkin", false},
		{"/data/munch", "/data", false},
		{"/data/munch", "/other", false},
		{"/data/munch", "/data/munch/..foo", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Within(tt.parent, tt.child), "%s in %s", tt.child, tt.parent)
	}
}
