package hash

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	data := bytes.Repeat([]byte("the scream "), 1000)

	w := New()
	n, err := io.Copy(w, bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, len(data), int(n))
	assert.Equal(t, len(data), int(w.Len()))
	assert.Len(t, w.Bytes(), 18)

	// streaming and one-shot agree
	assert.Equal(t, SumContent(data), w.String())
	assert.Len(t, w.String(), 36)

	s, err := SumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, w.String(), s)
}

func TestHashDistinct(t *testing.T) {
	a := SumContent([]byte("starry night"))
	b := SumContent([]byte("starry night."))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, SumContent([]byte("starry night")))

	empty, err := SumReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, SumContent(nil), empty)
}
