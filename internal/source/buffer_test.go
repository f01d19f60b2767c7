package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekAtASCII(t *testing.T) {
	b := NewBufferFromString("abc")
	r, size := b.PeekAt(0, false)
	require.Equal(t, 1, size)
	assert.Equal(t, 'a', r)

	r, size = b.PeekAt(1, false)
	require.Equal(t, 1, size)
	assert.Equal(t, 'b', r)
}

func TestPeekAtMultiByteUTF8(t *testing.T) {
	b := NewBufferFromString("é") // U+00E9, 2 bytes in UTF-8
	r, size := b.PeekAt(0, false)
	require.Equal(t, 2, size)
	assert.Equal(t, 'é', r)
}

func TestPeekAtEndOfStream(t *testing.T) {
	b := NewBufferFromString("")
	_, size := b.PeekAt(0, false)
	assert.Equal(t, 0, size, "zero byte-count signals end-of-stream")
}

func TestPeekAtMalformedByteIsDeterministic(t *testing.T) {
	b := NewBufferFromString(string([]byte{0xFF, 'a'}))
	r, size := b.PeekAt(0, false)
	assert.Equal(t, 1, size)
	assert.Equal(t, rune(0xFF), r)
}

func TestAdvanceTracksCursor(t *testing.T) {
	b := NewBufferFromString("abc")
	r, size := b.PeekAt(0, false)
	assert.Equal(t, 'a', r)
	b.Advance(size)

	r, size = b.PeekAt(0, false)
	assert.Equal(t, 'b', r)
	b.Advance(size)

	r, _ = b.PeekAt(0, false)
	assert.Equal(t, 'c', r)
}

func TestBufferOverStreamingReader(t *testing.T) {
	long := strings.Repeat("x", compactThreshold*3)
	b := NewBuffer(strings.NewReader(long))

	count := 0
	for {
		r, size := b.PeekAt(0, false)
		if size == 0 {
			break
		}
		assert.Equal(t, 'x', r)
		b.Advance(size)
		count++
	}
	assert.Equal(t, len(long), count, "every byte must be visited exactly once across compaction")
}

func TestObsoleteUTF8ToleranceFlag(t *testing.T) {
	// A synthetic obsolete 5-byte lead (0xF8) followed by 4 continuation
	// bytes, encoding code point 0 for simplicity.
	seq := []byte{0xF8, 0x80, 0x80, 0x80, 0x80}
	b := NewBufferFromString(string(seq))

	_, size := b.PeekAt(0, false)
	assert.Equal(t, 1, size, "5-byte lead is rejected by default")

	b2 := NewBufferFromString(string(seq))
	_, size2 := b2.PeekAt(0, true)
	assert.Equal(t, 5, size2, "5-byte lead is tolerated under the compat flag")
}
