package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	s := New(500, 50)
	chunks := s.Split("P0420 catalyst system efficiency below threshold")

	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 0, chunks[0].CharStart)
	assert.Equal(t, 48, chunks[0].CharEnd)
	assert.Equal(t, 12, chunks[0].TokenCount)
}

func TestSplit_EmptyAndWhitespace(t *testing.T) {
	s := New(500, 50)
	assert.Empty(t, s.Split(""))
	assert.Empty(t, s.Split("   \n\t  "))
}

func TestSplit_ChunksOverlapAndCover(t *testing.T) {
	words := make([]string, 300)
	for i := range words {
		words[i] = "misfire"
	}
	text := strings.Join(words, " ")

	s := New(500, 50)
	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
		assert.Equal(t, chunk.Content, text[chunk.CharStart:chunk.CharEnd])
		assert.LessOrEqual(t, chunk.CharEnd-chunk.CharStart, 500)

		if i > 0 {
			prev := chunks[i-1]
			// Consecutive chunks overlap; nothing is skipped.
			assert.Less(t, chunk.CharStart, prev.CharEnd)
			assert.Greater(t, chunk.CharStart, prev.CharStart)
		}
	}

	// The final chunk reaches the end of the text.
	assert.Equal(t, len(text), chunks[len(chunks)-1].CharEnd)
}

func TestSplit_SnapsToWordBoundary(t *testing.T) {
	text := strings.Repeat("check engine light ", 60)

	s := New(500, 50)
	for _, chunk := range s.Split(text) {
		if chunk.CharEnd < len(text) {
			last := chunk.Content[len(chunk.Content)-1]
			assert.Equal(t, byte(' '), last,
				"chunk %d should end on a word break, got %q", chunk.Index, string(last))
		}
	}
}

func TestSplit_UnbrokenRunFallsBackToHardCut(t *testing.T) {
	text := strings.Repeat("x", 1200)

	s := New(500, 50)
	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, 500, len(chunks[0].Content))
	assert.Equal(t, len(text), chunks[len(chunks)-1].CharEnd)
}

func TestAll_LazyStopsEarly(t *testing.T) {
	text := strings.Repeat("oxygen sensor heater circuit ", 200)

	s := New(100, 10)
	count := 0
	for range s.All(text) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 1, estimateTokens("abc"))
	assert.Equal(t, 1, estimateTokens("abcd"))
	assert.Equal(t, 2, estimateTokens("abcde"))
}
