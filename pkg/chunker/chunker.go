// Package chunker splits document text into fixed-size overlapping chunks
// for embedding and evaluation.
package chunker

import (
	"iter"
	"strings"
	"unicode"
)

// Chunk is one substring of a document, with its position recorded so the
// original text can always be located.
type Chunk struct {
	Index      int
	Content    string
	CharStart  int
	CharEnd    int
	TokenCount int
}

// Splitter produces chunks of roughly Size characters with Overlap
// characters shared between neighbours. Chunk boundaries snap back to the
// nearest word break so words are never cut mid-way.
type Splitter struct {
	Size    int
	Overlap int
}

// New returns a Splitter with the given size and overlap. Size must be
// positive and Overlap must be smaller than Size; config validation
// enforces both before a Splitter is built.
func New(size, overlap int) *Splitter {
	return &Splitter{Size: size, Overlap: overlap}
}

// All returns the chunks of text lazily, in order. Large documents are
// walked without materialising every chunk at once.
func (s *Splitter) All(text string) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}

		index := 0
		start := 0
		for start < len(text) {
			end := start + s.Size
			if end >= len(text) {
				end = len(text)
			} else {
				end = snapToWordBreak(text, start, end)
			}

			content := text[start:end]
			if strings.TrimSpace(content) != "" {
				chunk := Chunk{
					Index:      index,
					Content:    content,
					CharStart:  start,
					CharEnd:    end,
					TokenCount: estimateTokens(content),
				}
				if !yield(chunk) {
					return
				}
				index++
			}

			if end >= len(text) {
				return
			}
			next := end - s.Overlap
			if next <= start {
				// Guarantee forward progress on pathological input.
				next = start + 1
			}
			start = next
		}
	}
}

// Split returns every chunk of text as a slice.
func (s *Splitter) Split(text string) []Chunk {
	var chunks []Chunk
	for chunk := range s.All(text) {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// snapToWordBreak moves end back to the last whitespace inside
// (start, end] so the chunk does not cut a word. If the window holds one
// unbroken run of characters the hard cut stands.
func snapToWordBreak(text string, start, end int) int {
	for i := end; i > start; i-- {
		if unicode.IsSpace(rune(text[i-1])) {
			return i
		}
	}
	return end
}

// estimateTokens approximates the LLM token count of content. Four
// characters per token tracks English prose closely enough for budgeting.
func estimateTokens(content string) int {
	return (len(content) + 3) / 4
}
