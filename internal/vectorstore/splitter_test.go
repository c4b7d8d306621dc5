package vectorstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextSpans(t *testing.T) {
	// 2500 chars, size=1000, overlap=100 -> 3 chunks with the documented spans.
	text := strings.Repeat("a", 2500)
	chunks := SplitText(text, 1000, 100)

	require.Len(t, chunks, 3)
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 1000, chunks[0].End)
	assert.Equal(t, 900, chunks[1].Start)
	assert.Equal(t, 1900, chunks[1].End)
	assert.Equal(t, 1800, chunks[2].Start)
	assert.Equal(t, 2500, chunks[2].End)
}

func TestSplitTextChunkCount(t *testing.T) {
	// count = ceil((L - O) / (S - O)) for L > S
	tests := []struct {
		length  int
		size    int
		overlap int
		want    int
	}{
		{2500, 1000, 100, 3},
		{1900, 1000, 100, 2},
		{1000, 1000, 100, 1},
		{999, 1000, 100, 1},
		{1, 1000, 100, 1},
		{1001, 1000, 100, 2},
		{10, 4, 1, 3},
	}
	for _, tt := range tests {
		chunks := SplitText(strings.Repeat("x", tt.length), tt.size, tt.overlap)
		assert.Len(t, chunks, tt.want, "L=%d S=%d O=%d", tt.length, tt.size, tt.overlap)
	}
}

func TestSplitTextReconstructsInput(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. " + strings.Repeat("lorem ipsum ", 50)
	size, overlap := 64, 16
	chunks := SplitText(text, size, overlap)
	require.NotEmpty(t, chunks)

	// Concatenating chunk texts minus the overlapping prefixes yields the
	// original text.
	var sb strings.Builder
	sb.WriteString(chunks[0].Text)
	for _, c := range chunks[1:] {
		sb.WriteString(c.Text[overlap:])
	}
	assert.Equal(t, text, sb.String())

	for _, c := range chunks {
		assert.Equal(t, c.Text, text[c.Start:c.End])
	}
}

func TestSplitTextEdgeCases(t *testing.T) {
	assert.Nil(t, SplitText("", 1000, 100))
	assert.Nil(t, SplitText("abc", 0, 0))
	assert.Nil(t, SplitText("abc", 10, 10))

	short := SplitText("tiny", 1000, 100)
	require.Len(t, short, 1)
	assert.Equal(t, "tiny", short[0].Text)
}
