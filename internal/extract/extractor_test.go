package extract

import (
	"testing"

	"studysupport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTXT(t *testing.T) {
	e := NewExtractor()

	t.Run("valid utf-8 passes through", func(t *testing.T) {
		text, err := e.Extract("notes.txt", []byte("chapter one\nprocess scheduling"))
		require.NoError(t, err)
		assert.Equal(t, "chapter one\nprocess scheduling", text)
	})

	t.Run("invalid utf-8 is a decode error", func(t *testing.T) {
		_, err := e.Extract("notes.txt", []byte{0xff, 0xfe, 0x41})
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDecodeError, domainErr.Code)
	})

	t.Run("empty file yields empty text, not an error", func(t *testing.T) {
		text, err := e.Extract("empty.txt", nil)
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}

func TestExtractUnsupported(t *testing.T) {
	e := NewExtractor()

	for _, name := range []string{"slides.pptx", "archive.zip", "noextension"} {
		_, err := e.Extract(name, []byte("payload"))
		require.Error(t, err, name)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
	}
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract("broken.pdf", []byte("not a pdf at all"))
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeDecodeError, domainErr.Code)
}
