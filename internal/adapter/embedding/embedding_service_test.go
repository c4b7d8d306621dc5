package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIEmbeddingService_Validation(t *testing.T) {
	_, err := NewOpenAIEmbeddingService("", "text-embedding-ada-002")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestHashStringIsStable(t *testing.T) {
	a := hashString("the same text")
	b := hashString("the same text")
	c := hashString("different text")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
