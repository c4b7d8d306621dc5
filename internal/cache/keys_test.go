package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expected    string
	}{
		{
			name:        "base key without params",
			serviceName: "session",
			objectType:  "state",
			identifier:  "01HZX5",
			expected:    "studysupport:session:state:01HZX5",
		},
		{
			name:        "key with params",
			serviceName: "embedding",
			objectType:  "googleai",
			identifier:  "abc123",
			paramsKey:   []string{"v1", "dim768"},
			expected:    "studysupport:embedding:googleai:abc123:v1_dim768",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWellKnownKeys(t *testing.T) {
	assert.Equal(t, "studysupport:session:state:s1", SessionKey("s1"))
	assert.Equal(t, "studysupport:forms:answer_key:f1", AnswerKeyKey("f1"))
	assert.Equal(t, "studysupport:embedding:openai:h1", EmbeddingKey("openai", "h1"))
}
