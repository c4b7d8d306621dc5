package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"studysupport/internal/cache"
	"studysupport/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/sync/singleflight"
)

const googleAISource = "googleai"

// GoogleAIEmbeddingService implements domain.EmbeddingService using the
// Gemini embedding model. Vectors are cached (gob-encoded) behind the cache
// port; singleflight collapses concurrent requests for the same text.
type GoogleAIEmbeddingService struct {
	embedder embeddings.Embedder
	cache    domain.Cache
	cacheTTL time.Duration
	sfGroup  singleflight.Group
}

// NewGoogleAIEmbeddingService creates a new GoogleAIEmbeddingService.
// The cache is optional; passing nil disables caching.
func NewGoogleAIEmbeddingService(ctx context.Context, apiKey, modelName string, c domain.Cache, cacheTTL time.Duration) (*GoogleAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("googleai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "embedding-001"
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultEmbeddingModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo GoogleAI client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create generic embedder from GoogleAI LLM: %w", err)
	}

	return &GoogleAIEmbeddingService{
		embedder: embedder,
		cache:    c,
		cacheTTL: cacheTTL,
	}, nil
}

// Generate creates an embedding for the given text, consulting the cache
// first.
func (s *GoogleAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	cacheKey := cache.EmbeddingKey(googleAISource, hashString(text))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var vec []float32
			if decodeErr := gob.NewDecoder(bytes.NewReader([]byte(cached))).Decode(&vec); decodeErr == nil {
				return vec, nil
			}
			// Undecodable entry: fall through and regenerate.
		}
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		raw, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using GoogleAI: %w", fetchErr)
		}
		if raw == nil {
			return nil, fmt.Errorf("received nil embedding from GoogleAI without error")
		}

		vec := make([]float32, len(raw))
		for i, v := range raw {
			vec[i] = float32(v)
		}

		if s.cache != nil {
			var buf bytes.Buffer
			if encodeErr := gob.NewEncoder(&buf).Encode(vec); encodeErr == nil {
				// Caching is best effort; the vector is returned either way.
				_ = s.cache.Set(ctx, cacheKey, buf.String(), s.cacheTTL)
			}
		}
		return vec, nil
	})
	if err != nil {
		return nil, err
	}

	vec, ok := res.([]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for googleai embedding: %T", res)
	}
	return vec, nil
}

var _ domain.EmbeddingService = (*GoogleAIEmbeddingService)(nil)
