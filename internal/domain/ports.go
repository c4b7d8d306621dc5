package domain

import "context"

// EmbeddingService defines the interface for generating text embeddings.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// TextGenerator is the single text-in/text-out call against the hosted model.
// No streaming, no function calling.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RetrievalStore indexes document text and answers similarity queries.
type RetrievalStore interface {
	// Build chunks and indexes the text, replacing any prior index wholesale.
	Build(ctx context.Context, text string) error

	// Query returns up to k chunk texts, most relevant first.
	Query(ctx context.Context, question string, k int) ([]string, error)
}

// VideoSearcher fetches recommendation candidates with engagement statistics
// already attached. Candidates missing statistics are skipped upstream.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxCandidates int64) ([]RankedVideo, error)
}
