package vectorstore

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"studysupport/internal/domain"
	"studysupport/internal/logger"
	"studysupport/internal/util"

	"go.uber.org/zap"
)

const indexFileName = "index.gob"

// persistedIndex is the on-disk shape of one built index. The format is
// private to this package; callers treat the directory as opaque.
type persistedIndex struct {
	Chunks  []domain.Chunk
	Vectors [][]float32
}

// Store implements domain.RetrievalStore. The index lives at a fixed on-disk
// location and is reloaded per query; ingesting a new document rebuilds it
// wholesale, replacing any prior index.
type Store struct {
	dir          string
	embedder     domain.EmbeddingService
	chunkSize    int
	chunkOverlap int
}

func NewStore(dir string, embedder domain.EmbeddingService, chunkSize, chunkOverlap int) *Store {
	return &Store{
		dir:          dir,
		embedder:     embedder,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Build chunks the text, embeds every chunk, and atomically replaces the
// serialized index on disk.
func (s *Store) Build(ctx context.Context, text string) error {
	chunks := SplitText(text, s.chunkSize, s.chunkOverlap)
	if len(chunks) == 0 {
		return domain.NewInvalidInputError("document text is empty; nothing to index")
	}

	vectors := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		vec, err := s.embedder.Generate(ctx, chunk.Text)
		if err != nil {
			return domain.NewExternalServiceError("embedding", err)
		}
		vectors = append(vectors, vec)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.NewInternalError("Failed to create index directory", err)
	}

	tmp, err := os.CreateTemp(s.dir, "index-*.gob")
	if err != nil {
		return domain.NewInternalError("Failed to create index file", err)
	}
	defer os.Remove(tmp.Name())

	enc := gob.NewEncoder(tmp)
	if err := enc.Encode(persistedIndex{Chunks: chunks, Vectors: vectors}); err != nil {
		tmp.Close()
		return domain.NewInternalError("Failed to serialize index", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.NewInternalError("Failed to flush index file", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, indexFileName)); err != nil {
		return domain.NewInternalError("Failed to replace index file", err)
	}

	logger.Get().Info("Rebuilt retrieval index",
		zap.Int("chunks", len(chunks)),
		zap.String("dir", s.dir))
	return nil
}

// Query reloads the index from disk, embeds the question, and returns up to k
// chunk texts ranked by cosine similarity, most relevant first. Ties keep
// chunk order.
func (s *Store) Query(ctx context.Context, question string, k int) ([]string, error) {
	if k <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid retrieval count: %d", k))
	}

	idx, err := s.load()
	if err != nil {
		return nil, err
	}

	queryVec, err := s.embedder.Generate(ctx, question)
	if err != nil {
		return nil, domain.NewExternalServiceError("embedding", err)
	}

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(idx.Chunks))
	for i, chunk := range idx.Chunks {
		sim, err := util.CosineSimilarity(queryVec, idx.Vectors[i])
		if err != nil {
			return nil, domain.NewInternalError("Failed to score chunk", err)
		}
		ranked = append(ranked, scored{text: chunk.Text, score: sim})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]string, 0, k)
	for _, r := range ranked[:k] {
		results = append(results, r.text)
	}
	return results, nil
}

func (s *Store) load() (*persistedIndex, error) {
	f, err := os.Open(filepath.Join(s.dir, indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewError(domain.CodeNoDocument, "No index has been built yet; upload a document first", err)
		}
		return nil, domain.NewInternalError("Failed to open index file", err)
	}
	defer f.Close()

	var idx persistedIndex
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return nil, domain.NewInternalError("Failed to deserialize index", err)
	}
	if len(idx.Chunks) != len(idx.Vectors) {
		return nil, domain.NewInternalError("Index file is corrupt: chunk/vector count mismatch", nil)
	}
	return &idx, nil
}

var _ domain.RetrievalStore = (*Store)(nil)
