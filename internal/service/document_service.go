package service

import (
	"context"

	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/logger"
	"studysupport/internal/util"
	"studysupport/internal/vectorstore"

	"go.uber.org/zap"
)

// TextExtractor is what the document service needs from the ingestion step.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

// DocumentService ingests uploads: extract text, rebuild the retrieval
// index, and open a fresh session owning the document.
type DocumentService interface {
	Upload(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error)
}

type documentService struct {
	extractor    TextExtractor
	store        domain.RetrievalStore
	sessions     domain.SessionRepository
	chunkSize    int
	chunkOverlap int
}

func NewDocumentService(
	extractor TextExtractor,
	store domain.RetrievalStore,
	sessions domain.SessionRepository,
	chunkSize, chunkOverlap int,
) DocumentService {
	return &documentService{
		extractor:    extractor,
		store:        store,
		sessions:     sessions,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

func (s *documentService) Upload(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error) {
	text, err := s.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, domain.NewInvalidInputError("No text could be extracted from the uploaded file")
	}

	// Rebuilding replaces any prior index wholesale; the index location is
	// shared, the session owns only the document itself.
	if err := s.store.Build(ctx, text); err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID: util.NewULID(),
		Document: &domain.Document{
			Filename: filename,
			Text:     text,
		},
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	chunks := vectorstore.SplitText(text, s.chunkSize, s.chunkOverlap)
	logger.Get().Info("Processed upload",
		zap.String("session_id", session.ID),
		zap.String("filename", filename),
		zap.Int("characters", len(text)),
		zap.Int("chunks", len(chunks)))

	return &dto.UploadResponse{
		SessionID:  session.ID,
		Filename:   filename,
		Characters: len(text),
		Chunks:     len(chunks),
	}, nil
}
