package service

import (
	"context"
	"strings"

	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/quiz"
)

// AskService answers free-text questions against the session's document via
// retrieval-augmented generation.
type AskService interface {
	Ask(ctx context.Context, sessionID, question string) (*dto.AskResponse, error)
	History(ctx context.Context, sessionID string) ([]dto.ChatTurnResponse, error)
}

type askService struct {
	sessions      domain.SessionRepository
	store         domain.RetrievalStore
	generator     domain.TextGenerator
	contextChunks int
}

func NewAskService(
	sessions domain.SessionRepository,
	store domain.RetrievalStore,
	generator domain.TextGenerator,
	contextChunks int,
) AskService {
	return &askService{
		sessions:      sessions,
		store:         store,
		generator:     generator,
		contextChunks: contextChunks,
	}
}

func (s *askService) Ask(ctx context.Context, sessionID, question string) (*dto.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.NewInvalidInputError("question must not be empty")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasDocument() {
		return nil, domain.NewError(domain.CodeNoDocument, "Upload and process a file first", nil)
	}

	chunks, err := s.store.Query(ctx, question, s.contextChunks)
	if err != nil {
		return nil, err
	}

	answer, err := s.generator.Generate(ctx, quiz.BuildAskPrompt(strings.Join(chunks, "\n\n"), question))
	if err != nil {
		return nil, err
	}

	session.ChatHistory = append(session.ChatHistory, domain.ChatTurn{
		Question: question,
		Answer:   answer,
	})
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.AskResponse{Question: question, Answer: answer}, nil
}

func (s *askService) History(ctx context.Context, sessionID string) ([]dto.ChatTurnResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatTurnResponse, 0, len(session.ChatHistory))
	for _, turn := range session.ChatHistory {
		history = append(history, dto.ChatTurnResponse{
			Question: turn.Question,
			Answer:   turn.Answer,
		})
	}
	return history, nil
}
