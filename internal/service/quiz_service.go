package service

import (
	"context"
	"strings"

	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/logger"
	"studysupport/internal/quiz"

	"go.uber.org/zap"
)

// quizContextQuery is the retrieval query used to assemble generation
// context from the indexed document.
const quizContextQuery = "generate quiz"

// QuizRenderer renders a completed quiz session to a downloadable document.
type QuizRenderer interface {
	Render(session *domain.QuizSession) ([]byte, error)
}

// QuizService generates quizzes from the session's document and grades
// submissions.
type QuizService interface {
	GenerateQuiz(ctx context.Context, sessionID string, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	ExportPDF(ctx context.Context, sessionID string) ([]byte, error)
}

type quizService struct {
	sessions  domain.SessionRepository
	store     domain.RetrievalStore
	generator domain.TextGenerator
	renderer  QuizRenderer
	cfg       config.QuizConfig
}

func NewQuizService(
	sessions domain.SessionRepository,
	store domain.RetrievalStore,
	generator domain.TextGenerator,
	renderer QuizRenderer,
	cfg config.QuizConfig,
) QuizService {
	return &quizService{
		sessions:  sessions,
		store:     store,
		generator: generator,
		renderer:  renderer,
		cfg:       cfg,
	}
}

// GenerateQuiz builds the generation prompt from retrieved context and treats
// generation+parse as one fallible operation: a response that parses to zero
// questions is retried up to the configured limit before surfacing
// MALFORMED_GENERATION. A successful generation overwrites any prior quiz in
// the session.
func (s *quizService) GenerateQuiz(ctx context.Context, sessionID string, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}
	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = s.cfg.DefaultQuestions
	}
	if numQuestions > s.cfg.MaxQuestions {
		numQuestions = s.cfg.MaxQuestions
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasDocument() {
		return nil, domain.NewError(domain.CodeNoDocument, "Upload and process a file first", nil)
	}

	chunks, err := s.store.Query(ctx, quizContextQuery, s.cfg.ContextChunks)
	if err != nil {
		return nil, err
	}
	prompt := quiz.BuildQuizPrompt(strings.Join(chunks, "\n\n"), difficulty, numQuestions)

	attempts := 1 + s.cfg.GenerationRetries
	var questions []domain.QuizQuestion
	var dropped int
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}

		questions, dropped = quiz.Parse(raw)
		if len(questions) > 0 {
			if dropped > 0 {
				logger.Get().Warn("Dropped malformed question blocks",
					zap.String("session_id", sessionID),
					zap.Int("dropped", dropped),
					zap.Int("parsed", len(questions)))
			}
			break
		}
		logger.Get().Warn("Model output parsed to zero questions",
			zap.String("session_id", sessionID),
			zap.Int("attempt", attempt))
	}
	if len(questions) == 0 {
		return nil, domain.NewMalformedGenerationError(attempts)
	}

	session.Quiz = domain.NewQuizSession(questions)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	resp := &dto.GenerateQuizResponse{Dropped: dropped}
	for i, q := range questions {
		options := make([]dto.QuizOption, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, dto.QuizOption{Label: opt.Label, Text: opt.Text})
		}
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			Index:   i,
			Text:    q.Text,
			Options: options,
		})
	}
	return resp, nil
}

// SubmitAnswer grades one selection. Grading is idempotent per question; a
// replayed submission returns the recorded feedback without rescoring.
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Quiz == nil {
		return nil, domain.NewError(domain.CodeNotFound, "No quiz has been generated for this session", nil)
	}

	correct, feedback, err := session.Quiz.Submit(req.QuestionIndex, strings.ToUpper(strings.TrimSpace(req.Selected)))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SubmitAnswerResponse{
		Correct:  correct,
		Feedback: feedback,
		Score:    session.Quiz.Score,
		Complete: session.Quiz.Complete(),
	}, nil
}

// ExportPDF renders the session's quiz with per-question feedback.
func (s *quizService) ExportPDF(ctx context.Context, sessionID string) ([]byte, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Quiz == nil || len(session.Quiz.Questions) == 0 {
		return nil, domain.NewError(domain.CodeNotFound, "No quiz has been generated for this session", nil)
	}
	return s.renderer.Render(session.Quiz)
}
