package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/dto"
	"studysupport/internal/logger"
	"studysupport/internal/quiz"

	"go.uber.org/zap"
)

// FormService exports quizzes as remote forms and grades the submitted
// responses against the locally held answer key.
type FormService interface {
	CreateForm(ctx context.Context, sessionID string, req *dto.CreateFormRequest) (*dto.CreateFormResponse, error)
	GradedResponses(ctx context.Context, formID string) (*dto.FormResponsesResponse, error)
	ResponsesCSV(ctx context.Context, formID string) ([]byte, error)
}

type formService struct {
	sessions   domain.SessionRepository
	store      domain.RetrievalStore
	generator  domain.TextGenerator
	exporter   domain.FormExporter
	answerKeys domain.AnswerKeyRepository
	cfg        config.QuizConfig
}

func NewFormService(
	sessions domain.SessionRepository,
	store domain.RetrievalStore,
	generator domain.TextGenerator,
	exporter domain.FormExporter,
	answerKeys domain.AnswerKeyRepository,
	cfg config.QuizConfig,
) FormService {
	return &formService{
		sessions:   sessions,
		store:      store,
		generator:  generator,
		exporter:   exporter,
		answerKeys: answerKeys,
		cfg:        cfg,
	}
}

// CreateForm generates a fresh set of questions from the session's document,
// creates the remote form with options only, and stores the answer key
// locally. Correct answers are never transmitted to the forms service.
func (s *formService) CreateForm(ctx context.Context, sessionID string, req *dto.CreateFormRequest) (*dto.CreateFormResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "StudySupport Quiz"
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
	prompt := quiz.BuildQuizPrompt(strings.Join(chunks, "\n\n"), quiz.DifficultyBasic, numQuestions)

	attempts := 1 + s.cfg.GenerationRetries
	var questions []domain.QuizQuestion
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return nil, err
		}
		questions, _ = quiz.Parse(raw)
		if len(questions) > 0 {
			break
		}
	}
	if len(questions) == 0 {
		return nil, domain.NewMalformedGenerationError(attempts)
	}

	formQuestions := make([]domain.FormQuestion, 0, len(questions))
	key := &domain.AnswerKey{Title: title}
	for _, q := range questions {
		options := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, opt.Text)
		}
		formQuestions = append(formQuestions, domain.FormQuestion{
			Title:   q.Text,
			Options: options,
		})

		correctText, _ := q.OptionText(q.CorrectLabel)
		key.QuestionTitles = append(key.QuestionTitles, q.Text)
		key.CorrectAnswers = append(key.CorrectAnswers, correctText)
	}

	created, err := s.exporter.CreateForm(ctx, title, formQuestions)
	if err != nil {
		return nil, err
	}

	key.FormID = created.FormID
	if err := s.answerKeys.Save(ctx, key); err != nil {
		return nil, err
	}

	logger.Get().Info("Exported quiz as remote form",
		zap.String("session_id", sessionID),
		zap.String("form_id", created.FormID),
		zap.Int("questions", len(formQuestions)))

	return &dto.CreateFormResponse{
		FormID:       created.FormID,
		EditURL:      created.EditURL,
		ResponderURL: created.ResponderURL,
	}, nil
}

func (s *formService) GradedResponses(ctx context.Context, formID string) (*dto.FormResponsesResponse, error) {
	key, err := s.answerKeys.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	items, err := s.exporter.ListItems(ctx, formID)
	if err != nil {
		return nil, err
	}
	responses, err := s.exporter.ListResponses(ctx, formID)
	if err != nil {
		return nil, err
	}

	graded := GradeResponses(items, responses, key)
	return &dto.FormResponsesResponse{
		FormID:    formID,
		Title:     key.Title,
		Responses: graded,
	}, nil
}

func (s *formService) ResponsesCSV(ctx context.Context, formID string) ([]byte, error) {
	resp, err := s.GradedResponses(ctx, formID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteResponsesCSV(&buf, resp.Responses); err != nil {
		return nil, domain.NewInternalError("Failed to render CSV", err)
	}
	return buf.Bytes(), nil
}

// classifyItems splits form items into identity fields and quiz questions by
// inspecting each item's label text, not its position. Quiz items keep the
// remote service's own order.
func classifyItems(items []domain.FormItem) (nameID, emailID string, quizItems []domain.FormItem) {
	for _, item := range items {
		switch strings.ToLower(strings.TrimSpace(item.Title)) {
		case "name":
			nameID = item.QuestionID
		case "email":
			emailID = item.QuestionID
		default:
			quizItems = append(quizItems, item)
		}
	}
	return nameID, emailID, quizItems
}

// GradeResponses maps each response's raw answers back to question order via
// the remote form's question IDs and scores them against the answer key,
// case-insensitively with surrounding whitespace trimmed.
func GradeResponses(items []domain.FormItem, responses []domain.FormResponse, key *domain.AnswerKey) []dto.GradedResponse {
	nameID, emailID, quizItems := classifyItems(items)

	total := len(quizItems)
	if len(key.CorrectAnswers) < total {
		total = len(key.CorrectAnswers)
	}

	graded := make([]dto.GradedResponse, 0, len(responses))
	for _, resp := range responses {
		g := dto.GradedResponse{
			Name:    resp.Answers[nameID],
			Email:   resp.Answers[emailID],
			Answers: make([]string, total),
			Total:   total,
		}
		for i := 0; i < total; i++ {
			answer := resp.Answers[quizItems[i].QuestionID]
			g.Answers[i] = answer
			if answerMatches(answer, key.CorrectAnswers[i]) {
				g.Score++
			}
		}
		graded = append(graded, g)
	}
	return graded
}

func answerMatches(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// WriteResponsesCSV writes graded responses with the fixed column order
// Name, Email, Q1..Qn, Score.
func WriteResponsesCSV(buf *bytes.Buffer, responses []dto.GradedResponse) error {
	w := csv.NewWriter(buf)

	numQuestions := 0
	if len(responses) > 0 {
		numQuestions = len(responses[0].Answers)
	}

	header := []string{"Name", "Email"}
	for i := 1; i <= numQuestions; i++ {
		header = append(header, fmt.Sprintf("Q%d", i))
	}
	header = append(header, "Score")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range responses {
		row := append([]string{r.Name, r.Email}, r.Answers...)
		row = append(row, strconv.Itoa(r.Score))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
