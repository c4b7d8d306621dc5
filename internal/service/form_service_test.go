package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFormExporter struct {
	created   *domain.CreatedForm
	gotTitle  string
	gotQs     []domain.FormQuestion
	items     []domain.FormItem
	responses []domain.FormResponse
}

func (f *fakeFormExporter) CreateForm(_ context.Context, title string, questions []domain.FormQuestion) (*domain.CreatedForm, error) {
	f.gotTitle = title
	f.gotQs = questions
	return f.created, nil
}

func (f *fakeFormExporter) ListItems(context.Context, string) ([]domain.FormItem, error) {
	return f.items, nil
}

func (f *fakeFormExporter) ListResponses(context.Context, string) ([]domain.FormResponse, error) {
	return f.responses, nil
}

type memAnswerKeys struct {
	keys map[string]*domain.AnswerKey
}

func (m *memAnswerKeys) Get(_ context.Context, formID string) (*domain.AnswerKey, error) {
	key, ok := m.keys[formID]
	if !ok {
		return nil, domain.NewError(domain.CodeNotFound, "Answer key not found", nil)
	}
	return key, nil
}

func (m *memAnswerKeys) Save(_ context.Context, key *domain.AnswerKey) error {
	if m.keys == nil {
		m.keys = make(map[string]*domain.AnswerKey)
	}
	m.keys[key.FormID] = key
	return nil
}

type memSessions struct {
	sessions map[string]*domain.Session
}

func (m *memSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return s, nil
}

func (m *memSessions) Save(_ context.Context, s *domain.Session) error {
	if m.sessions == nil {
		m.sessions = make(map[string]*domain.Session)
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessions) Delete(context.Context, string) error { return nil }

type staticStore struct {
	chunks []string
}

func (s *staticStore) Build(context.Context, string) error { return nil }

func (s *staticStore) Query(context.Context, string, int) ([]string, error) {
	return s.chunks, nil
}

type scriptedGenerator struct {
	outputs []string
	calls   int
}

func (g *scriptedGenerator) Generate(context.Context, string) (string, error) {
	out := g.outputs[g.calls]
	if g.calls < len(g.outputs)-1 {
		g.calls++
	}
	return out, nil
}

const wellFormedQuiz = `Q1. What powers the engine?
A. Steam
B. Diesel
C. Coal
D. Wind
Answer: B
Explanation: The engine runs on diesel fuel.
`

func quizConfig() config.QuizConfig {
	return config.QuizConfig{
		DefaultQuestions:  5,
		MaxQuestions:      10,
		GenerationRetries: 2,
		ContextChunks:     15,
		AskContextChunks:  5,
	}
}

func TestCreateFormNeverTransmitsCorrectAnswers(t *testing.T) {
	sessions := &memSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Document: &domain.Document{Filename: "notes.txt", Text: "diesel engines"}},
	}}
	exporter := &fakeFormExporter{
		created: &domain.CreatedForm{FormID: "form-1", EditURL: "edit", ResponderURL: "respond"},
	}
	keys := &memAnswerKeys{}
	svc := NewFormService(
		sessions,
		&staticStore{chunks: []string{"diesel engines"}},
		&scriptedGenerator{outputs: []string{wellFormedQuiz}},
		exporter,
		keys,
		quizConfig(),
	)

	resp, err := svc.CreateForm(context.Background(), "s1", &dto.CreateFormRequest{Title: "Engines"})
	require.NoError(t, err)
	assert.Equal(t, "form-1", resp.FormID)

	require.Len(t, exporter.gotQs, 1)
	assert.Equal(t, "What powers the engine?", exporter.gotQs[0].Title)
	assert.Equal(t, []string{"Steam", "Diesel", "Coal", "Wind"}, exporter.gotQs[0].Options)

	// The exported payload carries no marker of which option is correct.
	key, err := keys.Get(context.Background(), "form-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Diesel"}, key.CorrectAnswers)
}

func TestCreateFormRetriesThenFails(t *testing.T) {
	sessions := &memSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Document: &domain.Document{Filename: "notes.txt", Text: "text"}},
	}}
	gen := &scriptedGenerator{outputs: []string{"no questions here"}}
	svc := NewFormService(
		sessions,
		&staticStore{chunks: []string{"text"}},
		gen,
		&fakeFormExporter{},
		&memAnswerKeys{},
		quizConfig(),
	)

	_, err := svc.CreateForm(context.Background(), "s1", &dto.CreateFormRequest{})
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeMalformedGeneration, domainErr.Code)
}

func TestGradeResponsesByItemTitleNotPosition(t *testing.T) {
	// Identity fields deliberately out of the conventional order.
	items := []domain.FormItem{
		{QuestionID: "q-a", Title: "What powers the engine?"},
		{QuestionID: "id-email", Title: "Email"},
		{QuestionID: "id-name", Title: "Name"},
		{QuestionID: "q-b", Title: "What cools the engine?"},
	}
	key := &domain.AnswerKey{
		FormID:         "form-1",
		CorrectAnswers: []string{"Diesel", "Water"},
	}
	responses := []domain.FormResponse{
		{
			ResponseID: "r1",
			Answers: map[string]string{
				"id-name":  "Ada",
				"id-email": "ada@example.com",
				"q-a":      "  diesel ",
				"q-b":      "Air",
			},
		},
		{
			ResponseID: "r2",
			Answers: map[string]string{
				"id-name": "Grace",
				"q-a":     "Steam",
			},
		},
	}

	graded := GradeResponses(items, responses, key)
	require.Len(t, graded, 2)

	assert.Equal(t, "Ada", graded[0].Name)
	assert.Equal(t, "ada@example.com", graded[0].Email)
	assert.Equal(t, []string{"  diesel ", "Air"}, graded[0].Answers)
	assert.Equal(t, 1, graded[0].Score)
	assert.Equal(t, 2, graded[0].Total)

	assert.Equal(t, "Grace", graded[1].Name)
	assert.Empty(t, graded[1].Email)
	assert.Equal(t, 0, graded[1].Score)
}

func TestWriteResponsesCSV(t *testing.T) {
	responses := []dto.GradedResponse{
		{Name: "Ada", Email: "ada@example.com", Answers: []string{"Diesel", "Water"}, Score: 2},
		{Name: "Grace", Email: "", Answers: []string{"Steam", ""}, Score: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResponsesCSV(&buf, responses))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Email,Q1,Q2,Score", lines[0])
	assert.Equal(t, "Ada,ada@example.com,Diesel,Water,2", lines[1])
	assert.Equal(t, "Grace,,Steam,,0", lines[2])
}
