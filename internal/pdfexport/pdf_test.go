package pdfexport

import (
	"testing"

	"studysupport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	session := domain.NewQuizSession([]domain.QuizQuestion{
		{
			Text: "What powers the engine?",
			Options: []domain.Option{
				{Label: "A", Text: "Steam"},
				{Label: "B", Text: "Diesel"},
			},
			CorrectLabel: "B",
			Explanation:  "The engine runs on diesel fuel.",
		},
	})
	_, _, err := session.Submit(0, "B")
	require.NoError(t, err)

	data, err := NewRenderer("").Render(session)
	require.NoError(t, err)
	assert.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMissingLogoIsSkipped(t *testing.T) {
	session := domain.NewQuizSession([]domain.QuizQuestion{
		{
			Text:         "Question?",
			Options:      []domain.Option{{Label: "A", Text: "Yes"}},
			CorrectLabel: "A",
			Explanation:  "Because.",
		},
	})

	data, err := NewRenderer("does/not/exist.png").Render(session)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
