package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			Text: "What does CPU stand for?",
			Options: []Option{
				{Label: "A", Text: "Central Processing Unit"},
				{Label: "B", Text: "Computer Personal Unit"},
				{Label: "C", Text: "Central Print Unit"},
				{Label: "D", Text: "Control Processing Utility"},
			},
			CorrectLabel: "A",
			Explanation:  "CPU stands for Central Processing Unit.",
		},
		{
			Text: "Which layer does TCP belong to?",
			Options: []Option{
				{Label: "A", Text: "Application"},
				{Label: "B", Text: "Transport"},
				{Label: "C", Text: "Network"},
				{Label: "D", Text: "Link"},
			},
			CorrectLabel: "B",
			Explanation:  "TCP is a transport-layer protocol.",
		},
	}
}

func TestQuizSessionSubmit(t *testing.T) {
	t.Run("correct answer increments score and records feedback", func(t *testing.T) {
		s := NewQuizSession(sampleQuestions())

		correct, feedback, err := s.Submit(0, "A")
		require.NoError(t, err)
		assert.True(t, correct)
		assert.Contains(t, feedback, "Correct!")
		assert.Contains(t, feedback, "Central Processing Unit")
		assert.Equal(t, 1, s.Score)
		assert.True(t, s.Submitted[0])
	})

	t.Run("incorrect answer carries the correct label and explanation", func(t *testing.T) {
		s := NewQuizSession(sampleQuestions())

		correct, feedback, err := s.Submit(1, "C")
		require.NoError(t, err)
		assert.False(t, correct)
		assert.Contains(t, feedback, "Correct answer: B")
		assert.Contains(t, feedback, "transport-layer")
		assert.Equal(t, 0, s.Score)
	})

	t.Run("resubmission is idempotent", func(t *testing.T) {
		s := NewQuizSession(sampleQuestions())

		_, first, err := s.Submit(0, "A")
		require.NoError(t, err)
		require.Equal(t, 1, s.Score)

		// Replaying the same question must not count twice, even with a
		// different selection.
		_, second, err := s.Submit(0, "B")
		require.NoError(t, err)
		assert.Equal(t, 1, s.Score)
		assert.Equal(t, first, second)
	})

	t.Run("out of range index is rejected", func(t *testing.T) {
		s := NewQuizSession(sampleQuestions())

		_, _, err := s.Submit(5, "A")
		require.Error(t, err)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, CodeInvalidInput, domainErr.Code)
	})

	t.Run("unknown label is rejected without consuming the attempt", func(t *testing.T) {
		s := NewQuizSession(sampleQuestions())

		_, _, err := s.Submit(0, "E")
		require.Error(t, err)
		assert.False(t, s.Submitted[0])

		_, _, err = s.Submit(0, "A")
		require.NoError(t, err)
		assert.Equal(t, 1, s.Score)
	})
}

func TestQuizSessionComplete(t *testing.T) {
	s := NewQuizSession(sampleQuestions())
	assert.False(t, s.Complete())

	_, _, err := s.Submit(0, "A")
	require.NoError(t, err)
	assert.False(t, s.Complete())

	_, _, err = s.Submit(1, "B")
	require.NoError(t, err)
	assert.True(t, s.Complete())

	empty := NewQuizSession(nil)
	assert.False(t, empty.Complete())
}

func TestFormatFromFilename(t *testing.T) {
	cases := []struct {
		name string
		want FileFormat
	}{
		{"notes.pdf", FormatPDF},
		{"Lecture.DOCX", FormatDOCX},
		{"readme.txt", FormatTXT},
		{"slides.pptx", FormatUnsupported},
		{"noextension", FormatUnsupported},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFromFilename(tc.name), tc.name)
	}
}
