package domain

import "fmt"

// Option is one labeled choice of a multiple-choice question. Options keep
// their parse order, which is also display order.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizQuestion is a structured record parsed from generated quiz text.
// Invariant: CorrectLabel is always the label of one of Options; the parser
// drops any block that cannot satisfy this.
type QuizQuestion struct {
	Text         string   `json:"text"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correct_label"`
	Explanation  string   `json:"explanation"`
}

// OptionText returns the text of the option carrying the given label.
func (q *QuizQuestion) OptionText(label string) (string, bool) {
	for _, opt := range q.Options {
		if opt.Label == label {
			return opt.Text, true
		}
	}
	return "", false
}

// HasOption reports whether label names one of the question's options.
func (q *QuizQuestion) HasOption(label string) bool {
	_, ok := q.OptionText(label)
	return ok
}

// QuizSession holds one generated quiz and its grading state. A new quiz
// overwrites any prior session; state is mutated only by Submit.
type QuizSession struct {
	Questions []QuizQuestion `json:"questions"`
	Submitted []bool         `json:"submitted"`
	Feedback  []string       `json:"feedback"`
	Score     int            `json:"score"`
}

// NewQuizSession creates a fresh session over the given questions.
func NewQuizSession(questions []QuizQuestion) *QuizSession {
	return &QuizSession{
		Questions: questions,
		Submitted: make([]bool, len(questions)),
		Feedback:  make([]string, len(questions)),
	}
}

// Complete reports whether every question has been submitted.
func (s *QuizSession) Complete() bool {
	for _, done := range s.Submitted {
		if !done {
			return false
		}
	}
	return len(s.Questions) > 0
}

// Submit grades the selected label for question index. Grading is idempotent:
// a repeat submission returns the recorded result and never changes the score.
func (s *QuizSession) Submit(index int, selected string) (correct bool, feedback string, err error) {
	if index < 0 || index >= len(s.Questions) {
		return false, "", NewInvalidInputError(fmt.Sprintf("question index out of range: %d", index))
	}
	q := &s.Questions[index]
	if s.Submitted[index] {
		return q.CorrectLabel == selected, s.Feedback[index], nil
	}
	if !q.HasOption(selected) {
		return false, "", NewInvalidInputError(fmt.Sprintf("unknown option label: %q", selected))
	}

	s.Submitted[index] = true
	if selected == q.CorrectLabel {
		s.Score++
		s.Feedback[index] = fmt.Sprintf("Correct! %s", q.Explanation)
		return true, s.Feedback[index], nil
	}
	s.Feedback[index] = fmt.Sprintf("Incorrect. Correct answer: %s. %s", q.CorrectLabel, q.Explanation)
	return false, s.Feedback[index], nil
}
