package dto

// GenerateQuizRequest asks for a fresh quiz over the session's document.
type GenerateQuizRequest struct {
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// QuizOption is one labeled choice, in display order.
type QuizOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizQuestionResponse is a question as shown to the user: the correct label
// and explanation stay server-side until the question is submitted.
type QuizQuestionResponse struct {
	Index   int          `json:"index"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// GenerateQuizResponse is the freshly generated quiz.
type GenerateQuizResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
	Dropped   int                    `json:"dropped_blocks,omitempty"`
}

// SubmitAnswerRequest grades one selected option.
type SubmitAnswerRequest struct {
	QuestionIndex int    `json:"question_index"`
	Selected      string `json:"selected"`
}

// SubmitAnswerResponse is the grading outcome for one question.
type SubmitAnswerResponse struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
	Complete bool   `json:"complete"`
}
