package quiz

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of difficulty levels the generation prompt
// accepts.
type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyAdvanced Difficulty = "advanced"
	DifficultyHard     Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string, defaulting to basic when
// empty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DifficultyBasic, nil
	case DifficultyBasic:
		return DifficultyBasic, nil
	case DifficultyAdvanced:
		return DifficultyAdvanced, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

// quizPromptTemplate commits the model to a literal textual layout; the
// parser in this package is the only schema enforcement the system has.
const quizPromptTemplate = `You are a quiz master. Generate a %s-level MCQ quiz based on the following content.

Context:
%s

Create %d multiple-choice questions. Each question should have 4 options (A, B, C, D), indicate the correct answer, and include a one-line explanation.

Output format:
Q1. Question text
A. Option A
B. Option B
C. Option C
D. Option D
Answer: A/B/C/D
Explanation: One-line explanation`

// BuildQuizPrompt formats the single generation request for a quiz of the
// given difficulty and size over the retrieved context.
func BuildQuizPrompt(context string, difficulty Difficulty, numQuestions int) string {
	return fmt.Sprintf(quizPromptTemplate, difficulty, context, numQuestions)
}

const askPromptTemplate = `You are a helpful assistant. Use the context to answer the question.

Context:
%s

Question:
%s`

// BuildAskPrompt formats the retrieval-augmented answer request.
func BuildAskPrompt(context, question string) string {
	return fmt.Sprintf(askPromptTemplate, context, question)
}
