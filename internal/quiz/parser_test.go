package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedQuiz = `Q1. What does CPU stand for?
A. Central Processing Unit
B. Computer Personal Unit
C. Central Print Unit
D. Control Processing Utility
Answer: A
Explanation: CPU stands for Central Processing Unit.

Q2. Which protocol is connection-oriented?
A. UDP
B. TCP
C. ICMP
D. ARP
Answer: B
Explanation: TCP establishes a connection before transferring data.`

func TestParseWellFormed(t *testing.T) {
	questions, dropped := Parse(wellFormedQuiz)

	require.Len(t, questions, 2)
	assert.Zero(t, dropped)

	q1 := questions[0]
	assert.Equal(t, "What does CPU stand for?", q1.Text)
	require.Len(t, q1.Options, 4)
	assert.Equal(t, "A", q1.Options[0].Label)
	assert.Equal(t, "Central Processing Unit", q1.Options[0].Text)
	assert.Equal(t, "D", q1.Options[3].Label)
	assert.Equal(t, "A", q1.CorrectLabel)
	assert.Equal(t, "CPU stands for Central Processing Unit.", q1.Explanation)

	q2 := questions[1]
	assert.Equal(t, "B", q2.CorrectLabel)
	assert.True(t, q2.HasOption(q2.CorrectLabel))
}

func TestParseDropsBlockMissingAnswer(t *testing.T) {
	raw := `Q1. Complete question?
A. Yes
B. No
C. Maybe
D. Unknown
Answer: A
Explanation: It is complete.

Q2. Broken question missing its answer line?
A. Yes
B. No
C. Maybe
D. Unknown
Explanation: No answer given.`

	questions, dropped := Parse(raw)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "Complete question?", questions[0].Text)
}

func TestParseToleratesFormattingNoise(t *testing.T) {
	// Blank line inside the option window and answer/explanation swapped in
	// order; both are tolerated.
	raw := `Q1. Noisy but parseable?

A. First
B. Second
C. Third
Explanation: The first option is right.
Answer: A`

	questions, dropped := Parse(raw)
	require.Len(t, questions, 1)
	assert.Zero(t, dropped)
	// The blank line consumed one of the four option slots.
	assert.Len(t, questions[0].Options, 3)
	assert.Equal(t, "A", questions[0].CorrectLabel)
	assert.Equal(t, "The first option is right.", questions[0].Explanation)
}

func TestParseDropsBlockWithoutOptions(t *testing.T) {
	raw := `Q1. A question with no options at all?
Answer: A
Explanation: Nothing to choose from.`

	questions, dropped := Parse(raw)
	assert.Empty(t, questions)
	assert.Equal(t, 1, dropped)
}

func TestParseDropsAnswerOutsideObservedOptions(t *testing.T) {
	raw := `Q1. Which one?
A. Only
B. Two
Answer: D
Explanation: The answer letter has no matching option.`

	questions, dropped := Parse(raw)
	assert.Empty(t, questions)
	assert.Equal(t, 1, dropped)
}

func TestParseIgnoresPreambleAndEmptyInput(t *testing.T) {
	questions, dropped := Parse("Here is your quiz, enjoy!\n\n" + wellFormedQuiz)
	assert.Len(t, questions, 2)
	assert.Zero(t, dropped)

	questions, dropped = Parse("")
	assert.Empty(t, questions)
	assert.Zero(t, dropped)

	questions, dropped = Parse("The model refused to make a quiz.")
	assert.Empty(t, questions)
	assert.Zero(t, dropped)
}

func TestParseDoesNotSplitMidLine(t *testing.T) {
	// "Q2." mid-line must not start a new block.
	raw := `Q1. Does mentioning Q2. inside a question split it?
A. Yes
B. No
Answer: B
Explanation: Markers only count at line start.`

	questions, dropped := Parse(raw)
	require.Len(t, questions, 1)
	assert.Zero(t, dropped)
	assert.Contains(t, questions[0].Text, "Q2.")
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"":         DifficultyBasic,
		"basic":    DifficultyBasic,
		"Advanced": DifficultyAdvanced,
		" hard ":   DifficultyHard,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}

func TestBuildQuizPromptLayout(t *testing.T) {
	prompt := BuildQuizPrompt("some context", DifficultyAdvanced, 7)
	assert.Contains(t, prompt, "advanced-level MCQ quiz")
	assert.Contains(t, prompt, "Create 7 multiple-choice questions")
	assert.Contains(t, prompt, "some context")
	assert.Contains(t, prompt, "Q1. Question text")
	assert.Contains(t, prompt, "Answer: A/B/C/D")
	assert.Contains(t, prompt, "Explanation: One-line explanation")
}
