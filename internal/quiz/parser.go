package quiz

import (
	"regexp"
	"strings"

	"studysupport/internal/domain"
)

var (
	// questionMarker bounds one question block: "Q<digits>." at line start.
	questionMarker = regexp.MustCompile(`(?m)^Q\d+\.\s*`)

	// optionPattern matches a single option line: "<A-D>. <text>".
	optionPattern = regexp.MustCompile(`^([A-D])\.\s*(.*)`)

	// answerPattern and explanationPattern are searched over the whole block,
	// not line-by-line; the model does not keep them on fixed offsets.
	answerPattern      = regexp.MustCompile(`Answer:\s*([A-D])`)
	explanationPattern = regexp.MustCompile(`Explanation:\s*(.*)`)
)

// Parse extracts structured questions from free-form model output following
// the committed quiz layout. It is maximally permissive about whitespace and
// ordering noise but rejects structurally incomplete blocks: a block missing
// its question line, every option, the answer letter, or the explanation is
// dropped rather than surfaced. The second return value counts dropped
// blocks, kept for diagnostics only.
func Parse(raw string) ([]domain.QuizQuestion, int) {
	text := strings.TrimSpace(raw)
	markers := questionMarker.FindAllStringIndex(text, -1)

	var questions []domain.QuizQuestion
	dropped := 0
	for i, marker := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		block := strings.TrimSpace(text[marker[1]:end])

		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		} else {
			dropped++
		}
	}
	return questions, dropped
}

func parseBlock(block string) (domain.QuizQuestion, bool) {
	var q domain.QuizQuestion
	if block == "" {
		return q, false
	}

	lines := strings.Split(block, "\n")
	q.Text = strings.TrimSpace(lines[0])

	// The next up to four lines may carry options; lines that don't match the
	// option shape are formatting noise and are skipped, not errors.
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[1:limit] {
		m := optionPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		label, optText := m[1], strings.TrimSpace(m[2])
		if existing := indexOfOption(q.Options, label); existing >= 0 {
			q.Options[existing].Text = optText
		} else {
			q.Options = append(q.Options, domain.Option{Label: label, Text: optText})
		}
	}

	answerMatch := answerPattern.FindStringSubmatch(block)
	explanationMatch := explanationPattern.FindStringSubmatch(block)
	if q.Text == "" || len(q.Options) == 0 || answerMatch == nil || explanationMatch == nil {
		return domain.QuizQuestion{}, false
	}

	q.CorrectLabel = answerMatch[1]
	q.Explanation = strings.TrimSpace(explanationMatch[1])

	// The correct label must name one of the parsed options; a block where it
	// doesn't would crash grading downstream.
	if !q.HasOption(q.CorrectLabel) {
		return domain.QuizQuestion{}, false
	}
	return q, true
}

func indexOfOption(options []domain.Option, label string) int {
	for i, opt := range options {
		if opt.Label == label {
			return i
		}
	}
	return -1
}
