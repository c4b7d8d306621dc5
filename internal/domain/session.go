package domain

import "context"

// ChatTurn is one question/answer exchange in the ask page history.
type ChatTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session is the per-user state. Sessions never interact; each request
// operates on exactly one session loaded by ID.
type Session struct {
	ID          string       `json:"id"`
	Document    *Document    `json:"document,omitempty"`
	ChatHistory []ChatTurn   `json:"chat_history,omitempty"`
	Quiz        *QuizSession `json:"quiz,omitempty"`
}

// HasDocument reports whether a document has been ingested into this session.
func (s *Session) HasDocument() bool {
	return s.Document != nil && s.Document.Text != ""
}

// SessionRepository is the port for session persistence.
type SessionRepository interface {
	// Get loads a session by ID. Returns a SESSION_NOT_FOUND DomainError
	// when no session exists under that ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Save stores the session, overwriting any prior state.
	Save(ctx context.Context, session *Session) error

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
