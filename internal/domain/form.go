package domain

import "context"

// FormQuestion is the lossy projection of a QuizQuestion sent to the remote
// form: title and option texts only. Correct answers and explanations are
// never transmitted; they stay in the locally held answer key.
type FormQuestion struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

// CreatedForm identifies a remote form resource. IDs are opaque strings owned
// by the forms service.
type CreatedForm struct {
	FormID       string `json:"form_id"`
	EditURL      string `json:"edit_url"`
	ResponderURL string `json:"responder_url"`
}

// FormItem is one item of the remote form as the service reports it, in the
// service's own item order.
type FormItem struct {
	QuestionID string
	Title      string
}

// FormResponse is one respondent's raw submission: answers keyed by the
// remote question ID.
type FormResponse struct {
	ResponseID string
	Answers    map[string]string
}

// AnswerKey is the locally held grading key for an exported form.
type AnswerKey struct {
	FormID         string   `json:"form_id"`
	Title          string   `json:"title"`
	QuestionTitles []string `json:"question_titles"`
	CorrectAnswers []string `json:"correct_answers"`
}

// FormExporter is the port for the remote forms service.
type FormExporter interface {
	// CreateForm creates a remote form and appends one multiple-choice item
	// per question, plus leading Name/Email identity items.
	CreateForm(ctx context.Context, title string, questions []FormQuestion) (*CreatedForm, error)

	// ListItems returns the form's items in the service's own order.
	ListItems(ctx context.Context, formID string) ([]FormItem, error)

	// ListResponses returns all submitted responses for the form.
	ListResponses(ctx context.Context, formID string) ([]FormResponse, error)
}

// AnswerKeyRepository persists answer keys between form creation and grading.
type AnswerKeyRepository interface {
	Get(ctx context.Context, formID string) (*AnswerKey, error)
	Save(ctx context.Context, key *AnswerKey) error
}
