package dto

// CreateFormRequest exports the session's document as a remote form quiz.
type CreateFormRequest struct {
	Title        string `json:"title"`
	NumQuestions int    `json:"num_questions"`
}

// CreateFormResponse identifies the created remote form.
type CreateFormResponse struct {
	FormID       string `json:"form_id"`
	EditURL      string `json:"edit_url"`
	ResponderURL string `json:"responder_url"`
}

// GradedResponse is one respondent's graded submission.
type GradedResponse struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Answers []string `json:"answers"`
	Score   int      `json:"score"`
	Total   int      `json:"total"`
}

// FormResponsesResponse lists all graded submissions of a form.
type FormResponsesResponse struct {
	FormID    string           `json:"form_id"`
	Title     string           `json:"title"`
	Responses []GradedResponse `json:"responses"`
}

// VideoResponse is one ranked recommendation.
type VideoResponse struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	ViewCount int64  `json:"view_count"`
	LikeCount int64  `json:"like_count"`
}

// VideosResponse lists the top recommendations for a session's document.
type VideosResponse struct {
	Query  string          `json:"query"`
	Videos []VideoResponse `json:"videos"`
}
