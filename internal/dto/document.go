package dto

// UploadResponse describes one processed upload.
type UploadResponse struct {
	SessionID  string `json:"session_id"`
	Filename   string `json:"filename"`
	Characters int    `json:"characters"`
	Chunks     int    `json:"chunks"`
}

// AskRequest is the request body for a document question.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse carries the generated answer.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChatTurnResponse is one past question/answer pair.
type ChatTurnResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
