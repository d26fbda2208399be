package domain

// CreateProblemRequest starts a new wizard session
type CreateProblemRequest struct {
	Problem string `json:"problem" binding:"required"`
}

// UpdateAnswerRequest writes one follow-up answer
type UpdateAnswerRequest struct {
	Key   AnswerKey   `json:"key" binding:"required"`
	Value AnswerValue `json:"value"`
}

// AddReviewRequest is a community review submission; the date is stamped
// server-side.
type AddReviewRequest struct {
	DatasetID string `json:"datasetId" binding:"required"`
	Stars     int    `json:"stars" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Author    string `json:"author" binding:"required"`
}

// LoginRequest carries the demo admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
