package domain

// Chip is one selectable choice for a chips-type question. A nil Value
// represents the "None" selection.
type Chip struct {
	Value *string `json:"value"`
	Label string  `json:"label"`
}

// QuestionType distinguishes how a follow-up question is answered
type QuestionType string

const (
	QuestionChips  QuestionType = "chips"
	QuestionText   QuestionType = "text"
	QuestionNumber QuestionType = "number"
)

// FollowUpQuestion is one clarifying question asked after intent detection.
// Requiredness is advisory: the engine does not enforce it, the presentation
// layer does.
type FollowUpQuestion struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Type      QuestionType `json:"type"`
	Chips     []Chip       `json:"chips,omitempty"`
	AnswerKey AnswerKey    `json:"answerKey"`
	Required  bool         `json:"required,omitempty"`
}
