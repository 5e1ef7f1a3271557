package dto

// CreateConceptRequest creates a curated concept directly, the scripted
// counterpart of interactive curation.
type CreateConceptRequest struct {
	Concept    string `json:"concept" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Category   string `json:"category" binding:"required,oneof=Writing Research Stats"`
	Source     string `json:"source"`
}

// SubmitAnswerRequest locks in one choice for a pending question.
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	ChoiceID   uint   `json:"choice_id" binding:"required"`
}
