package dto

import "time"

type ConceptResponse struct {
	ID         uint      `json:"id"`
	Concept    string    `json:"concept"`
	Definition string    `json:"definition"`
	Category   string    `json:"category"`
	Source     string    `json:"source,omitempty"`
	Added      time.Time `json:"added"`
}

// SessionResponse is the score state of one quiz session.
type SessionResponse struct {
	ID     string  `json:"id"`
	Points float64 `json:"points"`
	Streak int     `json:"streak"`
}

// ChoiceResponse is one displayed option. It deliberately omits the
// definition and any marker of correctness.
type ChoiceResponse struct {
	ID      uint   `json:"id"`
	Concept string `json:"concept"`
}

// QuestionResponse asks which concept matches the definition.
type QuestionResponse struct {
	QuestionID string           `json:"question_id"`
	Definition string           `json:"definition"`
	Choices    []ChoiceResponse `json:"choices"`
}

// AnswerResponse grades one locked-in choice and reports the updated
// session score. CorrectConcept names the right answer on a miss.
type AnswerResponse struct {
	Correct         bool    `json:"correct"`
	CorrectChoiceID uint    `json:"correct_choice_id"`
	CorrectConcept  string  `json:"correct_concept"`
	Points          float64 `json:"points"`
	Streak          int     `json:"streak"`
}

// TroubleSpot is one entry of the most-missed ranking.
type TroubleSpot struct {
	Concept  string  `json:"concept"`
	Category string  `json:"category"`
	Seen     int     `json:"seen"`
	MissPct  float64 `json:"miss_pct"`
}

// IngestReport summarizes one file's curation outcome. Pending counts
// candidates left unprocessed when the run aborted early.
type IngestReport struct {
	File       string `json:"file"`
	Candidates int    `json:"candidates"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
	Rejected   int    `json:"rejected"`
	Pending    int    `json:"pending"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
