package model

import (
	"time"
)

// Attempt is one answered quiz question, append-only. ConceptID is a weak
// reference; attempts are never cascaded or mutated.
type Attempt struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ConceptID uint      `json:"concept_id" gorm:"not null;index"`
	Concept   Concept   `json:"concept,omitempty" gorm:"foreignKey:ConceptID"`
	Date      time.Time `json:"date"`
	Attempts  int       `json:"attempts" gorm:"not null;default:1"`
	Correct   int       `json:"correct" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
