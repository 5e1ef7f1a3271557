package model

import (
	"time"
)

// Category classifies a concept. The set is fixed; curation falls back to
// DefaultCategory when the curator's selection is invalid.
type Category string

const (
	CategoryWriting  Category = "Writing"
	CategoryResearch Category = "Research"
	CategoryStats    Category = "Stats"
)

// DefaultCategory is Research, matching the historical curation default.
const DefaultCategory = CategoryResearch

// Categories returns the fixed category set in prompt order.
func Categories() []Category {
	return []Category{CategoryWriting, CategoryResearch, CategoryStats}
}

// ParseCategory maps a string onto the fixed set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Concept is one curated concept/definition record. Records are immutable
// after creation; there is no update or delete path.
type Concept struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Concept    string    `json:"concept" gorm:"not null"`
	Definition string    `json:"definition" gorm:"type:text;not null"`
	Category   Category  `json:"category" gorm:"not null;index"`
	Source     string    `json:"source"`
	Added      time.Time `json:"added"`
	CreatedAt  time.Time `json:"created_at"`
}
