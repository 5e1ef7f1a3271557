package repository

import (
	"github.com/hqanh/theorytrainer/internal/model"
	"gorm.io/gorm"
)

// ConceptAggregate is one concept's attempt totals joined with its
// metadata. Only concepts with at least one attempt row appear.
type ConceptAggregate struct {
	ConceptID uint           `json:"concept_id"`
	Concept   string         `json:"concept"`
	Category  model.Category `json:"category"`
	Seen      int            `json:"seen"`
	Hit       int            `json:"hit"`
}

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	AggregateByConcept() ([]ConceptAggregate, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

// AggregateByConcept sums attempts and correct answers per concept.
func (r *attemptRepository) AggregateByConcept() ([]ConceptAggregate, error) {
	var rows []ConceptAggregate
	err := r.db.Model(&model.Attempt{}).
		Select("attempts.concept_id AS concept_id, concepts.concept AS concept, concepts.category AS category, SUM(attempts.attempts) AS seen, SUM(attempts.correct) AS hit").
		Joins("JOIN concepts ON concepts.id = attempts.concept_id").
		Group("attempts.concept_id, concepts.concept, concepts.category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
