package repository

import (
	"github.com/hqanh/theorytrainer/internal/model"
	"gorm.io/gorm"
)

type ConceptRepository interface {
	Create(concept *model.Concept) error
	FindByID(id uint) (*model.Concept, error)
	FindAll() ([]model.Concept, error)
	FindByCategories(categories []model.Category) ([]model.Concept, error)
	DistinctCategories() ([]model.Category, error)
}

type conceptRepository struct {
	db *gorm.DB
}

func NewConceptRepository(db *gorm.DB) ConceptRepository {
	return &conceptRepository{db: db}
}

func (r *conceptRepository) Create(concept *model.Concept) error {
	return r.db.Create(concept).Error
}

func (r *conceptRepository) FindByID(id uint) (*model.Concept, error) {
	var concept model.Concept
	if err := r.db.First(&concept, id).Error; err != nil {
		return nil, err
	}
	return &concept, nil
}

func (r *conceptRepository) FindAll() ([]model.Concept, error) {
	var concepts []model.Concept
	if err := r.db.Order("id asc").Find(&concepts).Error; err != nil {
		return nil, err
	}
	return concepts, nil
}

// FindByCategories returns concepts in any of the given categories. An
// empty category list means all categories.
func (r *conceptRepository) FindByCategories(categories []model.Category) ([]model.Concept, error) {
	var concepts []model.Concept
	query := r.db.Order("id asc")
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	if err := query.Find(&concepts).Error; err != nil {
		return nil, err
	}
	return concepts, nil
}

func (r *conceptRepository) DistinctCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Model(&model.Concept{}).Distinct("category").Order("category asc").Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
