package service

import (
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/repository"
)

type ConceptService interface {
	CreateConcept(req dto.CreateConceptRequest) (*dto.ConceptResponse, error)
	GetConcepts(categories []model.Category) ([]dto.ConceptResponse, error)
	GetCategories() ([]model.Category, error)
}

type conceptService struct {
	conceptRepo repository.ConceptRepository
}

func NewConceptService(conceptRepo repository.ConceptRepository) ConceptService {
	return &conceptService{conceptRepo: conceptRepo}
}

func (s *conceptService) CreateConcept(req dto.CreateConceptRequest) (*dto.ConceptResponse, error) {
	concept := strings.TrimSpace(req.Concept)
	definition := strings.TrimSpace(req.Definition)
	if concept == "" || definition == "" {
		return nil, ErrMalformedRecord
	}

	category, ok := model.ParseCategory(req.Category)
	if !ok {
		return nil, ErrUnknownCategory
	}

	record := model.Concept{
		Concept:    concept,
		Definition: definition,
		Category:   category,
		Source:     req.Source,
		Added:      time.Now(),
	}
	if err := s.conceptRepo.Create(&record); err != nil {
		log.Error().Err(err).Str("concept", concept).Msg("Failed to create concept")
		return nil, err
	}

	var resp dto.ConceptResponse
	copier.Copy(&resp, &record)
	return &resp, nil
}

func (s *conceptService) GetConcepts(categories []model.Category) ([]dto.ConceptResponse, error) {
	concepts, err := s.conceptRepo.FindByCategories(categories)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ConceptResponse, 0, len(concepts))
	copier.Copy(&resp, &concepts)
	return resp, nil
}

func (s *conceptService) GetCategories() ([]model.Category, error) {
	return s.conceptRepo.DistinctCategories()
}
