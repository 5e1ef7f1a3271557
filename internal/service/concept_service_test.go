package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/repository"
)

func TestCreateConcept(t *testing.T) {
	db := newTestDB(t)
	svc := NewConceptService(repository.NewConceptRepository(db))

	resp, err := svc.CreateConcept(dto.CreateConceptRequest{
		Concept:    "  Sampling frame  ",
		Definition: "the list a sample is drawn from",
		Category:   "Research",
		Source:     "methods.pdf",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Sampling frame", resp.Concept)
	assert.Equal(t, "Research", resp.Category)
	assert.Equal(t, "methods.pdf", resp.Source)
}

func TestCreateConceptRejectsMalformed(t *testing.T) {
	db := newTestDB(t)
	svc := NewConceptService(repository.NewConceptRepository(db))

	for _, req := range []dto.CreateConceptRequest{
		{Concept: "   ", Definition: "something", Category: "Stats"},
		{Concept: "Something", Definition: "\t", Category: "Stats"},
	} {
		_, err := svc.CreateConcept(req)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	}
}

func TestCreateConceptRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewConceptService(repository.NewConceptRepository(db))

	_, err := svc.CreateConcept(dto.CreateConceptRequest{
		Concept: "Kurtosis", Definition: "tailedness", Category: "Trivia",
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestGetCategoriesReflectsStore(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewConceptRepository(db)
	svc := NewConceptService(repo)

	require.NoError(t, repo.Create(&model.Concept{Concept: "Mean", Definition: "avg", Category: model.CategoryStats}))
	require.NoError(t, repo.Create(&model.Concept{Concept: "Median", Definition: "mid", Category: model.CategoryStats}))
	require.NoError(t, repo.Create(&model.Concept{Concept: "Thesis", Definition: "claim", Category: model.CategoryWriting}))

	categories, err := svc.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []model.Category{model.CategoryStats, model.CategoryWriting}, categories)
}

func TestGetConceptsFiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewConceptRepository(db)
	svc := NewConceptService(repo)

	require.NoError(t, repo.Create(&model.Concept{Concept: "Mean", Definition: "avg", Category: model.CategoryStats}))
	require.NoError(t, repo.Create(&model.Concept{Concept: "Thesis", Definition: "claim", Category: model.CategoryWriting}))

	stats, err := svc.GetConcepts([]model.Category{model.CategoryStats})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Mean", stats[0].Concept)

	all, err := svc.GetConcepts(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
