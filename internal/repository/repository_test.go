package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hqanh/theorytrainer/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Concept{}, &model.Attempt{}))
	return db
}

func TestConceptRepositoryCreateAssignsID(t *testing.T) {
	repo := NewConceptRepository(newTestDB(t))

	concept := model.Concept{Concept: "Mean", Definition: "avg", Category: model.CategoryStats, Added: time.Now()}
	require.NoError(t, repo.Create(&concept))
	assert.NotZero(t, concept.ID)

	loaded, err := repo.FindByID(concept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mean", loaded.Concept)
}

func TestConceptRepositoryFindByCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewConceptRepository(db)

	for _, c := range []model.Concept{
		{Concept: "Mean", Definition: "avg", Category: model.CategoryStats},
		{Concept: "Thesis", Definition: "claim", Category: model.CategoryWriting},
		{Concept: "Confound", Definition: "hidden cause", Category: model.CategoryResearch},
	} {
		rec := c
		require.NoError(t, repo.Create(&rec))
	}

	two, err := repo.FindByCategories([]model.Category{model.CategoryStats, model.CategoryWriting})
	require.NoError(t, err)
	assert.Len(t, two, 2)

	all, err := repo.FindByCategories(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	categories, err := repo.DistinctCategories()
	require.NoError(t, err)
	assert.Equal(t, []model.Category{model.CategoryResearch, model.CategoryStats, model.CategoryWriting}, categories)
}

func TestAttemptRepositoryAggregateByConcept(t *testing.T) {
	db := newTestDB(t)
	conceptRepo := NewConceptRepository(db)
	attemptRepo := NewAttemptRepository(db)

	a := model.Concept{Concept: "Mean", Definition: "avg", Category: model.CategoryStats}
	b := model.Concept{Concept: "Thesis", Definition: "claim", Category: model.CategoryWriting}
	require.NoError(t, conceptRepo.Create(&a))
	require.NoError(t, conceptRepo.Create(&b))

	for _, correct := range []int{1, 0, 1} {
		require.NoError(t, attemptRepo.Create(&model.Attempt{ConceptID: a.ID, Date: time.Now(), Attempts: 1, Correct: correct}))
	}

	rows, err := attemptRepo.AggregateByConcept()
	require.NoError(t, err)

	require.Len(t, rows, 1, "concepts without attempts have no aggregate row")
	assert.Equal(t, a.ID, rows[0].ConceptID)
	assert.Equal(t, "Mean", rows[0].Concept)
	assert.Equal(t, model.CategoryStats, rows[0].Category)
	assert.Equal(t, 3, rows[0].Seen)
	assert.Equal(t, 2, rows[0].Hit)
}
