package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hqanh/theorytrainer/internal/model"
)

// newTestDB opens a per-test in-memory store with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Concept{}, &model.Attempt{}))
	return db
}

// stubExtractor returns canned text for any path.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractFile(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

// scriptedCurator replays pre-recorded decisions and category picks.
type scriptedCurator struct {
	decisions  []Decision
	categories []int
	err        error

	decisionCalls int
	categoryCalls int
}

func (c *scriptedCurator) PromptDecision(_, _ string) (Decision, error) {
	if c.err != nil && c.decisionCalls >= len(c.decisions) {
		return Decision{}, c.err
	}
	d := c.decisions[c.decisionCalls]
	c.decisionCalls++
	return d, nil
}

func (c *scriptedCurator) PromptCategory(_ []model.Category) int {
	idx := c.categories[c.categoryCalls]
	c.categoryCalls++
	return idx
}
