package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqanh/theorytrainer/internal/model"
)

func testPool(n int) []model.Concept {
	pool := make([]model.Concept, 0, n)
	labels := []string{"Mean", "Median", "Mode", "Variance", "Skew", "Kurtosis", "Range", "Outlier"}
	for i := 0; i < n; i++ {
		pool = append(pool, model.Concept{
			ID:         uint(i + 1),
			Concept:    labels[i%len(labels)],
			Definition: "definition " + labels[i%len(labels)],
			Category:   model.CategoryStats,
		})
	}
	return pool
}

func TestNewQuestionShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := testPool(8)

	for i := 0; i < 50; i++ {
		q, err := NewQuestion(pool, rng)
		require.NoError(t, err)

		assert.Len(t, q.Choices, NumChoices)

		targetCount := 0
		seenLabels := map[string]bool{}
		for _, c := range q.Choices {
			if c.ID == q.Target.ID {
				targetCount++
			}
			assert.False(t, seenLabels[c.Concept], "duplicate label %q", c.Concept)
			seenLabels[c.Concept] = true
			assert.Equal(t, model.CategoryStats, c.Category)
		}
		assert.Equal(t, 1, targetCount, "exactly one choice is the target")
	}
}

func TestNewQuestionPoolTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < NumChoices; n++ {
		q, err := NewQuestion(testPool(n), rng)
		assert.Nil(t, q)

		var poolErr *InsufficientPoolError
		require.ErrorAs(t, err, &poolErr)
		assert.Equal(t, n, poolErr.Have)
		assert.Equal(t, NumChoices, poolErr.Need)
	}
}

func TestNewQuestionDuplicateLabelsShrinkPool(t *testing.T) {
	// Six concepts but only three distinct labels: no valid question.
	pool := []model.Concept{
		{ID: 1, Concept: "Mean"}, {ID: 2, Concept: "Mean"},
		{ID: 3, Concept: "Median"}, {ID: 4, Concept: "Median"},
		{ID: 5, Concept: "Mode"}, {ID: 6, Concept: "Mode"},
	}
	rng := rand.New(rand.NewSource(3))

	_, err := NewQuestion(pool, rng)
	var poolErr *InsufficientPoolError
	require.ErrorAs(t, err, &poolErr)
}

func TestNewQuestionTargetMovesSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pool := testPool(8)

	positions := map[int]bool{}
	for i := 0; i < 200; i++ {
		q, err := NewQuestion(pool, rng)
		require.NoError(t, err)
		for slot, c := range q.Choices {
			if c.ID == q.Target.ID {
				positions[slot] = true
			}
		}
	}
	// The shuffle must not pin the correct answer to one slot.
	assert.Len(t, positions, NumChoices)
}

func TestNewQuestionDeterministicWithSeed(t *testing.T) {
	pool := testPool(8)

	a, err := NewQuestion(pool, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := NewQuestion(pool, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.Target.ID, b.Target.ID)
	for i := range a.Choices {
		assert.Equal(t, a.Choices[i].ID, b.Choices[i].ID)
	}
}
