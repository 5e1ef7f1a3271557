// Package quiz holds the question sampling and scoring engine. It is
// pure: randomness is injected so rounds can be replayed in tests.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/hqanh/theorytrainer/internal/model"
)

// NumChoices is the number of options shown per question: the target
// plus four distractors.
const NumChoices = 5

// InsufficientPoolError reports a concept pool too small to build a
// question. Have counts the usable distinct-labeled choices.
type InsufficientPoolError struct {
	Have int
	Need int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("not enough concepts for a question: have %d, need %d", e.Have, e.Need)
}

// Question is one generated round: a target concept and its shuffled
// choices. It lives only until the answer is locked in.
type Question struct {
	ID      string
	Target  model.Concept
	Choices []model.Concept
}

// NewQuestion draws a target uniformly from pool and four distractors
// without replacement from the rest, then shuffles the five choices so
// the correct answer has no fixed slot. Distractors are excluded by
// identity, and no two displayed choices share a concept label. Pools
// that cannot supply five distinct-labeled choices fail with
// InsufficientPoolError before any selection is kept.
func NewQuestion(pool []model.Concept, rng *rand.Rand) (*Question, error) {
	if len(pool) < NumChoices {
		return nil, &InsufficientPoolError{Have: len(pool), Need: NumChoices}
	}

	targetIdx := rng.Intn(len(pool))
	target := pool[targetIdx]

	rest := make([]model.Concept, 0, len(pool)-1)
	rest = append(rest, pool[:targetIdx]...)
	rest = append(rest, pool[targetIdx+1:]...)
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	seen := map[string]bool{target.Concept: true}
	distractors := make([]model.Concept, 0, NumChoices-1)
	for _, c := range rest {
		if seen[c.Concept] {
			continue
		}
		seen[c.Concept] = true
		distractors = append(distractors, c)
		if len(distractors) == NumChoices-1 {
			break
		}
	}
	if len(distractors) < NumChoices-1 {
		return nil, &InsufficientPoolError{Have: len(distractors) + 1, Need: NumChoices}
	}

	choices := append([]model.Concept{target}, distractors...)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &Question{
		ID:      uuid.NewString(),
		Target:  target,
		Choices: choices,
	}, nil
}
