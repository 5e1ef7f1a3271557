package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/extract"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/repository"
)

// DecisionAction is the curator's verdict on one candidate.
type DecisionAction string

const (
	ActionAccept DecisionAction = "accept"
	ActionEdit   DecisionAction = "edit"
	ActionSkip   DecisionAction = "skip"
)

// Decision carries the curator's verdict. For ActionEdit, a non-empty
// Concept or Definition replaces the extracted value; empty keeps it.
type Decision struct {
	Action     DecisionAction
	Concept    string
	Definition string
}

// Curator is the human (or scripted) decision collaborator. The workflow
// asks for one decision per candidate and one category per kept record.
type Curator interface {
	PromptDecision(concept, definition string) (Decision, error)
	// PromptCategory returns the index of the chosen category. An index
	// outside choices falls back to the default category.
	PromptCategory(choices []model.Category) int
}

// TextExtractor turns a document file into plain text.
type TextExtractor interface {
	ExtractFile(ctx context.Context, path string) (string, error)
}

type CurationService interface {
	IngestFile(ctx context.Context, path string) (*dto.IngestReport, error)
}

type curationService struct {
	conceptRepo repository.ConceptRepository
	extractor   TextExtractor
	curator     Curator
}

func NewCurationService(conceptRepo repository.ConceptRepository, extractor TextExtractor, curator Curator) CurationService {
	return &curationService{
		conceptRepo: conceptRepo,
		extractor:   extractor,
		curator:     curator,
	}
}

// IngestFile extracts candidates from one document and drives the curator
// over each in extraction order. Every accepted candidate is inserted
// durably on its own before the next prompt, so an interrupted run keeps
// its partial progress. If the store or curator fails, the remaining
// candidates are reported as pending and the report is returned alongside
// the error.
func (s *curationService) IngestFile(ctx context.Context, path string) (*dto.IngestReport, error) {
	text, err := s.extractor.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}

	candidates := extract.ParseBlocks(text)
	report := &dto.IngestReport{
		File:       filepath.Base(path),
		Candidates: len(candidates),
	}
	categories := model.Categories()

	for i, cand := range candidates {
		decision, err := s.curator.PromptDecision(cand.Concept, cand.Definition)
		if err != nil {
			report.Pending = len(candidates) - i
			return report, fmt.Errorf("curation aborted at candidate %d: %w", i+1, err)
		}

		if decision.Action == ActionSkip {
			report.Skipped++
			continue
		}

		concept, definition := cand.Concept, cand.Definition
		if decision.Action == ActionEdit {
			if strings.TrimSpace(decision.Concept) != "" {
				concept = decision.Concept
			}
			if strings.TrimSpace(decision.Definition) != "" {
				definition = decision.Definition
			}
		}
		concept = strings.TrimSpace(concept)
		definition = strings.TrimSpace(definition)
		if concept == "" || definition == "" {
			log.Warn().Str("file", report.File).Err(ErrMalformedRecord).Msg("Rejected candidate after edit")
			report.Rejected++
			continue
		}

		idx := s.curator.PromptCategory(categories)
		if idx < 0 || idx >= len(categories) {
			idx = categoryIndex(categories, model.DefaultCategory)
		}

		record := model.Concept{
			Concept:    concept,
			Definition: definition,
			Category:   categories[idx],
			Source:     report.File,
			Added:      time.Now(),
		}
		if err := s.conceptRepo.Create(&record); err != nil {
			report.Pending = len(candidates) - i
			log.Error().Err(err).Str("concept", concept).Msg("Store insert failed, aborting file")
			return report, fmt.Errorf("insert concept %q: %w", concept, err)
		}
		report.Inserted++
	}

	log.Info().
		Str("file", report.File).
		Int("candidates", report.Candidates).
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Int("rejected", report.Rejected).
		Msg("File curated")
	return report, nil
}

func categoryIndex(categories []model.Category, c model.Category) int {
	for i, cat := range categories {
		if cat == c {
			return i
		}
	}
	return 0
}
