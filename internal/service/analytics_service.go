package service

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/hqanh/theorytrainer/internal/dto"
	"github.com/hqanh/theorytrainer/internal/repository"
)

type AnalyticsService interface {
	TroubleSpots(topN int) ([]dto.TroubleSpot, error)
}

type analyticsService struct {
	attemptRepo repository.AttemptRepository
}

func NewAnalyticsService(attemptRepo repository.AttemptRepository) AnalyticsService {
	return &analyticsService{attemptRepo: attemptRepo}
}

// TroubleSpots ranks concepts by miss rate, worst first, truncated to
// topN. Concepts never attempted have no aggregate row and never appear;
// an empty attempt log yields an empty slice.
func (s *analyticsService) TroubleSpots(topN int) ([]dto.TroubleSpot, error) {
	rows, err := s.attemptRepo.AggregateByConcept()
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate attempts")
		return nil, err
	}

	spots := make([]dto.TroubleSpot, 0, len(rows))
	for _, r := range rows {
		if r.Seen <= 0 {
			continue
		}
		spots = append(spots, dto.TroubleSpot{
			Concept:  r.Concept,
			Category: string(r.Category),
			Seen:     r.Seen,
			MissPct:  1 - float64(r.Hit)/float64(r.Seen),
		})
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].MissPct > spots[j].MissPct
	})
	if topN > 0 && len(spots) > topN {
		spots = spots[:topN]
	}
	return spots, nil
}
