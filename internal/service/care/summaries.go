package care

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// LatestSummaries returns, per plant with at least one log, when each care
// action last happened.
func (s *Service) LatestSummaries(ctx context.Context) ([]domain.PlantLatestCareSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	logs, err := s.logs.LatestPerType(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list latest care logs: %w", err)
	}

	return summarize(logs), nil
}

func summarize(logs []domain.CareLog) []domain.PlantLatestCareSummary {
	byPlant := make(map[uuid.UUID]*domain.PlantLatestCareSummary)

	for i := range logs {
		l := &logs[i]
		sum, ok := byPlant[l.PlantID]
		if !ok {
			sum = &domain.PlantLatestCareSummary{PlantID: l.PlantID}
			byPlant[l.PlantID] = sum
		}

		at := l.OccurredAt
		switch l.EventType {
		case domain.CareEventWater:
			if sum.LastWateredAt == nil || at.After(*sum.LastWateredAt) {
				sum.LastWateredAt = &at
			}
		case domain.CareEventFertilize:
			if sum.LastFertilizedAt == nil || at.After(*sum.LastFertilizedAt) {
				sum.LastFertilizedAt = &at
				sum.LastFertilizerName = l.FertilizerName
			}
		case domain.CareEventRepot:
			if sum.LastRepottedAt == nil || at.After(*sum.LastRepottedAt) {
				sum.LastRepottedAt = &at
			}
		}
	}

	out := make([]domain.PlantLatestCareSummary, 0, len(byPlant))
	for _, sum := range byPlant {
		out = append(out, *sum)
	}
	slices.SortFunc(out, func(a, b domain.PlantLatestCareSummary) int {
		return strings.Compare(a.PlantID.String(), b.PlantID.String())
	})
	return out
}
