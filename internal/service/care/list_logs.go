package care

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
)

// ListLogs returns the care history of a plant, newest first.
func (s *Service) ListLogs(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error) {
	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByPlant(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("list care logs: %w", err)
	}
	return logs, nil
}

// RepotElapsedDays returns the number of calendar days since the latest
// REPOT log, or nil when the plant was never repotted.
func RepotElapsedDays(logs []domain.CareLog, now time.Time) *int {
	latest := schedule.LatestLogByType(logs, domain.CareEventRepot)
	if latest == nil {
		return nil
	}
	days := schedule.ElapsedDays(latest.OccurredAt, now)
	return &days
}
