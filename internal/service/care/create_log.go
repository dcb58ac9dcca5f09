package care

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// CreateLog records a care action. Recording a WATER or FERTILIZE log also
// clears the matching next-date override, in the same transaction.
func (s *Service) CreateLog(ctx context.Context, input CreateLogInput) (*domain.CareLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedPlant(ctx, input.PlantID); err != nil {
		return nil, err
	}

	var created *domain.CareLog
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.logs.Create(ctx, input.toLog())
		if err != nil {
			return fmt.Errorf("create care log: %w", err)
		}

		if created.EventType == domain.CareEventRepot {
			return nil
		}
		if err := s.profiles.ClearOverride(ctx, created.PlantID, created.EventType); err != nil {
			return fmt.Errorf("clear override: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "care logged",
		slog.String("plant_id", created.PlantID.String()),
		slog.String("event_type", created.EventType.String()),
		slog.Time("occurred_at", created.OccurredAt),
	)

	return created, nil
}
