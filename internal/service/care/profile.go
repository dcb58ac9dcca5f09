package care

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// GetProfile returns the care profile of a plant.
func (s *Service) GetProfile(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error) {
	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByPlantID(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("get care profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile replaces the intervals and overrides of a plant's profile,
// creating it when missing.
func (s *Service) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*domain.CareProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedPlant(ctx, input.PlantID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Upsert(ctx, input.PlantID, input.params())
	if err != nil {
		return nil, fmt.Errorf("upsert care profile: %w", err)
	}

	s.log.InfoContext(ctx, "care profile saved",
		slog.String("plant_id", input.PlantID.String()),
		slog.Int("watering_interval_days", profile.WateringIntervalDays),
		slog.Int("fertilizing_interval_days", profile.FertilizingIntervalDays),
	)

	return profile, nil
}
