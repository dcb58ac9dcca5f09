package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// List returns the plants of the user, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plants, err := s.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// Get returns one plant of the user.
func (s *Service) Get(ctx context.Context, plantID uuid.UUID) (*domain.Plant, error) {
	return s.ownedPlant(ctx, plantID)
}

// Create registers a plant and gives it a care profile with the default
// intervals.
func (s *Service) Create(ctx context.Context, input PlantInput) (*domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := input.params()
	plant := &domain.Plant{
		UserID:      userID,
		Name:        p.Name,
		Species:     p.Species,
		Location:    p.Location,
		AcquiredOn:  p.AcquiredOn,
		Note:        p.Note,
		NextRepotAt: p.NextRepotAt,
	}

	var created *domain.Plant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.plants.Create(ctx, plant)
		if err != nil {
			return fmt.Errorf("create plant: %w", err)
		}

		_, err = s.profiles.Upsert(ctx, created.ID, domain.CareProfileUpsertParams{
			WateringIntervalDays:    s.cfg.DefaultWateringIntervalDays,
			FertilizingIntervalDays: s.cfg.DefaultFertilizingIntervalDays,
		})
		if err != nil {
			return fmt.Errorf("create care profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plant created",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", created.ID.String()),
	)

	return created, nil
}

// Update replaces the editable fields of a plant.
func (s *Service) Update(ctx context.Context, plantID uuid.UUID, input PlantInput) (*domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.plants.Update(ctx, userID, plantID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update plant: %w", err)
	}
	return updated, nil
}

// Delete removes a plant with its logs, profile and photos. Photo blobs are
// removed after the rows; a failed blob removal is only logged.
func (s *Service) Delete(ctx context.Context, plantID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedPlant(ctx, plantID); err != nil {
		return err
	}

	photos, err := s.photos.ListByPlant(ctx, plantID)
	if err != nil {
		return fmt.Errorf("list photos: %w", err)
	}

	if err := s.plants.Delete(ctx, userID, plantID); err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}

	for _, ph := range photos {
		if err := s.blobs.Delete(ctx, ph.StoragePath); err != nil {
			s.log.WarnContext(ctx, "photo blob not removed",
				slog.String("plant_id", plantID.String()),
				slog.String("path", ph.StoragePath),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "plant deleted",
		slog.String("user_id", userID.String()),
		slog.String("plant_id", plantID.String()),
		slog.Int("photos", len(photos)),
	)

	return nil
}
