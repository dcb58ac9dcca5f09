package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPlant inserts a plant owned by userID. Returns the persisted domain.Plant.
func SeedPlant(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Plant {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	plant := domain.Plant{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Monstera " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO plants (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		plant.ID, plant.UserID, plant.Name, plant.CreatedAt, plant.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlant insert: %v", err)
	}

	return plant
}

// SeedProfile inserts a care profile for plantID with the given intervals.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, plantID uuid.UUID, wateringDays, fertilizingDays int) domain.CareProfile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.CareProfile{
		PlantID:                 plantID,
		WateringIntervalDays:    wateringDays,
		FertilizingIntervalDays: fertilizingDays,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO care_profiles (plant_id, watering_interval_days, fertilizing_interval_days, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		profile.PlantID, profile.WateringIntervalDays, profile.FertilizingIntervalDays, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return profile
}

// SeedCareLog inserts a care log. FERTILIZE logs get a fertilizer name so the
// row satisfies the table's check constraint.
func SeedCareLog(t *testing.T, pool *pgxpool.Pool, plantID uuid.UUID, eventType domain.CareEventType, occurredAt time.Time) domain.CareLog {
	t.Helper()
	ctx := context.Background()

	log := domain.CareLog{
		ID:         uuid.New(),
		PlantID:    plantID,
		EventType:  eventType,
		OccurredAt: occurredAt.UTC().Truncate(time.Microsecond),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	if eventType == domain.CareEventFertilize {
		name := "Fertilizer " + uniqueSuffix()
		log.FertilizerName = &name
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO care_logs (id, plant_id, event_type, occurred_at, fertilizer_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.PlantID, string(log.EventType), log.OccurredAt, log.FertilizerName, log.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCareLog insert: %v", err)
	}

	return log
}
