// Package careprofile implements the care profile repository using PostgreSQL.
// A plant has at most one profile, keyed by plant_id.
package careprofile

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const table = "care_profiles"

var columns = []string{
	"plant_id", "watering_interval_days", "fertilizing_interval_days",
	"next_watering_override_at", "next_fertilizing_override_at", "created_at", "updated_at",
}

// overrideColumn maps the event types that carry a one-shot override to their column.
var overrideColumn = map[domain.CareEventType]string{
	domain.CareEventWater:     "next_watering_override_at",
	domain.CareEventFertilize: "next_fertilizing_override_at",
}

// Repo provides care profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new care profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByUser returns the profiles of all plants of a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CareProfile, error) {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "cp." + c
	}

	query, args, err := postgres.Builder.
		Select(cols...).
		From(table + " cp").
		Join("plants p ON p.id = cp.plant_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list care_profiles: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list care_profiles: %w", err)
	}

	profiles := make([]domain.CareProfile, len(rows))
	for i, row := range rows {
		profiles[i] = row.toDomain()
	}
	return profiles, nil
}

// GetByPlantID returns the profile of a plant.
// Returns domain.ErrNotFound if the plant has no profile.
func (r *Repo) GetByPlantID(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"plant_id": plantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get care_profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "care_profile", plantID)
	}

	profile := row.toDomain()
	return &profile, nil
}

// Upsert creates the profile of a plant or replaces all of its fields.
func (r *Repo) Upsert(ctx context.Context, plantID uuid.UUID, params domain.CareProfileUpsertParams) (*domain.CareProfile, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("plant_id", "watering_interval_days", "fertilizing_interval_days",
			"next_watering_override_at", "next_fertilizing_override_at").
		Values(plantID, params.WateringIntervalDays, params.FertilizingIntervalDays,
			params.NextWateringOverrideAt, params.NextFertilizingOverrideAt).
		Suffix(`ON CONFLICT (plant_id) DO UPDATE SET
			watering_interval_days = EXCLUDED.watering_interval_days,
			fertilizing_interval_days = EXCLUDED.fertilizing_interval_days,
			next_watering_override_at = EXCLUDED.next_watering_override_at,
			next_fertilizing_override_at = EXCLUDED.next_fertilizing_override_at,
			updated_at = now()
			RETURNING ` + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert care_profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "care_profile", plantID)
	}

	profile := row.toDomain()
	return &profile, nil
}

// ClearOverride resets the one-shot override for eventType. A plant without
// a profile is left untouched.
func (r *Repo) ClearOverride(ctx context.Context, plantID uuid.UUID, eventType domain.CareEventType) error {
	col, ok := overrideColumn[eventType]
	if !ok {
		return fmt.Errorf("clear override %s: %w", eventType, domain.ErrValidation)
	}

	query, args, err := postgres.Builder.
		Update(table).
		Set(col, nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"plant_id": plantID}).
		Where(squirrel.NotEq{col: nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear override: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "care_profile", plantID)
	}
	return nil
}

type profileRow struct {
	PlantID                   uuid.UUID  `db:"plant_id"`
	WateringIntervalDays      int        `db:"watering_interval_days"`
	FertilizingIntervalDays   int        `db:"fertilizing_interval_days"`
	NextWateringOverrideAt    *time.Time `db:"next_watering_override_at"`
	NextFertilizingOverrideAt *time.Time `db:"next_fertilizing_override_at"`
	CreatedAt                 time.Time  `db:"created_at"`
	UpdatedAt                 time.Time  `db:"updated_at"`
}

func (r profileRow) toDomain() domain.CareProfile {
	return domain.CareProfile{
		PlantID:                   r.PlantID,
		WateringIntervalDays:      r.WateringIntervalDays,
		FertilizingIntervalDays:   r.FertilizingIntervalDays,
		NextWateringOverrideAt:    r.NextWateringOverrideAt,
		NextFertilizingOverrideAt: r.NextFertilizingOverrideAt,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
}
