// Package plant implements the plant repository using PostgreSQL.
package plant

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

const table = "plants"

var columns = []string{
	"id", "user_id", "name", "species", "location", "acquired_on",
	"note", "next_repot_at", "created_at", "updated_at",
}

// Repo provides plant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the plants of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plants: %w", err)
	}

	var rows []plantRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	plants := make([]domain.Plant, len(rows))
	for i, row := range rows {
		plants[i] = row.toDomain()
	}
	return plants, nil
}

// GetByID returns a plant by primary key.
// Returns domain.ErrNotFound if the plant does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, plantID uuid.UUID) (*domain.Plant, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": plantID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get plant: %w", err)
	}

	var row plantRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plant", plantID)
	}

	plant := row.toDomain()
	return &plant, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a plant. The id is generated by the database unless set.
func (r *Repo) Create(ctx context.Context, plant *domain.Plant) (*domain.Plant, error) {
	values := map[string]any{
		"user_id":       plant.UserID,
		"name":          plant.Name,
		"species":       plant.Species,
		"location":      plant.Location,
		"acquired_on":   plant.AcquiredOn,
		"note":          plant.Note,
		"next_repot_at": plant.NextRepotAt,
	}
	if plant.ID != uuid.Nil {
		values["id"] = plant.ID
	}

	query, args, err := postgres.Builder.
		Insert(table).
		SetMap(values).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert plant: %w", err)
	}

	var row plantRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plant", plant.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update replaces the editable fields of a plant.
// Returns domain.ErrNotFound if the plant does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, plantID uuid.UUID, params domain.PlantUpdateParams) (*domain.Plant, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("name", params.Name).
		Set("species", params.Species).
		Set("location", params.Location).
		Set("acquired_on", params.AcquiredOn).
		Set("note", params.Note).
		Set("next_repot_at", params.NextRepotAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": plantID, "user_id": userID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update plant: %w", err)
	}

	var row plantRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plant", plantID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a plant; its profile, logs and photo rows cascade.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, plantID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": plantID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete plant: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "plant", plantID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant %s: %w", plantID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type plantRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Name        string     `db:"name"`
	Species     *string    `db:"species"`
	Location    *string    `db:"location"`
	AcquiredOn  *time.Time `db:"acquired_on"`
	Note        *string    `db:"note"`
	NextRepotAt *time.Time `db:"next_repot_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r plantRow) toDomain() domain.Plant {
	return domain.Plant{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Species:     r.Species,
		Location:    r.Location,
		AcquiredOn:  r.AcquiredOn,
		Note:        r.Note,
		NextRepotAt: r.NextRepotAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func returning() string {
	return "RETURNING " + postgres.JoinColumns(columns)
}
