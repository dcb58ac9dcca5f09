// Package photo implements the plant photo repository using PostgreSQL.
// Rows only reference blobs; the image bytes live in the blob store.
package photo

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

const table = "plant_photos"

var columns = []string{"id", "plant_id", "storage_path", "is_cover", "captured_at", "created_at"}

// Repo provides plant photo persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new photo repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByPlant returns the photos of a plant, cover first, then newest first.
func (r *Repo) ListByPlant(ctx context.Context, plantID uuid.UUID) ([]domain.PlantPhoto, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"plant_id": plantID}).
		OrderBy("is_cover DESC", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plant_photos: %w", err)
	}

	var rows []photoRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list plant_photos: %w", err)
	}

	photos := make([]domain.PlantPhoto, len(rows))
	for i, row := range rows {
		photos[i] = row.toDomain()
	}
	return photos, nil
}

// GetByID returns one photo of a plant.
func (r *Repo) GetByID(ctx context.Context, plantID, photoID uuid.UUID) (*domain.PlantPhoto, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": photoID, "plant_id": plantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get plant_photo: %w", err)
	}

	var row photoRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plant_photo", photoID)
	}

	photo := row.toDomain()
	return &photo, nil
}

// Create inserts a photo row. Cover selection goes through SetCover.
func (r *Repo) Create(ctx context.Context, photo *domain.PlantPhoto) (*domain.PlantPhoto, error) {
	values := map[string]any{
		"plant_id":     photo.PlantID,
		"storage_path": photo.StoragePath,
		"captured_at":  photo.CapturedAt,
	}
	if photo.ID != uuid.Nil {
		values["id"] = photo.ID
	}

	query, args, err := postgres.Builder.
		Insert(table).
		SetMap(values).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert plant_photo: %w", err)
	}

	var row photoRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "plant_photo", photo.PlantID)
	}

	created := row.toDomain()
	return &created, nil
}

// SetCover makes photoID the only cover photo of the plant.
// Returns domain.ErrNotFound if the photo does not belong to the plant.
func (r *Repo) SetCover(ctx context.Context, plantID, photoID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM plant_photos WHERE id = $1 AND plant_id = $2)`,
		photoID, plantID,
	).Scan(&exists)
	if err != nil {
		return postgres.MapError(err, "plant_photo", photoID)
	}
	if !exists {
		return fmt.Errorf("plant_photo %s: %w", photoID, domain.ErrNotFound)
	}

	_, err = q.Exec(ctx,
		`UPDATE plant_photos SET is_cover = (id = $2) WHERE plant_id = $1`,
		plantID, photoID,
	)
	if err != nil {
		return postgres.MapError(err, "plant_photo", photoID)
	}
	return nil
}

// Delete removes a photo row. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, plantID, photoID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": photoID, "plant_id": plantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete plant_photo: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "plant_photo", photoID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant_photo %s: %w", photoID, domain.ErrNotFound)
	}
	return nil
}

type photoRow struct {
	ID          uuid.UUID  `db:"id"`
	PlantID     uuid.UUID  `db:"plant_id"`
	StoragePath string     `db:"storage_path"`
	IsCover     bool       `db:"is_cover"`
	CapturedAt  *time.Time `db:"captured_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r photoRow) toDomain() domain.PlantPhoto {
	return domain.PlantPhoto{
		ID:          r.ID,
		PlantID:     r.PlantID,
		StoragePath: r.StoragePath,
		IsCover:     r.IsCover,
		CapturedAt:  r.CapturedAt,
		CreatedAt:   r.CreatedAt,
	}
}
