// Package carelog implements the care log repository using PostgreSQL.
// Care logs are append-only; ownership is checked through the parent plant.
package carelog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const table = "care_logs"

var columns = []string{
	"id", "plant_id", "event_type", "occurred_at", "fertilizer_name", "note", "created_at",
}

// qualified returns the columns prefixed with the care_logs alias used in joins.
func qualified() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = "l." + c
	}
	return out
}

// Repo provides care log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new care log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByPlant returns the logs of a plant, newest first.
func (r *Repo) ListByPlant(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error) {
	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"plant_id": plantID}).
		OrderBy("occurred_at DESC", "created_at DESC")

	return r.list(ctx, query, "list care_logs by plant")
}

// LatestPerType returns, for every plant of the user, the most recent log of
// each event type.
func (r *Repo) LatestPerType(ctx context.Context, userID uuid.UUID) ([]domain.CareLog, error) {
	query := postgres.Builder.
		Select(qualified()...).
		Options("DISTINCT ON (l.plant_id, l.event_type)").
		From(table + " l").
		Join("plants p ON p.id = l.plant_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("l.plant_id", "l.event_type", "l.occurred_at DESC", "l.created_at DESC")

	return r.list(ctx, query, "list latest care_logs")
}

// ListInRange returns the logs of the user's plants with occurred_at in
// [from, to], oldest first.
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CareLog, error) {
	query := postgres.Builder.
		Select(qualified()...).
		From(table + " l").
		Join("plants p ON p.id = l.plant_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		Where(squirrel.GtOrEq{"l.occurred_at": from}).
		Where(squirrel.LtOrEq{"l.occurred_at": to}).
		OrderBy("l.occurred_at", "l.created_at")

	return r.list(ctx, query, "list care_logs in range")
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder, op string) ([]domain.CareLog, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	logs := make([]domain.CareLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return logs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a care log and returns the persisted row.
// A missing plant maps to domain.ErrNotFound; a fertilizer name on a
// non-FERTILIZE log (or none on a FERTILIZE log) maps to domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, log *domain.CareLog) (*domain.CareLog, error) {
	values := map[string]any{
		"plant_id":        log.PlantID,
		"event_type":      string(log.EventType),
		"occurred_at":     log.OccurredAt,
		"fertilizer_name": log.FertilizerName,
		"note":            log.Note,
	}
	if log.ID != uuid.Nil {
		values["id"] = log.ID
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		SetMap(values).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert care_log: %w", err)
	}

	created, err := scanLog(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "care_log", log.PlantID)
	}
	return &created, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (domain.CareLog, error) {
	var (
		l         domain.CareLog
		eventType string
	)
	err := row.Scan(&l.ID, &l.PlantID, &eventType, &l.OccurredAt, &l.FertilizerName, &l.Note, &l.CreatedAt)
	if err != nil {
		return domain.CareLog{}, err
	}
	l.EventType = domain.CareEventType(eventType)
	return l, nil
}
