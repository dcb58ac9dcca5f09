package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/blob"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/ical"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/carelog"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/careprofile"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/photo"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/plant"
	"github.com/heartmarshall/plantcare-backend/internal/config"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	plantsvc "github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
)

const calendarName = "Plant care"

// Services groups the application services over one connection pool.
type Services struct {
	Plants   *plantsvc.Service
	Care     *care.Service
	Schedule *schedule.Service
}

// NewServices wires repositories and adapters into the services.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, blobs *blob.FSStore) *Services {
	txm := postgres.NewTxManager(pool)
	plants := plant.New(pool)
	logs := carelog.New(pool)
	profiles := careprofile.New(pool)
	photos := photo.New(pool)

	return &Services{
		Plants: plantsvc.NewService(logger, plants, profiles, photos, blobs, txm, plantsvc.Config{
			DefaultWateringIntervalDays:    cfg.Schedule.DefaultWateringIntervalDays,
			DefaultFertilizingIntervalDays: cfg.Schedule.DefaultFertilizingIntervalDays,
			MaxPhotoBytes:                  cfg.Photos.MaxBytes,
		}),
		Care: care.NewService(logger, plants, logs, profiles, txm),
		Schedule: schedule.NewService(logger, plants, profiles, logs, ical.NewEncoder(calendarName), schedule.Config{
			Location:     cfg.Schedule.Location,
			MaxRangeDays: cfg.Schedule.MaxRangeDays,
		}),
	}
}
