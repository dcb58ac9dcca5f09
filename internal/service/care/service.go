package care

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type plantRepo interface {
	GetByID(ctx context.Context, userID, plantID uuid.UUID) (*domain.Plant, error)
}

type careLogRepo interface {
	Create(ctx context.Context, log *domain.CareLog) (*domain.CareLog, error)
	ListByPlant(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error)
	LatestPerType(ctx context.Context, userID uuid.UUID) ([]domain.CareLog, error)
}

type profileRepo interface {
	GetByPlantID(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error)
	Upsert(ctx context.Context, plantID uuid.UUID, params domain.CareProfileUpsertParams) (*domain.CareProfile, error)
	ClearOverride(ctx context.Context, plantID uuid.UUID, eventType domain.CareEventType) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements care logging and care profile management.
type Service struct {
	plants   plantRepo
	logs     careLogRepo
	profiles profileRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Care service.
func NewService(
	log *slog.Logger,
	plants plantRepo,
	logs careLogRepo,
	profiles profileRepo,
	tx txManager,
) *Service {
	return &Service{
		plants:   plants,
		logs:     logs,
		profiles: profiles,
		tx:       tx,
		log:      log.With("service", "care"),
	}
}

// ownedPlant returns the plant if it belongs to the user in ctx.
func (s *Service) ownedPlant(ctx context.Context, plantID uuid.UUID) (*domain.Plant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plant, err := s.plants.GetByID(ctx, userID, plantID)
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return plant, nil
}
