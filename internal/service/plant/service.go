package plant

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type plantRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
	GetByID(ctx context.Context, userID, plantID uuid.UUID) (*domain.Plant, error)
	Create(ctx context.Context, plant *domain.Plant) (*domain.Plant, error)
	Update(ctx context.Context, userID, plantID uuid.UUID, params domain.PlantUpdateParams) (*domain.Plant, error)
	Delete(ctx context.Context, userID, plantID uuid.UUID) error
}

type profileRepo interface {
	Upsert(ctx context.Context, plantID uuid.UUID, params domain.CareProfileUpsertParams) (*domain.CareProfile, error)
}

type photoRepo interface {
	ListByPlant(ctx context.Context, plantID uuid.UUID) ([]domain.PlantPhoto, error)
	GetByID(ctx context.Context, plantID, photoID uuid.UUID) (*domain.PlantPhoto, error)
	Create(ctx context.Context, photo *domain.PlantPhoto) (*domain.PlantPhoto, error)
	SetCover(ctx context.Context, plantID, photoID uuid.UUID) error
	Delete(ctx context.Context, plantID, photoID uuid.UUID) error
}

type blobStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds plant service settings.
type Config struct {
	DefaultWateringIntervalDays    int
	DefaultFertilizingIntervalDays int
	MaxPhotoBytes                  int64
}

// Service implements plant and plant photo management.
type Service struct {
	plants   plantRepo
	profiles profileRepo
	photos   photoRepo
	blobs    blobStore
	tx       txManager
	log      *slog.Logger
	cfg      Config
}

// NewService creates a new Plant service.
func NewService(
	log *slog.Logger,
	plants plantRepo,
	profiles profileRepo,
	photos photoRepo,
	blobs blobStore,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		plants:   plants,
		profiles: profiles,
		photos:   photos,
		blobs:    blobs,
		tx:       tx,
		log:      log.With("service", "plant"),
		cfg:      cfg,
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
