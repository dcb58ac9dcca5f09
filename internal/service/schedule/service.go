package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type plantRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plant, error)
}

type profileRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CareProfile, error)
}

type careLogRepo interface {
	// LatestPerType returns, for every plant of the user, the most recent log
	// of each care action.
	LatestPerType(ctx context.Context, userID uuid.UUID) ([]domain.CareLog, error)
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CareLog, error)
}

type calendarEncoder interface {
	EncodeEvents(events []domain.CareScheduleEvent, now time.Time) ([]byte, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the schedule service settings.
type Config struct {
	// Location is the default calendar of the user. A location stored in the
	// request context takes precedence.
	Location     *time.Location
	MaxRangeDays int
}

// Service computes care schedules and the calendar event feed.
type Service struct {
	plants   plantRepo
	profiles profileRepo
	logs     careLogRepo
	calendar calendarEncoder
	log      *slog.Logger
	cfg      Config
	now      func() time.Time
}

// NewService creates a new Schedule service.
func NewService(
	log *slog.Logger,
	plants plantRepo,
	profiles profileRepo,
	logs careLogRepo,
	calendar calendarEncoder,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		plants:   plants,
		profiles: profiles,
		logs:     logs,
		calendar: calendar,
		log:      log.With("service", "schedule"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// clock returns the current instant in the caller's calendar.
func (s *Service) clock(ctx context.Context) time.Time {
	return s.now().In(s.location(ctx))
}

func (s *Service) location(ctx context.Context) *time.Location {
	return ctxutil.LocationFromCtx(ctx, s.cfg.Location)
}
