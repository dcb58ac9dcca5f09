package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// ListCareEvents returns planned and completed care events inside the range,
// ordered by start time. Schedules and logs are read concurrently; if either
// read fails no events are returned.
func (s *Service) ListCareEvents(ctx context.Context, input RangeInput) ([]domain.CareScheduleEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxRangeDays); err != nil {
		return nil, err
	}

	now := s.clock(ctx)
	from, to := input.bounds(now.Location())

	var (
		schedules []domain.CareSchedule
		logs      []domain.CareLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedules, err = s.loadSchedules(gctx, userID, now)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.logs.ListInRange(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list care logs in range: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	events := ReconcileEvents(schedules, logs, from, to)

	s.log.DebugContext(ctx, "care events listed",
		slog.String("user_id", userID.String()),
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("count", len(events)),
	)

	return events, nil
}

// CalendarFeed renders the care events of the range as an iCalendar document.
func (s *Service) CalendarFeed(ctx context.Context, input RangeInput) ([]byte, error) {
	events, err := s.ListCareEvents(ctx, input)
	if err != nil {
		return nil, err
	}

	body, err := s.calendar.EncodeEvents(events, s.clock(ctx))
	if err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return body, nil
}
