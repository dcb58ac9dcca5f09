package schedule

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// ListSchedules returns the current schedule of every plant of the user,
// ordered by plant name.
func (s *Service) ListSchedules(ctx context.Context) ([]domain.CareSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.loadSchedules(ctx, userID, s.clock(ctx))
}

func (s *Service) loadSchedules(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.CareSchedule, error) {
	var (
		plants   []domain.Plant
		profiles []domain.CareProfile
		latest   []domain.CareLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plants, err = s.plants.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list plants: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		profiles, err = s.profiles.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list care profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		latest, err = s.logs.LatestPerType(gctx, userID)
		if err != nil {
			return fmt.Errorf("list latest care logs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profileByPlant := make(map[uuid.UUID]*domain.CareProfile, len(profiles))
	for i := range profiles {
		profileByPlant[profiles[i].PlantID] = &profiles[i]
	}

	latestByPlant := make(map[uuid.UUID]map[domain.CareEventType]*domain.CareLog, len(plants))
	for i := range latest {
		l := &latest[i]
		byType, ok := latestByPlant[l.PlantID]
		if !ok {
			byType = make(map[domain.CareEventType]*domain.CareLog, len(domain.CareEventTypes))
			latestByPlant[l.PlantID] = byType
		}
		if cur := byType[l.EventType]; cur == nil || l.OccurredAt.After(cur.OccurredAt) {
			byType[l.EventType] = l
		}
	}

	schedules := make([]domain.CareSchedule, 0, len(plants))
	for _, p := range plants {
		schedules = append(schedules, BuildSchedule(p, profileByPlant[p.ID], latestByPlant[p.ID], now))
	}

	slices.SortStableFunc(schedules, func(a, b domain.CareSchedule) int {
		return cmp.Compare(a.PlantName, b.PlantName)
	})

	return schedules, nil
}
