package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

// Result summarizes a pipeline run.
type Result struct {
	Plants   int
	Logs     int
	Profiles int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline writes a fixture for one user.
type Pipeline struct {
	log    *slog.Logger
	plants PlantCreator
	care   CareWriter
	cfg    Config
	now    func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, plants PlantCreator, care CareWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log.With("service", "seeder"),
		plants: plants,
		care:   care,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Run seeds every plant of fx as userID. A plant that fails is logged and
// counted; the remaining plants are still seeded. Logs are written before
// the profile so that fixture overrides survive.
func (p *Pipeline) Run(ctx context.Context, userID uuid.UUID, fx *Fixture) Result {
	start := p.now()
	ctx = ctxutil.WithUserID(ctx, userID)
	today := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	var res Result
	for i := range fx.Plants {
		pf := &fx.Plants[i]
		if p.cfg.DryRun {
			res.Skipped++
			continue
		}
		if err := p.seedPlant(ctx, pf, today, &res); err != nil {
			res.Errors++
			p.log.WarnContext(ctx, "plant failed",
				slog.String("plant", pf.Name),
				slog.String("error", err.Error()),
			)
		}
	}

	res.Duration = p.now().Sub(start)
	p.log.InfoContext(ctx, "seeding completed",
		slog.Int("plants", res.Plants),
		slog.Int("logs", res.Logs),
		slog.Int("profiles", res.Profiles),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Bool("dry_run", p.cfg.DryRun),
	)
	return res
}

func (p *Pipeline) seedPlant(ctx context.Context, pf *PlantFixture, today time.Time, res *Result) error {
	acquired, err := resolveDate(pf.AcquiredOn, today)
	if err != nil {
		return fmt.Errorf("acquired_on: %w", err)
	}
	nextRepot, err := resolveDate(pf.NextRepotAt, today)
	if err != nil {
		return fmt.Errorf("next_repot_at: %w", err)
	}

	created, err := p.plants.Create(ctx, plant.PlantInput{
		Name:        pf.Name,
		Species:     pf.Species,
		Location:    pf.Location,
		AcquiredOn:  acquired,
		Note:        pf.Note,
		NextRepotAt: nextRepot,
	})
	if err != nil {
		return fmt.Errorf("create plant: %w", err)
	}
	res.Plants++

	logs, err := p.logInputs(created.ID, pf.Logs, today)
	if err != nil {
		return err
	}
	for _, in := range logs {
		if _, err := p.care.CreateLog(ctx, in); err != nil {
			return fmt.Errorf("create %s log: %w", in.EventType, err)
		}
		res.Logs++
	}

	if pf.Profile == nil {
		return nil
	}
	in := care.UpsertProfileInput{
		PlantID:                 created.ID,
		WateringIntervalDays:    pf.Profile.WateringIntervalDays,
		FertilizingIntervalDays: pf.Profile.FertilizingIntervalDays,
	}
	if in.NextWateringOverrideAt, err = resolveDate(pf.Profile.NextWateringOverrideAt, today); err != nil {
		return fmt.Errorf("next_watering_override_at: %w", err)
	}
	if in.NextFertilizingOverrideAt, err = resolveDate(pf.Profile.NextFertilizingOverrideAt, today); err != nil {
		return fmt.Errorf("next_fertilizing_override_at: %w", err)
	}
	if _, err := p.care.UpsertProfile(ctx, in); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	res.Profiles++
	return nil
}

// logInputs resolves fixture logs, oldest first.
func (p *Pipeline) logInputs(plantID uuid.UUID, fixtures []LogFixture, today time.Time) ([]care.CreateLogInput, error) {
	out := make([]care.CreateLogInput, 0, len(fixtures))
	for i, lf := range fixtures {
		at, err := resolveDate(lf.OccurredAt, today)
		if err != nil {
			return nil, fmt.Errorf("logs[%d].occurred_at: %w", i, err)
		}
		if at == nil {
			return nil, fmt.Errorf("logs[%d].occurred_at: required", i)
		}
		out = append(out, care.CreateLogInput{
			PlantID:        plantID,
			EventType:      domain.CareEventType(strings.ToUpper(strings.TrimSpace(lf.Type))),
			OccurredAt:     *at,
			FertilizerName: lf.FertilizerName,
			Note:           lf.Note,
		})
	}
	slices.SortStableFunc(out, func(a, b care.CreateLogInput) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})
	return out, nil
}
