package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type plantRequest struct {
	Name        string  `json:"name"`
	Species     *string `json:"species"`
	Location    *string `json:"location"`
	AcquiredOn  *string `json:"acquired_on"`
	Note        *string `json:"note"`
	NextRepotAt *string `json:"next_repot_at"`
}

func (req plantRequest) toInput(loc *time.Location) (plant.PlantInput, error) {
	var fe domain.FieldErrors
	in := plant.PlantInput{
		Name:        req.Name,
		Species:     req.Species,
		Location:    req.Location,
		Note:        req.Note,
		AcquiredOn:  parseTimeField(&fe, "acquired_on", req.AcquiredOn, loc),
		NextRepotAt: parseTimeField(&fe, "next_repot_at", req.NextRepotAt, loc),
	}
	return in, fe.Err()
}

type careLogRequest struct {
	EventType      string  `json:"event_type"`
	OccurredAt     *string `json:"occurred_at"`
	FertilizerName *string `json:"fertilizer_name"`
	Note           *string `json:"note"`
}

type careProfileRequest struct {
	WateringIntervalDays      int     `json:"watering_interval_days"`
	FertilizingIntervalDays   int     `json:"fertilizing_interval_days"`
	NextWateringOverrideAt    *string `json:"next_watering_override_at"`
	NextFertilizingOverrideAt *string `json:"next_fertilizing_override_at"`
}

// parseTimeField parses an optional timestamp. Values without an offset are
// read in loc. A present but unparseable value is recorded in fe.
func parseTimeField(fe *domain.FieldErrors, field string, v *string, loc *time.Location) *time.Time {
	if v == nil || *v == "" {
		return nil
	}
	t := schedule.ParseInstant(*v, loc)
	if t == nil {
		fe.Add(field, "invalid date")
	}
	return t
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type plantResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Species     *string    `json:"species"`
	Location    *string    `json:"location"`
	AcquiredOn  *string    `json:"acquired_on"`
	Note        *string    `json:"note"`
	NextRepotAt *time.Time `json:"next_repot_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toPlantResponse(p *domain.Plant) plantResponse {
	resp := plantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Location:    p.Location,
		Note:        p.Note,
		NextRepotAt: p.NextRepotAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.AcquiredOn != nil {
		d := p.AcquiredOn.Format(time.DateOnly)
		resp.AcquiredOn = &d
	}
	return resp
}

type photoResponse struct {
	ID         uuid.UUID  `json:"id"`
	PlantID    uuid.UUID  `json:"plant_id"`
	URL        string     `json:"url"`
	IsCover    bool       `json:"is_cover"`
	CapturedAt *time.Time `json:"captured_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toPhotoResponse(p *plant.Photo) photoResponse {
	return photoResponse{
		ID:         p.ID,
		PlantID:    p.PlantID,
		URL:        p.URL,
		IsCover:    p.IsCover,
		CapturedAt: p.CapturedAt,
		CreatedAt:  p.CreatedAt,
	}
}

type careLogResponse struct {
	ID             uuid.UUID            `json:"id"`
	PlantID        uuid.UUID            `json:"plant_id"`
	EventType      domain.CareEventType `json:"event_type"`
	OccurredAt     time.Time            `json:"occurred_at"`
	FertilizerName *string              `json:"fertilizer_name"`
	Note           *string              `json:"note"`
	CreatedAt      time.Time            `json:"created_at"`
}

func toCareLogResponse(l *domain.CareLog) careLogResponse {
	return careLogResponse{
		ID:             l.ID,
		PlantID:        l.PlantID,
		EventType:      l.EventType,
		OccurredAt:     l.OccurredAt,
		FertilizerName: l.FertilizerName,
		Note:           l.Note,
		CreatedAt:      l.CreatedAt,
	}
}

type careLogListResponse struct {
	Logs             []careLogResponse `json:"logs"`
	RepotElapsedDays *int              `json:"repot_elapsed_days"`
}

type careProfileResponse struct {
	PlantID                   uuid.UUID  `json:"plant_id"`
	WateringIntervalDays      int        `json:"watering_interval_days"`
	FertilizingIntervalDays   int        `json:"fertilizing_interval_days"`
	NextWateringOverrideAt    *time.Time `json:"next_watering_override_at"`
	NextFertilizingOverrideAt *time.Time `json:"next_fertilizing_override_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

func toCareProfileResponse(p *domain.CareProfile) careProfileResponse {
	return careProfileResponse{
		PlantID:                   p.PlantID,
		WateringIntervalDays:      p.WateringIntervalDays,
		FertilizingIntervalDays:   p.FertilizingIntervalDays,
		NextWateringOverrideAt:    p.NextWateringOverrideAt,
		NextFertilizingOverrideAt: p.NextFertilizingOverrideAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

type careSummaryResponse struct {
	PlantID            uuid.UUID  `json:"plant_id"`
	LastWateredAt      *time.Time `json:"last_watered_at"`
	LastFertilizedAt   *time.Time `json:"last_fertilized_at"`
	LastFertilizerName *string    `json:"last_fertilizer_name"`
	LastRepottedAt     *time.Time `json:"last_repotted_at"`
}

type scheduleResponse struct {
	PlantID           uuid.UUID             `json:"plant_id"`
	PlantName         string                `json:"plant_name"`
	NextWateringAt    *time.Time            `json:"next_watering_at"`
	NextFertilizingAt *time.Time            `json:"next_fertilizing_at"`
	NextRepotAt       *time.Time            `json:"next_repot_at"`
	WateringStatus    domain.ScheduleStatus `json:"watering_status"`
	FertilizingStatus domain.ScheduleStatus `json:"fertilizing_status"`
	RepotStatus       domain.ScheduleStatus `json:"repot_status"`
}

type eventResponse struct {
	ID             string                 `json:"id"`
	PlantID        uuid.UUID              `json:"plant_id"`
	PlantName      string                 `json:"plant_name"`
	Type           domain.CareEventType   `json:"type"`
	StartsAt       time.Time              `json:"starts_at"`
	Status         *domain.ScheduleStatus `json:"status"`
	Completed      bool                   `json:"completed"`
	FertilizerName *string                `json:"fertilizer_name,omitempty"`
	Note           *string                `json:"note,omitempty"`
	Title          string                 `json:"title"`
	Color          string                 `json:"color"`
}

// mapSlice converts every element of in with fn.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
