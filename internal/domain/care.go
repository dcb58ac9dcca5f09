package domain

import (
	"time"

	"github.com/google/uuid"
)

// CareLog is an immutable record of a care action performed on a plant.
// FertilizerName is set only for FERTILIZE logs.
type CareLog struct {
	ID             uuid.UUID
	PlantID        uuid.UUID
	EventType      CareEventType
	OccurredAt     time.Time
	FertilizerName *string
	Note           *string
	CreatedAt      time.Time
}

// CareProfile holds the care intervals of a plant and the one-shot overrides
// for its next watering and fertilizing dates.
type CareProfile struct {
	PlantID                   uuid.UUID
	WateringIntervalDays      int
	FertilizingIntervalDays   int
	NextWateringOverrideAt    *time.Time
	NextFertilizingOverrideAt *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// IntervalFor returns the interval configured for t, or 0 when t has none.
func (p *CareProfile) IntervalFor(t CareEventType) int {
	switch t {
	case CareEventWater:
		return p.WateringIntervalDays
	case CareEventFertilize:
		return p.FertilizingIntervalDays
	}
	return 0
}

// OverrideFor returns the manual next date for t, if any.
func (p *CareProfile) OverrideFor(t CareEventType) *time.Time {
	switch t {
	case CareEventWater:
		return p.NextWateringOverrideAt
	case CareEventFertilize:
		return p.NextFertilizingOverrideAt
	}
	return nil
}

// CareProfileUpsertParams is the full set of writable profile fields.
type CareProfileUpsertParams struct {
	WateringIntervalDays      int
	FertilizingIntervalDays   int
	NextWateringOverrideAt    *time.Time
	NextFertilizingOverrideAt *time.Time
}

// CareSchedule is the derived next-care state of one plant. A nil next date
// always pairs with ScheduleStatusUnscheduled.
type CareSchedule struct {
	PlantID           uuid.UUID
	PlantName         string
	NextWateringAt    *time.Time
	NextFertilizingAt *time.Time
	NextRepotAt       *time.Time
	WateringStatus    ScheduleStatus
	FertilizingStatus ScheduleStatus
	RepotStatus       ScheduleStatus
}

// NextAt returns the next occurrence of t.
func (s *CareSchedule) NextAt(t CareEventType) *time.Time {
	switch t {
	case CareEventWater:
		return s.NextWateringAt
	case CareEventFertilize:
		return s.NextFertilizingAt
	case CareEventRepot:
		return s.NextRepotAt
	}
	return nil
}

// StatusOf returns the status of t.
func (s *CareSchedule) StatusOf(t CareEventType) ScheduleStatus {
	switch t {
	case CareEventWater:
		return s.WateringStatus
	case CareEventFertilize:
		return s.FertilizingStatus
	case CareEventRepot:
		return s.RepotStatus
	}
	return ScheduleStatusUnscheduled
}

// CareScheduleEvent is one calendar entry. Completed events come from care
// logs and carry no urgency status; planned events come from a schedule.
type CareScheduleEvent struct {
	ID             string
	PlantID        uuid.UUID
	PlantName      string
	Type           CareEventType
	StartsAt       time.Time
	Status         *ScheduleStatus
	Completed      bool
	FertilizerName *string
	Note           *string
	Title          string
	Color          string
}

// PlantLatestCareSummary records when each care action last happened to a plant.
type PlantLatestCareSummary struct {
	PlantID            uuid.UUID
	LastWateredAt      *time.Time
	LastFertilizedAt   *time.Time
	LastFertilizerName *string
	LastRepottedAt     *time.Time
}
