package care

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const (
	maxFertilizerNameLen = 120
	maxNoteLen           = 500
	maxIntervalDays      = 365
)

// CreateLogInput holds the parameters for recording a care action.
type CreateLogInput struct {
	PlantID        uuid.UUID
	EventType      domain.CareEventType
	OccurredAt     time.Time
	FertilizerName *string
	Note           *string
}

// Validate checks all fields and collects all errors.
func (i *CreateLogInput) Validate() error {
	var errs []domain.FieldError

	if i.PlantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plant_id", Message: "required"})
	}
	if !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "must be WATER, FERTILIZE, or REPOT"})
	}
	if i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurred_at", Message: "required"})
	}

	if i.EventType == domain.CareEventFertilize {
		name := trimmed(i.FertilizerName)
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: "fertilizer_name", Message: "required for FERTILIZE"})
		case utf8.RuneCountInString(name) > maxFertilizerNameLen:
			errs = append(errs, domain.FieldError{Field: "fertilizer_name", Message: "max 120 characters"})
		}
	}

	if utf8.RuneCountInString(trimmed(i.Note)) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toLog builds the record to store. Only FERTILIZE logs keep a fertilizer name.
func (i *CreateLogInput) toLog() *domain.CareLog {
	l := &domain.CareLog{
		PlantID:    i.PlantID,
		EventType:  i.EventType,
		OccurredAt: i.OccurredAt,
		Note:       optional(i.Note),
	}
	if i.EventType == domain.CareEventFertilize {
		l.FertilizerName = optional(i.FertilizerName)
	}
	return l
}

// UpsertProfileInput holds the full set of care profile fields of a plant.
type UpsertProfileInput struct {
	PlantID                   uuid.UUID
	WateringIntervalDays      int
	FertilizingIntervalDays   int
	NextWateringOverrideAt    *time.Time
	NextFertilizingOverrideAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i *UpsertProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.PlantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plant_id", Message: "required"})
	}
	if i.WateringIntervalDays < 1 || i.WateringIntervalDays > maxIntervalDays {
		errs = append(errs, domain.FieldError{Field: "watering_interval_days", Message: "must be between 1 and 365"})
	}
	if i.FertilizingIntervalDays < 1 || i.FertilizingIntervalDays > maxIntervalDays {
		errs = append(errs, domain.FieldError{Field: "fertilizing_interval_days", Message: "must be between 1 and 365"})
	}
	if i.NextWateringOverrideAt != nil && i.NextWateringOverrideAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "next_watering_override_at", Message: "invalid date"})
	}
	if i.NextFertilizingOverrideAt != nil && i.NextFertilizingOverrideAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "next_fertilizing_override_at", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *UpsertProfileInput) params() domain.CareProfileUpsertParams {
	return domain.CareProfileUpsertParams{
		WateringIntervalDays:      i.WateringIntervalDays,
		FertilizingIntervalDays:   i.FertilizingIntervalDays,
		NextWateringOverrideAt:    i.NextWateringOverrideAt,
		NextFertilizingOverrideAt: i.NextFertilizingOverrideAt,
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// optional returns the trimmed value, or nil when it is blank.
func optional(s *string) *string {
	v := trimmed(s)
	if v == "" {
		return nil
	}
	return &v
}
