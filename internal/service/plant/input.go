package plant

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const (
	maxNameLen     = 80
	maxSpeciesLen  = 120
	maxLocationLen = 120
	maxNoteLen     = 1000
)

// PlantInput holds the editable fields of a plant, for both create and update.
type PlantInput struct {
	Name        string
	Species     *string
	Location    *string
	AcquiredOn  *time.Time
	Note        *string
	NextRepotAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i *PlantInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 80 characters"})
	}
	if utf8.RuneCountInString(trimmed(i.Species)) > maxSpeciesLen {
		errs = append(errs, domain.FieldError{Field: "species", Message: "max 120 characters"})
	}
	if utf8.RuneCountInString(trimmed(i.Location)) > maxLocationLen {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 120 characters"})
	}
	if utf8.RuneCountInString(trimmed(i.Note)) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}
	if i.AcquiredOn != nil && i.AcquiredOn.IsZero() {
		errs = append(errs, domain.FieldError{Field: "acquired_on", Message: "invalid date"})
	}
	if i.NextRepotAt != nil && i.NextRepotAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "next_repot_at", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *PlantInput) params() domain.PlantUpdateParams {
	return domain.PlantUpdateParams{
		Name:        strings.TrimSpace(i.Name),
		Species:     optional(i.Species),
		Location:    optional(i.Location),
		AcquiredOn:  dateOnly(i.AcquiredOn),
		Note:        optional(i.Note),
		NextRepotAt: i.NextRepotAt,
	}
}

// UploadPhotoInput holds an image to attach to a plant.
type UploadPhotoInput struct {
	PlantID    uuid.UUID
	Filename   string
	Content    io.Reader
	CapturedAt *time.Time
	MakeCover  bool
}

// Validate checks all fields and collects all errors.
func (i *UploadPhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.PlantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plant_id", Message: "required"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if i.CapturedAt != nil && i.CapturedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "captured_at", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
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

// dateOnly truncates t to its calendar date in UTC.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &out
}
