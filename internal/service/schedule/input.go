package schedule

import (
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// RangeInput selects the calendar days of an event feed, both ends inclusive.
// Only the date part of From and To is used.
type RangeInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i *RangeInput) Validate(maxDays int) error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}

	if len(errs) == 0 {
		days := civilDay(i.To) - civilDay(i.From)
		switch {
		case days < 0:
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		case maxDays > 0 && days >= int64(maxDays):
			errs = append(errs, domain.FieldError{Field: "to", Message: "range too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// bounds returns the first and last instants of the range in loc.
func (i *RangeInput) bounds(loc *time.Location) (time.Time, time.Time) {
	from := time.Date(i.From.Year(), i.From.Month(), i.From.Day(), 0, 0, 0, 0, loc)
	to := time.Date(i.To.Year(), i.To.Month(), i.To.Day(), 0, 0, 0, 0, loc)
	return DayStart(from, loc), DayEnd(to, loc)
}
