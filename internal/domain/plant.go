package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plant is a user-registered plant. NextRepotAt is set by hand; there is no
// repot interval.
type Plant struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Species     *string
	Location    *string
	AcquiredOn  *time.Time
	Note        *string
	NextRepotAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlantPhoto references an image blob stored outside the database.
type PlantPhoto struct {
	ID          uuid.UUID
	PlantID     uuid.UUID
	StoragePath string
	IsCover     bool
	CapturedAt  *time.Time
	CreatedAt   time.Time
}

// PlantUpdateParams carries the full replacement set of editable plant fields.
type PlantUpdateParams struct {
	Name        string
	Species     *string
	Location    *string
	AcquiredOn  *time.Time
	Note        *string
	NextRepotAt *time.Time
}
