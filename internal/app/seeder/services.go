// Package seeder loads demo plants, care history and profiles from a YAML
// fixture through the regular services.
package seeder

import (
	"context"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
)

// PlantCreator is implemented by plant.Service.
type PlantCreator interface {
	Create(ctx context.Context, input plant.PlantInput) (*domain.Plant, error)
}

// CareWriter is implemented by care.Service.
type CareWriter interface {
	CreateLog(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error)
	UpsertProfile(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error)
}
