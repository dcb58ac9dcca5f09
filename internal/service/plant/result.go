package plant

import "github.com/heartmarshall/plantcare-backend/internal/domain"

// Photo is a stored plant photo together with the URL it is served from.
type Photo struct {
	domain.PlantPhoto
	URL string
}
