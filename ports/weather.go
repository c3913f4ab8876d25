package ports

import (
	"context"

	"shetkarai/models"
)

// WeatherProvider fetches current conditions for a coordinate pair.
// A failed upstream call returns (nil, nil): the failure is logged by
// the implementation, not surfaced as an error.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon string) (*models.WeatherSnapshot, error)
}
