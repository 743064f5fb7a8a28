package location

import (
	"context"
	"log/slog"

	"skycast/internal/providers/ipapi"
	"skycast/internal/types"
)

// Geolocator resolves the host's approximate position
type Geolocator interface {
	Geolocate(ctx context.Context) (*ipapi.GeolocateAPIResponse, error)
}

// IPSource geolocates the host by its public IP. It delivers a single batch:
// one fix on success, an empty batch on failure.
type IPSource struct {
	geolocator Geolocator
	logger     *slog.Logger
}

func NewIPSource(logger *slog.Logger) *IPSource {
	return NewIPSourceWithGeolocator(ipapi.NewClient(), logger)
}

// NewIPSourceWithGeolocator is useful for testing with a mock geolocator
func NewIPSourceWithGeolocator(geolocator Geolocator, logger *slog.Logger) *IPSource {
	return &IPSource{
		geolocator: geolocator,
		logger:     logger.With("component", "ip-source"),
	}
}

func (s *IPSource) Run(ctx context.Context) <-chan []types.Coords {
	updates := make(chan []types.Coords, 1)

	go func() {
		defer close(updates)

		resp, err := s.geolocator.Geolocate(ctx)
		if err != nil {
			// Absorbed: the gate stays unset when geolocation fails.
			s.logger.Warn("ip geolocation failed", "error", err)
			updates <- nil
			return
		}

		s.logger.Debug("ip geolocation succeeded",
			"city", resp.City,
			"country", resp.Country,
		)
		updates <- []types.Coords{types.NewCoords(resp.Lat, resp.Lon)}
	}()

	return updates
}

// StaticSource delivers a single configured fix.
type StaticSource struct {
	coords types.Coords
}

func NewStaticSource(coords types.Coords) *StaticSource {
	return &StaticSource{coords: coords}
}

func (s *StaticSource) Run(ctx context.Context) <-chan []types.Coords {
	updates := make(chan []types.Coords, 1)
	updates <- []types.Coords{s.coords}
	close(updates)
	return updates
}
