package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"weather-widget/internal/types"
)

// Service resolves IANA timezone names offline
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	// Lookup resolves a user-entered coordinate, failing on non-numeric parts
	Lookup(coord types.Coordinate) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide timezone service.
// tzf.Finder keeps the timezone polygons in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "America/Mexico_City" for the given coordinates
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

func (s *service) Lookup(coord types.Coordinate) (string, error) {
	lat, lon, err := coord.Float64s()
	if err != nil {
		return "", err
	}
	return s.GetTimezone(lat, lon)
}
