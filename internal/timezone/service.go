package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves coordinates to their IANA timezone
type Service interface {
	Resolve(latitude, longitude float64) (*time.Location, error)
}

// service implements timezone resolution using tzf
type service struct {
	finder tzf.F

	mu    sync.Mutex
	cache map[string]*time.Location
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
			cache:  make(map[string]*time.Location),
		}
	})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("timezone finder initialization previously failed")
	}
	return instance, nil
}

// Resolve returns the time.Location for the given coordinates, e.g. the
// location for "America/Denver". Loaded locations are cached by zone name.
func (s *service) Resolve(latitude, longitude float64) (*time.Location, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return nil, fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if loc, ok := s.cache[name]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}
	s.cache[name] = loc
	return loc, nil
}
