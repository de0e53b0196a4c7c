package service

import (
	"sync"

	"github.com/susrithamallela/foodvision/internal/catalog"
)

// Defaults for the lookup configuration, overridable via the environment
// in cmd/foodvision.
const (
	// DefaultFuzzyCutoff is the minimum similarity ratio a fuzzy
	// candidate needs to qualify.
	DefaultFuzzyCutoff = 0.6
	// DefaultFallbackCalories is returned when no tier finds a match.
	DefaultFallbackCalories = 200.0
)

// Service holds the read-only food catalog, the lookup configuration and
// the in-memory meal log.
type Service struct {
	table           *catalog.Table
	fuzzyCutoff     float64
	defaultCalories float64

	mu    sync.RWMutex
	meals []MealEntry
}

// New creates a new Service around an already-loaded catalog.
func New(table *catalog.Table, fuzzyCutoff, defaultCalories float64) *Service {
	return &Service{
		table:           table,
		fuzzyCutoff:     fuzzyCutoff,
		defaultCalories: defaultCalories,
	}
}

// Catalog exposes the underlying reference table for handlers that don't
// require service-layer logic.
func (s *Service) Catalog() *catalog.Table {
	return s.table
}
