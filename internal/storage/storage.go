// Package storage keeps the planner settings that can be changed at
// runtime over the API. Settings live in process memory only; each
// plan generation reads a consistent snapshot.
package storage

import (
	"errors"
	"sync"

	"github.com/weddingtools/seating-planner/internal/seating"
)

// maxTableSize guards against absurd inputs from the settings API.
const maxTableSize = 100

var (
	// ErrInvalidSettings indicates the provided settings violate validation rules.
	ErrInvalidSettings = errors.New("table size must be between 1 and 100 and category order must be a known policy")
)

// Settings are the tunables of a plan generation.
type Settings struct {
	TableSize     int
	CategoryOrder seating.OrderPolicy
}

// Storage provides access to the planner settings.
type Storage interface {
	GetSettings() (Settings, error)
	SetSettings(Settings) error
}

// MemoryStorage keeps settings in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStorage initialises storage with the default settings.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		settings: DefaultSettings(),
	}
}

// DefaultSettings returns the out-of-the-box planner settings.
func DefaultSettings() Settings {
	return Settings{
		TableSize:     seating.DefaultCapacity,
		CategoryOrder: seating.OrderFirstSeen,
	}
}

// GetSettings returns the currently configured settings.
func (s *MemoryStorage) GetSettings() (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

// SetSettings validates and stores the provided settings.
func (s *MemoryStorage) SetSettings(settings Settings) error {
	if err := validate(settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return nil
}

func validate(settings Settings) error {
	if settings.TableSize <= 0 || settings.TableSize > maxTableSize {
		return ErrInvalidSettings
	}
	if _, err := seating.ParseOrderPolicy(string(settings.CategoryOrder)); err != nil {
		return ErrInvalidSettings
	}
	return nil
}
