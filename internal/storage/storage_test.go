package storage

import (
	"errors"
	"testing"

	"github.com/weddingtools/seating-planner/internal/seating"
)

func TestNewMemoryStorageDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.TableSize != seating.DefaultCapacity {
		t.Fatalf("expected default table size %d, got %d", seating.DefaultCapacity, settings.TableSize)
	}
	if settings.CategoryOrder != seating.OrderFirstSeen {
		t.Fatalf("expected first-seen ordering, got %q", settings.CategoryOrder)
	}
}

func TestSetSettings(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	want := Settings{TableSize: 8, CategoryOrder: seating.OrderLargestFirst}
	if err := store.SetSettings(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetSettingsValidation(t *testing.T) {
	t.Parallel()

	invalid := []Settings{
		{TableSize: 0, CategoryOrder: seating.OrderFirstSeen},
		{TableSize: -3, CategoryOrder: seating.OrderFirstSeen},
		{TableSize: 101, CategoryOrder: seating.OrderFirstSeen},
		{TableSize: 10, CategoryOrder: "by-vibes"},
		{TableSize: 10, CategoryOrder: ""},
	}

	store := NewMemoryStorage()
	for _, settings := range invalid {
		if err := store.SetSettings(settings); !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings for %+v, got %v", settings, err)
		}
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("rejected settings must not stick, got %+v", got)
	}
}
