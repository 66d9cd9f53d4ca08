package dataview

import (
	"context"
	"testing"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore { return &memStore{values: make(map[string]string)} }

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func TestDensityPersistsAcrossInit(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	m := NewDensityMode(store, DensityKey, DensityNormal)
	m.Init(ctx)
	if err := m.Set(ctx, DensityCompact); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Simulate a page reload: fresh component against the same store
	reloaded := NewDensityMode(store, DensityKey, DensityNormal)
	reloaded.Init(ctx)
	if got := reloaded.Current(); got != DensityCompact {
		t.Errorf("Current() after reload = %q, want %q", got, DensityCompact)
	}
}

func TestDensityFailsSoftOnUnknownValue(t *testing.T) {
	store := newMemStore()
	store.values[DensityKey] = "giant"

	m := NewDensityMode(store, DensityKey, DensityComfortable)
	m.Init(context.Background())
	if got := m.Current(); got != DensityComfortable {
		t.Errorf("Current() = %q, want fallback %q", got, DensityComfortable)
	}
}

func TestDensityDefaultWhenUnset(t *testing.T) {
	m := NewDensityMode(newMemStore(), DensityKey, DensityNormal)
	m.Init(context.Background())
	if got := m.Current(); got != DensityNormal {
		t.Errorf("Current() = %q, want %q", got, DensityNormal)
	}
}

func TestDensityRejectsInvalidSet(t *testing.T) {
	m := NewDensityMode(newMemStore(), DensityKey, DensityNormal)
	if err := m.Set(context.Background(), Density("gigantic")); err == nil {
		t.Error("Set() with invalid density expected error")
	}
	if m.Current() != DensityNormal {
		t.Error("invalid Set must not change the current density")
	}
}
