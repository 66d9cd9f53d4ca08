package dataview

import (
	"context"
	"fmt"
)

type Density string

const (
	DensityCompact     Density = "compact"
	DensityNormal      Density = "normal"
	DensityComfortable Density = "comfortable"
)

// DensityKey is the durable preference key used by card-grid surfaces.
const DensityKey = "card-grid-density"

// PreferenceStore is a durable per-user key-value store. Missing keys return
// an empty value and no error.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// DensityMode holds the display density of one view, persisted under a stable
// key so it survives re-initialization. There is no versioning of the stored
// value: anything unrecognized falls back to the default.
type DensityMode struct {
	store      PreferenceStore
	key        string
	defaultVal Density
	current    Density
}

func NewDensityMode(store PreferenceStore, key string, defaultVal Density) *DensityMode {
	return &DensityMode{
		store:      store,
		key:        key,
		defaultVal: defaultVal,
		current:    defaultVal,
	}
}

// Init rehydrates the density from the store. An absent or unrecognized
// stored value fails soft to the configured default.
func (m *DensityMode) Init(ctx context.Context) {
	stored, err := m.store.Get(ctx, m.key)
	if err != nil {
		m.current = m.defaultVal
		return
	}
	if d, ok := parseDensity(stored); ok {
		m.current = d
	} else {
		m.current = m.defaultVal
	}
}

// Set updates the in-memory density and persists it.
func (m *DensityMode) Set(ctx context.Context, d Density) error {
	if _, ok := parseDensity(string(d)); !ok {
		return fmt.Errorf("invalid density %q", d)
	}
	m.current = d
	return m.store.Set(ctx, m.key, string(d))
}

func (m *DensityMode) Current() Density { return m.current }

func parseDensity(s string) (Density, bool) {
	switch Density(s) {
	case DensityCompact, DensityNormal, DensityComfortable:
		return Density(s), true
	}
	return "", false
}
