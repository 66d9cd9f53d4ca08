// Package dataview holds the shared controller logic behind every list surface
// (tables, card grids, mobile cards): selection with bulk actions, sort state,
// filter panel state, display density and export orchestration. Each rendering
// surface constructs the controllers it needs with its own callbacks instead of
// reimplementing the behavior.
//
// Controllers model a single-user UI event loop: methods must be called from
// one goroutine. Network-facing operations take a context and report failures
// through explicit errors plus the injected error callback.
package dataview

import "errors"

var (
	// ErrExportInFlight is returned when an export is requested while another
	// one is still running on the same orchestrator instance.
	ErrExportInFlight = errors.New("export already in progress")

	// ErrUnknownExportType is returned for a kind with no column catalog entry.
	ErrUnknownExportType = errors.New("unknown export type")

	// ErrUnknownColumn is returned when a column selection names a key outside
	// the current type's catalog.
	ErrUnknownColumn = errors.New("unknown column")
)

// Column describes how one record field renders. Format, when set, is an
// expression evaluated by the export pipeline; the descriptor itself is plain
// data and never carries callables.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Format   string `json:"format,omitempty"`
	Sortable bool   `json:"sortable,omitempty"`
}

// FilterDescriptor declares one filter control of a view.
// Type is one of: select, date, daterange, multiselect, text.
type FilterDescriptor struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}
