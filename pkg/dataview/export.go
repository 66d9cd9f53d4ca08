package dataview

import (
	"context"
	"time"
)

// ExportRequest is the body of one export POST.
type ExportRequest struct {
	Type           string   `json:"type"`
	Format         string   `json:"format"`
	IncludeFilters bool     `json:"includeFilters"`
	Columns        []string `json:"columns"`
}

// ExportResult reports a finished export.
type ExportResult struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

// HistoryEntry is one past export, newest first.
type HistoryEntry struct {
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url"`
}

// Exporter performs the actual export request.
type Exporter interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// HistoryCap is how many past exports a view renders. The server keeps more.
const HistoryCap = 3

// ExportOrchestrator builds export requests for one view. Switching the export
// type swaps in that type's full column catalog and reselects every column.
// Only one export may be in flight per instance; that gate lives here, in the
// client, not on the server.
type ExportOrchestrator struct {
	catalog        map[string][]Column
	exporter       Exporter
	onError        func(error)
	exportType     string
	available      []Column
	selected       []string
	format         string
	includeFilters bool
	busy           bool
	history        []HistoryEntry
}

func NewExportOrchestrator(catalog map[string][]Column, exporter Exporter, onError func(error)) *ExportOrchestrator {
	return &ExportOrchestrator{
		catalog:  catalog,
		exporter: exporter,
		onError:  onError,
		format:   "csv",
	}
}

// SetType selects the record category and resets the column selection to the
// full list for that type.
func (o *ExportOrchestrator) SetType(exportType string) error {
	cols, ok := o.catalog[exportType]
	if !ok {
		return ErrUnknownExportType
	}
	o.exportType = exportType
	o.available = cols
	o.selected = make([]string, len(cols))
	for i, c := range cols {
		o.selected[i] = c.Key
	}
	return nil
}

func (o *ExportOrchestrator) Type() string               { return o.exportType }
func (o *ExportOrchestrator) AvailableColumns() []Column { return o.available }
func (o *ExportOrchestrator) SelectedColumns() []string  { return o.selected }
func (o *ExportOrchestrator) Busy() bool                 { return o.busy }

func (o *ExportOrchestrator) SetFormat(format string)    { o.format = format }
func (o *ExportOrchestrator) SetIncludeFilters(inc bool) { o.includeFilters = inc }

// SetColumns narrows the selection to a subset of the available columns,
// preserving catalog order.
func (o *ExportOrchestrator) SetColumns(keys []string) error {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		found := false
		for _, c := range o.available {
			if c.Key == k {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownColumn
		}
		want[k] = true
	}
	selected := make([]string, 0, len(want))
	for _, c := range o.available {
		if want[c.Key] {
			selected = append(selected, c.Key)
		}
	}
	o.selected = selected
	return nil
}

// Request returns the POST body the next PerformExport will send.
func (o *ExportOrchestrator) Request() ExportRequest {
	cols := make([]string, len(o.selected))
	copy(cols, o.selected)
	return ExportRequest{
		Type:           o.exportType,
		Format:         o.format,
		IncludeFilters: o.includeFilters,
		Columns:        cols,
	}
}

// PerformExport issues one export request. While it runs the orchestrator is
// busy and further calls fail with ErrExportInFlight. Success records a
// history entry; failure surfaces the error and leaves history untouched.
// There is no retry.
func (o *ExportOrchestrator) PerformExport(ctx context.Context) (*ExportResult, error) {
	if o.busy {
		return nil, ErrExportInFlight
	}
	if o.exportType == "" {
		return nil, ErrUnknownExportType
	}

	o.busy = true
	defer func() { o.busy = false }()

	res, err := o.exporter.Export(ctx, o.Request())
	if err != nil {
		if o.onError != nil {
			o.onError(err)
		}
		return nil, err
	}

	entry := HistoryEntry{
		Filename:    res.Filename,
		CreatedAt:   time.Now(),
		DownloadURL: res.DownloadURL,
	}
	o.history = append([]HistoryEntry{entry}, o.history...)
	if len(o.history) > HistoryCap {
		o.history = o.history[:HistoryCap]
	}

	return res, nil
}

// History returns the capped, most-recent-first export history of this view.
func (o *ExportOrchestrator) History() []HistoryEntry { return o.history }
