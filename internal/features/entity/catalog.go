package entity

import "go-pm/pkg/dataview"

// Catalog exposes the per-kind view metadata: export columns and filter
// controls. It is plain data built at startup; handlers and the export
// pipeline read it, nothing mutates it.
type Catalog struct{}

func NewCatalog() *Catalog { return &Catalog{} }

// ExportColumns returns the ordered export column descriptors for a kind.
func (c *Catalog) ExportColumns(kind Kind) []dataview.Column {
	return exportColumns[kind]
}

// ColumnKeys returns just the keys of a kind's export columns, in order.
func (c *Catalog) ColumnKeys(kind Kind) []string {
	cols := exportColumns[kind]
	keys := make([]string, len(cols))
	for i, col := range cols {
		keys[i] = col.Key
	}
	return keys
}

// Column looks up one descriptor by key.
func (c *Catalog) Column(kind Kind, key string) (dataview.Column, bool) {
	for _, col := range exportColumns[kind] {
		if col.Key == key {
			return col, true
		}
	}
	return dataview.Column{}, false
}

// IsSortable reports whether a field may be used as a sort key. System fields
// are always sortable.
func (c *Catalog) IsSortable(kind Kind, field string) bool {
	if field == "created_at" || field == "updated_at" || field == "_id" {
		return true
	}
	col, ok := c.Column(kind, field)
	return ok && col.Sortable
}

// FilterDescriptors returns the filter controls of a kind's list view.
func (c *Catalog) FilterDescriptors(kind Kind) []dataview.FilterDescriptor {
	return filterDescriptors[kind]
}

// DataviewCatalog adapts the catalog to the map shape the dataview export
// orchestrator consumes.
func (c *Catalog) DataviewCatalog() map[string][]dataview.Column {
	m := make(map[string][]dataview.Column, len(exportColumns))
	for kind, cols := range exportColumns {
		m[string(kind)] = cols
	}
	return m
}
