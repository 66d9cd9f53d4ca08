package dataview

import "strings"

// FilterPanel tracks the active filter values of one view. Range filters use
// the "<name>_from"/"<name>_to" entry convention and are collapsed into a
// single "<name>" entry of the form "from|to" by ApplyDateRangeFilter.
//
// The panel never fetches or filters data itself; every mutation fires the
// change callback and the subscriber decides how to refresh.
type FilterPanel struct {
	active   map[string]string
	open     bool
	onChange func()
	onExport func(filters map[string]string)
}

func NewFilterPanel(onChange func(), onExport func(map[string]string)) *FilterPanel {
	return &FilterPanel{
		active:   make(map[string]string),
		onChange: onChange,
		onExport: onExport,
	}
}

// ApplyFilter sets one filter entry. Empty values are stored as-is; they are
// only excluded from the active count, not removed.
func (p *FilterPanel) ApplyFilter(name, value string) {
	p.active[name] = value
	p.notify()
}

// ApplyDateRangeFilter collapses "<name>_from"/"<name>_to" into one range
// entry. Unless both ends are set the combined entry is removed.
func (p *FilterPanel) ApplyDateRangeFilter(name string) {
	from := p.active[name+"_from"]
	to := p.active[name+"_to"]
	if from != "" && to != "" {
		p.active[name] = from + "|" + to
	} else {
		delete(p.active, name)
	}
	p.notify()
}

// ApplyQuickFilter assigns a preset key/value pair.
func (p *FilterPanel) ApplyQuickFilter(key, value string) {
	p.active[key] = value
	p.notify()
}

// IsQuickFilterActive reports whether the preset's exact value is set.
func (p *FilterPanel) IsQuickFilterActive(key, value string) bool {
	return p.active[key] == value
}

// ActiveFilterCount counts entries with a non-blank value.
func (p *FilterPanel) ActiveFilterCount() int {
	count := 0
	for _, v := range p.active {
		if strings.TrimSpace(v) != "" {
			count++
		}
	}
	return count
}

// Get returns the stored value for a filter name.
func (p *FilterPanel) Get(name string) (string, bool) {
	v, ok := p.active[name]
	return v, ok
}

// ActiveFilters returns a snapshot of the filter map.
func (p *FilterPanel) ActiveFilters() map[string]string {
	snapshot := make(map[string]string, len(p.active))
	for k, v := range p.active {
		snapshot[k] = v
	}
	return snapshot
}

// ClearAllFilters empties the filter map.
func (p *FilterPanel) ClearAllFilters() {
	p.active = make(map[string]string)
	p.notify()
}

// ResetFilters empties the filter map and closes the panel.
func (p *FilterPanel) ResetFilters() {
	p.open = false
	p.ClearAllFilters()
}

func (p *FilterPanel) OpenPanel()   { p.open = true }
func (p *FilterPanel) IsOpen() bool { return p.open }

// ExportData emits the current filter map on the export signal. This is
// decoupled from the export orchestrator's own UI.
func (p *FilterPanel) ExportData() {
	if p.onExport != nil {
		p.onExport(p.ActiveFilters())
	}
}

func (p *FilterPanel) notify() {
	if p.onChange != nil {
		p.onChange()
	}
}
