package dataview

import "testing"

func TestApplyDateRangeFilter(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		wantSet   bool
		wantValue string
	}{
		{name: "Both Ends", from: "2026-01-01", to: "2026-02-01", wantSet: true, wantValue: "2026-01-01|2026-02-01"},
		{name: "Only From", from: "2026-01-01", to: "", wantSet: false},
		{name: "Only To", from: "", to: "2026-02-01", wantSet: false},
		{name: "Neither", from: "", to: "", wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFilterPanel(nil, nil)
			if tt.from != "" {
				p.ApplyFilter("due_from", tt.from)
			}
			if tt.to != "" {
				p.ApplyFilter("due_to", tt.to)
			}
			p.ApplyDateRangeFilter("due")

			got, ok := p.Get("due")
			if ok != tt.wantSet {
				t.Fatalf("filter presence = %v, want %v", ok, tt.wantSet)
			}
			if tt.wantSet && got != tt.wantValue {
				t.Errorf("filter value = %q, want %q", got, tt.wantValue)
			}
		})
	}
}

func TestApplyDateRangeFilterRemovesStaleRange(t *testing.T) {
	p := NewFilterPanel(nil, nil)
	p.ApplyFilter("due_from", "2026-01-01")
	p.ApplyFilter("due_to", "2026-02-01")
	p.ApplyDateRangeFilter("due")
	if _, ok := p.Get("due"); !ok {
		t.Fatal("expected range to be set")
	}

	// Dropping one end must remove the combined entry
	p.ApplyFilter("due_to", "")
	p.ApplyDateRangeFilter("due")
	if _, ok := p.Get("due"); ok {
		t.Error("expected range to be removed after clearing one end")
	}
}

func TestActiveFilterCountExcludesBlanks(t *testing.T) {
	p := NewFilterPanel(nil, nil)
	p.ApplyFilter("status", "active")
	p.ApplyFilter("priority", "")
	p.ApplyFilter("owner", "   ")

	if got := p.ActiveFilterCount(); got != 1 {
		t.Errorf("ActiveFilterCount() = %d, want 1", got)
	}

	// Blank entries stay stored even though they are not counted
	if _, ok := p.Get("priority"); !ok {
		t.Error("blank filter entry should remain stored")
	}
}

func TestQuickFilterExactEquality(t *testing.T) {
	p := NewFilterPanel(nil, nil)
	p.ApplyQuickFilter("status", "overdue")

	if !p.IsQuickFilterActive("status", "overdue") {
		t.Error("expected quick filter to be active for exact value")
	}
	if p.IsQuickFilterActive("status", "active") {
		t.Error("quick filter must not match a different value")
	}
}

func TestClearAndReset(t *testing.T) {
	p := NewFilterPanel(nil, nil)
	p.OpenPanel()
	p.ApplyFilter("status", "active")

	p.ClearAllFilters()
	if p.ActiveFilterCount() != 0 {
		t.Error("ClearAllFilters left entries behind")
	}
	if !p.IsOpen() {
		t.Error("ClearAllFilters must not close the panel")
	}

	p.OpenPanel()
	p.ApplyFilter("status", "active")
	p.ResetFilters()
	if p.ActiveFilterCount() != 0 || p.IsOpen() {
		t.Error("ResetFilters must clear filters and close the panel")
	}
}

func TestChangeNotifierFires(t *testing.T) {
	changes := 0
	p := NewFilterPanel(func() { changes++ }, nil)

	p.ApplyFilter("status", "active")
	p.ApplyQuickFilter("health", "at_risk")
	p.ClearAllFilters()

	if changes != 3 {
		t.Errorf("change notifier fired %d times, want 3", changes)
	}
}

func TestExportDataCarriesSnapshot(t *testing.T) {
	var got map[string]string
	p := NewFilterPanel(nil, func(filters map[string]string) { got = filters })
	p.ApplyFilter("status", "active")
	p.ExportData()

	if got["status"] != "active" {
		t.Fatalf("export signal filters = %v", got)
	}

	// Mutating the snapshot must not touch the panel
	got["status"] = "deleted"
	if v, _ := p.Get("status"); v != "active" {
		t.Error("export snapshot aliases panel state")
	}
}
