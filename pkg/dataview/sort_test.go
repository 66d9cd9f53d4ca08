package dataview

import "testing"

func TestSortBy(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   SortState
	}{
		{name: "First Sort", fields: []string{"name"}, want: SortState{Field: "name", Direction: Asc}},
		{name: "Toggle Same Field", fields: []string{"name", "name"}, want: SortState{Field: "name", Direction: Desc}},
		{name: "Toggle Back", fields: []string{"name", "name", "name"}, want: SortState{Field: "name", Direction: Asc}},
		{name: "New Field Resets", fields: []string{"name", "name", "due_date"}, want: SortState{Field: "due_date", Direction: Asc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSortController(nil)
			for _, f := range tt.fields {
				c.SortBy(f)
			}
			if got := c.State(); got != tt.want {
				t.Errorf("State() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSortEmitsState(t *testing.T) {
	var emitted []SortState
	c := NewSortController(func(s SortState) { emitted = append(emitted, s) })

	c.SortBy("name")
	c.SortBy("name")

	if len(emitted) != 2 {
		t.Fatalf("emitted %d states, want 2", len(emitted))
	}
	if emitted[0].Direction != Asc || emitted[1].Direction != Desc {
		t.Errorf("emitted = %+v", emitted)
	}
}
