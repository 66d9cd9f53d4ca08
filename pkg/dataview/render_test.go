package dataview

import "testing"

func TestVisibleRows(t *testing.T) {
	columns := []Column{{Key: "name"}, {Key: "status"}, {Key: "due_date"}}
	records := []Record{
		{"id": "1", "name": "Alpha", "status": "active"},
		{"id": "2", "name": "Beta", "status": "on_hold"},
	}

	rows := VisibleRows(records, columns, []string{"status", "name"})
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	// Record order is preserved; column order follows the catalog
	if rows[0].Record["name"] != "Alpha" || rows[1].Record["name"] != "Beta" {
		t.Error("record order changed")
	}
	if rows[0].Columns[0].Key != "name" || rows[0].Columns[1].Key != "status" {
		t.Errorf("visible columns = %v", rows[0].Columns)
	}
}
