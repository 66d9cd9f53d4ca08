package dataview

// Record is one domain item as rendered by a data view: an open mapping from
// field name to value with an "id" entry.
type Record map[string]interface{}

// Row pairs a record with the columns a surface should draw for it.
type Row struct {
	Record  Record
	Columns []Column
}

// VisibleRows derives the render list: each record paired with the columns
// whose keys are selected, in catalog order. Records arrive already filtered
// and sorted by the server; nothing is re-filtered or re-sorted here.
func VisibleRows(records []Record, columns []Column, selectedKeys []string) []Row {
	want := make(map[string]bool, len(selectedKeys))
	for _, k := range selectedKeys {
		want[k] = true
	}

	visible := make([]Column, 0, len(selectedKeys))
	for _, c := range columns {
		if want[c.Key] {
			visible = append(visible, c)
		}
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{Record: rec, Columns: visible}
	}
	return rows
}
