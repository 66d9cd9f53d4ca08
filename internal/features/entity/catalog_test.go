package entity

import (
	"reflect"
	"testing"
)

func TestExportColumnMaps(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{KindProjects, []string{"name", "code", "status", "health", "progress",
			"budget", "start_date", "due_date", "project_manager", "team_size"}},
		{KindTasks, []string{"title", "project", "status", "priority", "assigned_to",
			"due_date", "estimated_hours", "actual_hours", "progress", "created_at"}},
		{KindDocuments, []string{"title", "filename", "type", "size", "status",
			"project", "uploaded_by", "uploaded_at", "version", "description"}},
		{KindUsers, []string{"name", "email", "role", "status", "tenant",
			"last_login", "created_at", "phone", "department"}},
		{KindTenants, []string{"name", "domain", "plan", "status", "users_count",
			"projects_count", "storage_used", "created_at", "last_activity"}},
	}

	catalog := NewCatalog()
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got := catalog.ColumnKeys(tt.kind)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ColumnKeys(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		if got, err := ParseKind(string(k)); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}

	for _, bad := range []string{"", "invoices", "Projects", "task"} {
		if _, err := ParseKind(bad); err == nil {
			t.Errorf("ParseKind(%q) expected error", bad)
		}
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		fn      func([]byte) error
		body    string
		wantErr bool
	}{
		{"Valid Export", v.ValidateExportRequest, `{"type":"tasks","format":"csv","includeFilters":false,"columns":["title"]}`, false},
		{"Bad Format", v.ValidateExportRequest, `{"type":"tasks","format":"xml"}`, true},
		{"Missing Type", v.ValidateExportRequest, `{"format":"csv"}`, true},
		{"Valid Save View", v.ValidateSaveView, `{"name":"My overdue","type":"tasks","filters":{"status":"overdue"}}`, false},
		{"Empty Name", v.ValidateSaveView, `{"name":"","type":"tasks"}`, true},
		{"Valid Bulk", v.ValidateBulkDelete, `{"ids":["a","b"],"type":"tasks"}`, false},
		{"Empty Ids", v.ValidateBulkDelete, `{"ids":[],"type":"tasks"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
