package entity

import (
	"fmt"

	"go-pm/pkg/dataview"
)

// Kind is the closed set of bulk-deletable, exportable entity kinds. Free-form
// type strings from clients are parsed through ParseKind before any storage or
// export call.
type Kind string

const (
	KindProjects  Kind = "projects"
	KindTasks     Kind = "tasks"
	KindDocuments Kind = "documents"
	KindUsers     Kind = "users"
	KindTenants   Kind = "tenants"
)

// Kinds returns every supported kind in catalog order.
func Kinds() []Kind {
	return []Kind{KindProjects, KindTasks, KindDocuments, KindUsers, KindTenants}
}

// ParseKind validates a client-supplied type string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindProjects, KindTasks, KindDocuments, KindUsers, KindTenants:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unsupported entity kind %q", s)
}

func (k Kind) String() string { return string(k) }

// exportColumns is the static per-kind export column map. Order matters: it is
// the order columns appear in generated files and in the export options UI.
var exportColumns = map[Kind][]dataview.Column{
	KindProjects: {
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "code", Label: "Code", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "health", Label: "Health"},
		{Key: "progress", Label: "Progress", Format: `string(value) + "%"`, Sortable: true},
		{Key: "budget", Label: "Budget", Sortable: true},
		{Key: "start_date", Label: "Start Date", Sortable: true},
		{Key: "due_date", Label: "Due Date", Sortable: true},
		{Key: "project_manager", Label: "Project Manager"},
		{Key: "team_size", Label: "Team Size"},
	},
	KindTasks: {
		{Key: "title", Label: "Title", Sortable: true},
		{Key: "project", Label: "Project", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "priority", Label: "Priority", Sortable: true},
		{Key: "assigned_to", Label: "Assigned To"},
		{Key: "due_date", Label: "Due Date", Sortable: true},
		{Key: "estimated_hours", Label: "Estimated Hours"},
		{Key: "actual_hours", Label: "Actual Hours"},
		{Key: "progress", Label: "Progress", Format: `string(value) + "%"`, Sortable: true},
		{Key: "created_at", Label: "Created At", Sortable: true},
	},
	KindDocuments: {
		{Key: "title", Label: "Title", Sortable: true},
		{Key: "filename", Label: "Filename"},
		{Key: "type", Label: "Type", Sortable: true},
		{Key: "size", Label: "Size", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "project", Label: "Project", Sortable: true},
		{Key: "uploaded_by", Label: "Uploaded By"},
		{Key: "uploaded_at", Label: "Uploaded At", Sortable: true},
		{Key: "version", Label: "Version"},
		{Key: "description", Label: "Description"},
	},
	KindUsers: {
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "email", Label: "Email", Sortable: true},
		{Key: "role", Label: "Role", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "tenant", Label: "Tenant", Sortable: true},
		{Key: "last_login", Label: "Last Login", Sortable: true},
		{Key: "created_at", Label: "Created At", Sortable: true},
		{Key: "phone", Label: "Phone"},
		{Key: "department", Label: "Department", Sortable: true},
	},
	KindTenants: {
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "domain", Label: "Domain", Sortable: true},
		{Key: "plan", Label: "Plan", Sortable: true},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "users_count", Label: "Users"},
		{Key: "projects_count", Label: "Projects"},
		{Key: "storage_used", Label: "Storage Used"},
		{Key: "created_at", Label: "Created At", Sortable: true},
		{Key: "last_activity", Label: "Last Activity", Sortable: true},
	},
}

// filterDescriptors declares the filter controls each kind's list view offers.
var filterDescriptors = map[Kind][]dataview.FilterDescriptor{
	KindProjects: {
		{Name: "status", Type: "select", Options: []string{"planning", "active", "on_hold", "completed", "cancelled"}},
		{Name: "health", Type: "select", Options: []string{"on_track", "at_risk", "off_track"}},
		{Name: "due", Type: "daterange"},
		{Name: "project_manager", Type: "text", Placeholder: "Manager name"},
	},
	KindTasks: {
		{Name: "status", Type: "select", Options: []string{"todo", "in_progress", "review", "done"}},
		{Name: "priority", Type: "select", Options: []string{"low", "medium", "high", "urgent"}},
		{Name: "assigned_to", Type: "text", Placeholder: "Assignee"},
		{Name: "due", Type: "daterange"},
	},
	KindDocuments: {
		{Name: "type", Type: "select", Options: []string{"contract", "invoice", "report", "drawing", "other"}},
		{Name: "status", Type: "select", Options: []string{"draft", "in_review", "approved", "archived"}},
		{Name: "uploaded", Type: "daterange"},
	},
	KindUsers: {
		{Name: "role", Type: "select", Options: []string{"admin", "manager", "member", "viewer"}},
		{Name: "status", Type: "select", Options: []string{"active", "inactive", "suspended"}},
		{Name: "department", Type: "text", Placeholder: "Department"},
	},
	KindTenants: {
		{Name: "plan", Type: "select", Options: []string{"free", "starter", "business", "enterprise"}},
		{Name: "status", Type: "select", Options: []string{"active", "trial", "suspended"}},
		{Name: "created", Type: "daterange"},
	},
}
