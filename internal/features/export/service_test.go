package export

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/config"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/entity"
	"go-pm/internal/features/record"

	"go.uber.org/zap"
)

type fakeLister struct {
	data       []map[string]any
	gotFilters map[string]string
}

func (f *fakeLister) ListRecords(_ context.Context, _ entity.Kind, filters map[string]string, _, _ int64, _, _ string) (*record.ListResult, error) {
	f.gotFilters = filters
	return &record.ListResult{Data: f.data}, nil
}

type fakeRepo struct {
	created []*ExportJob
}

func (f *fakeRepo) Create(_ context.Context, job *ExportJob) error {
	f.created = append(f.created, job)
	return nil
}
func (f *fakeRepo) List(_ context.Context, limit int64) ([]ExportJob, error) {
	jobs := make([]ExportJob, 0, len(f.created))
	for i := len(f.created) - 1; i >= 0 && int64(len(jobs)) < limit; i-- {
		jobs = append(jobs, *f.created[i])
	}
	return jobs, nil
}
func (f *fakeRepo) FindByToken(_ context.Context, token string) (*ExportJob, error) {
	for _, job := range f.created {
		if job.Token == token {
			return job, nil
		}
	}
	return nil, os.ErrNotExist
}
func (f *fakeRepo) DeleteOlderThan(_ context.Context, _ time.Time) ([]ExportJob, error) {
	return nil, nil
}

type noopAudit struct{}

func (noopAudit) LogChange(_ context.Context, _ common_models.AuditAction, _ string, _ string, _ map[string]common_models.Change) error {
	return nil
}
func (noopAudit) ListLogs(_ context.Context, _ audit.LogQuery, _, _ int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func newExportService(t *testing.T, lister *fakeLister, repo *fakeRepo) ExportService {
	t.Helper()
	cfg := &config.Config{
		ExportDir: t.TempDir(),
		ExportURL: "/api/exports",
	}
	return NewExportService(repo, lister, entity.NewCatalog(), noopAudit{}, cfg, zap.NewNop())
}

func TestCreateExportCSV(t *testing.T) {
	lister := &fakeLister{data: []map[string]any{
		{"title": "Fix roof", "status": "done", "progress": 100},
		{"title": "Paint wall", "status": "in_progress", "progress": 40},
	}}
	repo := &fakeRepo{}
	svc := newExportService(t, lister, repo)

	job, err := svc.CreateExport(context.Background(), ExportRequest{
		Type:    "tasks",
		Format:  "csv",
		Columns: []string{"title", "status", "progress"},
	})
	if err != nil {
		t.Fatalf("CreateExport: %v", err)
	}
	if job.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", job.RowCount)
	}
	if !strings.HasSuffix(job.Filename, ".csv") {
		t.Errorf("Filename = %s, want .csv suffix", job.Filename)
	}
	if job.DownloadURL != "/api/exports/"+job.Token+"/download" {
		t.Errorf("DownloadURL = %s", job.DownloadURL)
	}

	content, err := os.ReadFile(job.FilePath)
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if lines[0] != "Title,Status,Progress" {
		t.Errorf("header = %q", lines[0])
	}
	// Progress carries a format expression that renders a percent sign.
	if lines[1] != "Fix roof,done,100%" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Paint wall,in_progress,40%" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestCreateExportColumnOrderFollowsCatalog(t *testing.T) {
	lister := &fakeLister{data: []map[string]any{{"title": "a", "status": "todo"}}}
	svc := newExportService(t, lister, &fakeRepo{})

	// Requested out of order; the file must follow catalog order.
	job, err := svc.CreateExport(context.Background(), ExportRequest{
		Type:    "tasks",
		Format:  "csv",
		Columns: []string{"status", "title"},
	})
	if err != nil {
		t.Fatalf("CreateExport: %v", err)
	}

	content, _ := os.ReadFile(job.FilePath)
	if !strings.HasPrefix(string(content), "Title,Status") {
		t.Errorf("header = %q, want catalog order Title,Status", strings.SplitN(string(content), "\n", 2)[0])
	}
	if got := job.Columns; len(got) != 2 || got[0] != "title" || got[1] != "status" {
		t.Errorf("job.Columns = %v", got)
	}
}

func TestCreateExportIncludesFilterSummary(t *testing.T) {
	lister := &fakeLister{data: nil}
	svc := newExportService(t, lister, &fakeRepo{})

	job, err := svc.CreateExport(context.Background(), ExportRequest{
		Type:           "tasks",
		Format:         "csv",
		IncludeFilters: true,
		Filters:        map[string]string{"status": "done"},
	})
	if err != nil {
		t.Fatalf("CreateExport: %v", err)
	}
	if lister.gotFilters["status"] != "done" {
		t.Errorf("filters not forwarded to record query: %v", lister.gotFilters)
	}

	content, _ := os.ReadFile(job.FilePath)
	if !strings.Contains(string(content), "Active Filters") {
		t.Error("filter summary missing from export")
	}
	if !strings.Contains(string(content), "status,done") {
		t.Error("filter values missing from export")
	}
}

func TestFilterSummaryOrderIsStable(t *testing.T) {
	filters := map[string]string{
		"status":      "done",
		"priority":    "high",
		"assigned_to": "alice",
	}

	first := filterSummary(filters)

	// Rows after the heading follow filter name order.
	want := []string{"assigned_to", "priority", "status"}
	for i, name := range want {
		row := first[i+2]
		if len(row) != 2 || row[0] != name {
			t.Errorf("row %d = %v, want name %s", i+2, row, name)
		}
	}

	// Identical input renders identically on every call.
	for i := 0; i < 10; i++ {
		again := filterSummary(filters)
		for j := range first {
			if len(again[j]) != len(first[j]) || (len(first[j]) > 0 && again[j][0] != first[j][0]) {
				t.Fatalf("run %d row %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestCreateExportIgnoresFiltersWhenExcluded(t *testing.T) {
	lister := &fakeLister{data: nil}
	svc := newExportService(t, lister, &fakeRepo{})

	_, err := svc.CreateExport(context.Background(), ExportRequest{
		Type:    "tasks",
		Format:  "csv",
		Filters: map[string]string{"status": "done"},
	})
	if err != nil {
		t.Fatalf("CreateExport: %v", err)
	}
	if lister.gotFilters != nil {
		t.Errorf("filters should not be applied, got %v", lister.gotFilters)
	}
}

func TestCreateExportRejections(t *testing.T) {
	svc := newExportService(t, &fakeLister{}, &fakeRepo{})

	tests := []struct {
		name string
		req  ExportRequest
	}{
		{"Unknown Type", ExportRequest{Type: "invoices", Format: "csv"}},
		{"Unsupported Format", ExportRequest{Type: "tasks", Format: "pdf"}},
		{"Unknown Column", ExportRequest{Type: "tasks", Format: "csv", Columns: []string{"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateExport(context.Background(), tt.req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCreateExportExcel(t *testing.T) {
	lister := &fakeLister{data: []map[string]any{{"title": "a", "status": "todo"}}}
	svc := newExportService(t, lister, &fakeRepo{})

	job, err := svc.CreateExport(context.Background(), ExportRequest{
		Type:    "tasks",
		Format:  "excel",
		Columns: []string{"title", "status"},
	})
	if err != nil {
		t.Fatalf("CreateExport: %v", err)
	}
	if !strings.HasSuffix(job.Filename, ".xlsx") {
		t.Errorf("Filename = %s, want .xlsx suffix", job.Filename)
	}
	info, err := os.Stat(job.FilePath)
	if err != nil || info.Size() == 0 {
		t.Errorf("export file missing or empty: %v", err)
	}
}

func TestListHistoryMostRecentFirst(t *testing.T) {
	lister := &fakeLister{}
	repo := &fakeRepo{}
	svc := newExportService(t, lister, repo)

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateExport(context.Background(), ExportRequest{Type: "tasks", Format: "csv"}); err != nil {
			t.Fatalf("CreateExport: %v", err)
		}
	}

	jobs, err := svc.ListHistory(context.Background())
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(jobs) != 3 {
		t.Errorf("history length = %d, want 3", len(jobs))
	}
	for _, job := range jobs {
		if job.DownloadURL == "" {
			t.Error("history entry missing download URL")
		}
	}
}
