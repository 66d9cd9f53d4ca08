package savedview

import (
	"context"
	"testing"

	common_models "go-pm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeViewRepo struct {
	created []*SavedView
}

func (f *fakeViewRepo) Create(_ context.Context, view *SavedView) error {
	view.ID = primitive.NewObjectID()
	f.created = append(f.created, view)
	return nil
}
func (f *fakeViewRepo) Get(_ context.Context, _ string) (*SavedView, error) { return nil, nil }
func (f *fakeViewRepo) Delete(_ context.Context, _ string, _ primitive.ObjectID) error {
	return nil
}
func (f *fakeViewRepo) FindByUser(_ context.Context, _ primitive.ObjectID, _ string) ([]SavedView, error) {
	return nil, nil
}
func (f *fakeViewRepo) FindPublic(_ context.Context, _ string) ([]SavedView, error) {
	return nil, nil
}

type noopAudit struct{}

func (noopAudit) LogChange(_ context.Context, _ common_models.AuditAction, _ string, _ string, _ map[string]common_models.Change) error {
	return nil
}

func TestSaveViewRequiresName(t *testing.T) {
	repo := &fakeViewRepo{}
	svc := NewSavedViewService(repo, noopAudit{})

	for _, name := range []string{"", "   "} {
		err := svc.SaveView(context.Background(), &SavedView{Name: name, Type: "tasks"})
		if err == nil {
			t.Errorf("SaveView(name=%q) expected error", name)
		}
	}
	if len(repo.created) != 0 {
		t.Errorf("nothing should be written when the name is blank, got %d", len(repo.created))
	}
}

func TestSaveViewRejectsUnknownKind(t *testing.T) {
	repo := &fakeViewRepo{}
	svc := NewSavedViewService(repo, noopAudit{})

	if err := svc.SaveView(context.Background(), &SavedView{Name: "x", Type: "invoices"}); err == nil {
		t.Error("expected error for unknown kind")
	}
	if len(repo.created) != 0 {
		t.Error("nothing should be written for an unknown kind")
	}
}

func TestSaveViewTrimsAndPersists(t *testing.T) {
	repo := &fakeViewRepo{}
	svc := NewSavedViewService(repo, noopAudit{})

	view := &SavedView{Name: "  My overdue  ", Type: "tasks", Filters: map[string]string{"status": "overdue"}}
	if err := svc.SaveView(context.Background(), view); err != nil {
		t.Fatalf("SaveView: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
	if repo.created[0].Name != "My overdue" {
		t.Errorf("name = %q, want trimmed", repo.created[0].Name)
	}
}

func TestSaveViewDefaultsFilters(t *testing.T) {
	repo := &fakeViewRepo{}
	svc := NewSavedViewService(repo, noopAudit{})

	view := &SavedView{Name: "All", Type: "projects"}
	if err := svc.SaveView(context.Background(), view); err != nil {
		t.Fatalf("SaveView: %v", err)
	}
	if view.Filters == nil {
		t.Error("filters should default to an empty map")
	}
}
