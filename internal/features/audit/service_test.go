package audit

import (
	"context"
	"testing"

	common_models "go-pm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAuditRepo struct {
	logs    []common_models.AuditLog
	gotQ    LogQuery
	created []common_models.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, log common_models.AuditLog) error {
	f.created = append(f.created, log)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, q LogQuery, _, _ int64) ([]common_models.AuditLog, error) {
	f.gotQ = q
	return f.logs, nil
}

type fakeUserFinder struct {
	users   []common_models.User
	gotIDs  []string
	queried int
}

func (f *fakeUserFinder) FindByIDs(_ context.Context, ids []string) ([]common_models.User, error) {
	f.gotIDs = ids
	f.queried++
	return f.users, nil
}

func TestListLogsResolvesActorNames(t *testing.T) {
	alice := common_models.User{ID: primitive.NewObjectID(), Name: "Alice"}
	goneID := primitive.NewObjectID().Hex()

	repo := &fakeAuditRepo{logs: []common_models.AuditLog{
		{ActorID: alice.ID.Hex(), Action: common_models.AuditActionDelete, Entity: "tasks"},
		{ActorID: alice.ID.Hex(), Action: common_models.AuditActionBulk, Entity: "tasks"},
		{ActorID: goneID, Action: common_models.AuditActionExport, Entity: "projects"},
		{ActorID: "system", Action: common_models.AuditActionSync, Entity: "documents"},
	}}
	finder := &fakeUserFinder{users: []common_models.User{alice}}
	svc := NewAuditService(repo, finder)

	logs, err := svc.ListLogs(context.Background(), LogQuery{}, 1, 20)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}

	want := []string{"Alice", "Alice", "Unknown User", "System"}
	for i, name := range want {
		if logs[i].ActorName != name {
			t.Errorf("log %d ActorName = %q, want %q", i, logs[i].ActorName, name)
		}
	}

	// Duplicate and system actors collapse into a single batched lookup.
	if finder.queried != 1 {
		t.Errorf("FindByIDs called %d times, want 1", finder.queried)
	}
	if len(finder.gotIDs) != 2 {
		t.Errorf("looked up ids = %v, want the two distinct user actors", finder.gotIDs)
	}
}

func TestListLogsForwardsQuery(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, &fakeUserFinder{})

	q := LogQuery{Entity: "tasks", Action: common_models.AuditActionBulk}
	if _, err := svc.ListLogs(context.Background(), q, 1, 20); err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if repo.gotQ != q {
		t.Errorf("repo query = %+v, want %+v", repo.gotQ, q)
	}
}

func TestLogChangeDefaultsToSystemActor(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, &fakeUserFinder{})

	err := svc.LogChange(context.Background(), common_models.AuditActionSync, "projects", "", nil)
	if err != nil {
		t.Fatalf("LogChange: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d logs, want 1", len(repo.created))
	}
	if repo.created[0].ActorID != "system" {
		t.Errorf("ActorID = %q, want system", repo.created[0].ActorID)
	}
	if repo.created[0].Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}
