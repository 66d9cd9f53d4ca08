package bulkaction

import (
	"context"
	"errors"
	"testing"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/features/entity"

	"go.uber.org/zap"
)

type fakeDeleter struct {
	deleted int64
	err     error
	calls   int
	gotIDs  []string
	gotKind string
}

func (f *fakeDeleter) DeleteMany(_ context.Context, kind string, ids []string, _ string) (int64, error) {
	f.calls++
	f.gotKind = kind
	f.gotIDs = ids
	return f.deleted, f.err
}

type fakeAudit struct {
	logged []common_models.AuditAction
}

func (f *fakeAudit) LogChange(_ context.Context, action common_models.AuditAction, _ string, _ string, _ map[string]common_models.Change) error {
	f.logged = append(f.logged, action)
	return nil
}

type fakeNotifier struct {
	broadcasts int
}

func (f *fakeNotifier) Broadcast(_, _ string) { f.broadcasts++ }

func newService(d *fakeDeleter, a *fakeAudit, n *fakeNotifier) BulkActionService {
	return NewBulkActionService(d, a, n, zap.NewNop())
}

func TestBulkDeleteSuccess(t *testing.T) {
	deleter := &fakeDeleter{deleted: 3}
	auditLog := &fakeAudit{}
	notifier := &fakeNotifier{}
	svc := newService(deleter, auditLog, notifier)

	ids := []string{"a", "b", "c"}
	deleted, err := svc.DeleteRecords(context.Background(), entity.KindTasks, ids)
	if err != nil {
		t.Fatalf("DeleteRecords: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}
	if deleter.gotKind != "tasks" || len(deleter.gotIDs) != 3 {
		t.Errorf("repo got kind=%s ids=%v", deleter.gotKind, deleter.gotIDs)
	}
	if len(auditLog.logged) != 1 || auditLog.logged[0] != common_models.AuditActionBulk {
		t.Errorf("audit = %v, want one BULK entry", auditLog.logged)
	}
	if notifier.broadcasts != 1 {
		t.Errorf("broadcasts = %d, want 1", notifier.broadcasts)
	}
}

func TestBulkDeletePartialMatchFails(t *testing.T) {
	deleter := &fakeDeleter{deleted: 2}
	auditLog := &fakeAudit{}
	notifier := &fakeNotifier{}
	svc := newService(deleter, auditLog, notifier)

	deleted, err := svc.DeleteRecords(context.Background(), entity.KindTasks, []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected error on partial match")
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(auditLog.logged) != 0 {
		t.Errorf("partial delete should not be audited as success, got %v", auditLog.logged)
	}
	if notifier.broadcasts != 0 {
		t.Errorf("broadcasts = %d, want 0", notifier.broadcasts)
	}
}

func TestBulkDeleteRepoError(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("connection reset")}
	svc := newService(deleter, &fakeAudit{}, &fakeNotifier{})

	if _, err := svc.DeleteRecords(context.Background(), entity.KindTasks, []string{"a"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBulkDeleteEmptyIDs(t *testing.T) {
	deleter := &fakeDeleter{}
	svc := newService(deleter, &fakeAudit{}, &fakeNotifier{})

	if _, err := svc.DeleteRecords(context.Background(), entity.KindTasks, nil); err == nil {
		t.Fatal("expected error for empty ids")
	}
	if deleter.calls != 0 {
		t.Errorf("repo calls = %d, want 0", deleter.calls)
	}
}
