package dataview

import (
	"context"
	"errors"
	"testing"
)

type fakeDeleter struct {
	err   error
	calls int
	kind  string
	ids   []string
}

func (d *fakeDeleter) BulkDelete(_ context.Context, kind string, ids []string) error {
	d.calls++
	d.kind = kind
	d.ids = ids
	return d.err
}

func alwaysConfirm(string) bool { return true }

func TestToggleItemIdempotent(t *testing.T) {
	s := NewSelection("tasks", &fakeDeleter{}, ConfirmerFunc(alwaysConfirm), nil, nil)

	s.ToggleItem("a", true)
	s.ToggleItem("b", true)
	s.ToggleItem("a", true) // repeated add is a no-op
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}

	s.ToggleItem("a", false)
	if s.IsSelected("a") || s.Count() != 1 {
		t.Error("toggle off did not return selection to prior state")
	}
	s.ToggleItem("a", false) // repeated remove is a no-op
	if s.Count() != 1 {
		t.Error("removing an absent id changed the selection")
	}
}

func TestToggleAllItems(t *testing.T) {
	s := NewSelection("tasks", &fakeDeleter{}, ConfirmerFunc(alwaysConfirm), nil, nil)
	all := []string{"1", "2", "3", "4", "5"}

	s.ToggleAllItems(true, all)
	if s.Count() != len(all) {
		t.Fatalf("Count() = %d, want %d", s.Count(), len(all))
	}

	s.ToggleAllItems(false, all)
	if s.Count() != 0 {
		t.Errorf("Count() = %d after clear, want 0", s.Count())
	}
}

func TestBulkDeleteSuccess(t *testing.T) {
	deleter := &fakeDeleter{}
	refreshes := 0
	var surfaced error
	s := NewSelection("tasks", deleter, ConfirmerFunc(alwaysConfirm),
		func() { refreshes++ }, func(err error) { surfaced = err })

	s.ToggleAllItems(true, []string{"r1", "r2", "r3", "r4", "r5"})
	s.ToggleItem("r3", false)
	s.ToggleItem("r4", false)
	s.ToggleItem("r5", false)

	if err := s.BulkDelete(context.Background()); err != nil {
		t.Fatalf("BulkDelete() error = %v", err)
	}

	if s.Count() != 0 {
		t.Error("selection not cleared after successful bulk delete")
	}
	if refreshes != 1 {
		t.Errorf("refresh signal fired %d times, want exactly 1", refreshes)
	}
	if surfaced != nil {
		t.Errorf("unexpected error surfaced: %v", surfaced)
	}
	if deleter.kind != "tasks" || len(deleter.ids) != 2 {
		t.Errorf("request = kind %q ids %v, want tasks [r1 r2]", deleter.kind, deleter.ids)
	}
}

func TestBulkDeleteFailureKeepsSelection(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("network down")}
	refreshes := 0
	var surfaced error
	s := NewSelection("tasks", deleter, ConfirmerFunc(alwaysConfirm),
		func() { refreshes++ }, func(err error) { surfaced = err })

	s.ToggleItem("a", true)
	s.ToggleItem("b", true)

	if err := s.BulkDelete(context.Background()); err == nil {
		t.Fatal("BulkDelete() expected error")
	}

	if s.Count() != 2 {
		t.Error("selection must remain intact after a failed bulk delete")
	}
	if refreshes != 0 {
		t.Error("refresh signal must not fire on failure")
	}
	if surfaced == nil {
		t.Error("error was not surfaced")
	}
}

func TestBulkDeleteDeclinedConfirmation(t *testing.T) {
	deleter := &fakeDeleter{}
	s := NewSelection("tasks", deleter, ConfirmerFunc(func(string) bool { return false }), nil, nil)
	s.ToggleItem("a", true)

	if err := s.BulkDelete(context.Background()); err != nil {
		t.Fatalf("BulkDelete() error = %v", err)
	}
	if deleter.calls != 0 {
		t.Error("declined confirmation must not issue a request")
	}
	if s.Count() != 1 {
		t.Error("declined confirmation must not change the selection")
	}
}

func TestBulkDeleteEmptySelection(t *testing.T) {
	deleter := &fakeDeleter{}
	s := NewSelection("tasks", deleter, ConfirmerFunc(alwaysConfirm), nil, nil)

	if err := s.BulkDelete(context.Background()); err != nil {
		t.Fatalf("BulkDelete() error = %v", err)
	}
	if deleter.calls != 0 {
		t.Error("empty selection must not issue a request")
	}
}
