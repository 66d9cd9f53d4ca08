package dataview

import (
	"errors"
	"testing"
)

func TestViewStateTransitions(t *testing.T) {
	v := NewViewState()
	if v.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", v.State())
	}

	tok := v.Begin()
	if v.State() != StateLoading {
		t.Fatalf("state after Begin = %v, want loading", v.State())
	}

	if !v.Complete(tok, nil) {
		t.Fatal("Complete with current token must apply")
	}
	if v.State() != StateReady {
		t.Errorf("state = %v, want ready", v.State())
	}

	tok = v.Begin()
	v.Complete(tok, errors.New("fetch failed"))
	if v.State() != StateError {
		t.Errorf("state = %v, want error", v.State())
	}

	// Error -> Loading on retry
	v.Begin()
	if v.State() != StateLoading {
		t.Errorf("state = %v, want loading on retry", v.State())
	}
}

func TestStaleTokenDiscarded(t *testing.T) {
	v := NewViewState()

	first := v.Begin()
	second := v.Begin() // supersedes the first reload

	if v.Complete(first, nil) {
		t.Error("stale completion must be discarded")
	}
	if v.State() != StateLoading {
		t.Errorf("state = %v, want loading while newest reload is live", v.State())
	}

	if !v.Complete(second, nil) {
		t.Error("current completion must apply")
	}
	if v.State() != StateReady {
		t.Errorf("state = %v, want ready", v.State())
	}

	// A stale error must not surface either
	third := v.Begin()
	v.Begin()
	if v.Complete(third, errors.New("late failure")) {
		t.Error("stale error completion must be discarded")
	}
	if v.State() != StateLoading {
		t.Errorf("state = %v, want loading", v.State())
	}
}
