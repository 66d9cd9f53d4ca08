package record

import (
	"testing"
	"time"

	"go-pm/internal/features/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newFilterService() *RecordServiceImpl {
	return &RecordServiceImpl{Catalog: entity.NewCatalog()}
}

func TestPrepareFiltersEquality(t *testing.T) {
	s := newFilterService()

	query, err := s.prepareFilters(entity.KindTasks, map[string]string{
		"status":   "in_progress",
		"priority": "high",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}

	if query["status"] != "in_progress" {
		t.Errorf("status = %v, want in_progress", query["status"])
	}
	if query["priority"] != "high" {
		t.Errorf("priority = %v, want high", query["priority"])
	}
}

func TestPrepareFiltersText(t *testing.T) {
	s := newFilterService()

	query, err := s.prepareFilters(entity.KindTasks, map[string]string{
		"assigned_to": "alice",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}

	m, ok := query["assigned_to"].(bson.M)
	if !ok {
		t.Fatalf("assigned_to = %T, want bson.M", query["assigned_to"])
	}
	re, ok := m["$regex"].(primitive.Regex)
	if !ok || re.Pattern != "alice" || re.Options != "i" {
		t.Errorf("regex = %+v, want case-insensitive alice", m["$regex"])
	}
}

func TestPrepareFiltersDateRange(t *testing.T) {
	s := newFilterService()

	query, err := s.prepareFilters(entity.KindTasks, map[string]string{
		"due": "2026-01-01|2026-01-31",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}

	// The range filter name maps onto the due_date data field, which stores
	// ISO-8601 strings, so the bounds must be strings too.
	m, ok := query["due_date"].(bson.M)
	if !ok {
		t.Fatalf("due_date = %T, want bson.M", query["due_date"])
	}
	if gte, ok := m["$gte"].(string); !ok || gte != "2026-01-01" {
		t.Errorf("$gte = %v (%T), want string 2026-01-01", m["$gte"], m["$gte"])
	}
	if lt, ok := m["$lt"].(string); !ok || lt != "2026-02-01" {
		t.Errorf("$lt = %v (%T), want string 2026-02-01", m["$lt"], m["$lt"])
	}
}

func TestPrepareFiltersDateRangeOnSystemField(t *testing.T) {
	s := newFilterService()

	query, err := s.prepareFilters(entity.KindTenants, map[string]string{
		"created": "2026-01-01|2026-01-31",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}

	// created_at is a typed bookkeeping field; bounds stay time.Time.
	m, ok := query["created_at"].(bson.M)
	if !ok {
		t.Fatalf("created_at = %T, want bson.M", query["created_at"])
	}
	gte, ok := m["$gte"].(time.Time)
	if !ok || gte.Format("2006-01-02") != "2026-01-01" {
		t.Errorf("$gte = %v (%T), want 2026-01-01 time", m["$gte"], m["$gte"])
	}
	lt, ok := m["$lt"].(time.Time)
	if !ok || lt.Format("2006-01-02") != "2026-02-01" {
		t.Errorf("$lt = %v (%T), want 2026-02-01 time", m["$lt"], m["$lt"])
	}
}

func TestPrepareFiltersBadDateRange(t *testing.T) {
	s := newFilterService()

	for _, val := range []string{"2026-01-01", "x|y", "2026-01-01|"} {
		if _, err := s.prepareFilters(entity.KindTasks, map[string]string{"due": val}); err == nil {
			t.Errorf("prepareFilters(due=%q) expected error", val)
		}
	}
}

func TestPrepareFiltersSkipsNoise(t *testing.T) {
	s := newFilterService()

	query, err := s.prepareFilters(entity.KindTasks, map[string]string{
		"status":   "",
		"due_from": "2026-01-01",
		"due_to":   "2026-01-31",
		"unknown":  "whatever",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}
	if len(query) != 0 {
		t.Errorf("query = %v, want empty", query)
	}
}

func TestStagingKeySkipRequiresDateRangeBase(t *testing.T) {
	s := newFilterService()

	// assigned_to ends in _to but has no "assigned" daterange filter; it is
	// a real filter and must survive alongside genuine staging keys.
	query, err := s.prepareFilters(entity.KindTasks, map[string]string{
		"assigned_to": "alice",
		"due_from":    "2026-01-01",
		"due_to":      "2026-01-31",
	})
	if err != nil {
		t.Fatalf("prepareFilters: %v", err)
	}
	if len(query) != 1 {
		t.Fatalf("query = %v, want only assigned_to", query)
	}
	if _, ok := query["assigned_to"].(bson.M); !ok {
		t.Errorf("assigned_to = %T, want bson.M", query["assigned_to"])
	}
}

func TestListRejectsUnsortableField(t *testing.T) {
	s := newFilterService()

	if s.Catalog.IsSortable(entity.KindTasks, "assigned_to") {
		t.Error("assigned_to should not be sortable")
	}
	if !s.Catalog.IsSortable(entity.KindTasks, "priority") {
		t.Error("priority should be sortable")
	}
	if !s.Catalog.IsSortable(entity.KindTasks, "updated_at") {
		t.Error("system fields are always sortable")
	}
}
