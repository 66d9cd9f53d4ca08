package record

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListResult is the payload shape of every list endpoint.
type ListResult struct {
	Data       []map[string]any         `json:"data"`
	Pagination common_models.Pagination `json:"pagination"`
}

// RefreshNotifier pushes a refresh signal to connected clients after a
// mutation. Kept as a local interface so the record feature does not depend on
// the websocket hub directly.
type RefreshNotifier interface {
	Broadcast(kind, reason string)
}

type RecordService interface {
	CreateRecord(ctx context.Context, kind entity.Kind, data map[string]any) (string, error)
	GetRecord(ctx context.Context, kind entity.Kind, id string) (map[string]any, error)
	ListRecords(ctx context.Context, kind entity.Kind, filters map[string]string, page, limit int64, sortBy, sortOrder string) (*ListResult, error)
	UpdateRecord(ctx context.Context, kind entity.Kind, id string, data map[string]any) error
	DeleteRecord(ctx context.Context, kind entity.Kind, id string) error
}

type RecordServiceImpl struct {
	Catalog      *entity.Catalog
	RecordRepo   RecordRepository
	AuditService audit.AuditService
	Notifier     RefreshNotifier
}

func NewRecordService(
	catalog *entity.Catalog,
	recordRepo RecordRepository,
	auditService audit.AuditService,
	notifier RefreshNotifier,
) RecordService {
	return &RecordServiceImpl{
		Catalog:      catalog,
		RecordRepo:   recordRepo,
		AuditService: auditService,
		Notifier:     notifier,
	}
}

func (s *RecordServiceImpl) CreateRecord(ctx context.Context, kind entity.Kind, data map[string]any) (string, error) {
	id, err := s.RecordRepo.Create(ctx, string(kind), data)
	if err != nil {
		return "", err
	}

	changes := make(map[string]common_models.Change, len(data))
	for k, v := range data {
		changes[k] = common_models.Change{New: v}
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, string(kind), id.Hex(), changes)

	s.Notifier.Broadcast(string(kind), "created")
	return id.Hex(), nil
}

func (s *RecordServiceImpl) GetRecord(ctx context.Context, kind entity.Kind, id string) (map[string]any, error) {
	return s.RecordRepo.Get(ctx, string(kind), id)
}

func (s *RecordServiceImpl) ListRecords(ctx context.Context, kind entity.Kind, filters map[string]string, page, limit int64, sortBy, sortOrder string) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	if sortBy != "" && !s.Catalog.IsSortable(kind, sortBy) {
		return nil, fmt.Errorf("field %q is not sortable", sortBy)
	}

	query, err := s.prepareFilters(kind, filters)
	if err != nil {
		return nil, err
	}

	sortOrderInt := -1
	if strings.ToLower(sortOrder) == "asc" {
		sortOrderInt = 1
	}

	records, err := s.RecordRepo.List(ctx, string(kind), query, limit, offset, sortBy, sortOrderInt)
	if err != nil {
		return nil, err
	}

	total, err := s.RecordRepo.Count(ctx, string(kind), query)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Data: records,
		Pagination: common_models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}, nil
}

func (s *RecordServiceImpl) UpdateRecord(ctx context.Context, kind entity.Kind, id string, data map[string]any) error {
	oldRecord, err := s.RecordRepo.Get(ctx, string(kind), id)
	if err != nil {
		return err
	}

	if err := s.RecordRepo.Update(ctx, string(kind), id, data); err != nil {
		return err
	}

	changes := make(map[string]common_models.Change)
	for k, newVal := range data {
		oldVal, exists := oldRecord[k]
		if !exists || oldVal != newVal {
			changes[k] = common_models.Change{Old: oldVal, New: newVal}
		}
	}
	if len(changes) > 0 {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, string(kind), id, changes)
	}

	s.Notifier.Broadcast(string(kind), "updated")
	return nil
}

func (s *RecordServiceImpl) DeleteRecord(ctx context.Context, kind entity.Kind, id string) error {
	userID, _ := ctx.Value(common_models.UserIDKey).(string)
	if err := s.RecordRepo.Delete(ctx, string(kind), id, userID); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, string(kind), id, nil)
	s.Notifier.Broadcast(string(kind), "deleted")
	return nil
}

// rangeFilterField maps date range filter names to the record field they
// constrain.
var rangeFilterField = map[string]string{
	"due":      "due_date",
	"uploaded": "uploaded_at",
	"created":  "created_at",
}

// prepareFilters turns the flat name=value filter params of a list request
// into a typed MongoDB query, guided by the kind's filter descriptors. Unknown
// names are ignored so stray query params never break a list call.
func (s *RecordServiceImpl) prepareFilters(kind entity.Kind, filters map[string]string) (bson.M, error) {
	descriptors := make(map[string]string)
	for _, d := range s.Catalog.FilterDescriptors(kind) {
		descriptors[d.Name] = d.Type
	}

	query := bson.M{}
	for name, val := range filters {
		if strings.TrimSpace(val) == "" {
			continue
		}
		if isRangeStagingKey(name, descriptors) {
			continue
		}

		filterType, ok := descriptors[name]
		if !ok {
			continue
		}

		switch filterType {
		case "daterange":
			parts := strings.SplitN(val, "|", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid date range for filter %q", name)
			}
			start, err1 := parseFilterDate(parts[0])
			end, err2 := parseFilterDate(parts[1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("invalid date range for filter %q", name)
			}
			field := name
			if mapped, ok := rangeFilterField[name]; ok {
				field = mapped
			}
			// System fields hold BSON dates; record data fields hold
			// ISO-8601 strings, which order lexicographically. The bounds
			// must match the stored type or Mongo's type bracketing makes
			// the predicate match nothing.
			if isSystemField(field) {
				query[field] = bson.M{"$gte": start, "$lt": end.AddDate(0, 0, 1)}
			} else {
				query[field] = bson.M{
					"$gte": start.Format("2006-01-02"),
					"$lt":  end.AddDate(0, 0, 1).Format("2006-01-02"),
				}
			}
		case "multiselect":
			values := strings.Split(val, ",")
			for i := range values {
				values[i] = strings.TrimSpace(values[i])
			}
			query[name] = bson.M{"$in": values}
		case "text":
			query[name] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(val), Options: "i"}}
		default:
			query[name] = val
		}
	}
	return query, nil
}

// isRangeStagingKey reports whether name is a half-entered date range input
// (<filter>_from / <filter>_to). Only names whose base is a daterange filter
// of this kind count; a text filter like assigned_to is a real filter, not a
// staging key.
func isRangeStagingKey(name string, descriptors map[string]string) bool {
	for _, suffix := range []string{"_from", "_to"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && descriptors[base] == "daterange" {
			return true
		}
	}
	return false
}

func parseFilterDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}
