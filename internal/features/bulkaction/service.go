package bulkaction

import (
	"context"
	"fmt"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/features/entity"

	"go.uber.org/zap"
)

// RecordDeleter is the slice of the record repository bulk delete needs.
type RecordDeleter interface {
	DeleteMany(ctx context.Context, kind string, ids []string, userID string) (int64, error)
}

// AuditLogger records the outcome of a bulk operation.
type AuditLogger interface {
	LogChange(ctx context.Context, action common_models.AuditAction, entityKind string, recordID string, changes map[string]common_models.Change) error
}

// RefreshNotifier pushes a refresh signal to connected clients.
type RefreshNotifier interface {
	Broadcast(kind, reason string)
}

type BulkActionService interface {
	DeleteRecords(ctx context.Context, kind entity.Kind, ids []string) (int64, error)
}

type BulkActionServiceImpl struct {
	Deleter  RecordDeleter
	Audit    AuditLogger
	Notifier RefreshNotifier
	Logger   *zap.Logger
}

func NewBulkActionService(deleter RecordDeleter, auditService AuditLogger, notifier RefreshNotifier, logger *zap.Logger) BulkActionService {
	return &BulkActionServiceImpl{
		Deleter:  deleter,
		Audit:    auditService,
		Notifier: notifier,
		Logger:   logger,
	}
}

// DeleteRecords removes all requested ids in one statement. A partial match
// is reported as an error so the caller never sees a silent half-delete.
func (s *BulkActionServiceImpl) DeleteRecords(ctx context.Context, kind entity.Kind, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no record ids given")
	}

	userID, _ := ctx.Value(common_models.UserIDKey).(string)

	deleted, err := s.Deleter.DeleteMany(ctx, string(kind), ids, userID)
	if err != nil {
		s.Logger.Error("bulk delete failed",
			zap.String("kind", string(kind)),
			zap.Int("requested", len(ids)),
			zap.Error(err))
		return 0, err
	}

	if deleted != int64(len(ids)) {
		s.Logger.Warn("bulk delete matched fewer records than requested",
			zap.String("kind", string(kind)),
			zap.Int("requested", len(ids)),
			zap.Int64("deleted", deleted))
		return deleted, fmt.Errorf("deleted %d of %d records; the rest were missing or already deleted", deleted, len(ids))
	}

	changes := map[string]common_models.Change{
		"ids": {New: ids},
	}
	_ = s.Audit.LogChange(ctx, common_models.AuditActionBulk, string(kind), "", changes)

	s.Notifier.Broadcast(string(kind), "bulk_delete")
	return deleted, nil
}
