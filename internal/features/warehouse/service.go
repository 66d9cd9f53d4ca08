package warehouse

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/config"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/entity"
	"go-pm/internal/features/record"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const syncBatchSize = 1000

type WarehouseService interface {
	SyncKind(ctx context.Context, kind entity.Kind) (*SyncLog, error)
	SyncAll(ctx context.Context) ([]SyncLog, error)
	ListLogs(ctx context.Context, kind string, limit int64) ([]SyncLog, error)
}

type WarehouseServiceImpl struct {
	LogRepo      SyncLogRepository
	RecordRepo   record.RecordRepository
	AuditService audit.AuditService
	Config       *config.Config
	Logger       *zap.Logger
}

func NewWarehouseService(
	logRepo SyncLogRepository,
	recordRepo record.RecordRepository,
	auditService audit.AuditService,
	cfg *config.Config,
	logger *zap.Logger,
) WarehouseService {
	return &WarehouseServiceImpl{
		LogRepo:      logRepo,
		RecordRepo:   recordRepo,
		AuditService: auditService,
		Config:       cfg,
		Logger:       logger,
	}
}

// SyncKind mirrors every record of a kind into the Postgres warehouse. Rows
// are upserted by record id; the mirror is additive, deletions age out when
// the table is rebuilt.
func (s *WarehouseServiceImpl) SyncKind(ctx context.Context, kind entity.Kind) (*SyncLog, error) {
	if s.Config.WarehouseDSN == "" {
		return nil, fmt.Errorf("warehouse sync is not configured")
	}

	syncLog := &SyncLog{
		Kind:      string(kind),
		StartTime: time.Now(),
		Status:    "in_progress",
	}
	_ = s.LogRepo.Create(ctx, syncLog)

	processed, err := s.mirror(ctx, kind)

	syncLog.EndTime = time.Now()
	syncLog.ProcessedCount = processed
	if err != nil {
		syncLog.Status = "failed"
		syncLog.Error = err.Error()
	} else {
		syncLog.Status = "success"
	}
	_ = s.LogRepo.Update(ctx, syncLog)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionSync, string(kind), syncLog.ID.Hex(), map[string]common_models.Change{
		"status":    {New: syncLog.Status},
		"processed": {New: processed},
	})

	if err != nil {
		s.Logger.Error("warehouse sync failed",
			zap.String("kind", string(kind)), zap.Error(err))
		return syncLog, err
	}

	s.Logger.Info("warehouse sync done",
		zap.String("kind", string(kind)), zap.Int("processed", processed))
	return syncLog, nil
}

func (s *WarehouseServiceImpl) SyncAll(ctx context.Context) ([]SyncLog, error) {
	var logs []SyncLog
	for _, kind := range entity.Kinds() {
		syncLog, err := s.SyncKind(ctx, kind)
		if syncLog != nil {
			logs = append(logs, *syncLog)
		}
		if err != nil {
			return logs, err
		}
	}
	return logs, nil
}

func (s *WarehouseServiceImpl) ListLogs(ctx context.Context, kind string, limit int64) ([]SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.LogRepo.List(ctx, kind, limit)
}

func (s *WarehouseServiceImpl) mirror(ctx context.Context, kind entity.Kind) (int, error) {
	db, err := sql.Open("postgres", s.Config.WarehouseDSN)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to warehouse: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to ping warehouse: %v", err)
	}

	tableName := "pm_" + string(kind)
	createStmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		synced_at TIMESTAMPTZ NOT NULL
	)`, tableName)
	if _, err := db.ExecContext(ctx, createStmt); err != nil {
		return 0, fmt.Errorf("failed to create warehouse table %s: %v", tableName, err)
	}

	upsertStmt := fmt.Sprintf(
		"INSERT INTO %s (id, payload, synced_at) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET payload = $2, synced_at = $3",
		tableName)

	total := 0
	page := int64(1)
	limit := int64(syncBatchSize)

	for {
		offset := (page - 1) * limit
		records, err := s.RecordRepo.List(ctx, string(kind), bson.M{}, limit, offset, "updated_at", 1)
		if err != nil {
			return total, fmt.Errorf("failed to fetch %s records on page %d: %v", kind, page, err)
		}
		if len(records) == 0 {
			break
		}

		now := time.Now()
		for _, rec := range records {
			id, _ := rec["id"].(string)
			if id == "" {
				continue
			}
			payload, err := json.Marshal(rec)
			if err != nil {
				continue
			}
			if _, err := db.ExecContext(ctx, upsertStmt, id, payload, now); err != nil {
				return total, fmt.Errorf("failed to upsert record %s: %v", id, err)
			}
			total++
		}

		if len(records) < int(limit) {
			break
		}
		page++
	}
	return total, nil
}
