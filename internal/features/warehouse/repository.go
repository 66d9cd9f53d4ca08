package warehouse

import (
	"context"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SyncLogRepository interface {
	Create(ctx context.Context, log *SyncLog) error
	Update(ctx context.Context, log *SyncLog) error
	List(ctx context.Context, kind string, limit int64) ([]SyncLog, error)
}

type SyncLogRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSyncLogRepository(mongodb *database.MongodbDB) SyncLogRepository {
	return &SyncLogRepositoryImpl{
		Collection: mongodb.DB.Collection("warehouse_sync_logs"),
	}
}

func (r *SyncLogRepositoryImpl) Create(ctx context.Context, log *SyncLog) error {
	if log.ID.IsZero() {
		log.ID = primitive.NewObjectID()
	}
	if tenantID, ok := ctx.Value(common_models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			log.TenantID = oid
		}
	}
	_, err := r.Collection.InsertOne(ctx, log)
	return err
}

func (r *SyncLogRepositoryImpl) Update(ctx context.Context, log *SyncLog) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": log.ID},
		bson.M{"$set": bson.M{
			"end_time":        log.EndTime,
			"status":          log.Status,
			"processed_count": log.ProcessedCount,
			"error":           log.Error,
		}})
	return err
}

func (r *SyncLogRepositoryImpl) List(ctx context.Context, kind string, limit int64) ([]SyncLog, error) {
	query := bson.M{}
	if kind != "" {
		query["kind"] = kind
	}
	if tenantID, ok := ctx.Value(common_models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			query["tenant_id"] = oid
		}
	}

	opts := options.Find().SetLimit(limit).SetSort(bson.M{"start_time": -1})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var logs []SyncLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
