package export

import (
	"context"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExportRepository interface {
	Create(ctx context.Context, job *ExportJob) error
	List(ctx context.Context, limit int64) ([]ExportJob, error)
	FindByToken(ctx context.Context, token string) (*ExportJob, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]ExportJob, error)
}

type ExportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewExportRepository(mongodb *database.MongodbDB) ExportRepository {
	return &ExportRepositoryImpl{
		Collection: mongodb.DB.Collection("export_history"),
	}
}

func (r *ExportRepositoryImpl) Create(ctx context.Context, job *ExportJob) error {
	if tenantID, ok := ctx.Value(common_models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			job.TenantID = oid
		}
	}
	_, err := r.Collection.InsertOne(ctx, job)
	return err
}

func (r *ExportRepositoryImpl) List(ctx context.Context, limit int64) ([]ExportJob, error) {
	query := bson.M{}
	if tenantID, ok := ctx.Value(common_models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			query["tenant_id"] = oid
		}
	}

	opts := options.Find().SetLimit(limit).SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var jobs []ExportJob
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *ExportRepositoryImpl) FindByToken(ctx context.Context, token string) (*ExportJob, error) {
	var job ExportJob
	if err := r.Collection.FindOne(ctx, bson.M{"token": token}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteOlderThan removes stale history entries and returns them so the
// caller can unlink the files.
func (r *ExportRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]ExportJob, error) {
	query := bson.M{"created_at": bson.M{"$lt": cutoff}}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	var stale []ExportJob
	if err := cursor.All(ctx, &stale); err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return nil, nil
	}

	if _, err := r.Collection.DeleteMany(ctx, query); err != nil {
		return nil, err
	}
	return stale, nil
}
