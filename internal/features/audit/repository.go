package audit

import (
	"context"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogQuery narrows a log listing. Zero-value fields do not constrain.
type LogQuery struct {
	Entity   string
	RecordID string
	Action   common_models.AuditAction
}

type AuditRepository interface {
	Create(ctx context.Context, log common_models.AuditLog) error
	List(ctx context.Context, q LogQuery, limit, offset int64) ([]common_models.AuditLog, error)
}

type AuditRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	return &AuditRepositoryImpl{
		Collection: mongodb.DB.Collection("audit_logs"),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, log common_models.AuditLog) error {
	// System events (retention sweeps, warehouse sync) may log without a tenant.
	if oid, ok := tenantFromContext(ctx); ok {
		log.TenantID = oid
	}

	_, err := r.Collection.InsertOne(ctx, log)
	return err
}

func (r *AuditRepositoryImpl) List(ctx context.Context, q LogQuery, limit, offset int64) ([]common_models.AuditLog, error) {
	query := bson.M{}
	if oid, ok := tenantFromContext(ctx); ok {
		query["tenant_id"] = oid
	}
	if q.Entity != "" {
		query["entity"] = q.Entity
	}
	if q.RecordID != "" {
		query["record_id"] = q.RecordID
	}
	if q.Action != "" {
		query["action"] = q.Action
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.M{"timestamp": -1})

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []common_models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
