package record

import (
	"context"
	"fmt"
	"time"

	common_models "go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecordRepository interface {
	Create(ctx context.Context, kind string, data map[string]any) (primitive.ObjectID, error)
	Get(ctx context.Context, kind, id string) (map[string]any, error)
	List(ctx context.Context, kind string, filter bson.M, limit, offset int64, sortBy string, sortOrder int) ([]map[string]any, error)
	Count(ctx context.Context, kind string, filter bson.M) (int64, error)
	Update(ctx context.Context, kind, id string, data map[string]any) error
	Delete(ctx context.Context, kind, id string, userID string) error
	DeleteMany(ctx context.Context, kind string, ids []string, userID string) (int64, error)
}

type RecordRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewRecordRepository(mongodb *database.MongodbDB) RecordRepository {
	return &RecordRepositoryImpl{
		Collection: mongodb.DB.Collection("entity_records"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, fmt.Errorf("tenant context missing")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, kind string, data map[string]any) (primitive.ObjectID, error) {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	rec := EntityRecord{
		ID:        primitive.NewObjectID(),
		TenantID:  oid,
		Kind:      kind,
		Data:      data,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if userID, ok := ctx.Value(common_models.UserIDKey).(string); ok {
		rec.CreatedBy = userID
		rec.UpdatedBy = userID
	}

	if _, err := r.Collection.InsertOne(ctx, rec); err != nil {
		return primitive.NilObjectID, err
	}
	return rec.ID, nil
}

func (r *RecordRepositoryImpl) Get(ctx context.Context, kind, id string) (map[string]any, error) {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}
	recordID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var rec EntityRecord
	err = r.Collection.FindOne(ctx, bson.M{
		"_id":       recordID,
		"tenant_id": oid,
		"kind":      kind,
		"deleted":   bson.M{"$ne": true},
	}).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return r.flattenRecord(&rec), nil
}

func (r *RecordRepositoryImpl) List(ctx context.Context, kind string, filter bson.M, limit, offset int64, sortBy string, sortOrder int) ([]map[string]any, error) {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := r.buildQuery(oid, kind, filter)

	if sortBy == "" {
		sortBy = "created_at"
	}
	if sortOrder == 0 {
		sortOrder = -1
	}
	sortKey := sortBy
	if !isSystemField(sortBy) {
		sortKey = "data." + sortBy
	}

	findOptions := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: sortKey, Value: sortOrder}})

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []EntityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	results := make([]map[string]any, len(records))
	for i := range records {
		results[i] = r.flattenRecord(&records[i])
	}
	return results, nil
}

func (r *RecordRepositoryImpl) Count(ctx context.Context, kind string, filter bson.M) (int64, error) {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return r.Collection.CountDocuments(ctx, r.buildQuery(oid, kind, filter))
}

func (r *RecordRepositoryImpl) Update(ctx context.Context, kind, id string, data map[string]any) error {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	recordID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	updateSet := bson.M{"updated_at": time.Now()}
	if userID, ok := ctx.Value(common_models.UserIDKey).(string); ok {
		updateSet["updated_by"] = userID
	}
	for k, v := range data {
		updateSet["data."+k] = v
	}

	_, err = r.Collection.UpdateOne(ctx,
		bson.M{"_id": recordID, "tenant_id": oid, "kind": kind},
		bson.M{"$set": updateSet})
	return err
}

func (r *RecordRepositoryImpl) Delete(ctx context.Context, kind, id string, userID string) error {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	recordID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.Collection.UpdateOne(ctx,
		bson.M{"_id": recordID, "tenant_id": oid, "kind": kind},
		bson.M{"$set": bson.M{
			"deleted":    true,
			"deleted_at": time.Now(),
			"deleted_by": userID,
		}})
	return err
}

// DeleteMany soft-deletes the given ids in one statement and returns how many
// records were actually marked.
func (r *RecordRepositoryImpl) DeleteMany(ctx context.Context, kind string, ids []string, userID string) (int64, error) {
	oid, err := tenantFromContext(ctx)
	if err != nil {
		return 0, err
	}

	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		recordID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, fmt.Errorf("invalid record id %q", id)
		}
		objectIDs = append(objectIDs, recordID)
	}

	res, err := r.Collection.UpdateMany(ctx,
		bson.M{
			"_id":       bson.M{"$in": objectIDs},
			"tenant_id": oid,
			"kind":      kind,
			"deleted":   bson.M{"$ne": true},
		},
		bson.M{"$set": bson.M{
			"deleted":    true,
			"deleted_at": time.Now(),
			"deleted_by": userID,
		}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *RecordRepositoryImpl) buildQuery(tenantID primitive.ObjectID, kind string, filter bson.M) bson.M {
	base := bson.M{
		"tenant_id": tenantID,
		"kind":      kind,
		"deleted":   bson.M{"$ne": true},
	}
	if len(filter) == 0 {
		return base
	}

	// Field filters address the data sub-document unless they are system fields
	userQuery := bson.M{}
	for k, v := range filter {
		if isSystemField(k) {
			userQuery[k] = v
		} else {
			userQuery["data."+k] = v
		}
	}
	return bson.M{"$and": []bson.M{base, userQuery}}
}

func isSystemField(field string) bool {
	switch field {
	case "_id", "created_at", "updated_at", "created_by", "updated_by":
		return true
	}
	return false
}

func (r *RecordRepositoryImpl) flattenRecord(rec *EntityRecord) map[string]any {
	flat := make(map[string]any, len(rec.Data)+5)
	for k, v := range rec.Data {
		flat[k] = v
	}
	flat["id"] = rec.ID.Hex()
	flat["created_at"] = rec.CreatedAt
	flat["updated_at"] = rec.UpdatedAt
	flat["created_by"] = rec.CreatedBy
	flat["updated_by"] = rec.UpdatedBy
	return flat
}
