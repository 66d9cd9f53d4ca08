package preference

import (
	"context"
	"time"

	"go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PreferenceRepository interface {
	Get(ctx context.Context, userID primitive.ObjectID, key string) (string, error)
	Set(ctx context.Context, userID primitive.ObjectID, key, value string) error
	List(ctx context.Context, userID primitive.ObjectID) ([]Preference, error)
}

type PreferenceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPreferenceRepository(mongodb *database.MongodbDB) PreferenceRepository {
	return &PreferenceRepositoryImpl{
		Collection: mongodb.DB.Collection("user_preferences"),
	}
}

// Get returns the stored value, or empty with no error when the key was never
// set.
func (r *PreferenceRepositoryImpl) Get(ctx context.Context, userID primitive.ObjectID, key string) (string, error) {
	var pref Preference
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID, "key": key}).Decode(&pref)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

func (r *PreferenceRepositoryImpl) Set(ctx context.Context, userID primitive.ObjectID, key, value string) error {
	update := bson.M{"$set": bson.M{
		"value":      value,
		"updated_at": time.Now(),
	}}
	if tenantID, ok := ctx.Value(models.TenantIDKey).(string); ok && tenantID != "" {
		if oid, err := primitive.ObjectIDFromHex(tenantID); err == nil {
			update["$set"].(bson.M)["tenant_id"] = oid
		}
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, bson.M{"user_id": userID, "key": key}, update, opts)
	return err
}

func (r *PreferenceRepositoryImpl) List(ctx context.Context, userID primitive.ObjectID) ([]Preference, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var prefs []Preference
	if err := cursor.All(ctx, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
