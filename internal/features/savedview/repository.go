package savedview

import (
	"context"
	"fmt"
	"time"

	"go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedViewRepository interface {
	Create(ctx context.Context, view *SavedView) error
	Get(ctx context.Context, id string) (*SavedView, error)
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, kind string) ([]SavedView, error)
	FindPublic(ctx context.Context, kind string) ([]SavedView, error)
}

type SavedViewRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSavedViewRepository(db *database.MongodbDB) SavedViewRepository {
	return &SavedViewRepositoryImpl{
		collection: db.DB.Collection("saved_views"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantIDStr, ok := ctx.Value(models.TenantIDKey).(string)
	if !ok || tenantIDStr == "" {
		return primitive.NilObjectID, fmt.Errorf("tenant ID not found in context")
	}
	return primitive.ObjectIDFromHex(tenantIDStr)
}

func (r *SavedViewRepositoryImpl) Create(ctx context.Context, view *SavedView) error {
	if view.ID.IsZero() {
		view.ID = primitive.NewObjectID()
	}
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	view.TenantID = tenantID
	view.CreatedAt = time.Now()
	view.UpdatedAt = time.Now()

	_, err = r.collection.InsertOne(ctx, view)
	return err
}

func (r *SavedViewRepositoryImpl) Get(ctx context.Context, id string) (*SavedView, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var view SavedView
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Delete removes a view its owner created. Public views of other users stay.
func (r *SavedViewRepositoryImpl) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("view not found or not owned by user")
	}
	return nil
}

func (r *SavedViewRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID, kind string) ([]SavedView, error) {
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{
		"tenant_id": tenantID,
		"user_id":   userID,
	}
	if kind != "" {
		query["type"] = kind
	}
	return r.find(ctx, query)
}

func (r *SavedViewRepositoryImpl) FindPublic(ctx context.Context, kind string) ([]SavedView, error) {
	tenantID, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{
		"tenant_id": tenantID,
		"is_public": true,
	}
	if kind != "" {
		query["type"] = kind
	}
	return r.find(ctx, query)
}

func (r *SavedViewRepositoryImpl) find(ctx context.Context, query bson.M) ([]SavedView, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var views []SavedView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}
