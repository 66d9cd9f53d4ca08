package auth

import (
	"context"

	"go-pm/internal/common/models"
	"go-pm/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// TenantRepository persists tenants. Only registration writes here; reads go
// through the generic data view.
type TenantRepository struct {
	Collection *mongo.Collection
}

func NewTenantRepository(mongodb *database.MongodbDB) TenantCreator {
	return &TenantRepository{
		Collection: mongodb.DB.Collection("tenants"),
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	_, err := r.Collection.InsertOne(ctx, tenant)
	return err
}
