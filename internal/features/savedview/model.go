package savedview

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedView is a named filter configuration a user can re-apply later.
type SavedView struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Type        string             `json:"type" bson:"type"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	TenantID    primitive.ObjectID `json:"tenant_id" bson:"tenant_id"`
	IsPublic    bool               `json:"is_public" bson:"is_public"`
	Filters     map[string]string  `json:"filters" bson:"filters"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
