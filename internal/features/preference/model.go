package preference

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preference is one durable per-user setting, such as the card grid density
// or the UI theme.
type Preference struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TenantID  primitive.ObjectID `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Key       string             `json:"key" bson:"key"`
	Value     string             `json:"value" bson:"value"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
