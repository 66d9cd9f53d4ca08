package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntityRecord is the stored shape of one domain record. Field values live in
// the open Data map; only bookkeeping fields are typed.
type EntityRecord struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	TenantID  primitive.ObjectID     `json:"tenant_id" bson:"tenant_id"`
	Kind      string                 `json:"kind" bson:"kind"`
	Data      map[string]interface{} `json:"data" bson:"data"`
	CreatedBy string                 `json:"created_by" bson:"created_by"`
	UpdatedBy string                 `json:"updated_by" bson:"updated_by"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
	Deleted   bool                   `json:"-" bson:"deleted"`
	DeletedAt *time.Time             `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
	DeletedBy string                 `json:"deleted_by,omitempty" bson:"deleted_by,omitempty"`
}
