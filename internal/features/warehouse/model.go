package warehouse

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncLog records one warehouse mirror run.
type SyncLog struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TenantID       primitive.ObjectID `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
	Kind           string             `json:"kind" bson:"kind"`
	StartTime      time.Time          `json:"start_time" bson:"start_time"`
	EndTime        time.Time          `json:"end_time" bson:"end_time"`
	Status         string             `json:"status" bson:"status"` // in_progress, success, failed
	ProcessedCount int                `json:"processed_count" bson:"processed_count"`
	Error          string             `json:"error,omitempty" bson:"error,omitempty"`
}
