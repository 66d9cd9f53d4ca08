package export

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportRequest is the body of POST /api/exports.
type ExportRequest struct {
	Type           string            `json:"type"`
	Format         string            `json:"format"`
	IncludeFilters bool              `json:"includeFilters"`
	Columns        []string          `json:"columns"`
	Filters        map[string]string `json:"filters"`
}

// ExportJob is one completed export, kept for the history panel and for
// download until the retention sweep removes it.
type ExportJob struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TenantID       primitive.ObjectID `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
	Type           string             `json:"type" bson:"type"`
	Format         string             `json:"format" bson:"format"`
	Columns        []string           `json:"columns" bson:"columns"`
	IncludeFilters bool               `json:"include_filters" bson:"include_filters"`
	Filters        map[string]string  `json:"filters,omitempty" bson:"filters,omitempty"`
	Filename       string             `json:"filename" bson:"filename"`
	Token          string             `json:"-" bson:"token"`
	FilePath       string             `json:"-" bson:"file_path"`
	DownloadURL    string             `json:"download_url" bson:"-"`
	RowCount       int                `json:"row_count" bson:"row_count"`
	RequestedBy    string             `json:"requested_by" bson:"requested_by"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
