package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request payload schemas. Declarative data consumed by a generic validator;
// handlers reject invalid bodies before any service call.
var (
	exportRequestSchema = map[string]interface{}{
		"type":                 "object",
		"required":             []interface{}{"type", "format"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"type":           map[string]interface{}{"type": "string"},
			"format":         map[string]interface{}{"type": "string", "enum": []interface{}{"csv", "excel", "pdf"}},
			"includeFilters": map[string]interface{}{"type": "boolean"},
			"columns": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"filters": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": map[string]interface{}{"type": "string"},
			},
		},
	}

	saveViewSchema = map[string]interface{}{
		"type":                 "object",
		"required":             []interface{}{"name", "type"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"name":        map[string]interface{}{"type": "string", "minLength": 1},
			"description": map[string]interface{}{"type": "string"},
			"type":        map[string]interface{}{"type": "string"},
			"filters": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": map[string]interface{}{"type": "string"},
			},
			"is_public": map[string]interface{}{"type": "boolean"},
		},
	}

	bulkDeleteSchema = map[string]interface{}{
		"type":                 "object",
		"required":             []interface{}{"ids", "type"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"ids": map[string]interface{}{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]interface{}{"type": "string"},
			},
			"type": map[string]interface{}{"type": "string"},
		},
	}
)

// Validator checks request payloads against the schemas above.
type Validator struct{}

func NewValidator() *Validator { return &Validator{} }

func (v *Validator) ValidateExportRequest(body []byte) error {
	return v.validate(body, exportRequestSchema)
}

func (v *Validator) ValidateSaveView(body []byte) error {
	return v.validate(body, saveViewSchema)
}

func (v *Validator) ValidateBulkDelete(body []byte) error {
	return v.validate(body, bulkDeleteSchema)
}

func (v *Validator) validate(body []byte, schema map[string]interface{}) error {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}
