package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/form_data.schema.json
var formDataSchemaJSON []byte

var (
	formDataSchemaOnce sync.Once
	formDataSchema     *gojsonschema.Schema
	formDataSchemaErr  error
)

func loadFormDataSchema() (*gojsonschema.Schema, error) {
	formDataSchemaOnce.Do(func() {
		formDataSchema, formDataSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(formDataSchemaJSON))
	})
	return formDataSchema, formDataSchemaErr
}

// ValidateFormData checks the known form keys by type. Unknown keys pass through.
func ValidateFormData(m map[string]any) error {
	if len(m) == 0 {
		return nil
	}
	schema, err := loadFormDataSchema()
	if err != nil {
		return fmt.Errorf("load form data schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("invalid form data: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return fmt.Errorf("invalid form data: %s", strings.Join(msgs, "; "))
}
