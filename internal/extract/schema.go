package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// serialized Fields value, as a generic map. Used as a sanity guard
// before extracted data is applied to product rows.
func FieldsJSONSchema() map[string]any {
	variant := map[string]any{
		"code":       map[string]any{"type": "string", "minLength": 4, "pattern": `^[A-Z0-9-]+$`},
		"color":      map[string]any{"type": "string", "minLength": 2},
		"size_range": map[string]any{"type": "string"},
	}
	props := map[string]any{
		"code":         variant["code"],
		"color":        variant["color"],
		"brand_name":   map[string]any{"type": "string"},
		"product_type": map[string]any{"type": "string"},
		"size_range":   map[string]any{"type": "string"},
		"price":        map[string]any{"type": "number", "minimum": 0},
		"material":     map[string]any{"type": "string"},
		"barcode":      map[string]any{"type": "string", "pattern": `^\d{12,13}$`},
		"secondary": map[string]any{
			"type":       "object",
			"properties": variant,
		},
		"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"source_text": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

// ValidateFields checks a merged extraction against the schema.
func ValidateFields(f Fields) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	return validateJSONAgainstSchema(FieldsJSONSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
