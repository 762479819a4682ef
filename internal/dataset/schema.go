package dataset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema of the dataset document, inferred from Document.
func Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Document](nil)
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	schema, err := Schema()
	if err != nil {
		return nil, fmt.Errorf("infer dataset schema: %w", err)
	}
	return schema.Resolve(nil)
})

// Validate checks a raw document against the schema. Strict loads use it to reject documents
// with missing columns instead of degrading them.
func Validate(data []byte) error {
	resolved, err := resolvedSchema()
	if err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("dataset does not match schema: %w", err)
	}
	return nil
}
