package domain

import (
	"github.com/goforum-dev/goforum/internal/errors"
)

// Payload is a decoded JSON request body. Entity constructors are the
// single validation gate for data arriving through it: completeness is
// checked for every field before any type check, and types must match
// exactly (no coercion). A nil payload counts as incomplete, a field
// set to JSON null counts as present with the wrong type.
type Payload = map[string]any

func requireAll(entity string, p Payload, fields ...string) error {
	if p == nil {
		return &errors.IncompletePayload{Entity: entity}
	}
	for _, f := range fields {
		if _, ok := p[f]; !ok {
			return &errors.IncompletePayload{Entity: entity, Field: f}
		}
	}
	return nil
}

func stringField(entity string, p Payload, field string) (string, error) {
	v, ok := p[field].(string)
	if !ok {
		return "", &errors.InvalidType{Entity: entity, Field: field, Want: "string"}
	}
	return v, nil
}
