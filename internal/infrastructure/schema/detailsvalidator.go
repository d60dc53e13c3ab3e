// Package schema validates the kind-specific details document of tickets.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// DetailsValidator implements ticket.DetailsValidator with one compiled
// JSON Schema per kind.
type DetailsValidator struct {
	schemas map[vo.Kind]*gojsonschema.Schema
}

// NewDetailsValidator compiles the embedded schemas. A kind without a schema
// file is an error, so a new kind cannot ship unvalidated.
func NewDetailsValidator() (*DetailsValidator, error) {
	schemas := make(map[vo.Kind]*gojsonschema.Schema, len(vo.AllKinds()))
	for _, kind := range vo.AllKinds() {
		raw, err := schemaFiles.ReadFile("schemas/" + kind.String() + ".json")
		if err != nil {
			return nil, fmt.Errorf("missing details schema for %s: %w", kind, err)
		}
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid details schema for %s: %w", kind, err)
		}
		schemas[kind] = compiled
	}
	return &DetailsValidator{schemas: schemas}, nil
}

// Validate treats nil details as an empty object.
func (v *DetailsValidator) Validate(kind vo.Kind, details map[string]any) error {
	compiled, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("no details schema for kind %q", kind)
	}
	if details == nil {
		details = map[string]any{}
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(details))
	if err != nil {
		return fmt.Errorf("failed to validate details: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
