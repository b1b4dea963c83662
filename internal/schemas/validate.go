// Package schemas provides JSON Schema validation for documents returned by
// the narrative collaborator. Schemas are embedded at compile time so
// validation never depends on the working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed breed_matches.schema.json
var breedMatchesSchema string

//go:embed pros_cons.schema.json
var prosConsSchema string

// ValidationError carries the per-field failures from a schema validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateBreedMatches checks a collaborator recommendation payload against
// the breed-matches schema: exactly five entries, bounded percentages,
// non-empty names, pros, and cons.
func ValidateBreedMatches(document []byte) error {
	return validate(breedMatchesSchema, document)
}

// ValidateProsCons checks an enrichment pros/cons payload.
func ValidateProsCons(document []byte) error {
	return validate(prosConsSchema, document)
}

func validate(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		// The document was not parseable JSON at all.
		return &ValidationError{Errors: []FieldError{{Field: "(document)", Message: err.Error()}}}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
