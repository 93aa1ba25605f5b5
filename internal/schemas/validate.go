// Package schemas provides JSON Schema validation for catalog, response and match documents.
package schemas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/career-explorer/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation against %s failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	compiled     map[string]*gojsonschema.Schema
	compileErr   error
	compileOnce  sync.Once
	errNotLoaded = errors.New("schema not found")
)

// compileAll registers the shared definitions and compiles every embedded
// schema once
func compileAll() {
	compileOnce.Do(func() {
		compiled = make(map[string]*gojsonschema.Schema, len(schemafiles.All))
		for _, name := range schemafiles.All {
			loader := gojsonschema.NewSchemaLoader()
			if name != schemafiles.Common {
				common, err := fs.ReadFile(schemafiles.FS, schemafiles.Common)
				if err != nil {
					compileErr = &SchemaLoadError{Path: schemafiles.Common, Message: "failed to read embedded schema", Cause: err}
					return
				}
				if err := loader.AddSchemas(gojsonschema.NewBytesLoader(common)); err != nil {
					compileErr = &SchemaLoadError{Path: schemafiles.Common, Message: "failed to register shared definitions", Cause: err}
					return
				}
			}

			data, err := fs.ReadFile(schemafiles.FS, name)
			if err != nil {
				compileErr = &SchemaLoadError{Path: name, Message: "failed to read embedded schema", Cause: err}
				return
			}
			schema, err := loader.Compile(gojsonschema.NewBytesLoader(data))
			if err != nil {
				compileErr = &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
				return
			}
			compiled[name] = schema
		}
	})
}

// Schema returns the compiled embedded schema with the given file name
func Schema(name string) (*gojsonschema.Schema, error) {
	compileAll()
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiled[name]
	if !ok {
		return nil, &SchemaLoadError{Path: name, Message: "unknown schema", Cause: errNotLoaded}
	}
	return s, nil
}

// ValidateBytes validates a JSON document against an embedded schema
func ValidateBytes(name string, data []byte) error {
	schema, err := Schema(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	return toValidationError(name, result)
}

// ValidateFile validates a JSON file against an embedded schema
func ValidateFile(name, jsonPath string) error {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("JSON file not found: %s", jsonPath)
		}
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	return ValidateBytes(name, data)
}

// ValidateCatalog validates a career catalog document
func ValidateCatalog(data []byte) error {
	return ValidateBytes(schemafiles.CareerCatalog, data)
}

// ValidateCareer validates a single career entry
func ValidateCareer(data []byte) error {
	return ValidateBytes(schemafiles.Career, data)
}

// ValidateResponses validates a questionnaire responses document
func ValidateResponses(data []byte) error {
	return ValidateBytes(schemafiles.Responses, data)
}

// ValidateMatches validates a ranked match list document
func ValidateMatches(data []byte) error {
	return ValidateBytes(schemafiles.CareerMatches, data)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}
	return toValidationError("", result)
}

func toValidationError(name string, result *gojsonschema.Result) *ValidationError {
	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
