package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaNotRegistered is returned when validating against an unknown schema
var ErrSchemaNotRegistered = errors.New("schema not registered")

// SchemaValidator validates JSON documents against named, pre-registered schemas
type SchemaValidator interface {
	RegisterSchema(name string, schema []byte) error
	ValidateBytes(data []byte, name string) error
	ValidateFile(dataPath, name string) error
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// RegisterSchema compiles schema and stores it under name. Registering the
// same name twice is a no-op.
func (v *validator) RegisterSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schema, &schemaJSON); err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateFile validates a JSON file against a registered schema
func (v *validator) ValidateFile(dataPath, name string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, name)
}

// ValidateBytes validates JSON data bytes against a registered schema
func (v *validator) ValidateBytes(data []byte, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSchemaNotRegistered, name)
	}

	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(msgs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if msg := formatError(err); msg != "" {
		*msgs = append(*msgs, msg)
	}

	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
