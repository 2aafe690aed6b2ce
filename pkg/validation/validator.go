// Package validation checks resource payloads against JSON Schemas before
// they are sent to the server, so obviously malformed records fail fast
// with field-level messages instead of a server round trip.
package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrUnknownCollection is returned when no schema exists for a collection.
var ErrUnknownCollection = errors.New("unknown collection")

// FieldError is one schema violation, located by JSON pointer path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Result holds the outcome of validating one record.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// Error renders all violations as a single message.
func (r *Result) Error() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

// Validator validates records against the embedded per-collection schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// New compiles the embedded schemas.
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema)}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		data, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}
		url := "inkops://schemas/" + entry.Name()
		if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", entry.Name(), err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", entry.Name(), err)
		}
		v.schemas[name] = schema
	}
	return v, nil
}

// Collections lists the collections a schema exists for.
func (v *Validator) Collections() []string {
	names := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks record against the schema for collection. record may be a
// struct, a map, or raw decoded JSON; it is normalized through a JSON round
// trip before validation.
func (v *Validator) Validate(collection string, record any) (*Result, error) {
	schema, ok := v.schemas[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	normalized, err := normalize(record)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(normalized); err != nil {
		result := &Result{Valid: false}
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			collectCauses(validationErr, result)
		} else {
			result.Errors = append(result.Errors, FieldError{Message: err.Error()})
		}
		return result, nil
	}
	return &Result{Valid: true}, nil
}

// normalize round-trips record through JSON so struct payloads validate
// the same way their wire form would.
func normalize(record any) (any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize record: %w", err)
	}
	return out, nil
}

// collectCauses flattens the validation error tree into field errors,
// keeping only leaves so messages stay specific.
func collectCauses(err *jsonschema.ValidationError, result *Result) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Path:    err.InstanceLocation,
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, result)
	}
}
