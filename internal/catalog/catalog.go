package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed questions.json
var questionsJSON []byte

//go:embed schema.json
var schemaJSON []byte

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses, validates and returns the embedded questionnaire.
// The catalog is loaded once per process and is immutable afterwards.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(questionsJSON)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat a broken embedded catalog as
// a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// parse decodes raw catalog JSON, checking it against the embedded
// schema and the structural rules of Validate.
func parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var c Catalog
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// validateSchema checks the raw document against the catalog JSON Schema.
func validateSchema(raw []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://catalog.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://catalog.json")
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	if err := compiled.Validate(instance); err != nil {
		return fmt.Errorf("catalog schema validation: %w", err)
	}
	return nil
}
