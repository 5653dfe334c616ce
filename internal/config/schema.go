package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v4"
)

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return compiler.Compile("schema.json")
})

// validateAgainstSchema checks YAML config text against the embedded schema.
// The YAML is converted to JSON first so the validator sees plain JSON
// values (objects, arrays, float64 numbers).
func validateAgainstSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var inst any
	if err := json.Unmarshal(asJSON, &inst); err != nil {
		return err
	}
	return schema.Validate(inst)
}
