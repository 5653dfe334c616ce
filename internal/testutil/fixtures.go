// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MinimalOAS3YAML is the smallest document with every required top-level field.
const MinimalOAS3YAML = `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`

// NewMinimalOAS3Document returns MinimalOAS3YAML as a generic value that
// tests can extend before writing it with WriteTempYAML or WriteTempJSON.
func NewMinimalOAS3Document() map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":   "Test",
			"version": "1.0",
		},
		"paths": map[string]any{},
	}
}

// NewPetstoreDocument returns a document with one operation referencing a
// Pet schema and an extra schema, Dog, that nothing references.
func NewPetstoreDocument() map[string]any {
	doc := NewMinimalOAS3Document()
	doc["paths"] = map[string]any{
		"/pets": map[string]any{
			"get": map[string]any{
				"responses": map[string]any{
					"200": map[string]any{
						"description": "ok",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/Pet"},
							},
						},
					},
				},
			},
		},
	}
	doc["components"] = map[string]any{
		"schemas": map[string]any{
			"Pet": map[string]any{
				"type":     "object",
				"required": []any{"id"},
				"properties": map[string]any{
					"id": map[string]any{"type": "integer"},
				},
			},
			"Dog": map[string]any{"type": "object"},
		},
	}
	return doc
}

// WriteTempFile writes content to name inside a fresh temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}
