package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshaling to json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshaling to yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
