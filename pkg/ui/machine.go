package ui

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// jsonRenderer provides machine-readable JSON output.
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

// yamlRenderer provides machine-readable YAML output.
type yamlRenderer struct {
	output io.Writer
}

func newYAMLRenderer(output io.Writer) *yamlRenderer {
	return &yamlRenderer{output: output}
}

func (r *yamlRenderer) encode(value interface{}) error {
	encoder := yaml.NewEncoder(r.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}

func (r *yamlRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *yamlRenderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

func (r *yamlRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
