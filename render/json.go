package render

import (
	json "github.com/json-iterator/go"
)

// JSONPlugin serves the OpenAPI document as indented JSON.
type JSONPlugin struct {
	base
}

// NewJSONPlugin creates a JSON plugin, served at /openapi.json by default.
func NewJSONPlugin(opts ...Option) *JSONPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/openapi.json"},
		MediaType: "application/json",
	}, opts)

	return &JSONPlugin{base: newBase(o)}
}

// Render marshals the document.
func (p *JSONPlugin) Render() ([]byte, error) {
	if p.doc == nil {
		return nil, ErrNoDocument
	}
	return json.MarshalIndent(p.doc, "", "  ")
}
