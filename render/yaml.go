package render

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPlugin serves the OpenAPI document as YAML.
type YAMLPlugin struct {
	base
}

// NewYAMLPlugin creates a YAML plugin, served at /openapi.yaml and
// /openapi.yml by default.
func NewYAMLPlugin(opts ...Option) *YAMLPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/openapi.yaml", "/openapi.yml"},
		MediaType: "application/x-yaml",
	}, opts)

	return &YAMLPlugin{base: newBase(o)}
}

// Render marshals the document. The document goes through its plain-map
// form first so unset fields disappear from the output.
func (p *YAMLPlugin) Render() ([]byte, error) {
	if p.doc == nil {
		return nil, ErrNoDocument
	}

	m, err := p.doc.ToSchema()
	if err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}

	return yaml.Marshal(m)
}
