package spec

import (
	"fmt"

	json "github.com/json-iterator/go"
)

// DefaultVersion is the OpenAPI version header written by New.
const DefaultVersion = "3.0.3"

// OpenAPI is the root object of an OpenAPI document.
type OpenAPI struct {
	OpenAPI           string                 `json:"openapi" yaml:"openapi"`
	Info              Info                   `json:"info" yaml:"info"`
	JSONSchemaDialect string                 `json:"jsonSchemaDialect,omitempty" yaml:"jsonSchemaDialect,omitempty"`
	Servers           []Server               `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths             Paths                  `json:"paths" yaml:"paths"`
	Webhooks          map[string]*PathItem   `json:"webhooks,omitempty" yaml:"webhooks,omitempty"`
	Components        *Components            `json:"components,omitempty" yaml:"components,omitempty"`
	Security          []SecurityRequirement  `json:"security,omitempty" yaml:"security,omitempty"`
	Tags              []Tag                  `json:"tags,omitempty" yaml:"tags,omitempty"`
	ExternalDocs      *ExternalDocumentation `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// New returns a document with the version header set and empty paths.
func New(title, version string) *OpenAPI {
	return &OpenAPI{
		OpenAPI: DefaultVersion,
		Info:    Info{Title: title, Version: version},
		Paths:   Paths{},
	}
}

// ToSchema renders the document as a nested plain map, dropping every unset
// field along the way.
func (o *OpenAPI) ToSchema() (map[string]any, error) {
	return toMap(o)
}

// Components holds reusable objects for the document. Objects registered
// here are addressed with "#/components/<kind>/<name>" references.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Responses       map[string]*Response       `json:"responses,omitempty" yaml:"responses,omitempty"`
	Parameters      map[string]*Parameter      `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Examples        map[string]*Example        `json:"examples,omitempty" yaml:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `json:"requestBodies,omitempty" yaml:"requestBodies,omitempty"`
	Headers         map[string]*Header         `json:"headers,omitempty" yaml:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
	Links           map[string]*Link           `json:"links,omitempty" yaml:"links,omitempty"`
	Callbacks       map[string]Callback        `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`
	PathItems       map[string]*PathItem       `json:"pathItems,omitempty" yaml:"pathItems,omitempty"`
}

// Reference points at a reusable object elsewhere in the document.
type Reference struct {
	Ref         string `json:"$ref" yaml:"$ref"`
	Summary     string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SchemaRef returns a schema that only references a named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: fmt.Sprintf("#/components/schemas/%s", name)}
}

// toMap round-trips v through JSON so omitted fields disappear and nested
// structures become plain maps.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}
