package spec

// Schema represents an OpenAPI schema object.
type Schema struct {
	Type        OpenAPIType   `json:"type,omitempty" yaml:"type,omitempty"`
	Format      OpenAPIFormat `json:"format,omitempty" yaml:"format,omitempty"`
	Title       string        `json:"title,omitempty" yaml:"title,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any           `json:"default,omitempty" yaml:"default,omitempty"`
	Nullable    bool          `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	ReadOnly    bool          `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	WriteOnly   bool          `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`
	Example     any           `json:"example,omitempty" yaml:"example,omitempty"`
	Examples    []any         `json:"examples,omitempty" yaml:"examples,omitempty"`
	Deprecated  bool          `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// Validation
	MultipleOf       float64  `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Maximum          float64  `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	Minimum          float64  `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	MaxLength        int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength        int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxItems         int      `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinItems         int      `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	MaxProperties    int      `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`
	MinProperties    int      `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	Required         []string `json:"required,omitempty" yaml:"required,omitempty"`
	Enum             []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const            any      `json:"const,omitempty" yaml:"const,omitempty"`

	// Object/Array properties
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Items                *Schema            `json:"items,omitempty" yaml:"items,omitempty"`

	// Composition
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty" yaml:"not,omitempty"`

	// Polymorphism and serialization hints
	Discriminator *Discriminator         `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	XML           *XML                   `json:"xml,omitempty" yaml:"xml,omitempty"`
	ExternalDocs  *ExternalDocumentation `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`

	// Reference
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
}

// ToSchema renders the schema as a nested plain map with unset fields
// dropped.
func (s *Schema) ToSchema() (map[string]any, error) {
	return toMap(s)
}

// Discriminator supports polymorphic schema selection.
type Discriminator struct {
	PropertyName string            `json:"propertyName" yaml:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// XML adds metadata for XML model representations.
type XML struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`
}

// Example provides an example value for a schema, parameter or media type.
type Example struct {
	Summary       string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Value         any    `json:"value,omitempty" yaml:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty" yaml:"externalValue,omitempty"`
}
