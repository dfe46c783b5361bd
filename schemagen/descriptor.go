package schemagen

import (
	"github.com/xraph/apispec/annotation"
	"github.com/xraph/apispec/spec"
)

// SchemaForDescriptor generates a schema from an annotation descriptor.
// Wrapper layers peel off first: ReadOnly marks the schema read-only and
// Annotated metadata folds into it. Container descriptors render as arrays
// or objects according to their resolved kind; set-like containers
// additionally constrain items to be unique.
//
// Metadata schema fragments overlay only their set fields; a fragment field
// at its zero value reads as unset and does not merge, so zero-valued
// bounds are not representable.
func (g *Generator) SchemaForDescriptor(t annotation.Type) (*spec.Schema, error) {
	n := annotation.Unwrap(t)

	schema, err := g.schemaForBase(n.Base)
	if err != nil {
		return nil, err
	}

	if n.Wrappers.Has(annotation.WrapperReadOnly) {
		schema.ReadOnly = true
	}
	applyMetadata(schema, n.Metadata)

	return schema, nil
}

func (g *Generator) schemaForBase(base annotation.Type) (*spec.Schema, error) {
	if kind, ok := annotation.EffectiveOrigin(base); ok {
		switch kind {
		case annotation.ContainerMapping, annotation.ContainerDefaultMapping:
			schema := &spec.Schema{Type: spec.TypeObject}
			if value, ok := base.Elem(); ok {
				valueSchema, err := g.SchemaForDescriptor(value)
				if err != nil {
					return nil, err
				}
				schema.AdditionalProperties = valueSchema
			} else {
				schema.AdditionalProperties = true
			}
			return schema, nil

		default:
			schema := &spec.Schema{Type: spec.TypeArray, Items: &spec.Schema{}}
			if elem, ok := base.Elem(); ok {
				items, err := g.SchemaForDescriptor(elem)
				if err != nil {
					return nil, err
				}
				schema.Items = items
			}
			if kind == annotation.ContainerSet || kind == annotation.ContainerFrozenSet {
				schema.UniqueItems = true
			}
			return schema, nil
		}
	}

	if rt := base.GoType(); rt != nil {
		return g.schemaFromType(rt)
	}

	// Nothing known about the type; admit any value.
	return &spec.Schema{}, nil
}

// Property pairs a property name with its declared type descriptor.
type Property struct {
	Name string
	Type annotation.Type
}

// ObjectSchema builds an object schema from named property descriptors.
// Properties are required unless wrapped NotRequired; a Required wrapper
// forces membership regardless of other markers.
func (g *Generator) ObjectSchema(props []Property) (*spec.Schema, error) {
	schema := &spec.Schema{
		Type:       spec.TypeObject,
		Properties: make(map[string]*spec.Schema, len(props)),
	}

	var required []string

	for _, prop := range props {
		propSchema, err := g.SchemaForDescriptor(prop.Type)
		if err != nil {
			return nil, err
		}
		schema.Properties[prop.Name] = propSchema

		wrappers := annotation.Unwrap(prop.Type).Wrappers
		switch {
		case wrappers.Has(annotation.WrapperRequired):
			required = append(required, prop.Name)
		case wrappers.Has(annotation.WrapperNotRequired):
			// Explicitly optional.
		default:
			required = append(required, prop.Name)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}

	return schema, nil
}

// applyMetadata folds recognized metadata entries into the schema. Strings
// document the field, with the outermost layer winning. Schema fragments
// and constraint maps overlay their set fields. Unrecognized entries are
// ignored.
func applyMetadata(schema *spec.Schema, metadata []any) {
	for _, entry := range metadata {
		switch m := entry.(type) {
		case string:
			if schema.Description == "" {
				schema.Description = m
			}
		case spec.OpenAPIFormat:
			schema.Format = m
		case *spec.Schema:
			mergeSchema(schema, m)
		case spec.Schema:
			mergeSchema(schema, &m)
		case map[string]any:
			applyConstraintMap(schema, m)
		}
	}
}

// mergeSchema copies the set fields of fragment onto schema. Zero values
// count as unset.
func mergeSchema(schema, fragment *spec.Schema) {
	if fragment.Type != "" {
		schema.Type = fragment.Type
	}
	if fragment.Format != "" {
		schema.Format = fragment.Format
	}
	if fragment.Title != "" {
		schema.Title = fragment.Title
	}
	if fragment.Description != "" && schema.Description == "" {
		schema.Description = fragment.Description
	}
	if fragment.Default != nil {
		schema.Default = fragment.Default
	}
	if fragment.Example != nil {
		schema.Example = fragment.Example
	}
	if fragment.Pattern != "" {
		schema.Pattern = fragment.Pattern
	}
	if len(fragment.Enum) > 0 {
		schema.Enum = fragment.Enum
	}
	if fragment.Minimum != 0 {
		schema.Minimum = fragment.Minimum
	}
	if fragment.Maximum != 0 {
		schema.Maximum = fragment.Maximum
	}
	if fragment.ExclusiveMinimum {
		schema.ExclusiveMinimum = true
	}
	if fragment.ExclusiveMaximum {
		schema.ExclusiveMaximum = true
	}
	if fragment.MultipleOf != 0 {
		schema.MultipleOf = fragment.MultipleOf
	}
	if fragment.MinLength != 0 {
		schema.MinLength = fragment.MinLength
	}
	if fragment.MaxLength != 0 {
		schema.MaxLength = fragment.MaxLength
	}
	if fragment.MinItems != 0 {
		schema.MinItems = fragment.MinItems
	}
	if fragment.MaxItems != 0 {
		schema.MaxItems = fragment.MaxItems
	}
	if fragment.UniqueItems {
		schema.UniqueItems = true
	}
	if fragment.Nullable {
		schema.Nullable = true
	}
	if fragment.Deprecated {
		schema.Deprecated = true
	}
}

// applyConstraintMap overlays recognized constraint keys from a plain map.
func applyConstraintMap(schema *spec.Schema, m map[string]any) {
	for key, value := range m {
		switch key {
		case "description":
			if s, ok := value.(string); ok && schema.Description == "" {
				schema.Description = s
			}
		case "title":
			if s, ok := value.(string); ok {
				schema.Title = s
			}
		case "format":
			if s, ok := value.(string); ok {
				schema.Format = spec.OpenAPIFormat(s)
			}
		case "pattern":
			if s, ok := value.(string); ok {
				schema.Pattern = s
			}
		case "example":
			schema.Example = value
		case "default":
			schema.Default = value
		case "enum":
			if vs, ok := value.([]any); ok {
				schema.Enum = vs
			}
		case "minimum":
			if f, ok := toFloat(value); ok {
				schema.Minimum = f
			}
		case "maximum":
			if f, ok := toFloat(value); ok {
				schema.Maximum = f
			}
		case "multipleOf":
			if f, ok := toFloat(value); ok {
				schema.MultipleOf = f
			}
		case "minLength":
			if n, ok := toInt(value); ok {
				schema.MinLength = n
			}
		case "maxLength":
			if n, ok := toInt(value); ok {
				schema.MaxLength = n
			}
		case "minItems":
			if n, ok := toInt(value); ok {
				schema.MinItems = n
			}
		case "maxItems":
			if n, ok := toInt(value); ok {
				schema.MaxItems = n
			}
		case "uniqueItems":
			if b, ok := value.(bool); ok && b {
				schema.UniqueItems = true
			}
		case "nullable":
			if b, ok := value.(bool); ok && b {
				schema.Nullable = true
			}
		case "deprecated":
			if b, ok := value.(bool); ok && b {
				schema.Deprecated = true
			}
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
