package schemagen

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xraph/apispec/annotation"
	"github.com/xraph/apispec/logger"
	"github.com/xraph/apispec/spec"
)

var (
	timeType     = reflect.TypeOf((*time.Time)(nil)).Elem()
	durationType = reflect.TypeOf((*time.Duration)(nil)).Elem()
	uuidType     = reflect.TypeOf((*uuid.UUID)(nil)).Elem()
)

// Generator synthesizes OpenAPI schemas from Go types and from annotation
// descriptors. Named struct and enum types are extracted into a component
// registry and referenced from the schemas that use them.
type Generator struct {
	components   map[string]*spec.Schema
	typeRegistry map[string]string // component name -> qualified type name
	collisions   []string
	log          logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for collision warnings.
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGenerator creates an empty generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		components:   make(map[string]*spec.Schema),
		typeRegistry: make(map[string]string),
		log:          logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Components returns the component schemas registered so far, keyed by
// component name. The map is live; callers hand it to spec.Components.
func (g *Generator) Components() map[string]*spec.Schema {
	return g.components
}

// Collisions returns the component name collisions recorded so far.
func (g *Generator) Collisions() []string {
	return g.collisions
}

// Err returns a CollisionError when any component name collisions were
// recorded, nil otherwise.
func (g *Generator) Err() error {
	if len(g.collisions) == 0 {
		return nil
	}
	return &CollisionError{Collisions: append([]string(nil), g.collisions...)}
}

// CollisionError reports component name collisions found during generation.
type CollisionError struct {
	Collisions []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("schema component name collisions: %s", strings.Join(e.Collisions, "; "))
}

// SchemaFor generates a schema for the dynamic type of v.
func (g *Generator) SchemaFor(v any) (*spec.Schema, error) {
	if v == nil {
		return nil, nil
	}
	if t, ok := v.(annotation.Type); ok {
		return g.SchemaForDescriptor(t)
	}
	return g.SchemaForType(reflect.TypeOf(v))
}

// SchemaForType generates a schema for a reflected Go type.
func (g *Generator) SchemaForType(rt reflect.Type) (*spec.Schema, error) {
	if rt == nil {
		return nil, nil
	}
	return g.schemaFromType(rt)
}

func (g *Generator) schemaFromType(rt reflect.Type) (*spec.Schema, error) {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}

	// Well-known types render as formatted strings.
	switch rt {
	case timeType:
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatDateTime}, nil
	case durationType:
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatDuration}, nil
	case uuidType:
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatUUID}, nil
	}

	// Byte sequences are not arrays; they carry binary payloads.
	if isByteSequence(rt) {
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatBinary}, nil
	}

	if implementsTextMarshaler(rt) || implementsJSONMarshaler(rt) {
		return &spec.Schema{Type: spec.TypeString}, nil
	}

	desc := annotation.TypeOf(rt)

	if annotation.IsMultiValue(desc) {
		items, err := g.elementSchema(rt.Elem())
		if err != nil {
			return nil, err
		}
		return &spec.Schema{Type: spec.TypeArray, Items: items}, nil
	}

	if kind, ok := annotation.EffectiveOrigin(desc); ok {
		if kind == annotation.ContainerMapping || kind == annotation.ContainerDefaultMapping {
			value, err := g.elementSchema(rt.Elem())
			if err != nil {
				return nil, err
			}
			return &spec.Schema{Type: spec.TypeObject, AdditionalProperties: value}, nil
		}
	}

	schema := &spec.Schema{}
	switch rt.Kind() {
	case reflect.String:
		schema.Type = spec.TypeString
	case reflect.Int8, reflect.Int16, reflect.Int32:
		schema.Type = spec.TypeInteger
		schema.Format = spec.FormatInt32
	case reflect.Int, reflect.Int64:
		schema.Type = spec.TypeInteger
		schema.Format = spec.FormatInt64
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		schema.Type = spec.TypeInteger
		schema.Format = spec.FormatInt32
	case reflect.Uint, reflect.Uint64:
		schema.Type = spec.TypeInteger
		schema.Format = spec.FormatInt64
	case reflect.Float32:
		schema.Type = spec.TypeNumber
		schema.Format = spec.FormatFloat
	case reflect.Float64:
		schema.Type = spec.TypeNumber
		schema.Format = spec.FormatDouble
	case reflect.Bool:
		schema.Type = spec.TypeBoolean
	case reflect.Struct:
		return g.structSchema(rt)
	case reflect.Interface:
		// Unconstrained; any value is admitted.
		return &spec.Schema{}, nil
	default:
		schema.Type = spec.TypeObject
	}

	return schema, nil
}

// elementSchema renders a container's element or value type. Named struct
// types resolve to a component reference so recursion through container
// shapes terminates.
func (g *Generator) elementSchema(rt reflect.Type) (*spec.Schema, error) {
	elem := rt
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if g.isStructComponent(elem) {
		return g.structRef(elem)
	}
	return g.schemaFromType(rt)
}

func (g *Generator) structSchema(rt reflect.Type) (*spec.Schema, error) {
	schema := &spec.Schema{
		Type:       spec.TypeObject,
		Properties: make(map[string]*spec.Schema),
	}

	var required []string

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		// Embedded fields without an explicit JSON name flatten into the
		// parent schema.
		if field.Anonymous {
			jsonName, _ := parseJSONTag(jsonTag)
			if jsonName == "" {
				embeddedProps, embeddedRequired, err := g.flattenEmbedded(field)
				if err != nil {
					return nil, err
				}
				for name, prop := range embeddedProps {
					schema.Properties[name] = prop
				}
				required = append(required, embeddedRequired...)
				continue
			}
		}

		jsonName, omitempty := parseJSONTag(jsonTag)
		if jsonName == "" {
			jsonName = field.Name
		}

		fieldSchema, err := g.fieldSchema(field)
		if err != nil {
			return nil, err
		}
		schema.Properties[jsonName] = fieldSchema

		if isRequiredField(field, omitempty) {
			required = append(required, jsonName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}

	return schema, nil
}

// isRequiredField decides requiredness: the optional tag opts out, the
// required tag opts in, otherwise non-pointer fields without omitempty are
// required.
func isRequiredField(field reflect.StructField, omitempty bool) bool {
	if field.Tag.Get("optional") == "true" {
		return false
	}
	if field.Tag.Get("required") == "true" {
		return true
	}
	return !omitempty && field.Type.Kind() != reflect.Ptr
}

// flattenEmbedded merges an anonymous struct field's properties into the
// enclosing schema.
func (g *Generator) flattenEmbedded(field reflect.StructField) (map[string]*spec.Schema, []string, error) {
	fieldType := field.Type
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	if fieldType.Kind() != reflect.Struct {
		return nil, nil, nil
	}

	properties := make(map[string]*spec.Schema)

	var required []string

	for i := 0; i < fieldType.NumField(); i++ {
		embedded := fieldType.Field(i)

		if !embedded.IsExported() {
			continue
		}

		if embedded.Anonymous {
			nestedProps, nestedRequired, err := g.flattenEmbedded(embedded)
			if err != nil {
				return nil, nil, err
			}
			for name, prop := range nestedProps {
				properties[name] = prop
			}
			required = append(required, nestedRequired...)
			continue
		}

		jsonTag := embedded.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		jsonName, omitempty := parseJSONTag(jsonTag)
		if jsonName == "" {
			jsonName = embedded.Name
		}

		fieldSchema, err := g.fieldSchema(embedded)
		if err != nil {
			return nil, nil, err
		}
		properties[jsonName] = fieldSchema

		if isRequiredField(embedded, omitempty) {
			required = append(required, jsonName)
		}
	}

	return properties, required, nil
}

func (g *Generator) fieldSchema(field reflect.StructField) (*spec.Schema, error) {
	fieldType := field.Type
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	if g.isEnumComponent(fieldType, field) {
		return g.enumComponentRef(fieldType, field)
	}

	if g.isStructComponent(fieldType) {
		return g.structComponentRef(fieldType, field)
	}

	// Arrays of named types reference their element component.
	if fieldType.Kind() == reflect.Slice || fieldType.Kind() == reflect.Array {
		elemType := fieldType.Elem()
		if elemType.Kind() == reflect.Ptr {
			elemType = elemType.Elem()
		}
		if g.isEnumComponent(elemType, field) {
			return g.enumArrayRef(elemType, field)
		}
		if g.isStructComponent(elemType) {
			return g.structArrayRef(elemType, field)
		}
	}

	schema, err := g.schemaFromType(field.Type)
	if err != nil {
		return nil, err
	}
	applyStructTags(schema, field)

	return schema, nil
}

// isStructComponent reports whether a type is extracted into the component
// registry: named struct types without special string renderings.
func (g *Generator) isStructComponent(rt reflect.Type) bool {
	if rt.Kind() != reflect.Struct || rt.Name() == "" {
		return false
	}
	if rt == timeType {
		return false
	}
	return !implementsTextMarshaler(rt) && !implementsJSONMarshaler(rt)
}

// registerComponent records a component name for rt, detecting collisions
// between identically named types from different packages. It reports
// whether the name is usable.
func (g *Generator) registerComponent(name, qualified string) bool {
	existing, exists := g.typeRegistry[name]
	if !exists {
		g.typeRegistry[name] = qualified
		return true
	}
	if existing == qualified {
		return true
	}

	msg := fmt.Sprintf("type %q from package %q conflicts with existing type from package %q", name, qualified, existing)
	g.collisions = append(g.collisions, msg)
	g.log.Error("schema component name collision",
		logger.String("component", name),
		logger.String("type", qualified),
		logger.String("existing", existing),
	)
	return false
}

// structRef returns a reference to rt's named component, generating and
// registering the component the first time rt is seen.
func (g *Generator) structRef(rt reflect.Type) (*spec.Schema, error) {
	name := TypeName(rt)
	qualified := qualifiedTypeName(rt)

	if !g.registerComponent(name, qualified) {
		// Collisions are collected and surfaced through Err; generation
		// continues with the reference in place.
		return spec.SchemaRef(name), nil
	}

	if _, exists := g.components[name]; !exists {
		// Placeholder goes in before recursing so self-referential types
		// resolve to the component instead of expanding forever.
		g.components[name] = &spec.Schema{Type: spec.TypeObject}

		componentSchema, err := g.schemaFromType(rt)
		if err != nil {
			return nil, err
		}
		g.components[name] = componentSchema
	}

	return spec.SchemaRef(name), nil
}

func (g *Generator) structComponentRef(rt reflect.Type, field reflect.StructField) (*spec.Schema, error) {
	ref, err := g.structRef(rt)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("description"); desc != "" {
		ref.Description = desc
	}
	if title := field.Tag.Get("title"); title != "" {
		ref.Title = title
	}

	return ref, nil
}

func (g *Generator) structArrayRef(elemType reflect.Type, field reflect.StructField) (*spec.Schema, error) {
	ref, err := g.structRef(elemType)
	if err != nil {
		return nil, err
	}

	schema := &spec.Schema{Type: spec.TypeArray, Items: ref}
	applyStructTags(schema, field)

	return schema, nil
}

func isByteSequence(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return rt.Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}

func implementsTextMarshaler(rt reflect.Type) bool {
	return rt.Implements(reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem())
}

func implementsJSONMarshaler(rt reflect.Type) bool {
	return rt.Implements(reflect.TypeOf((*json.Marshaler)(nil)).Elem())
}
