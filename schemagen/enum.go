package schemagen

import (
	"reflect"
	"strings"

	"github.com/xraph/apispec/spec"
)

// EnumValuer lists the values an enum type admits. Types implementing it
// are extracted into the component registry with their enum constraint.
type EnumValuer interface {
	EnumValues() []any
}

// EnumNamer overrides the component name used for an enum type.
type EnumNamer interface {
	EnumComponentName() string
}

var (
	enumValuerType = reflect.TypeOf((*EnumValuer)(nil)).Elem()
	enumNamerType  = reflect.TypeOf((*EnumNamer)(nil)).Elem()
)

// isEnumComponent reports whether a type is extracted as a named enum
// component: a named marshaler-backed type that declares enum values either
// through EnumValuer or an enum struct tag.
func (g *Generator) isEnumComponent(rt reflect.Type, field reflect.StructField) bool {
	if rt.Name() == "" || rt.PkgPath() == "" {
		return false
	}
	if rt == timeType || rt == uuidType {
		return false
	}
	if !implementsTextMarshaler(rt) && !implementsJSONMarshaler(rt) {
		return false
	}

	hasValuer := rt.Implements(enumValuerType) || reflect.PointerTo(rt).Implements(enumValuerType)
	return hasValuer || field.Tag.Get("enum") != ""
}

func (g *Generator) enumComponentRef(rt reflect.Type, field reflect.StructField) (*spec.Schema, error) {
	name := enumComponentName(rt)
	qualified := qualifiedTypeName(rt)

	if !g.registerComponent(name, qualified) {
		return spec.SchemaRef(name), nil
	}

	g.registerEnumComponent(name, rt, field)

	ref := spec.SchemaRef(name)
	if desc := field.Tag.Get("description"); desc != "" {
		ref.Description = desc
	}
	if title := field.Tag.Get("title"); title != "" {
		ref.Title = title
	}

	return ref, nil
}

func (g *Generator) enumArrayRef(elemType reflect.Type, field reflect.StructField) (*spec.Schema, error) {
	name := enumComponentName(elemType)
	qualified := qualifiedTypeName(elemType)

	if !g.registerComponent(name, qualified) {
		return &spec.Schema{Type: spec.TypeArray, Items: spec.SchemaRef(name)}, nil
	}

	g.registerEnumComponent(name, elemType, field)

	schema := &spec.Schema{Type: spec.TypeArray, Items: spec.SchemaRef(name)}
	applyStructTags(schema, field)

	return schema, nil
}

func (g *Generator) registerEnumComponent(name string, rt reflect.Type, field reflect.StructField) {
	if _, exists := g.components[name]; exists {
		return
	}

	enumSchema := &spec.Schema{Type: enumBaseType(rt)}
	if values := enumValues(rt, field); len(values) > 0 {
		enumSchema.Enum = values
	}
	g.components[name] = enumSchema
}

// enumComponentName prefers the EnumNamer override, falling back to the
// cleaned type name.
func enumComponentName(rt reflect.Type) string {
	if namer, ok := zeroValueOf(rt, enumNamerType); ok {
		if name := namer.Interface().(EnumNamer).EnumComponentName(); name != "" {
			return name
		}
	}
	return TypeName(rt)
}

// enumBaseType determines the base OpenAPI type for an enum.
func enumBaseType(rt reflect.Type) spec.OpenAPIType {
	switch rt.Kind() {
	case reflect.String:
		return spec.TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return spec.TypeInteger
	case reflect.Float32, reflect.Float64:
		return spec.TypeNumber
	default:
		return spec.TypeString
	}
}

// enumValues extracts enum values, preferring the EnumValuer interface over
// the enum struct tag.
func enumValues(rt reflect.Type, field reflect.StructField) []any {
	if valuer, ok := zeroValueOf(rt, enumValuerType); ok {
		if values := valuer.Interface().(EnumValuer).EnumValues(); len(values) > 0 {
			return values
		}
	}

	if tag := field.Tag.Get("enum"); tag != "" {
		parts := strings.Split(tag, ",")
		values := make([]any, len(parts))
		for i, v := range parts {
			values[i] = strings.TrimSpace(v)
		}
		return values
	}

	return nil
}

// zeroValueOf returns a zero instance of rt usable through iface, checking
// both value and pointer receivers.
func zeroValueOf(rt reflect.Type, iface reflect.Type) (reflect.Value, bool) {
	if rt.Implements(iface) {
		return reflect.Zero(rt), true
	}
	if reflect.PointerTo(rt).Implements(iface) {
		return reflect.New(rt), true
	}
	return reflect.Value{}, false
}
