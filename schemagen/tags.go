package schemagen

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/xraph/apispec/spec"
)

// applyStructTags folds the schema vocabulary of struct tags into a field
// schema.
func applyStructTags(schema *spec.Schema, field reflect.StructField) {
	if desc := field.Tag.Get("description"); desc != "" {
		schema.Description = desc
	}

	if title := field.Tag.Get("title"); title != "" {
		schema.Title = title
	}

	if example := field.Tag.Get("example"); example != "" {
		schema.Example = parseTagValue(example, schema.Type)
	}

	if defaultVal := field.Tag.Get("default"); defaultVal != "" {
		schema.Default = parseTagValue(defaultVal, schema.Type)
	}

	if format := field.Tag.Get("format"); format != "" {
		schema.Format = spec.OpenAPIFormat(format)
		// Binary and byte payloads always ride on strings.
		if format == "binary" || format == "byte" {
			schema.Type = spec.TypeString
		}
	}

	if constVal := field.Tag.Get("const"); constVal != "" {
		schema.Const = constVal
		schema.Enum = []any{constVal}
	}

	if pattern := field.Tag.Get("pattern"); pattern != "" {
		schema.Pattern = pattern
	}

	if enum := field.Tag.Get("enum"); enum != "" {
		values := strings.Split(enum, ",")
		schema.Enum = make([]any, len(values))
		for i, v := range values {
			schema.Enum[i] = strings.TrimSpace(v)
		}
	}

	// String validation
	if minLength := field.Tag.Get("minLength"); minLength != "" {
		if val, err := strconv.Atoi(minLength); err == nil {
			schema.MinLength = val
		}
	}

	if maxLength := field.Tag.Get("maxLength"); maxLength != "" {
		if val, err := strconv.Atoi(maxLength); err == nil {
			schema.MaxLength = val
		}
	}

	// Number validation
	if minimum := field.Tag.Get("minimum"); minimum != "" {
		if val, err := strconv.ParseFloat(minimum, 64); err == nil {
			schema.Minimum = val
		}
	}

	if maximum := field.Tag.Get("maximum"); maximum != "" {
		if val, err := strconv.ParseFloat(maximum, 64); err == nil {
			schema.Maximum = val
		}
	}

	if multipleOf := field.Tag.Get("multipleOf"); multipleOf != "" {
		if val, err := strconv.ParseFloat(multipleOf, 64); err == nil {
			schema.MultipleOf = val
		}
	}

	if field.Tag.Get("exclusiveMinimum") == "true" {
		schema.ExclusiveMinimum = true
	}

	if field.Tag.Get("exclusiveMaximum") == "true" {
		schema.ExclusiveMaximum = true
	}

	// Array validation
	if minItems := field.Tag.Get("minItems"); minItems != "" {
		if val, err := strconv.Atoi(minItems); err == nil {
			schema.MinItems = val
		}
	}

	if maxItems := field.Tag.Get("maxItems"); maxItems != "" {
		if val, err := strconv.Atoi(maxItems); err == nil {
			schema.MaxItems = val
		}
	}

	if field.Tag.Get("uniqueItems") == "true" {
		schema.UniqueItems = true
	}

	// Object validation
	if minProps := field.Tag.Get("minProperties"); minProps != "" {
		if val, err := strconv.Atoi(minProps); err == nil {
			schema.MinProperties = val
		}
	}

	if maxProps := field.Tag.Get("maxProperties"); maxProps != "" {
		if val, err := strconv.Atoi(maxProps); err == nil {
			schema.MaxProperties = val
		}
	}

	if field.Tag.Get("nullable") == "true" {
		schema.Nullable = true
	}

	if field.Tag.Get("readOnly") == "true" {
		schema.ReadOnly = true
	}

	if field.Tag.Get("writeOnly") == "true" {
		schema.WriteOnly = true
	}

	if field.Tag.Get("deprecated") == "true" {
		schema.Deprecated = true
	}
}

// parseJSONTag parses a JSON struct tag into its name and omitempty flag.
func parseJSONTag(tag string) (name string, omitempty bool) {
	if tag == "" {
		return "", false
	}

	parts := strings.Split(tag, ",")
	name = parts[0]

	for i := 1; i < len(parts); i++ {
		if parts[i] == "omitempty" {
			omitempty = true
			break
		}
	}

	return name, omitempty
}

// parseTagValue converts a tag string into the value space of the schema
// type it annotates.
func parseTagValue(raw string, schemaType spec.OpenAPIType) any {
	switch schemaType {
	case spec.TypeInteger:
		if val, err := strconv.Atoi(raw); err == nil {
			return val
		}
	case spec.TypeNumber:
		if val, err := strconv.ParseFloat(raw, 64); err == nil {
			return val
		}
	case spec.TypeBoolean:
		if val, err := strconv.ParseBool(raw); err == nil {
			return val
		}
	case spec.TypeArray:
		return strings.Split(raw, ",")
	}

	return raw
}
