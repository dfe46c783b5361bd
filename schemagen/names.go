package schemagen

import (
	"reflect"
	"strings"
)

// TypeName returns the component name for a type: the bare type name with
// generic parameters cleaned of package paths and made reference-safe.
// Anonymous types fall back to "Object".
func TypeName(rt reflect.Type) string {
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Name() == "" {
		return "Object"
	}
	return sanitizeComponentName(cleanGenericTypeName(rt.Name()))
}

// qualifiedTypeName returns the full package path qualified name used for
// collision detection.
func qualifiedTypeName(rt reflect.Type) string {
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Name() == "" {
		return "Object"
	}
	if rt.PkgPath() != "" {
		return rt.PkgPath() + "." + rt.Name()
	}
	return rt.Name()
}

// cleanGenericTypeName strips package paths from generic type parameters:
// "Page[*github.com/acme/shop/model.Item]" becomes "Page[*Item]".
func cleanGenericTypeName(name string) string {
	open := strings.Index(name, "[")
	if open == -1 {
		return name
	}
	if !strings.HasSuffix(name, "]") {
		return cleanTypeParam(name)
	}

	base := cleanTypeParam(name[:open])
	params := strings.Split(name[open+1:len(name)-1], ",")
	for i, param := range params {
		params[i] = cleanTypeParam(param)
	}

	return base + "[" + strings.Join(params, ",") + "]"
}

// cleanTypeParam reduces a single type parameter to its bare name:
// "*github.com/acme/shop/model.Item" becomes "*Item".
func cleanTypeParam(param string) string {
	param = strings.TrimSpace(param)

	pointer := ""
	if strings.HasPrefix(param, "*") {
		pointer = "*"
		param = param[1:]
	}

	if lastDot := strings.LastIndex(param, "."); lastDot != -1 {
		param = param[lastDot+1:]
	}

	// Drop the ·N suffix Go attaches to some type instances.
	if idx := strings.Index(param, "·"); idx != -1 {
		param = param[:idx]
	}

	return pointer + param
}

// sanitizeComponentName rewrites characters that are not reference-safe in
// component keys: "Page[*Item]" becomes "Page_Item".
func sanitizeComponentName(name string) string {
	if !strings.ContainsAny(name, "[]*, ") {
		return name
	}

	var b strings.Builder
	for _, r := range name {
		switch r {
		case '[', ',':
			b.WriteByte('_')
		case ']', '*', ' ':
			// Dropped entirely.
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}
