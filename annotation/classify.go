package annotation

import "reflect"

// multiValueKinds are the container kinds that fan a field out into multiple
// values. Mappings and default-mappings are single-value.
var multiValueKinds = map[ContainerKind]bool{
	ContainerSequence:  true,
	ContainerSet:       true,
	ContainerFrozenSet: true,
	ContainerDeque:     true,
}

// EffectiveOrigin resolves the container kind a descriptor ultimately
// represents, looking through any wrapper layers first. Descriptors whose
// resolved origin is not a known container token report false.
func EffectiveOrigin(t Type) (ContainerKind, bool) {
	return LookupContainer(Unwrap(t).Base.origin)
}

// IsMultiValue reports whether a field of this type carries multiple values:
// the resolved type is sequence-like (ordered sequence, tuple, set, frozen
// set or deque) and not a string or byte sequence. Mappings are single-value.
// Descriptors that resolve to nothing recognizable report false; IsMultiValue
// never panics.
func IsMultiValue(t Type) bool {
	base := Unwrap(t).Base
	if isStringOrBytes(base.rt) {
		return false
	}
	if kind, ok := LookupContainer(base.origin); ok {
		return multiValueKinds[kind]
	}
	// No container origin: classify the Go type itself. Byte sequences were
	// already excluded above.
	if base.rt == nil {
		return false
	}
	switch base.rt.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func isStringOrBytes(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	switch rt.Kind() {
	case reflect.String:
		return true
	case reflect.Slice, reflect.Array:
		return rt.Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}
