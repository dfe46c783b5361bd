// Package annotation models declared types as immutable descriptors and
// normalizes them for schema generation: wrapper layers (metadata carriers
// and requiredness markers) peel away, container origins resolve to concrete
// collection kinds.
package annotation

import (
	"fmt"
	"reflect"
	"strings"
)

// Origin identifies the generic constructor of a descriptor. Plain types
// report OriginNone.
type Origin int

const (
	OriginNone Origin = iota

	// Wrapper origins carry one inner type plus optional metadata.
	OriginAnnotated
	OriginRequired
	OriginNotRequired
	OriginReadOnly

	// Abstract container origins.
	OriginSequence
	OriginMutableSequence
	OriginAbstractSet
	OriginMutableSet
	OriginMapping
	OriginMutableMapping

	// Concrete container origins.
	OriginList
	OriginTuple
	OriginSet
	OriginFrozenSet
	OriginDeque
	OriginDict
	OriginDefaultDict
)

var originNames = map[Origin]string{
	OriginNone:            "none",
	OriginAnnotated:       "annotated",
	OriginRequired:        "required",
	OriginNotRequired:     "not-required",
	OriginReadOnly:        "read-only",
	OriginSequence:        "sequence",
	OriginMutableSequence: "mutable-sequence",
	OriginAbstractSet:     "abstract-set",
	OriginMutableSet:      "mutable-set",
	OriginMapping:         "mapping",
	OriginMutableMapping:  "mutable-mapping",
	OriginList:            "list",
	OriginTuple:           "tuple",
	OriginSet:             "set",
	OriginFrozenSet:       "frozen-set",
	OriginDeque:           "deque",
	OriginDict:            "dict",
	OriginDefaultDict:     "default-dict",
}

func (o Origin) String() string {
	if name, ok := originNames[o]; ok {
		return name
	}
	return fmt.Sprintf("origin(%d)", int(o))
}

// Type is an immutable description of a declared type: a plain Go type, a
// container over element types, or a wrapper layer around another Type.
// The zero value describes nothing.
type Type struct {
	origin Origin
	args   []Type
	meta   []any
	rt     reflect.Type
}

// Of returns the descriptor for v. Values that are already descriptors or
// reflect.Types pass through; anything else is described by its dynamic type.
func Of(v any) Type {
	switch x := v.(type) {
	case nil:
		return Type{}
	case Type:
		return x
	case reflect.Type:
		return TypeOf(x)
	default:
		return TypeOf(reflect.TypeOf(v))
	}
}

// TypeOf converts a reflected Go type into a descriptor. Pointers
// dereference. Slices and arrays surface as list origins over their element
// type and maps as dict origins over (key, value). Strings, byte slices and
// byte arrays stay plain.
func TypeOf(rt reflect.Type) Type {
	return typeOf(rt, nil)
}

func typeOf(rt reflect.Type, seen map[reflect.Type]bool) Type {
	if rt == nil {
		return Type{}
	}
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if seen[rt] {
		// Self-referential container type; stop expanding.
		return Type{rt: rt}
	}
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		if rt.Elem().Kind() == reflect.Uint8 {
			return Type{rt: rt}
		}
		seen = markSeen(seen, rt)
		return Type{origin: OriginList, args: []Type{typeOf(rt.Elem(), seen)}, rt: rt}
	case reflect.Map:
		seen = markSeen(seen, rt)
		return Type{origin: OriginDict, args: []Type{typeOf(rt.Key(), seen), typeOf(rt.Elem(), seen)}, rt: rt}
	default:
		return Type{rt: rt}
	}
}

func markSeen(seen map[reflect.Type]bool, rt reflect.Type) map[reflect.Type]bool {
	next := make(map[reflect.Type]bool, len(seen)+1)
	for k := range seen {
		next[k] = true
	}
	next[rt] = true
	return next
}

// Annotated wraps t and attaches metadata to it.
func Annotated(t Type, meta ...any) Type {
	return Type{origin: OriginAnnotated, args: []Type{t}, meta: append([]any(nil), meta...)}
}

// Required marks t as a required member of its enclosing object.
func Required(t Type) Type { return Type{origin: OriginRequired, args: []Type{t}} }

// NotRequired marks t as an optional member of its enclosing object.
func NotRequired(t Type) Type { return Type{origin: OriginNotRequired, args: []Type{t}} }

// ReadOnly marks t as response-only.
func ReadOnly(t Type) Type { return Type{origin: OriginReadOnly, args: []Type{t}} }

func container(origin Origin, args []Type) Type {
	return Type{origin: origin, args: append([]Type(nil), args...)}
}

// List describes an ordered sequence. The optional argument is the element
// type; a bare List() describes the unparameterized container.
func List(args ...Type) Type { return container(OriginList, args) }

// Tuple describes a fixed-arity sequence, one argument per position.
func Tuple(args ...Type) Type { return container(OriginTuple, args) }

// Set describes an unordered collection of unique elements.
func Set(args ...Type) Type { return container(OriginSet, args) }

// FrozenSet describes an immutable set.
func FrozenSet(args ...Type) Type { return container(OriginFrozenSet, args) }

// Deque describes a double-ended queue.
func Deque(args ...Type) Type { return container(OriginDeque, args) }

// Dict describes a mapping; arguments are the key and value types.
func Dict(args ...Type) Type { return container(OriginDict, args) }

// DefaultDict describes a mapping that materializes missing keys.
func DefaultDict(args ...Type) Type { return container(OriginDefaultDict, args) }

// Abstract container spellings. Each resolves to its concrete counterpart
// through the container table.
func Sequence(args ...Type) Type        { return container(OriginSequence, args) }
func MutableSequence(args ...Type) Type { return container(OriginMutableSequence, args) }
func AbstractSet(args ...Type) Type     { return container(OriginAbstractSet, args) }
func MutableSet(args ...Type) Type      { return container(OriginMutableSet, args) }
func Mapping(args ...Type) Type         { return container(OriginMapping, args) }
func MutableMapping(args ...Type) Type  { return container(OriginMutableMapping, args) }

// Origin reports the generic constructor of the descriptor.
func (t Type) Origin() Origin { return t.origin }

// Args returns the generic arguments. For wrapper origins the carried type
// is Args()[0].
func (t Type) Args() []Type { return t.args }

// Meta returns the metadata attached at an Annotated layer.
func (t Type) Meta() []any { return t.meta }

// GoType reports the reflected Go type backing the descriptor, if any.
func (t Type) GoType() reflect.Type { return t.rt }

// IsZero reports whether the descriptor describes nothing.
func (t Type) IsZero() bool { return t.origin == OriginNone && t.rt == nil }

// Carried returns the inner type of a wrapper descriptor.
func (t Type) Carried() (Type, bool) {
	if _, ok := IsWrapper(t.origin); ok && len(t.args) > 0 {
		return t.args[0], true
	}
	return Type{}, false
}

// Elem returns the element type of a container descriptor: the single
// argument of sequence-like containers, the value argument of mappings.
func (t Type) Elem() (Type, bool) {
	kind, ok := LookupContainer(t.origin)
	if !ok || len(t.args) == 0 {
		return Type{}, false
	}
	switch kind {
	case ContainerMapping, ContainerDefaultMapping:
		if len(t.args) < 2 {
			return Type{}, false
		}
		return t.args[1], true
	default:
		return t.args[0], true
	}
}

// Key returns the key type of a mapping descriptor.
func (t Type) Key() (Type, bool) {
	kind, ok := LookupContainer(t.origin)
	if !ok || len(t.args) == 0 {
		return Type{}, false
	}
	if kind != ContainerMapping && kind != ContainerDefaultMapping {
		return Type{}, false
	}
	return t.args[0], true
}

func (t Type) String() string {
	switch {
	case t.origin != OriginNone:
		if len(t.args) == 0 {
			return t.origin.String()
		}
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s[%s]", t.origin, strings.Join(parts, ", "))
	case t.rt != nil:
		return t.rt.String()
	default:
		return "none"
	}
}
