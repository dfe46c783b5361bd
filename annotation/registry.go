package annotation

import (
	"container/list"
	"fmt"
)

// WrapperKind classifies the wrapper layers a descriptor can carry.
type WrapperKind int

const (
	WrapperAnnotated WrapperKind = iota + 1
	WrapperRequired
	WrapperNotRequired
	WrapperReadOnly
)

func (k WrapperKind) String() string {
	switch k {
	case WrapperAnnotated:
		return "annotated"
	case WrapperRequired:
		return "required"
	case WrapperNotRequired:
		return "not-required"
	case WrapperReadOnly:
		return "read-only"
	default:
		return fmt.Sprintf("wrapper(%d)", int(k))
	}
}

// WrapperSet records which wrapper kinds were encountered while unwrapping.
type WrapperSet map[WrapperKind]struct{}

// Has reports whether k is in the set. Safe on a nil set.
func (s WrapperSet) Has(k WrapperKind) bool {
	_, ok := s[k]
	return ok
}

// Add returns the set with k included, allocating on first use.
func (s WrapperSet) Add(k WrapperKind) WrapperSet {
	if s == nil {
		s = make(WrapperSet, 1)
	}
	s[k] = struct{}{}
	return s
}

// Len reports the number of distinct wrapper kinds in the set.
func (s WrapperSet) Len() int { return len(s) }

// wrapperOrigins is the wrapper membership table. Immutable after init;
// lookups are safe for unsynchronized concurrent use.
var wrapperOrigins = map[Origin]WrapperKind{
	OriginAnnotated:   WrapperAnnotated,
	OriginRequired:    WrapperRequired,
	OriginNotRequired: WrapperNotRequired,
	OriginReadOnly:    WrapperReadOnly,
}

// IsWrapper reports whether origin is a recognized wrapper token. Unknown
// tokens report false; there is no error path.
func IsWrapper(origin Origin) (WrapperKind, bool) {
	k, ok := wrapperOrigins[origin]
	return k, ok
}

// ContainerKind is a concrete, instantiable collection shape.
type ContainerKind int

const (
	ContainerSequence ContainerKind = iota + 1
	ContainerMapping
	ContainerSet
	ContainerFrozenSet
	ContainerDeque
	ContainerDefaultMapping
)

func (k ContainerKind) String() string {
	switch k {
	case ContainerSequence:
		return "sequence"
	case ContainerMapping:
		return "mapping"
	case ContainerSet:
		return "set"
	case ContainerFrozenSet:
		return "frozen-set"
	case ContainerDeque:
		return "deque"
	case ContainerDefaultMapping:
		return "default-mapping"
	default:
		return fmt.Sprintf("container(%d)", int(k))
	}
}

// Instantiate builds an empty instance of the kind's canonical Go shape.
func (k ContainerKind) Instantiate() any {
	switch k {
	case ContainerSequence:
		return []any{}
	case ContainerMapping, ContainerDefaultMapping:
		return map[string]any{}
	case ContainerSet, ContainerFrozenSet:
		return map[any]struct{}{}
	case ContainerDeque:
		return list.New()
	default:
		return nil
	}
}

// containerTable maps container origin tokens, abstract and concrete, to the
// kind they instantiate as. Concrete tokens map to themselves. Immutable
// after init; lookups are safe for unsynchronized concurrent use.
var containerTable = map[Origin]ContainerKind{
	OriginSequence:        ContainerSequence,
	OriginMutableSequence: ContainerSequence,
	OriginList:            ContainerSequence,
	OriginTuple:           ContainerSequence,
	OriginAbstractSet:     ContainerSet,
	OriginMutableSet:      ContainerSet,
	OriginSet:             ContainerSet,
	OriginFrozenSet:       ContainerFrozenSet,
	OriginMapping:         ContainerMapping,
	OriginMutableMapping:  ContainerMapping,
	OriginDict:            ContainerMapping,
	OriginDefaultDict:     ContainerDefaultMapping,
	OriginDeque:           ContainerDeque,
}

// LookupContainer resolves a container origin token to its concrete kind.
// Unknown tokens report false; there is no error path.
func LookupContainer(origin Origin) (ContainerKind, bool) {
	k, ok := containerTable[origin]
	return k, ok
}
