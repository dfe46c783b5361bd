package annotation

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWrapper_Membership(t *testing.T) {
	tests := []struct {
		name   string
		origin Origin
		want   WrapperKind
		ok     bool
	}{
		{name: "annotated", origin: OriginAnnotated, want: WrapperAnnotated, ok: true},
		{name: "required", origin: OriginRequired, want: WrapperRequired, ok: true},
		{name: "not required", origin: OriginNotRequired, want: WrapperNotRequired, ok: true},
		{name: "read only", origin: OriginReadOnly, want: WrapperReadOnly, ok: true},
		{name: "none", origin: OriginNone, ok: false},
		{name: "list is not a wrapper", origin: OriginList, ok: false},
		{name: "mapping is not a wrapper", origin: OriginMapping, ok: false},
		{name: "unknown token", origin: Origin(99), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := IsWrapper(tt.origin)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

func TestLookupContainer_AbstractAndConcreteSpellings(t *testing.T) {
	tests := []struct {
		name   string
		origin Origin
		want   ContainerKind
	}{
		{name: "sequence", origin: OriginSequence, want: ContainerSequence},
		{name: "mutable sequence", origin: OriginMutableSequence, want: ContainerSequence},
		{name: "list", origin: OriginList, want: ContainerSequence},
		{name: "tuple", origin: OriginTuple, want: ContainerSequence},
		{name: "abstract set", origin: OriginAbstractSet, want: ContainerSet},
		{name: "mutable set", origin: OriginMutableSet, want: ContainerSet},
		{name: "set", origin: OriginSet, want: ContainerSet},
		{name: "frozen set", origin: OriginFrozenSet, want: ContainerFrozenSet},
		{name: "mapping", origin: OriginMapping, want: ContainerMapping},
		{name: "mutable mapping", origin: OriginMutableMapping, want: ContainerMapping},
		{name: "dict", origin: OriginDict, want: ContainerMapping},
		{name: "default dict", origin: OriginDefaultDict, want: ContainerDefaultMapping},
		{name: "deque", origin: OriginDeque, want: ContainerDeque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := LookupContainer(tt.origin)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestLookupContainer_UnknownTokensAbsent(t *testing.T) {
	for _, origin := range []Origin{OriginNone, OriginAnnotated, OriginRequired, Origin(99)} {
		_, ok := LookupContainer(origin)
		assert.False(t, ok, "origin %s", origin)
	}
}

func TestContainerKind_Instantiate(t *testing.T) {
	assert.Equal(t, []any{}, ContainerSequence.Instantiate())
	assert.Equal(t, map[string]any{}, ContainerMapping.Instantiate())
	assert.Equal(t, map[string]any{}, ContainerDefaultMapping.Instantiate())
	assert.Equal(t, map[any]struct{}{}, ContainerSet.Instantiate())
	assert.Equal(t, map[any]struct{}{}, ContainerFrozenSet.Instantiate())

	deque, ok := ContainerDeque.Instantiate().(*list.List)
	require.True(t, ok)
	assert.Zero(t, deque.Len())

	assert.Nil(t, ContainerKind(0).Instantiate())
}

func TestWrapperSet_AddAndHas(t *testing.T) {
	var s WrapperSet
	assert.False(t, s.Has(WrapperRequired))
	assert.Zero(t, s.Len())

	s = s.Add(WrapperRequired)
	s = s.Add(WrapperAnnotated)
	s = s.Add(WrapperRequired)

	assert.True(t, s.Has(WrapperRequired))
	assert.True(t, s.Has(WrapperAnnotated))
	assert.False(t, s.Has(WrapperReadOnly))
	assert.Equal(t, 2, s.Len())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "annotated", WrapperAnnotated.String())
	assert.Equal(t, "read-only", WrapperReadOnly.String())
	assert.Equal(t, "sequence", ContainerSequence.String())
	assert.Equal(t, "default-mapping", ContainerDefaultMapping.String())
	assert.Equal(t, "list", OriginList.String())
	assert.Equal(t, "origin(99)", Origin(99).String())
}
