package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/apispec/spec"
)

func TestApplyStructTags(t *testing.T) {
	type payload struct {
		Name     string   `json:"name" description:"display name" minLength:"2" maxLength:"64" pattern:"^[a-z]+$"`
		Age      int      `json:"age" minimum:"0" maximum:"150" example:"42"`
		Score    float64  `json:"score" multipleOf:"0.5" exclusiveMinimum:"true" minimum:"0"`
		Kind     string   `json:"kind" const:"user"`
		Role     string   `json:"role" enum:"admin, member,guest" default:"member"`
		Data     string   `json:"data" format:"binary"`
		Hidden   string   `json:"hidden" writeOnly:"true"`
		Token    string   `json:"token" readOnly:"true" deprecated:"true"`
		Labels   []string `json:"labels" minItems:"1" maxItems:"10" uniqueItems:"true"`
		Active   bool     `json:"active" default:"true"`
		LegacyID string   `json:"legacyId" nullable:"true"`
	}

	g := NewGenerator()
	schema, err := g.SchemaFor(payload{})
	require.NoError(t, err)

	name := schema.Properties["name"]
	require.NotNil(t, name)
	assert.Equal(t, "display name", name.Description)
	assert.Equal(t, 2, name.MinLength)
	assert.Equal(t, 64, name.MaxLength)
	assert.Equal(t, "^[a-z]+$", name.Pattern)

	age := schema.Properties["age"]
	require.NotNil(t, age)
	assert.Equal(t, float64(0), age.Minimum)
	assert.Equal(t, float64(150), age.Maximum)
	assert.Equal(t, 42, age.Example)

	score := schema.Properties["score"]
	require.NotNil(t, score)
	assert.Equal(t, 0.5, score.MultipleOf)
	assert.True(t, score.ExclusiveMinimum)

	kind := schema.Properties["kind"]
	require.NotNil(t, kind)
	assert.Equal(t, "user", kind.Const)
	assert.Equal(t, []any{"user"}, kind.Enum)

	role := schema.Properties["role"]
	require.NotNil(t, role)
	assert.Equal(t, []any{"admin", "member", "guest"}, role.Enum)
	assert.Equal(t, "member", role.Default)

	data := schema.Properties["data"]
	require.NotNil(t, data)
	assert.Equal(t, spec.TypeString, data.Type)
	assert.Equal(t, spec.FormatBinary, data.Format)

	hidden := schema.Properties["hidden"]
	require.NotNil(t, hidden)
	assert.True(t, hidden.WriteOnly)

	token := schema.Properties["token"]
	require.NotNil(t, token)
	assert.True(t, token.ReadOnly)
	assert.True(t, token.Deprecated)

	labels := schema.Properties["labels"]
	require.NotNil(t, labels)
	assert.Equal(t, 1, labels.MinItems)
	assert.Equal(t, 10, labels.MaxItems)
	assert.True(t, labels.UniqueItems)

	active := schema.Properties["active"]
	require.NotNil(t, active)
	assert.Equal(t, true, active.Default)

	legacy := schema.Properties["legacyId"]
	require.NotNil(t, legacy)
	assert.True(t, legacy.Nullable)
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		tag       string
		name      string
		omitempty bool
	}{
		{tag: "", name: ""},
		{tag: "id", name: "id"},
		{tag: "id,omitempty", name: "id", omitempty: true},
		{tag: ",omitempty", name: "", omitempty: true},
		{tag: "id,string", name: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			name, omitempty := parseJSONTag(tt.tag)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.omitempty, omitempty)
		})
	}
}

func TestParseTagValue(t *testing.T) {
	assert.Equal(t, 7, parseTagValue("7", spec.TypeInteger))
	assert.Equal(t, 2.5, parseTagValue("2.5", spec.TypeNumber))
	assert.Equal(t, true, parseTagValue("true", spec.TypeBoolean))
	assert.Equal(t, []string{"a", "b"}, parseTagValue("a,b", spec.TypeArray))
	assert.Equal(t, "plain", parseTagValue("plain", spec.TypeString))

	// Unparseable values stay strings.
	assert.Equal(t, "many", parseTagValue("many", spec.TypeInteger))
}
