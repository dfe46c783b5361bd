package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/apispec/spec"
)

func testDocument() *spec.OpenAPI {
	return spec.New("Test API", "1.0.0")
}

func TestDefaultPlugins(t *testing.T) {
	plugins := DefaultPlugins()
	require.Len(t, plugins, 7)

	paths := make(map[string]bool)
	for _, p := range plugins {
		for _, path := range p.Paths() {
			paths[path] = true
		}
	}

	for _, expected := range []string{
		"/openapi.json", "/openapi.yaml", "/openapi.yml",
		"/swagger", "/redoc", "/rapidoc", "/scalar", "/elements",
	} {
		assert.True(t, paths[expected], "missing default path %s", expected)
	}
}

func TestJSONPlugin(t *testing.T) {
	p := NewJSONPlugin()
	assert.Equal(t, "application/json", p.MediaType())
	assert.True(t, p.HasPath("/openapi.json"))
	assert.False(t, p.HasPath("/openapi.yaml"))

	p.ReceiveDocument(testDocument())

	body, err := p.Render()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"openapi": "3.0.3"`)
	assert.Contains(t, string(body), `"title": "Test API"`)
}

func TestJSONPlugin_NoDocument(t *testing.T) {
	_, err := NewJSONPlugin().Render()
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestYAMLPlugin(t *testing.T) {
	p := NewYAMLPlugin()
	assert.Equal(t, "application/x-yaml", p.MediaType())
	assert.True(t, p.HasPath("/openapi.yaml"))
	assert.True(t, p.HasPath("/openapi.yml"))

	p.ReceiveDocument(testDocument())

	body, err := p.Render()
	require.NoError(t, err)
	assert.Contains(t, string(body), "openapi: 3.0.3")
	assert.Contains(t, string(body), "title: Test API")
}

func TestUIPlugins(t *testing.T) {
	tests := []struct {
		name   string
		plugin Plugin
		path   string
		marker string
		cdn    string
	}{
		{name: "swagger", plugin: NewSwaggerPlugin(), path: "/swagger", marker: "SwaggerUIBundle", cdn: "swagger-ui-dist@5.17.14"},
		{name: "redoc", plugin: NewRedocPlugin(), path: "/redoc", marker: "Redoc.init", cdn: "redoc@2.1.3"},
		{name: "rapidoc", plugin: NewRapidocPlugin(), path: "/rapidoc", marker: "<rapi-doc", cdn: "rapidoc@9.3.4"},
		{name: "scalar", plugin: NewScalarPlugin(), path: "/scalar", marker: `id="api-reference"`, cdn: "@scalar/api-reference@1.24.0"},
		{name: "stoplight", plugin: NewStoplightPlugin(), path: "/elements", marker: "<elements-api", cdn: "@stoplight/elements@8.0.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "text/html; charset=utf-8", tt.plugin.MediaType())
			assert.True(t, tt.plugin.HasPath(tt.path))

			tt.plugin.ReceiveDocument(testDocument())

			body, err := tt.plugin.Render()
			require.NoError(t, err)

			html := string(body)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, tt.marker)
			assert.Contains(t, html, tt.cdn)
			assert.Contains(t, html, "Test API")
			assert.Contains(t, html, defaultFavicon)
		})
	}
}

func TestUIPlugins_NoDocument(t *testing.T) {
	for _, p := range []Plugin{
		NewSwaggerPlugin(), NewRedocPlugin(), NewRapidocPlugin(),
		NewScalarPlugin(), NewStoplightPlugin(),
	} {
		_, err := p.Render()
		assert.ErrorIs(t, err, ErrNoDocument)
	}
}

func TestPluginOptions(t *testing.T) {
	t.Run("path override", func(t *testing.T) {
		p := NewSwaggerPlugin(WithPath("/docs"))
		assert.True(t, p.HasPath("/docs"))
		assert.False(t, p.HasPath("/swagger"))
	})

	t.Run("version override", func(t *testing.T) {
		p := NewSwaggerPlugin(WithVersion("5.0.0"))
		p.ReceiveDocument(testDocument())

		body, err := p.Render()
		require.NoError(t, err)
		assert.Contains(t, string(body), "swagger-ui-dist@5.0.0")
	})

	t.Run("script url override", func(t *testing.T) {
		p := NewRedocPlugin(WithJSURL("https://example.com/redoc.js"))
		p.ReceiveDocument(testDocument())

		body, err := p.Render()
		require.NoError(t, err)
		assert.Contains(t, string(body), "https://example.com/redoc.js")
		assert.NotContains(t, string(body), "cdn.jsdelivr.net/npm/redoc")
	})

	t.Run("google fonts off", func(t *testing.T) {
		p := NewRedocPlugin(WithGoogleFonts(false))
		p.ReceiveDocument(testDocument())

		body, err := p.Render()
		require.NoError(t, err)
		assert.NotContains(t, string(body), "fonts.googleapis.com")
	})

	t.Run("favicon override", func(t *testing.T) {
		custom := `<link rel='icon' href='/favicon.ico'>`
		p := NewScalarPlugin(WithFavicon(custom))
		p.ReceiveDocument(testDocument())

		body, err := p.Render()
		require.NoError(t, err)
		assert.Contains(t, string(body), custom)
		assert.NotContains(t, string(body), defaultFavicon)
	})
}
