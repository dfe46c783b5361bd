package render

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/apispec/spec"
)

type brokenPlugin struct {
	base
	panics bool
}

func (p *brokenPlugin) Render() ([]byte, error) {
	if p.panics {
		panic("template exploded")
	}
	return nil, errors.New("render failed")
}

func TestHandler_ServesPluginPaths(t *testing.T) {
	h := Handler(testDocument(), nil)

	tests := []struct {
		path        string
		contentType string
	}{
		{path: "/openapi.json", contentType: "application/json"},
		{path: "/openapi.yaml", contentType: "application/x-yaml"},
		{path: "/openapi.yml", contentType: "application/x-yaml"},
		{path: "/swagger", contentType: "text/html; charset=utf-8"},
		{path: "/redoc", contentType: "text/html; charset=utf-8"},
		{path: "/rapidoc", contentType: "text/html; charset=utf-8"},
		{path: "/scalar", contentType: "text/html; charset=utf-8"},
		{path: "/elements", contentType: "text/html; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, rec.Body.Bytes())
		})
	}
}

func TestHandler_UnknownPath(t *testing.T) {
	h := Handler(testDocument(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SelectedPlugins(t *testing.T) {
	h := Handler(testDocument(), nil, NewJSONPlugin())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RenderFailure(t *testing.T) {
	broken := &brokenPlugin{base: base{paths: []string{"/broken"}, mediaType: "text/html"}}
	h := Handler(testDocument(), nil, broken)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_RecoversFromPanic(t *testing.T) {
	broken := &brokenPlugin{base: base{paths: []string{"/panic"}, mediaType: "text/html"}, panics: true}
	h := Handler(testDocument(), nil, broken)

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_DocumentReachesPlugins(t *testing.T) {
	doc := spec.New("Wired API", "2.0.0")
	h := Handler(doc, nil, NewJSONPlugin())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wired API")
}
