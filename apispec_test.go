package apispec

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/apispec/spec"
)

func TestNew(t *testing.T) {
	doc := New("Payments API", "3.1.4")

	assert.Equal(t, spec.DefaultVersion, doc.OpenAPI)
	assert.Equal(t, "Payments API", doc.Info.Title)
	assert.Equal(t, "3.1.4", doc.Info.Version)
	assert.NotNil(t, doc.Paths)
}

func TestGeneratedSchemasAttachToDocument(t *testing.T) {
	type account struct {
		ID      string `json:"id"`
		Balance int64  `json:"balance"`
	}

	type transfer struct {
		From   account `json:"from"`
		To     account `json:"to"`
		Amount int64   `json:"amount"`
	}

	g := NewGenerator()
	schema, err := g.SchemaFor(transfer{})
	require.NoError(t, err)
	require.NoError(t, g.Err())

	doc := New("Ledger", "1.0.0")
	doc.Components = &Components{Schemas: g.Components()}

	from := schema.Properties["from"]
	require.NotNil(t, from)
	assert.Equal(t, "#/components/schemas/account", from.Ref)

	_, ok := doc.Components.Schemas["account"]
	assert.True(t, ok)
}

func TestDocsHandler(t *testing.T) {
	doc := New("Ledger", "1.0.0")
	h := DocsHandler(doc, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ledger")
}
