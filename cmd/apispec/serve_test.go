package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocument_JSON(t *testing.T) {
	path := writeSpecFile(t, "openapi.json", `{
		"openapi": "3.0.3",
		"info": {"title": "Orders API", "version": "1.2.0"},
		"paths": {}
	}`)

	doc, err := loadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Orders API", doc.Info.Title)
	assert.Equal(t, "1.2.0", doc.Info.Version)
}

func TestLoadDocument_YAML(t *testing.T) {
	path := writeSpecFile(t, "openapi.yaml", `
openapi: 3.0.3
info:
  title: Orders API
  version: 1.2.0
paths:
  /orders:
    get:
      summary: List orders
      responses:
        "200":
          description: OK
`)

	doc, err := loadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Orders API", doc.Info.Title)

	item, ok := doc.Paths["/orders"]
	require.True(t, ok)
	require.NotNil(t, item.Get)
	assert.Equal(t, "List orders", item.Get.Summary)
}

func TestLoadDocument_UnsupportedFormat(t *testing.T) {
	path := writeSpecFile(t, "openapi.toml", `openapi = "3.0.3"`)

	_, err := loadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported spec format")
}

func TestLoadDocument_NotOpenAPI(t *testing.T) {
	path := writeSpecFile(t, "config.json", `{"name": "not a spec"}`)

	_, err := loadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an OpenAPI document")
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := loadDocument(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
