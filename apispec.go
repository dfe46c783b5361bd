package apispec

import (
	"net/http"

	"github.com/xraph/apispec/logger"
	"github.com/xraph/apispec/render"
	"github.com/xraph/apispec/schemagen"
	"github.com/xraph/apispec/spec"
)

// Version is the library version.
const Version = "0.1.0"

// OpenAPI is the root object of an OpenAPI document.
type OpenAPI = spec.OpenAPI

// Info provides metadata about the API.
type Info = spec.Info

// Paths maps relative URL paths to the operations available on them.
type Paths = spec.Paths

// PathItem describes the operations available on a single path.
type PathItem = spec.PathItem

// Operation describes a single API operation on a path.
type Operation = spec.Operation

// Parameter describes a single operation parameter.
type Parameter = spec.Parameter

// RequestBody describes a single request body.
type RequestBody = spec.RequestBody

// Response describes a single response from an API operation.
type Response = spec.Response

// Schema represents an OpenAPI schema object.
type Schema = spec.Schema

// Components holds reusable objects for the document.
type Components = spec.Components

// Reference points at a reusable object elsewhere in the document.
type Reference = spec.Reference

// Server represents an API server.
type Server = spec.Server

// Tag adds metadata to a single tag used by operations.
type Tag = spec.Tag

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme = spec.SecurityScheme

// Generator synthesizes OpenAPI schemas from Go types and annotation
// descriptors.
type Generator = schemagen.Generator

// RenderPlugin renders an OpenAPI document for one or more paths.
type RenderPlugin = render.Plugin

// New returns a document with the version header set and empty paths.
func New(title, version string) *OpenAPI {
	return spec.New(title, version)
}

// NewGenerator creates an empty schema generator.
func NewGenerator(opts ...schemagen.Option) *Generator {
	return schemagen.NewGenerator(opts...)
}

// DocsHandler serves doc on every plugin path, defaulting to the full
// viewer set when no plugins are given.
func DocsHandler(doc *OpenAPI, log logger.Logger, plugins ...RenderPlugin) http.Handler {
	return render.Handler(doc, log, plugins...)
}
