package render

import (
	"errors"

	json "github.com/json-iterator/go"

	"github.com/xraph/apispec/spec"
)

// ErrNoDocument is returned by Render when a plugin has not received a
// document yet.
var ErrNoDocument = errors.New("render: no document received")

const (
	defaultFavicon = "<link rel='icon' type='image/x-icon' href='data:image/x-icon;base64,AA'>"
	defaultStyle   = "<style>body { margin: 0; padding: 0 }</style>"
)

// Plugin renders an OpenAPI document for one or more paths. JSON and YAML
// plugins emit the document itself; UI plugins emit an HTML shell that loads
// a documentation viewer with the document embedded.
type Plugin interface {
	// Paths returns the paths the plugin serves.
	Paths() []string

	// MediaType returns the content type of the rendered payload.
	MediaType() string

	// ReceiveDocument hands the plugin the document it renders.
	ReceiveDocument(doc *spec.OpenAPI)

	// Render produces the response payload.
	Render() ([]byte, error)

	// HasPath reports whether the plugin serves the given path.
	HasPath(path string) bool
}

// Options configures a render plugin. Zero fields keep the plugin defaults.
type Options struct {
	// Paths overrides the paths the plugin serves.
	Paths []string

	// MediaType overrides the response content type.
	MediaType string

	// Favicon is the HTML link tag injected into UI shells.
	Favicon string

	// Style is the base CSS injected into UI shells.
	Style string

	// Version selects the viewer release loaded from the CDN.
	Version string

	// JSURL overrides the viewer script URL entirely.
	JSURL string

	// CSSURL overrides the viewer stylesheet URL entirely.
	CSSURL string

	// GoogleFonts toggles the Google Fonts stylesheet in shells that use it.
	GoogleFonts bool
}

// Option mutates plugin Options.
type Option func(*Options)

// WithPath serves the plugin at a single path.
func WithPath(path string) Option {
	return func(o *Options) { o.Paths = []string{path} }
}

// WithPaths serves the plugin at several paths.
func WithPaths(paths ...string) Option {
	return func(o *Options) { o.Paths = paths }
}

// WithMediaType overrides the response content type.
func WithMediaType(mediaType string) Option {
	return func(o *Options) { o.MediaType = mediaType }
}

// WithFavicon overrides the favicon link tag.
func WithFavicon(favicon string) Option {
	return func(o *Options) { o.Favicon = favicon }
}

// WithStyle overrides the base style tag.
func WithStyle(style string) Option {
	return func(o *Options) { o.Style = style }
}

// WithVersion selects the viewer release loaded from the CDN.
func WithVersion(version string) Option {
	return func(o *Options) { o.Version = version }
}

// WithJSURL overrides the viewer script URL.
func WithJSURL(url string) Option {
	return func(o *Options) { o.JSURL = url }
}

// WithCSSURL overrides the viewer stylesheet URL.
func WithCSSURL(url string) Option {
	return func(o *Options) { o.CSSURL = url }
}

// WithGoogleFonts toggles the Google Fonts stylesheet.
func WithGoogleFonts(enabled bool) Option {
	return func(o *Options) { o.GoogleFonts = enabled }
}

// DefaultPlugins returns every plugin at its default path: the JSON and YAML
// documents plus all five documentation viewers.
func DefaultPlugins() []Plugin {
	return []Plugin{
		NewJSONPlugin(),
		NewYAMLPlugin(),
		NewSwaggerPlugin(),
		NewRedocPlugin(),
		NewRapidocPlugin(),
		NewScalarPlugin(),
		NewStoplightPlugin(),
	}
}

// base carries the state shared by all plugins.
type base struct {
	doc       *spec.OpenAPI
	paths     []string
	mediaType string
	favicon   string
	style     string
}

func newBase(o Options) base {
	return base{
		paths:     o.Paths,
		mediaType: o.MediaType,
		favicon:   o.Favicon,
		style:     o.Style,
	}
}

func (b *base) Paths() []string {
	return append([]string(nil), b.paths...)
}

func (b *base) MediaType() string {
	return b.mediaType
}

func (b *base) ReceiveDocument(doc *spec.OpenAPI) {
	b.doc = doc
}

func (b *base) HasPath(path string) bool {
	for _, p := range b.paths {
		if p == path {
			return true
		}
	}
	return false
}

// schemaJSON renders the document as compact JSON for embedding in shells.
func (b *base) schemaJSON() ([]byte, error) {
	if b.doc == nil {
		return nil, ErrNoDocument
	}
	return json.Marshal(b.doc)
}

// documentTitle returns the document title, falling back to "API".
func (b *base) documentTitle() string {
	if b.doc == nil || b.doc.Info.Title == "" {
		return "API"
	}
	return b.doc.Info.Title
}

// applyOptions folds option functions onto a seeded Options value.
func applyOptions(o Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
