package render

import "fmt"

const scalarTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Scalar</title>
    %s
    %s
</head>
<body>
    <script
        id="api-reference"
        data-configuration='{"theme": "purple"}'
        type="application/json"
    >%s</script>
    <script src="%s"></script>
</body>
</html>`

// ScalarPlugin serves Scalar API Reference documentation.
type ScalarPlugin struct {
	base
	jsURL string
}

// NewScalarPlugin creates a Scalar plugin, served at /scalar by default.
func NewScalarPlugin(opts ...Option) *ScalarPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/scalar"},
		MediaType: "text/html; charset=utf-8",
		Favicon:   defaultFavicon,
		Style:     defaultStyle,
		Version:   "1.24.0",
	}, opts)

	jsURL := o.JSURL
	if jsURL == "" {
		jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@scalar/api-reference@%s", o.Version)
	}

	return &ScalarPlugin{base: newBase(o), jsURL: jsURL}
}

// Render produces the Scalar shell with the document embedded.
func (p *ScalarPlugin) Render() ([]byte, error) {
	schemaJSON, err := p.schemaJSON()
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(scalarTemplate,
		p.documentTitle(), p.favicon, p.style, schemaJSON, p.jsURL)

	return []byte(html), nil
}
