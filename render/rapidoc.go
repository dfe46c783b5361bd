package render

import "fmt"

const rapidocTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - RapiDoc</title>
    %s
    %s
    <script type="module" src="%s"></script>
</head>
<body>
    <rapi-doc
        spec-url=""
        render-style="read"
        theme="light"
        show-header="false"
    >
        <script type="application/json">%s</script>
    </rapi-doc>
</body>
</html>`

// RapidocPlugin serves RapiDoc documentation.
type RapidocPlugin struct {
	base
	jsURL string
}

// NewRapidocPlugin creates a RapiDoc plugin, served at /rapidoc by default.
func NewRapidocPlugin(opts ...Option) *RapidocPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/rapidoc"},
		MediaType: "text/html; charset=utf-8",
		Favicon:   defaultFavicon,
		Style:     defaultStyle,
		Version:   "9.3.4",
	}, opts)

	jsURL := o.JSURL
	if jsURL == "" {
		jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/rapidoc@%s/dist/rapidoc-min.js", o.Version)
	}

	return &RapidocPlugin{base: newBase(o), jsURL: jsURL}
}

// Render produces the RapiDoc shell with the document embedded.
func (p *RapidocPlugin) Render() ([]byte, error) {
	schemaJSON, err := p.schemaJSON()
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(rapidocTemplate,
		p.documentTitle(), p.favicon, p.style, p.jsURL, schemaJSON)

	return []byte(html), nil
}
