package render

import "fmt"

const stoplightTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Stoplight</title>
    <link rel="stylesheet" href="%s">
    %s
    %s
</head>
<body>
    <elements-api
        apiDescriptionDocument='%s'
        router="hash"
        layout="sidebar"
    ></elements-api>
    <script src="%s"></script>
</body>
</html>`

// StoplightPlugin serves Stoplight Elements documentation.
type StoplightPlugin struct {
	base
	jsURL  string
	cssURL string
}

// NewStoplightPlugin creates a Stoplight Elements plugin, served at
// /elements by default.
func NewStoplightPlugin(opts ...Option) *StoplightPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/elements"},
		MediaType: "text/html; charset=utf-8",
		Favicon:   defaultFavicon,
		Style:     defaultStyle,
		Version:   "8.0.4",
	}, opts)

	jsURL := o.JSURL
	if jsURL == "" {
		jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@stoplight/elements@%s/web-components.min.js", o.Version)
	}
	cssURL := o.CSSURL
	if cssURL == "" {
		cssURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@stoplight/elements@%s/styles.min.css", o.Version)
	}

	return &StoplightPlugin{base: newBase(o), jsURL: jsURL, cssURL: cssURL}
}

// Render produces the Elements shell with the document embedded.
func (p *StoplightPlugin) Render() ([]byte, error) {
	schemaJSON, err := p.schemaJSON()
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(stoplightTemplate,
		p.documentTitle(), p.cssURL, p.favicon, p.style, schemaJSON, p.jsURL)

	return []byte(html), nil
}
