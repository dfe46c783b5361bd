package render

import "fmt"

const swaggerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Swagger UI</title>
    <link rel="stylesheet" href="%s">
    %s
    %s
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="%s"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                spec: %s,
                dom_id: '#swagger-ui',
                deepLinking: true,
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.SwaggerUIStandalonePreset
                ],
                layout: "BaseLayout"
            });
        };
    </script>
</body>
</html>`

// SwaggerPlugin serves interactive Swagger UI documentation.
type SwaggerPlugin struct {
	base
	jsURL  string
	cssURL string
}

// NewSwaggerPlugin creates a Swagger UI plugin, served at /swagger by
// default.
func NewSwaggerPlugin(opts ...Option) *SwaggerPlugin {
	o := applyOptions(Options{
		Paths:     []string{"/swagger"},
		MediaType: "text/html; charset=utf-8",
		Favicon:   defaultFavicon,
		Style:     defaultStyle,
		Version:   "5.17.14",
	}, opts)

	jsURL := o.JSURL
	if jsURL == "" {
		jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/swagger-ui-dist@%s/swagger-ui-bundle.js", o.Version)
	}
	cssURL := o.CSSURL
	if cssURL == "" {
		cssURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/swagger-ui-dist@%s/swagger-ui.css", o.Version)
	}

	return &SwaggerPlugin{base: newBase(o), jsURL: jsURL, cssURL: cssURL}
}

// Render produces the Swagger UI shell with the document embedded.
func (p *SwaggerPlugin) Render() ([]byte, error) {
	schemaJSON, err := p.schemaJSON()
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(swaggerTemplate,
		p.documentTitle(), p.cssURL, p.favicon, p.style, p.jsURL, schemaJSON)

	return []byte(html), nil
}
