package render

import "fmt"

const redocTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Redoc</title>
    %s
    %s
    %s
</head>
<body>
    <div id="redoc"></div>
    <script src="%s"></script>
    <script>
        Redoc.init(
            %s,
            {},
            document.getElementById('redoc')
        );
    </script>
</body>
</html>`

const redocFonts = `<link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">`

// RedocPlugin serves Redoc documentation.
type RedocPlugin struct {
	base
	jsURL string
	fonts string
}

// NewRedocPlugin creates a Redoc plugin, served at /redoc by default. The
// Google Fonts stylesheet Redoc themes expect is on by default.
func NewRedocPlugin(opts ...Option) *RedocPlugin {
	o := applyOptions(Options{
		Paths:       []string{"/redoc"},
		MediaType:   "text/html; charset=utf-8",
		Favicon:     defaultFavicon,
		Style:       defaultStyle,
		Version:     "2.1.3",
		GoogleFonts: true,
	}, opts)

	jsURL := o.JSURL
	if jsURL == "" {
		jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/redoc@%s/bundles/redoc.standalone.js", o.Version)
	}

	fonts := ""
	if o.GoogleFonts {
		fonts = redocFonts
	}

	return &RedocPlugin{base: newBase(o), jsURL: jsURL, fonts: fonts}
}

// Render produces the Redoc shell with the document embedded.
func (p *RedocPlugin) Render() ([]byte, error) {
	schemaJSON, err := p.schemaJSON()
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(redocTemplate,
		p.documentTitle(), p.fonts, p.favicon, p.style, p.jsURL, schemaJSON)

	return []byte(html), nil
}
