package dashboard

import (
	"bytes"
	"html/template"
)

// PageConfig controls the HTML shell around the figure.
type PageConfig struct {
	Title       string
	PlotlyJSURL string
	// Background is the page background URL, relative to the page.
	Background string
}

type pageData struct {
	PageConfig
	Figure template.JS
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyJSURL}}" charset="utf-8"></script>
<style>
html, body { margin: 0; height: 100%; }
#page {
  position: fixed; top: 0; left: 0; z-index: 1000;
  width: 100%; height: 100%;
  vertical-align: middle; text-align: center;
  background-image: url("{{.Background}}");
  background-size: 100%;
  background-color: rgba(0, 0, 0, 0.55);
  background-blend-mode: darken;
}
#graph { display: inline-block; margin: 40px 30px 40px 40px; }
</style>
</head>
<body>
<div id="page"><div id="graph"></div></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("graph", figure);
</script>
</body>
</html>
`))

// renderPage embeds figureJSON, which must be the output of json.Marshal
// (it escapes '<', '>' and '&').
func renderPage(cfg PageConfig, figureJSON []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{PageConfig: cfg, Figure: template.JS(figureJSON)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//Personal.AI order the ending
