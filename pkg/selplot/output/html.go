package output

import (
	"encoding/json"
	"html/template"
	"io"
)

// ToJSON serializes a document to JSON.
func ToJSON(v VegaLite, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
<style>
#vis.vega-embed { width: 100%; display: flex; }
#vis.vega-embed details, #vis.vega-embed details summary { position: relative; }
</style>
</head>
<body>
<div id="vis"></div>
<script type="text/javascript">
(function(vegaEmbed) {
  var spec = {{.Spec}};
  var embedOpt = {"mode": "vega-lite"};

  function showError(el, error) {
    el.innerHTML = ('<div style="color:red;"><p>JavaScript Error: ' + error.message + '</p></div>');
    throw error;
  }
  var el = document.getElementById('vis');
  vegaEmbed("#vis", spec, embedOpt).catch(function(error) { showError(el, error); });
})(vegaEmbed);
</script>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title string
	Spec  json.RawMessage
}

// RenderHTML writes a self-contained HTML page embedding the document.
func RenderHTML(w io.Writer, v VegaLite) error {
	spec, err := ToJSON(v, false)
	if err != nil {
		return err
	}

	data := pageData{Title: "selplot", Spec: spec}
	if v.Title != nil && v.Title.Text != "" {
		data.Title = v.Title.Text
	}

	return page.Execute(w, data)
}
