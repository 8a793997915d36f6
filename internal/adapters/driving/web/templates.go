package web

import (
	"html/template"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// acceptedExtensions populates the file input's accept attribute.
var acceptedExtensions = []string{".txt", ".md", ".html", ".htm", ".csv", ".tsv", ".xlsx", ".docx", ".eml", ".mbox"}

type indexData struct {
	Settings   domain.Settings
	Estimators []domain.Estimator
	Accept     string
	MinTopics  int
	MaxTopics  int
}

type resultData struct {
	Response TopicsResponse
	Chart    string
	Height   string
	Error    string
}

var funcs = template.FuncMap{
	"join":    strings.Join,
	"percent": func(v float64) float64 { return v * 100 },
}

var indexTemplate = template.Must(template.New("index").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>topica</title></head>
<body>
<h1>Topic modelling</h1>
<form action="/topics" method="post" enctype="multipart/form-data">
  <p><label>Documents <input type="file" name="files" multiple required accept="{{.Accept}}"></label></p>
  <p><label>Stopwords (optional, one per line) <input type="file" name="stopwords" accept=".txt"></label></p>
  <p><label>Topics
    <input type="range" name="topics" min="{{.MinTopics}}" max="{{.MaxTopics}}" value="{{.Settings.Model.NumTopics}}"
      oninput="this.nextElementSibling.value = this.value">
    <output>{{.Settings.Model.NumTopics}}</output></label></p>
  <p><label>Words per topic <input type="number" name="top_words" min="1" value="{{.Settings.Model.TopWords}}"></label></p>
  <p><label>Text column <input type="number" name="column" min="0" value="{{.Settings.Ingest.TextColumn}}"></label></p>
  <p><label>Seed <input type="number" name="seed" min="0" value="{{.Settings.Model.Seed}}"></label></p>
  <p><label>Estimator <select name="estimator">
  {{- range .Estimators}}
    <option value="{{.}}"{{if eq . $.Settings.Model.Estimator}} selected{{end}}>{{.Description}}</option>
  {{- end}}
  </select></label></p>
  <p><button type="submit">Model topics</button></p>
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>topica results</title></head>
<body>
{{- if .Error}}
<h1>Modelling failed</h1>
<p class="error">{{.Error}}</p>
{{- else}}
<h1>Topics</h1>
<p>{{.Response.Documents}} documents, {{.Response.Vocabulary}} terms, estimator {{.Response.Estimator}}.</p>
<ol>
{{- range .Response.Topics}}
  <li><strong>{{.Label}}</strong>: {{join .Words ", "}} ({{.DominantDocuments}} documents)</li>
{{- end}}
</ol>
<h2>Average topic distribution</h2>
<ul>
{{- range $i, $v := .Response.AverageDistribution}}
  <li>{{(index $.Response.Topics $i).Label}}: {{printf "%.1f" (percent $v)}}%</li>
{{- end}}
</ul>
<iframe title="chart" style="border:0;width:100%;height:{{.Height}}" srcdoc="{{.Chart}}"></iframe>
<h2>Cleaned documents</h2>
<ul>
{{- range .Response.Previews}}
  <li><em>{{.Title}}</em>: {{.Cleaned}}</li>
{{- end}}
</ul>
{{- end}}
<p><a href="/">Model another corpus</a></p>
</body>
</html>
`))
