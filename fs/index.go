package fs

import (
	"bytes"
	"html/template"

	"github.com/fwojciec/wikidaily"
)

// Ensure IndexRenderer implements wikidaily.IndexRenderer at compile time.
var _ wikidaily.IndexRenderer = (*IndexRenderer)(nil)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Wikipedia Featured Articles JSON</title>
    <style>
      body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell,Noto Sans,sans-serif;margin:2rem;line-height:1.5;color:#1b1f23}
      h1{font-size:1.5rem;margin-bottom:.5rem}
      h2{font-size:1.15rem;margin-top:1.5rem}
      .meta{color:#586069;font-size:.9rem;margin-bottom:1rem}
      ul{padding-left:1.2rem}
      code{background:#f6f8fa;padding:.1rem .25rem;border-radius:3px}
    </style>
  </head>
  <body>
    <h1>Wikipedia Featured Articles (TFA) Mirror</h1>
    <p class="meta">Updated: <time datetime="{{.UpdatedAt}}">{{.UpdatedAt}}</time> • Interval: every 6 hours • Timezone base: UTC+12</p>
    <p>Each link returns a JSON document with fields <code>timestamp</code>, <code>title</code>, <code>description</code>, <code>extract</code>, <code>extract_html</code>.</p>
    <ul>
{{- range .Featured}}
      <li><a href="{{.}}">{{.}}</a></li>
{{- end}}
    </ul>
    <p>Source: Wikimedia Featured API (<code>/feed/v1/wikipedia/{lang}/featured/{yyyy}/{mm}/{dd}</code>, field <code>tfa</code>). Title fallback: <code>titles.display</code> → <code>titles.normalized</code> → <code>title</code>. If missing, we backfill to the most recent available day.</p>
{{- if .Words}}
    <h2>Wiktionary words</h2>
    <p>Each link returns a JSON document with fields <code>word</code>, <code>partOfSpeech</code>, <code>descriptions</code> or <code>definitions</code>, <code>date</code>, and <code>lang</code> for foreign words.</p>
    <ul>
{{- range .Words}}
      <li><a href="{{.}}">{{.}}</a></li>
{{- end}}
    </ul>
{{- end}}
  </body>
</html>
`))

// IndexRenderer renders index.html with html/template.
type IndexRenderer struct{}

// NewIndexRenderer creates a new IndexRenderer.
func NewIndexRenderer() *IndexRenderer {
	return &IndexRenderer{}
}

// RenderIndex renders the landing page listing the published files.
func (r *IndexRenderer) RenderIndex(page *wikidaily.IndexPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
