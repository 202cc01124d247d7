// Package swagger serves the OpenAPI document and a ReDoc page for it.
package swagger

import (
	"context"
	_ "embed"
	"net/http"
)

// OpenAPI is the API description served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte

// RedocScript is where the API docs page loads ReDoc from.
const RedocScript = "https://cdn.redoc.ly/redoc/v2.1.5/bundles/redoc.standalone.js"

// document is a static body served on GET.
type document struct {
	contentType string
	body        []byte
}

func (d document) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", d.contentType)
	_, _ = w.Write(d.body)
}

// Register mounts /api-docs (ReDoc) and /openapi.yaml on mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("swagger: nil mux")
	}
	mux.Handle("/api-docs", document{contentType: "text/html; charset=utf-8", body: []byte(redocPage)})
	mux.Handle("/openapi.yaml", document{contentType: "application/yaml; charset=utf-8", body: OpenAPI})
}

const redocPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>College Rankings API</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="api"></redoc>
    <script src="` + RedocScript + `"></script>
    <script>Redoc.init('/openapi.yaml', { hideDownloadButton: false }, document.getElementById('api'));</script>
  </body>
</html>`
