package scholar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register handlers. It is
// satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

const docsPage = `<!doctype html>
<html>
<head><title>Semantic Scholar Demo</title></head>
<body>
<h1>Semantic Scholar Demo</h1>
<p>Look up a researcher's cross-references by ORCID:
<code>GET /api/orcid/{orcid}</code></p>
<p>The machine-readable contract, including the per-field
<code>bioregistry</code> extension blocks, is served at
<a href="/openapi.json">/openapi.json</a>.</p>
</body>
</html>`

// registerRoutes mounts the lookup endpoint, the OpenAPI document, the docs
// page, and a root redirect to the docs. It returns the mounted patterns.
func (a *api) registerRoutes(mux Mux, basePath string) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("scholar: missing mux")
	}

	doc, err := a.buildDocument()
	if err != nil {
		return nil, err
	}
	rendered, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scholar: encode openapi document: %w", err)
	}

	lookup := "GET " + mountPath(basePath, a.opts.RoutePath)
	openapiPath := "GET " + mountPath(basePath, "/openapi.json")
	docsPath := "GET " + mountPath(basePath, "/docs")
	rootPath := "GET " + mountPath(basePath, "/{$}")

	mux.Handle(lookup, a.lookupHandler())
	mux.Handle(openapiPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(rendered)
	}))
	mux.Handle(docsPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(docsPage))
	}))
	mux.Handle(rootPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, mountPath(basePath, "/docs"), http.StatusTemporaryRedirect)
	}))

	return []string{lookup, openapiPath, docsPath, rootPath}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
