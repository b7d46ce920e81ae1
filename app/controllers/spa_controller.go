package controllers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// SPAController serves the frontend build output. GET paths that look like
// client-side routes (no dot anywhere in the path, or a trailing slash)
// get the SPA root document so the browser router can take over;
// everything else is served from the asset tree as-is.
type SPAController struct {
	Assets fs.FS
}

func NewSPAController(assets fs.FS) *SPAController { return &SPAController{Assets: assets} }

func (c *SPAController) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if isHTMLRoute(r.URL.Path) {
		c.serveIndex(w, r)
		return
	}
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if _, err := fs.Stat(c.Assets, name); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, c.Assets, name)
}

func (c *SPAController) serveIndex(w http.ResponseWriter, r *http.Request) {
	body, err := fs.ReadFile(c.Assets, "index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// isHTMLRoute mirrors the asset-vs-route split the frontend expects: a dot
// anywhere in the path marks an asset request, a trailing slash always
// means a route.
func isHTMLRoute(p string) bool {
	return !strings.Contains(p, ".") || strings.HasSuffix(p, "/")
}
