package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glorpus-work/hyprtheme/pkg/model"
)

// CatalogServer serves catalog documents keyed by request path.
type CatalogServer struct {
	*httptest.Server
	Requests int
}

// NewCatalogServer starts a server answering each path in docs with the
// JSON-encoded records. Unknown paths get a 404.
func NewCatalogServer(t *testing.T, docs map[string][]model.CatalogRecord) *CatalogServer {
	t.Helper()
	cs := &CatalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.Requests++
		records, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	t.Cleanup(cs.Close)
	return cs
}

// URLFor returns the absolute URL of path on the server.
func (cs *CatalogServer) URLFor(path string) string {
	return cs.URL + path
}
