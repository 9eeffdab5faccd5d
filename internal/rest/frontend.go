package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves static files from a directory, falling back to the
// index file for paths that do not exist on disk (client-side routing).
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}
	http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
}
