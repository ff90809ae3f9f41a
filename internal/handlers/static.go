package handlers

import (
	"io/fs"
	"net/http"
	"strings"
)

// StaticHandler serves embedded assets mounted under /static/.
func StaticHandler(assets fs.FS) http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(assets)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/static/")

		// Directory listings are not exposed.
		if path == "" || strings.HasSuffix(path, "/") {
			http.NotFound(w, r)
			return
		}

		if strings.HasSuffix(path, ".js") {
			w.Header().Set("Content-Type", "application/javascript")
		}
		files.ServeHTTP(w, r)
	})
}
