// Package web serves the embedded entry page and static assets.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html static
var content embed.FS

// Handler serves the entry page at / and assets under /static/.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(content))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			page, err := content.ReadFile("index.html")
			if err != nil {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			_, _ = w.Write(page)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
