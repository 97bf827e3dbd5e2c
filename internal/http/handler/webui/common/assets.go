package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assetsFS embed.FS

// NewHandler serves the embedded stylesheets and scripts.
func NewHandler() http.Handler {
	root, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	fileServer := http.FileServerFS(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
