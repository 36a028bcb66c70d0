package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
)

//go:embed web
var webFS embed.FS

// CreateStaticHandler serves the embedded comparison page
func CreateStaticHandler() http.Handler {
	content, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatalf("[Server] Embedded web assets missing: %v", err)
	}
	return http.FileServer(http.FS(content))
}
