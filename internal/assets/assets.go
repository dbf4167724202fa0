// Package assets embeds the site's stylesheet and script.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// Static returns the embedded static directory rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("assets: " + err.Error())
	}
	return sub
}

// Handler serves the embedded files. Mount it with the /static prefix
// stripped.
func Handler() http.Handler {
	return http.FileServer(http.FS(Static()))
}
