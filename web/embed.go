package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var publicFS embed.FS

// Public is the static site root (index.html, styles.css).
func Public() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
