package ui

import (
	"embed"
	"io/fs"
)

//go:embed assets/style.css assets/script.js
var assetFS embed.FS

// Assets returns the page's static files (style.css, script.js) rooted at
// the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
