package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static holds the embedded assets rooted at the static directory: styles,
// scripts, the web manifest and the service worker.
var Static = mustSub(files, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
