package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets served under /static.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// Static returns the assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
