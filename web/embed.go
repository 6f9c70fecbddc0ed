package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets: stylesheets and stock logos.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// Static returns the static directory as its own file system root.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Logos returns the directory holding the "{symbol}.svg" logo images.
func Logos() fs.FS {
	sub, err := fs.Sub(FS, "static/logos")
	if err != nil {
		panic(err)
	}
	return sub
}
