// Package web holds the host pages the storefront renders into and the
// static assets they link.
package web

import (
	"embed"
	"io/fs"
)

var (
	//go:embed pages/*.html
	pages embed.FS

	//go:embed assets
	assets embed.FS
)

// Pages returns the host pages rooted at their directory.
func Pages() fs.FS {
	return subdir(pages, "pages")
}

// Assets returns the stylesheet and images served under /assets.
func Assets() fs.FS {
	return subdir(assets, "assets")
}

func subdir(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
