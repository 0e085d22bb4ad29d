// Package static serves the board's CSS and other assets.
package static

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

// New returns a read-only filesystem over the embedded assets. When
// overrideDir is set, files found there shadow the embedded ones.
func New(embedded fs.FS, overrideDir string) afero.Fs {
	var fsys afero.Fs = afero.FromIOFS{FS: embedded}
	if overrideDir != "" {
		layer := afero.NewBasePathFs(afero.NewOsFs(), overrideDir)
		fsys = afero.NewCopyOnWriteFs(fsys, layer)
	}
	return afero.NewReadOnlyFs(fsys)
}

// Handler serves files from fsys for a route ending in "/*".
func Handler(fsys afero.Fs) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := path.Clean(strings.TrimPrefix(c.Param("*"), "/"))
		if !fs.ValidPath(name) || name == "." {
			return echo.ErrNotFound
		}

		f, err := fsys.Open(name)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			return echo.ErrNotFound
		}

		c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
		http.ServeContent(c.Response(), c.Request(), info.Name(), info.ModTime(), f)
		return nil
	}
}
