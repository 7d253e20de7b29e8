package sections

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets holds the stylesheet and script referenced by Layout, served
// under /static/.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
