package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embeddedTemplates embed.FS

// templatesFS returns the embedded template tree rooted at templates/.
func templatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
