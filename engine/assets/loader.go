package assets

import (
	"io/fs"

	"github.com/spaghettifunk/glshapes/engine/resources"
)

type Loader interface {
	Load(fsys fs.FS, path string) (*resources.Resource, error)
	Unload(*resources.Resource) error
}
