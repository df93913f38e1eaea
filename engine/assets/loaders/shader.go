package loaders

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/spaghettifunk/glshapes/engine/resources"
)

// ShaderLoader reads GLSL source text.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(fsys fs.FS, p string) (*resources.Resource, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading shader %s: %w", p, err)
	}
	return &resources.Resource{
		Name:     path.Base(p),
		FullPath: p,
		Type:     resources.ResourceTypeShader,
		DataSize: uint64(len(data)),
		Data:     string(data),
	}, nil
}

func (sl *ShaderLoader) Unload(r *resources.Resource) error {
	r.Data = nil
	r.DataSize = 0
	return nil
}
