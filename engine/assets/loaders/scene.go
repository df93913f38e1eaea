package loaders

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/spaghettifunk/glshapes/engine/resources"
)

// SceneLoader decodes TOML/YAML scene descriptions.
type SceneLoader struct{}

func (sl *SceneLoader) Load(fsys fs.FS, p string) (*resources.Resource, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", p, err)
	}
	scene, err := resources.DecodeScene(p, data)
	if err != nil {
		return nil, err
	}
	return &resources.Resource{
		Name:     strings.TrimSuffix(path.Base(p), path.Ext(p)),
		FullPath: p,
		Type:     resources.ResourceTypeScene,
		DataSize: uint64(len(data)),
		Data:     scene,
	}, nil
}

func (sl *SceneLoader) Unload(r *resources.Resource) error {
	r.Data = nil
	return nil
}
