package exercises

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spaghettifunk/glshapes/engine/assets/loaders"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/resources"
)

//go:embed scenes shaders
var content embed.FS

// Assets returns the built-in scenes and shader sources.
func Assets() fs.FS {
	return content
}

// Names lists the built-in exercises in order.
func Names() []string {
	entries, err := fs.ReadDir(content, "scenes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load decodes the built-in exercise with the given name.
func Load(name string) (*resources.Scene, error) {
	entries, err := fs.ReadDir(content, "scenes")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) != name {
			continue
		}
		return loadScene(content, path.Join("scenes", e.Name()))
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", core.ErrUnknownExercise, name, strings.Join(Names(), ", "))
}

// LoadFile decodes a scene stored outside the binary.
func LoadFile(filename string) (*resources.Scene, error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	return loadScene(os.DirFS(dir), base)
}

func loadScene(fsys fs.FS, p string) (*resources.Scene, error) {
	loader := &loaders.SceneLoader{}
	res, err := loader.Load(fsys, p)
	if err != nil {
		return nil, err
	}
	scene := res.Data.(*resources.Scene)
	_ = loader.Unload(res)
	return scene, nil
}
