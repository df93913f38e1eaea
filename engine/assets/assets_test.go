package assets

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/resources"
)

func init() {
	core.SetLogOutput(io.Discard)
}

const testScene = `
name = "tri"
[[shapes]]
kind = "triangle"
vertices = [[-0.5, -0.5], [0.0, 0.5], [0.5, -0.5]]
`

func TestDetermineAssetType(t *testing.T) {
	tests := map[string]resources.ResourceType{
		"shaders/basic.vert": resources.ResourceTypeShader,
		"shaders/basic.FRAG": resources.ResourceTypeShader,
		"x.glsl":             resources.ResourceTypeShader,
		"scenes/ex07.toml":   resources.ResourceTypeScene,
		"scenes/ex08.yml":    resources.ResourceTypeScene,
		"README.md":          resources.ResourceTypeNone,
	}
	for p, want := range tests {
		if got := determineAssetType(p); got != want {
			t.Errorf("determineAssetType(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestAssetManager_Fallback(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/a.vert":  {Data: []byte("#version 330 core\nvoid main() {}\n")},
		"scenes/tri.toml": {Data: []byte(testScene)},
		"notes.txt":       {Data: []byte("ignored")},
	}
	am := NewAssetManager()
	if err := am.Initialize("", fsys); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer am.Shutdown()

	if am.Watching() {
		t.Error("Watching() = true for an embedded file system")
	}
	if n := len(am.Assets(resources.ResourceTypeShader)); n != 1 {
		t.Errorf("shader assets = %d, want 1", n)
	}

	res, err := am.LoadAsset("shaders/a.vert")
	if err != nil {
		t.Fatalf("LoadAsset(shader) error = %v", err)
	}
	if src, ok := res.Data.(string); !ok || src == "" {
		t.Errorf("shader data = %#v", res.Data)
	}

	res, err = am.LoadAsset("scenes/tri.toml")
	if err != nil {
		t.Fatalf("LoadAsset(scene) error = %v", err)
	}
	if scene, ok := res.Data.(*resources.Scene); !ok || scene.Name != "tri" {
		t.Errorf("scene data = %#v", res.Data)
	}
	if err := am.UnloadAsset(res); err != nil || res.Data != nil {
		t.Errorf("UnloadAsset() = %v, data %v", err, res.Data)
	}

	if _, err := am.LoadAsset("notes.txt"); !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("LoadAsset(notes.txt) error = %v, want ErrAssetNotFound", err)
	}
}

func TestAssetManager_NoAssets(t *testing.T) {
	am := NewAssetManager()
	if err := am.Initialize(filepath.Join(t.TempDir(), "missing"), nil); !errors.Is(err, core.ErrAssetNotFound) {
		t.Errorf("Initialize() error = %v, want ErrAssetNotFound", err)
	}
}

func TestAssetManager_WatchesDirectory(t *testing.T) {
	dir := t.TempDir()
	shaderDir := filepath.Join(dir, "shaders")
	if err := os.MkdirAll(shaderDir, 0o755); err != nil {
		t.Fatal(err)
	}
	frag := filepath.Join(shaderDir, "basic.frag")
	if err := os.WriteFile(frag, []byte("// v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	am := NewAssetManager()
	if err := am.Initialize(dir, nil); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer am.Shutdown()
	if !am.Watching() {
		t.Fatal("Watching() = false for a directory")
	}

	if err := os.WriteFile(frag, []byte("// v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-am.Changes():
		if p != "shaders/basic.frag" {
			t.Errorf("change path = %q", p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	res, err := am.LoadAsset("shaders/basic.frag")
	if err != nil {
		t.Fatal(err)
	}
	if res.Data.(string) != "// v2\n" {
		t.Errorf("reloaded source = %q", res.Data)
	}
}

func TestAssetManager_ShutdownWhileWatching(t *testing.T) {
	dir := t.TempDir()
	am := NewAssetManager()
	if err := am.Initialize(dir, nil); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	// new directories make the watcher goroutine walk and add them
	for i := 0; i < 5; i++ {
		if err := os.MkdirAll(filepath.Join(dir, "sub", string(rune('a'+i))), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := am.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := am.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
	if err := am.watchRecursive(dir, false); err == nil {
		t.Error("watchRecursive() after Shutdown succeeded")
	}
}
