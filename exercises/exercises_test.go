package exercises

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spaghettifunk/glshapes/engine"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

func init() {
	core.SetLogOutput(io.Discard)
}

func TestNames(t *testing.T) {
	want := []string{"ex06", "ex06b", "ex07", "ex08", "ex10"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLoadBuiltins(t *testing.T) {
	tests := []struct {
		name     string
		shapes   int
		vertices []int
	}{
		{"ex06", 1, []int{6}},
		{"ex06b", 1, []int{6}},
		// circle, octagon, pentagon, pac-man, pizza, star
		{"ex07", 6, []int{102, 10, 7, 52, 52, 12}},
		{"ex08", 1, []int{501}},
		{"ex10", 4, []int{6, 3, 6, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := Load(tt.name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.name, err)
			}
			if len(scene.Shapes) != tt.shapes {
				t.Fatalf("shapes = %d, want %d", len(scene.Shapes), tt.shapes)
			}
			for i, shape := range scene.Shapes {
				verts, _, err := shape.Generate()
				if err != nil {
					t.Fatalf("shape %s: %v", shape.Name, err)
				}
				if len(verts) != tt.vertices[i] {
					t.Errorf("shape %s: %d vertices, want %d", shape.Name, len(verts), tt.vertices[i])
				}
			}
		})
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("ex99"); !errors.Is(err, core.ErrUnknownExercise) {
		t.Errorf("Load(ex99) error = %v, want ErrUnknownExercise", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "square.toml")
	data := []byte(`
[[shapes]]
kind = "rectangle"
min = [-0.5, -0.5]
max = [0.5, 0.5]
`)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	scene, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if scene.Name != "square" {
		t.Errorf("Name = %q, want file base name", scene.Name)
	}
}

func newHeadless(t *testing.T, name string) (*SceneGame, *engine.Engine) {
	t.Helper()
	scene, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	game, err := NewSceneGame(scene, "", Assets())
	if err != nil {
		t.Fatal(err)
	}
	game.ApplicationConfig.MaxFrames = 3
	e, err := engine.NewHeadless(game.Game)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() {
		if err := e.Shutdown(); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	})
	return game, e
}

func TestRunAllExercisesHeadless(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			game, e := newHeadless(t, name)
			if err := e.Run(); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(game.Commands()) == 0 {
				t.Error("no draw commands")
			}
		})
	}
}

func TestEx06Passes(t *testing.T) {
	for _, name := range []string{"ex06", "ex06b"} {
		t.Run(name, func(t *testing.T) {
			game, _ := newHeadless(t, name)
			checkPolygonModePasses(t, game.Commands())
		})
	}
}

func checkPolygonModePasses(t *testing.T, cmds []metadata.DrawCommand) {
	t.Helper()
	want := []struct {
		pm           metadata.PolygonMode
		first, count uint32
	}{
		{metadata.PolygonModeFill, 0, 3},
		{metadata.PolygonModeLine, 3, 3},
		{metadata.PolygonModePoint, 0, 3},
	}
	if len(cmds) != len(want) {
		t.Fatalf("commands = %d, want %d", len(cmds), len(want))
	}
	for i, w := range want {
		c := cmds[i]
		if c.Mode != metadata.DrawModeTriangles || c.PolygonMode != w.pm || c.First != w.first || c.Count != w.count {
			t.Errorf("command %d = %s/%s [%d,+%d], want triangles/%s [%d,+%d]",
				i, c.Mode, c.PolygonMode, c.First, c.Count, w.pm, w.first, w.count)
		}
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestSnapshotEx07(t *testing.T) {
	_, e := newHeadless(t, "ex07")
	out := filepath.Join(t.TempDir(), "ex07.png")
	if err := e.RenderSnapshot(out); err != nil {
		t.Fatalf("RenderSnapshot() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("snapshot size = %v, want 800x600", b)
	}

	check := func(x, y int, r, g, b uint8, what string) {
		t.Helper()
		cr, cg, cb, _ := img.At(x, y).RGBA()
		if !near(uint8(cr>>8), r) || !near(uint8(cg>>8), g) || !near(uint8(cb>>8), b) {
			t.Errorf("%s pixel (%d,%d) = %d,%d,%d, want %d,%d,%d", what, x, y, cr>>8, cg>>8, cb>>8, r, g, b)
		}
	}
	// Circle at the origin.
	check(400, 300, 255, 179, 51, "circle")
	// Pac-man mouth opens to the right of its centre at (-0.6, -0.5).
	check(160+30, 450, 26, 26, 26, "pac-man mouth")
	check(160-30, 450, 255, 179, 51, "pac-man body")
	// Top left corner is background.
	check(2, 2, 26, 26, 26, "background")
}

func TestSnapshotEx06b(t *testing.T) {
	_, e := newHeadless(t, "ex06b")
	out := filepath.Join(t.TempDir(), "ex06b.png")
	if err := e.RenderSnapshot(out); err != nil {
		t.Fatalf("RenderSnapshot() error = %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		what    string
		x, y    int
		r, g, b uint8
	}{
		{"background", 2, 2, 51, 77, 77},
		{"filled triangle", 200, 350, 255, 128, 51},
		{"wireframe interior", 600, 350, 51, 77, 77},
	}
	for _, tt := range tests {
		cr, cg, cb, _ := img.At(tt.x, tt.y).RGBA()
		if !near(uint8(cr>>8), tt.r) || !near(uint8(cg>>8), tt.g) || !near(uint8(cb>>8), tt.b) {
			t.Errorf("%s pixel (%d,%d) = %d,%d,%d, want %d,%d,%d", tt.what, tt.x, tt.y, cr>>8, cg>>8, cb>>8, tt.r, tt.g, tt.b)
		}
	}
}
