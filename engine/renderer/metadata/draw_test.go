package metadata

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
)

func verts(n int) []math.Vec3 {
	out := make([]math.Vec3, n)
	for i := range out {
		out[i] = math.NewVec3(float32(i), 0, 0)
	}
	return out
}

func TestAssembleTriangles(t *testing.T) {
	tests := []struct {
		name  string
		mode  DrawMode
		count int
		want  int
	}{
		{"triangles", DrawModeTriangles, 6, 2},
		{"triangles with leftover", DrawModeTriangles, 7, 2},
		{"strip", DrawModeTriangleStrip, 5, 3},
		{"fan", DrawModeTriangleFan, 102, 100},
		{"fan too short", DrawModeTriangleFan, 2, 0},
		{"line strip", DrawModeLineStrip, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssembleTriangles(tt.mode, verts(tt.count))
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestAssembleTriangles_FanSharesFirstVertex(t *testing.T) {
	v := verts(5)
	for i, tri := range AssembleTriangles(DrawModeTriangleFan, v) {
		if tri[0] != v[0] {
			t.Errorf("triangle %d starts at %v, want %v", i, tri[0], v[0])
		}
		if tri[1] != v[i+1] || tri[2] != v[i+2] {
			t.Errorf("triangle %d = %v", i, tri)
		}
	}
}

func TestAssembleLines(t *testing.T) {
	tests := []struct {
		mode DrawMode
		n    int
		want int
	}{
		{DrawModeLines, 5, 2},
		{DrawModeLineStrip, 501, 500},
		{DrawModeLineLoop, 4, 4},
		{DrawModeLineLoop, 2, 1},
		{DrawModePoints, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := AssembleLines(tt.mode, verts(tt.n)); len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
	if edges := TriangleEdges(AssembleTriangles(DrawModeTriangles, verts(6))); len(edges) != 6 {
		t.Errorf("TriangleEdges len = %d, want 6", len(edges))
	}
}

func TestDrawCommandRange(t *testing.T) {
	g := &Geometry{Vertices: verts(6)}
	tests := []struct {
		first, count uint32
		want         int
	}{
		{0, 3, 3},
		{3, 3, 3},
		{4, 10, 2},
		{6, 1, 0},
		{1, 4294967295, 5},
	}
	for _, tt := range tests {
		cmd := DrawCommand{Geometry: g, First: tt.first, Count: tt.count}
		if got := cmd.Range(); len(got) != tt.want {
			t.Errorf("Range(first=%d,count=%d) len = %d, want %d", tt.first, tt.count, len(got), tt.want)
		}
	}
	if (DrawCommand{}).Range() != nil {
		t.Error("Range() without geometry should be nil")
	}
}

func TestParseModes(t *testing.T) {
	for mode, name := range drawModeNames {
		got, err := ParseDrawMode(name)
		if err != nil || got != mode {
			t.Errorf("ParseDrawMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseDrawMode("quads"); !errors.Is(err, core.ErrUnknownDrawMode) {
		t.Errorf("ParseDrawMode(quads) error = %v", err)
	}

	for in, want := range map[string]PolygonMode{"": PolygonModeFill, "LINE": PolygonModeLine, "point": PolygonModePoint} {
		got, err := ParsePolygonMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePolygonMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolygonMode("dots"); err == nil {
		t.Error("ParsePolygonMode(dots) expected error")
	}
}
