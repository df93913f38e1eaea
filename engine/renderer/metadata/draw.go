package metadata

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
)

type DrawMode uint8

const (
	DrawModePoints DrawMode = iota
	DrawModeLines
	DrawModeLineStrip
	DrawModeLineLoop
	DrawModeTriangles
	DrawModeTriangleStrip
	DrawModeTriangleFan
)

var drawModeNames = map[DrawMode]string{
	DrawModePoints:        "points",
	DrawModeLines:         "lines",
	DrawModeLineStrip:     "line_strip",
	DrawModeLineLoop:      "line_loop",
	DrawModeTriangles:     "triangles",
	DrawModeTriangleStrip: "triangle_strip",
	DrawModeTriangleFan:   "triangle_fan",
}

func (m DrawMode) String() string {
	if s, ok := drawModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("DrawMode(%d)", m)
}

// MinVertices is the smallest vertex count that produces a primitive.
func (m DrawMode) MinVertices() uint32 {
	switch m {
	case DrawModePoints:
		return 1
	case DrawModeLines, DrawModeLineStrip, DrawModeLineLoop:
		return 2
	default:
		return 3
	}
}

func ParseDrawMode(s string) (DrawMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range drawModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnknownDrawMode, s)
}

type PolygonMode uint8

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

func (p PolygonMode) String() string {
	switch p {
	case PolygonModeFill:
		return "fill"
	case PolygonModeLine:
		return "line"
	case PolygonModePoint:
		return "point"
	}
	return fmt.Sprintf("PolygonMode(%d)", p)
}

func ParsePolygonMode(s string) (PolygonMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return PolygonModeFill, nil
	case "line", "wireframe":
		return PolygonModeLine, nil
	case "point", "points":
		return PolygonModePoint, nil
	}
	return 0, fmt.Errorf("%w: polygon mode %q", core.ErrUnknownDrawMode, s)
}

/**
 * @brief A single glDrawArrays-style call against an uploaded geometry.
 */
type DrawCommand struct {
	Geometry *Geometry
	Mode     DrawMode
	/** @brief Rasterisation of triangle primitives. Ignored for points and lines. */
	PolygonMode PolygonMode
	First       uint32
	/** @brief Number of vertices to draw. */
	Count     uint32
	PointSize float32
}

// Range clips the command to the geometry and returns the vertices it covers.
func (c DrawCommand) Range() []math.Vec3 {
	if c.Geometry == nil {
		return nil
	}
	verts := c.Geometry.Vertices
	n := uint32(len(verts))
	if c.First >= n {
		return nil
	}
	end := n
	if c.Count <= n-c.First {
		end = c.First + c.Count
	}
	return verts[c.First:end]
}

// AssembleTriangles expands a triangle primitive mode into individual
// triangles. Other modes yield nothing.
func AssembleTriangles(mode DrawMode, v []math.Vec3) [][3]math.Vec3 {
	var out [][3]math.Vec3
	switch mode {
	case DrawModeTriangles:
		for i := 0; i+2 < len(v); i += 3 {
			out = append(out, [3]math.Vec3{v[i], v[i+1], v[i+2]})
		}
	case DrawModeTriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				out = append(out, [3]math.Vec3{v[i], v[i+1], v[i+2]})
			} else {
				out = append(out, [3]math.Vec3{v[i+1], v[i], v[i+2]})
			}
		}
	case DrawModeTriangleFan:
		for i := 1; i+1 < len(v); i++ {
			out = append(out, [3]math.Vec3{v[0], v[i], v[i+1]})
		}
	}
	return out
}

// AssembleLines expands a line primitive mode into segments. Triangle modes
// are not handled here; see TriangleEdges.
func AssembleLines(mode DrawMode, v []math.Vec3) [][2]math.Vec3 {
	var out [][2]math.Vec3
	switch mode {
	case DrawModeLines:
		for i := 0; i+1 < len(v); i += 2 {
			out = append(out, [2]math.Vec3{v[i], v[i+1]})
		}
	case DrawModeLineStrip, DrawModeLineLoop:
		for i := 0; i+1 < len(v); i++ {
			out = append(out, [2]math.Vec3{v[i], v[i+1]})
		}
		if mode == DrawModeLineLoop && len(v) > 2 {
			out = append(out, [2]math.Vec3{v[len(v)-1], v[0]})
		}
	}
	return out
}

// TriangleEdges returns the three edges of every triangle, the segments drawn
// with PolygonModeLine.
func TriangleEdges(tris [][3]math.Vec3) [][2]math.Vec3 {
	out := make([][2]math.Vec3, 0, len(tris)*3)
	for _, t := range tris {
		out = append(out,
			[2]math.Vec3{t[0], t[1]},
			[2]math.Vec3{t[1], t[2]},
			[2]math.Vec3{t[2], t[0]},
		)
	}
	return out
}

func (m DrawMode) IsTriangle() bool {
	return m == DrawModeTriangles || m == DrawModeTriangleStrip || m == DrawModeTriangleFan
}
