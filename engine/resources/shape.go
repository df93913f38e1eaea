package resources

import (
	"fmt"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

type ShapeKind string

const (
	ShapeKindPolygon   ShapeKind = "polygon"
	ShapeKindArc       ShapeKind = "arc"
	ShapeKindStar      ShapeKind = "star"
	ShapeKindSpiral    ShapeKind = "spiral"
	ShapeKindRectangle ShapeKind = "rectangle"
	ShapeKindTriangle  ShapeKind = "triangle"
	ShapeKindVertices  ShapeKind = "vertices"
)

// Shape is one vertex buffer of a scene. Which parameters matter depends
// on Kind.
type Shape struct {
	Name string    `toml:"name" yaml:"name"`
	Kind ShapeKind `toml:"kind" yaml:"kind"`

	Centre      []float32 `toml:"centre" yaml:"centre"`
	Radius      float32   `toml:"radius" yaml:"radius"`
	InnerRadius float32   `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius float32   `toml:"outer_radius" yaml:"outer_radius"`

	// polygon
	Sides int `toml:"sides" yaml:"sides"`
	// star
	Points int `toml:"points" yaml:"points"`
	// arc
	StartAngle float32 `toml:"start_angle" yaml:"start_angle"`
	EndAngle   float32 `toml:"end_angle" yaml:"end_angle"`
	Degrees    bool    `toml:"degrees" yaml:"degrees"`
	Segments   int     `toml:"segments" yaml:"segments"`
	// spiral
	Turns           int `toml:"turns" yaml:"turns"`
	SegmentsPerTurn int `toml:"segments_per_turn" yaml:"segments_per_turn"`
	// rectangle
	Min []float32 `toml:"min" yaml:"min"`
	Max []float32 `toml:"max" yaml:"max"`
	// triangle, vertices
	Vertices [][]float32 `toml:"vertices" yaml:"vertices"`
	Mode     string      `toml:"mode" yaml:"mode"`

	Draw []DrawPass `toml:"draw" yaml:"draw"`
}

// DrawPass is one draw call issued every frame against the shape's buffer.
type DrawPass struct {
	Mode        string  `toml:"mode" yaml:"mode"`
	PolygonMode string  `toml:"polygon_mode" yaml:"polygon_mode"`
	First       uint32  `toml:"first" yaml:"first"`
	Count       uint32  `toml:"count" yaml:"count"`
	PointSize   float32 `toml:"point_size" yaml:"point_size"`
}

func vec2(field string, s []float32) (math.Vec2, error) {
	switch len(s) {
	case 0:
		return math.NewVec2Zero(), nil
	case 2, 3:
		return math.NewVec2(s[0], s[1]), nil
	}
	return math.Vec2{}, fmt.Errorf("%w: %s needs 2 components, got %d", core.ErrInvalidScene, field, len(s))
}

func required(field string, s []float32) (math.Vec2, error) {
	if len(s) == 0 {
		return math.Vec2{}, fmt.Errorf("%w: %s is required", core.ErrInvalidScene, field)
	}
	return vec2(field, s)
}

func (s *Shape) angles() (float32, float32) {
	if s.Degrees {
		return math.DegToRad(s.StartAngle), math.DegToRad(s.EndAngle)
	}
	return s.StartAngle, s.EndAngle
}

// Generate evaluates the shape's closed-form formula and returns the
// vertices together with the primitive mode they were laid out for.
func (s *Shape) Generate() ([]math.Vec3, metadata.DrawMode, error) {
	centre, err := vec2("centre", s.Centre)
	if err != nil {
		return nil, 0, err
	}

	switch s.Kind {
	case ShapeKindPolygon:
		if s.Sides < 3 {
			return nil, 0, fmt.Errorf("%w: polygon needs at least 3 sides, got %d", core.ErrInvalidScene, s.Sides)
		}
		if s.Radius <= 0 {
			return nil, 0, fmt.Errorf("%w: polygon radius must be positive", core.ErrInvalidScene)
		}
		return math.GenerateRegularPolygon(s.Sides, s.Radius, centre), metadata.DrawModeTriangleFan, nil

	case ShapeKindArc:
		if s.Radius <= 0 {
			return nil, 0, fmt.Errorf("%w: arc radius must be positive", core.ErrInvalidScene)
		}
		if s.Segments < 0 {
			return nil, 0, fmt.Errorf("%w: arc segments must not be negative", core.ErrInvalidScene)
		}
		start, end := s.angles()
		if start == end {
			return nil, 0, fmt.Errorf("%w: arc has an empty angle range", core.ErrInvalidScene)
		}
		return math.GenerateArc(start, end, s.Radius, s.Segments, centre), metadata.DrawModeTriangleFan, nil

	case ShapeKindStar:
		if s.Points < 2 {
			return nil, 0, fmt.Errorf("%w: star needs at least 2 points, got %d", core.ErrInvalidScene, s.Points)
		}
		if s.InnerRadius <= 0 || s.OuterRadius <= 0 {
			return nil, 0, fmt.Errorf("%w: star radii must be positive", core.ErrInvalidScene)
		}
		return math.GenerateStar(s.Points, s.InnerRadius, s.OuterRadius, centre), metadata.DrawModeTriangleFan, nil

	case ShapeKindSpiral:
		if s.Turns < 1 || s.SegmentsPerTurn < 1 {
			return nil, 0, fmt.Errorf("%w: spiral needs turns and segments_per_turn >= 1", core.ErrInvalidScene)
		}
		if s.Radius <= 0 {
			return nil, 0, fmt.Errorf("%w: spiral radius must be positive", core.ErrInvalidScene)
		}
		return math.GenerateSpiral(s.Turns, s.SegmentsPerTurn, s.Radius, centre), metadata.DrawModeLineStrip, nil

	case ShapeKindRectangle:
		lo, err := required("min", s.Min)
		if err != nil {
			return nil, 0, err
		}
		hi, err := required("max", s.Max)
		if err != nil {
			return nil, 0, err
		}
		return math.GenerateRectangle(lo, hi), metadata.DrawModeTriangles, nil

	case ShapeKindTriangle:
		if len(s.Vertices) != 3 {
			return nil, 0, fmt.Errorf("%w: triangle needs 3 vertices, got %d", core.ErrInvalidScene, len(s.Vertices))
		}
		pts, err := s.points()
		if err != nil {
			return nil, 0, err
		}
		return pts, metadata.DrawModeTriangles, nil

	case ShapeKindVertices:
		if len(s.Vertices) == 0 {
			return nil, 0, fmt.Errorf("%w: vertices shape is empty", core.ErrInvalidScene)
		}
		mode := metadata.DrawModeTriangles
		if s.Mode != "" {
			if mode, err = metadata.ParseDrawMode(s.Mode); err != nil {
				return nil, 0, err
			}
		}
		pts, err := s.points()
		if err != nil {
			return nil, 0, err
		}
		return pts, mode, nil
	}
	return nil, 0, fmt.Errorf("%w: %q", core.ErrUnknownShape, s.Kind)
}

// points reads literal vertices, translated by the centre.
func (s *Shape) points() ([]math.Vec3, error) {
	centre, err := vec2("centre", s.Centre)
	if err != nil {
		return nil, err
	}
	out := make([]math.Vec3, 0, len(s.Vertices))
	for i, v := range s.Vertices {
		p, err := required(fmt.Sprintf("vertices[%d]", i), v)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Add(centre).ToVec3(0))
	}
	return out, nil
}

// Config generates the geometry configuration uploaded for this shape.
func (s *Shape) Config() (*metadata.GeometryConfig, error) {
	verts, mode, err := s.Generate()
	if err != nil {
		return nil, err
	}
	return &metadata.GeometryConfig{
		Name:        s.Name,
		Vertices:    verts,
		DefaultMode: mode,
	}, nil
}

// ResolvedPass is a draw pass with its mode parsed and its range checked.
type ResolvedPass struct {
	Mode        metadata.DrawMode
	PolygonMode metadata.PolygonMode
	First       uint32
	Count       uint32
	PointSize   float32
}

// DrawCommands resolves the shape's passes against a buffer of vertexCount
// vertices. Without passes the whole buffer is drawn once in the mode the
// vertices were generated for. A zero count means "to the end".
func (s *Shape) DrawCommands(vertexCount uint32) ([]ResolvedPass, error) {
	_, natural, err := s.Generate()
	if err != nil {
		return nil, err
	}
	passes := s.Draw
	if len(passes) == 0 {
		passes = []DrawPass{{}}
	}

	out := make([]ResolvedPass, 0, len(passes))
	for i, p := range passes {
		mode := natural
		if p.Mode != "" {
			if mode, err = metadata.ParseDrawMode(p.Mode); err != nil {
				return nil, fmt.Errorf("draw %d: %w", i, err)
			}
		}
		pm, err := metadata.ParsePolygonMode(p.PolygonMode)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		if p.First >= vertexCount {
			return nil, fmt.Errorf("%w: draw %d starts at %d but the buffer has %d vertices", core.ErrInvalidScene, i, p.First, vertexCount)
		}
		count := p.Count
		if count == 0 {
			count = vertexCount - p.First
		}
		if count > vertexCount-p.First {
			return nil, fmt.Errorf("%w: draw %d range [%d, +%d) exceeds %d vertices", core.ErrInvalidScene, i, p.First, count, vertexCount)
		}
		if count < mode.MinVertices() {
			return nil, fmt.Errorf("%w: draw %d: %s needs at least %d vertices, got %d", core.ErrInvalidScene, i, mode, mode.MinVertices(), count)
		}
		size := p.PointSize
		if size <= 0 {
			size = 1
		}
		out = append(out, ResolvedPass{
			Mode:        mode,
			PolygonMode: pm,
			First:       p.First,
			Count:       count,
			PointSize:   size,
		})
	}
	return out, nil
}
