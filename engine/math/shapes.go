package math

import m "math"

// DefaultArcSegments is the number of slices used for arcs when the caller
// does not ask for a specific count.
const DefaultArcSegments = 50

// perimeterPoint returns centre + radius*(cos a, sin a) on the z = 0 plane.
func perimeterPoint(centre Vec2, radius float32, angle float64) Vec3 {
	return Vec3{
		X: centre.X + radius*kcos(angle),
		Y: centre.Y + radius*ksin(angle),
	}
}

// GenerateRegularPolygon builds a triangle fan for a regular polygon. The
// first vertex is the centre, followed by sides+1 perimeter vertices; the
// last one repeats the first so the fan closes.
func GenerateRegularPolygon(sides int, radius float32, centre Vec2) []Vec3 {
	if sides < 1 {
		return []Vec3{centre.ToVec3(0)}
	}
	vertices := make([]Vec3, 0, sides+2)
	vertices = append(vertices, centre.ToVec3(0))
	for i := 0; i <= sides; i++ {
		angle := 2.0 * m.Pi * float64(i) / float64(sides)
		vertices = append(vertices, perimeterPoint(centre, radius, angle))
	}
	return vertices
}

// GenerateArc builds a triangle fan for the circular wedge between start and
// end (radians). Angles are sampled at segments+1 uniform steps.
func GenerateArc(start, end, radius float32, segments int, centre Vec2) []Vec3 {
	if segments < 1 {
		segments = DefaultArcSegments
	}
	vertices := make([]Vec3, 0, segments+2)
	vertices = append(vertices, centre.ToVec3(0))
	s, e := float64(start), float64(end)
	for i := 0; i <= segments; i++ {
		angle := s + (e-s)*float64(i)/float64(segments)
		vertices = append(vertices, perimeterPoint(centre, radius, angle))
	}
	return vertices
}

// GenerateStar builds a triangle fan for a star with the given number of
// tips. Perimeter vertex i sits at angle i*pi/points, on the outer radius for
// even i and the inner radius for odd i.
func GenerateStar(points int, inner, outer float32, centre Vec2) []Vec3 {
	if points < 1 {
		return []Vec3{centre.ToVec3(0)}
	}
	vertices := make([]Vec3, 0, 2*points+2)
	vertices = append(vertices, centre.ToVec3(0))
	for i := 0; i <= 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i) * m.Pi / float64(points)
		vertices = append(vertices, perimeterPoint(centre, r, angle))
	}
	return vertices
}

// GenerateSpiral builds a line strip for an Archimedean spiral growing from
// the centre to maxRadius over the requested number of turns.
func GenerateSpiral(turns, segmentsPerTurn int, maxRadius float32, centre Vec2) []Vec3 {
	total := turns * segmentsPerTurn
	if total < 1 {
		return []Vec3{centre.ToVec3(0)}
	}
	vertices := make([]Vec3, 0, total+1)
	for i := 0; i <= total; i++ {
		t := float64(i) / float64(total)
		angle := 2.0 * m.Pi * float64(turns) * t
		vertices = append(vertices, perimeterPoint(centre, maxRadius*float32(t), angle))
	}
	return vertices
}

// GenerateRectangle returns two triangles covering the axis-aligned
// rectangle between lo and hi.
func GenerateRectangle(lo, hi Vec2) []Vec3 {
	return []Vec3{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},

		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

func GenerateTriangle(a, b, c Vec2) []Vec3 {
	return []Vec3{a.ToVec3(0), b.ToVec3(0), c.ToVec3(0)}
}

// Flatten returns the x, y, z components of every vertex in order, the
// layout uploaded to vertex buffers.
func Flatten(vertices []Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}
