package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
	"golang.org/x/image/vector"
)

// LineWidth is the stroke width, in pixels, of line primitives.
const LineWidth float32 = 1.5

// SoftwareRenderer rasterises draw commands on the CPU into an RGBA image.
// It cannot run GLSL; every primitive is filled with the shader's fixed
// colour.
type SoftwareRenderer struct {
	FrameNumber uint64
	target      *image.RGBA
	rasterizer  *vector.Rasterizer
	colour      color.NRGBA

	geometries     map[uint32][]math.Vec3
	nextGeometryID uint32
	nextShaderID   uint32
}

func New() *SoftwareRenderer {
	return &SoftwareRenderer{
		geometries: make(map[uint32][]math.Vec3),
		colour:     color.NRGBA{255, 255, 255, 255},
	}
}

func (r *SoftwareRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.Resized(appWidth, appHeight)
}

func (r *SoftwareRenderer) Shutdown() error {
	r.geometries = make(map[uint32][]math.Vec3)
	return nil
}

func (r *SoftwareRenderer) Resized(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("software renderer: invalid size %dx%d", width, height)
	}
	r.target = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	r.rasterizer = vector.NewRasterizer(int(width), int(height))
	return nil
}

func (r *SoftwareRenderer) BeginFrame(clearColour math.Colour) error {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(toNRGBA(clearColour)), image.Point{}, draw.Src)
	return nil
}

func (r *SoftwareRenderer) EndFrame() error {
	r.FrameNumber++
	return nil
}

func (r *SoftwareRenderer) ShaderCreate(shader *metadata.Shader) error {
	r.nextShaderID++
	shader.InternalID = r.nextShaderID
	shader.State = metadata.SHADER_STATE_INITIALIZED
	return nil
}

func (r *SoftwareRenderer) ShaderDestroy(shader *metadata.Shader) {
	shader.InternalID = metadata.InvalidID
	shader.State = metadata.SHADER_STATE_NOT_CREATED
}

func (r *SoftwareRenderer) ShaderUse(shader *metadata.Shader) error {
	if shader.Config != nil {
		r.colour = toNRGBA(shader.Config.Colour)
	}
	return nil
}

func (r *SoftwareRenderer) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vec3) error {
	if len(vertices) == 0 {
		return fmt.Errorf("%w: geometry %s has no vertices", core.ErrInvalidGeometry, geometry.Name)
	}
	r.nextGeometryID++
	geometry.InternalID = r.nextGeometryID
	r.geometries[geometry.InternalID] = append([]math.Vec3(nil), vertices...)
	return nil
}

func (r *SoftwareRenderer) DestroyGeometry(geometry *metadata.Geometry) {
	delete(r.geometries, geometry.InternalID)
	geometry.InternalID = metadata.InvalidID
}

func (r *SoftwareRenderer) DrawGeometry(cmd metadata.DrawCommand) {
	verts, ok := r.geometries[cmd.Geometry.InternalID]
	if !ok {
		return
	}
	src := metadata.DrawCommand{
		Geometry: &metadata.Geometry{Vertices: verts},
		First:    cmd.First,
		Count:    cmd.Count,
	}
	v := src.Range()

	size := r.target.Bounds().Size()
	r.rasterizer.Reset(size.X, size.Y)

	switch {
	case cmd.Mode == metadata.DrawModePoints:
		r.addPoints(v, cmd.PointSize)
	case cmd.Mode.IsTriangle():
		tris := metadata.AssembleTriangles(cmd.Mode, v)
		switch cmd.PolygonMode {
		case metadata.PolygonModeLine:
			for _, e := range metadata.TriangleEdges(tris) {
				r.addSegment(e[0], e[1])
			}
		case metadata.PolygonModePoint:
			for _, t := range tris {
				r.addPoints(t[:], cmd.PointSize)
			}
		default:
			for _, t := range tris {
				r.addTriangle(r.toPixel(t[0]), r.toPixel(t[1]), r.toPixel(t[2]))
			}
		}
	default:
		for _, s := range metadata.AssembleLines(cmd.Mode, v) {
			r.addSegment(s[0], s[1])
		}
	}

	r.rasterizer.Draw(r.target, r.target.Bounds(), image.NewUniform(r.colour), image.Point{})
}

// Image returns the last rendered frame.
func (r *SoftwareRenderer) Image() *image.RGBA {
	return r.target
}

// WritePNG encodes the last rendered frame.
func (r *SoftwareRenderer) WritePNG(w io.Writer) error {
	return png.Encode(w, r.target)
}

// toPixel maps normalised device coordinates to image space, y down.
func (r *SoftwareRenderer) toPixel(v math.Vec3) math.Vec2 {
	size := r.target.Bounds().Size()
	return math.NewVec2(
		(v.X+1)*0.5*float32(size.X),
		(1-v.Y)*0.5*float32(size.Y),
	)
}

// addTriangle adds the triangle with a consistent winding so overlapping
// primitives of one draw call accumulate instead of cancelling.
func (r *SoftwareRenderer) addTriangle(a, b, c math.Vec2) {
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}
	r.rasterizer.MoveTo(a.X, a.Y)
	r.rasterizer.LineTo(b.X, b.Y)
	r.rasterizer.LineTo(c.X, c.Y)
	r.rasterizer.ClosePath()
}

func (r *SoftwareRenderer) addQuad(a, b, c, d math.Vec2) {
	r.addTriangle(a, b, c)
	r.addTriangle(a, c, d)
}

func (r *SoftwareRenderer) addSegment(from, to math.Vec3) {
	a, b := r.toPixel(from), r.toPixel(to)
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		return
	}
	n := math.NewVec2(-dir.Y/length, dir.X/length).Scale(LineWidth / 2)
	r.addQuad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (r *SoftwareRenderer) addPoints(v []math.Vec3, pointSize float32) {
	half := math.Clamp(pointSize, 1, 64) / 2
	for _, p := range v {
		c := r.toPixel(p)
		r.addQuad(
			math.NewVec2(c.X-half, c.Y-half),
			math.NewVec2(c.X+half, c.Y-half),
			math.NewVec2(c.X+half, c.Y+half),
			math.NewVec2(c.X-half, c.Y+half),
		)
	}
}

func toNRGBA(c math.Colour) color.NRGBA {
	c = math.ClampColour(c)
	return color.NRGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: uint8(c.W*255 + 0.5),
	}
}
