package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

// Surface is the window the context renders into.
type Surface interface {
	SwapBuffers()
}

type OpenGLRenderer struct {
	surface     Surface
	FrameNumber uint64
	width       uint32
	height      uint32

	geometries     map[uint32]*glGeometry
	nextGeometryID uint32
}

func New(surface Surface) *OpenGLRenderer {
	return &OpenGLRenderer{
		surface:    surface,
		geometries: make(map[uint32]*glGeometry),
	}
}

// Initialize loads the GL function pointers. The context must already be
// current on the calling thread.
func (r *OpenGLRenderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrLoaderInit, err)
	}
	core.LogInfo("OpenGL %s, GLSL %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	r.width = appWidth
	r.height = appHeight
	gl.Viewport(0, 0, int32(appWidth), int32(appHeight))
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	for id, g := range r.geometries {
		g.destroy()
		delete(r.geometries, id)
	}
	return nil
}

func (r *OpenGLRenderer) Resized(width, height uint32) error {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (r *OpenGLRenderer) BeginFrame(clearColour math.Colour) error {
	gl.ClearColor(clearColour.X, clearColour.Y, clearColour.Z, clearColour.W)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (r *OpenGLRenderer) EndFrame() error {
	if r.surface != nil {
		r.surface.SwapBuffers()
	}
	r.FrameNumber++
	if code := gl.GetError(); code != gl.NO_ERROR {
		core.LogDebug("gl error 0x%x at frame %d", code, r.FrameNumber)
	}
	return nil
}

func (r *OpenGLRenderer) DrawGeometry(cmd metadata.DrawCommand) {
	g, ok := r.geometries[cmd.Geometry.InternalID]
	if !ok {
		return
	}
	gl.BindVertexArray(g.vao)
	if cmd.Mode.IsTriangle() {
		gl.PolygonMode(gl.FRONT_AND_BACK, polygonMode(cmd.PolygonMode))
	}
	if cmd.PointSize > 0 {
		gl.PointSize(cmd.PointSize)
	}
	gl.DrawArrays(drawMode(cmd.Mode), int32(cmd.First), int32(cmd.Count))

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
}

func drawMode(m metadata.DrawMode) uint32 {
	switch m {
	case metadata.DrawModePoints:
		return gl.POINTS
	case metadata.DrawModeLines:
		return gl.LINES
	case metadata.DrawModeLineStrip:
		return gl.LINE_STRIP
	case metadata.DrawModeLineLoop:
		return gl.LINE_LOOP
	case metadata.DrawModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	case metadata.DrawModeTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func polygonMode(m metadata.PolygonMode) uint32 {
	switch m {
	case metadata.PolygonModeLine:
		return gl.LINE
	case metadata.PolygonModePoint:
		return gl.POINT
	default:
		return gl.FILL
	}
}
