package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

const floatSize = 4

// glGeometry is one VAO with a single position VBO bound to attribute 0.
type glGeometry struct {
	vao uint32
	vbo uint32
}

func (g *glGeometry) destroy() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
}

// CreateGeometry uploads the vertices once with STATIC_DRAW.
func (r *OpenGLRenderer) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vec3) error {
	if len(vertices) == 0 {
		return fmt.Errorf("%w: geometry %s has no vertices", core.ErrInvalidGeometry, geometry.Name)
	}
	data := math.Flatten(vertices)

	g := &glGeometry{}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*floatSize, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	r.nextGeometryID++
	geometry.InternalID = r.nextGeometryID
	r.geometries[geometry.InternalID] = g
	core.LogDebug("uploaded geometry %s: %d vertices (vao=%d)", geometry.Name, len(vertices), g.vao)
	return nil
}

func (r *OpenGLRenderer) DestroyGeometry(geometry *metadata.Geometry) {
	g, ok := r.geometries[geometry.InternalID]
	if !ok {
		return
	}
	g.destroy()
	delete(r.geometries, geometry.InternalID)
	geometry.InternalID = metadata.InvalidID
}
