package metadata

import (
	"github.com/spaghettifunk/glshapes/engine/math"
)

const (
	InvalidID       uint32 = 4294967295
	InvalidIDUint16 uint16 = 65535
)

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name string
	/** @brief The vertex positions, z fixed at 0. */
	Vertices []math.Vec3
	/** @brief The primitive mode the vertices were generated for. */
	DefaultMode DrawMode
}

type GeometryReference struct {
	ReferenceCount uint64
	Geometry       *Geometry
	AutoRelease    bool
}

/**
 * @brief Represents an uploaded vertex buffer.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uint32
	/** @brief The internal geometry identifier, used by the renderer backend to map to internal resources. */
	InternalID uint32
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint16
	/** @brief The geometry name. */
	Name string
	/** @brief Number of vertices in the buffer. */
	VertexCount uint32
	/** @brief The primitive mode the vertices were generated for. */
	DefaultMode DrawMode
	/** @brief CPU copy of the vertices, kept for backends without GPU memory. */
	Vertices []math.Vec3
}

// Invalidate resets the identifiers so the slot can be reused.
func (g *Geometry) Invalidate() {
	g.ID = InvalidID
	g.InternalID = InvalidID
	g.Generation = InvalidIDUint16
	g.Name = ""
	g.VertexCount = 0
	g.Vertices = nil
}

func (g *Geometry) IsValid() bool {
	return g != nil && g.ID != InvalidID
}
