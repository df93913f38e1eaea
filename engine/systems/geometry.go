package systems

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/renderer"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

/** @brief Configuration for the geometry system. */
type GeometrySystemConfig struct {
	/**
	 * @brief Max number of geometries that can be loaded at once.
	 * NOTE: Should be significantly greater than the number of static meshes because
	 * there can and will be more than one of these per mesh.
	 * Take other systems into account as well.
	 */
	MaxGeometryCount uint32
}

type GeometrySystem struct {
	Config *GeometrySystemConfig
	// Array of registered geometries, indexed by geometry id.
	RegisteredGeometries []*metadata.GeometryReference
	renderer             *renderer.Renderer
}

func NewGeometrySystem(config *GeometrySystemConfig, r *renderer.Renderer) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}

	gs := &GeometrySystem{
		Config:               config,
		RegisteredGeometries: make([]*metadata.GeometryReference, config.MaxGeometryCount),
		renderer:             r,
	}
	// Invalidate all geometries in the array.
	for i := range gs.RegisteredGeometries {
		g := &metadata.Geometry{}
		g.Invalidate()
		gs.RegisteredGeometries[i] = &metadata.GeometryReference{Geometry: g}
	}
	return gs, nil
}

/**
 * @brief Shuts down the geometry system, destroying every registered geometry.
 */
func (gs *GeometrySystem) Shutdown() error {
	for _, ref := range gs.RegisteredGeometries {
		if ref.Geometry.ID != metadata.InvalidID {
			gs.destroyGeometry(ref)
		}
	}
	return nil
}

/**
 * @brief Acquires an existing geometry by id.
 *
 * @param id The geometry identifier to acquire by.
 * @return A pointer to the acquired geometry or an error if the id is not registered.
 */
func (gs *GeometrySystem) AcquireByID(id uint32) (*metadata.Geometry, error) {
	if id < gs.Config.MaxGeometryCount && gs.RegisteredGeometries[id].Geometry.ID != metadata.InvalidID {
		gs.RegisteredGeometries[id].ReferenceCount++
		return gs.RegisteredGeometries[id].Geometry, nil
	}
	return nil, fmt.Errorf("%w: cannot acquire invalid geometry id %d", core.ErrInvalidGeometry, id)
}

/**
 * @brief Registers and acquires a new geometry using the given config.
 *
 * @param config The geometry configuration.
 * @param autoRelease Indicates if the acquired geometry should be unloaded when its reference count reaches 0.
 * @return A pointer to the acquired geometry or an error.
 */
func (gs *GeometrySystem) AcquireFromConfig(config *metadata.GeometryConfig, autoRelease bool) (*metadata.Geometry, error) {
	if len(config.Vertices) == 0 {
		return nil, fmt.Errorf("%w: geometry %q has no vertices", core.ErrInvalidGeometry, config.Name)
	}

	var ref *metadata.GeometryReference
	var id uint32
	for i, r := range gs.RegisteredGeometries {
		if r.Geometry.ID == metadata.InvalidID {
			// Found empty slot.
			ref, id = r, uint32(i)
			break
		}
	}
	if ref == nil {
		err := fmt.Errorf("%w: unable to obtain free slot for geometry, adjust configuration to allow more space", core.ErrGeometrySlots)
		core.LogError(err.Error())
		return nil, err
	}

	name := config.Name
	if name == "" {
		name = uuid.NewString()
	}
	geometry := ref.Geometry
	geometry.ID = id
	geometry.Name = name
	geometry.VertexCount = uint32(len(config.Vertices))
	geometry.DefaultMode = config.DefaultMode
	geometry.Vertices = config.Vertices

	if err := gs.renderer.CreateGeometry(geometry, config.Vertices); err != nil {
		geometry.Invalidate()
		return nil, fmt.Errorf("failed to create geometry %s: %w", name, err)
	}
	if geometry.Generation == metadata.InvalidIDUint16 {
		geometry.Generation = 0
	} else {
		geometry.Generation++
	}

	ref.AutoRelease = autoRelease
	ref.ReferenceCount = 1
	core.LogDebug("geometry %s acquired (id %d, %d vertices)", name, id, geometry.VertexCount)
	return geometry, nil
}

/**
 * @brief Releases a reference to the provided geometry.
 *
 * @param geometry The geometry to be released.
 */
func (gs *GeometrySystem) Release(geometry *metadata.Geometry) {
	if geometry == nil || geometry.ID == metadata.InvalidID || geometry.ID >= gs.Config.MaxGeometryCount {
		core.LogWarn("GeometrySystem.Release cannot release invalid geometry id. Nothing was done.")
		return
	}

	ref := gs.RegisteredGeometries[geometry.ID]
	if ref.Geometry != geometry {
		core.LogError("Geometry id mismatch. Check registration logic, as this should never occur.")
		return
	}
	if ref.ReferenceCount > 0 {
		ref.ReferenceCount--
	}
	if ref.ReferenceCount < 1 && ref.AutoRelease {
		gs.destroyGeometry(ref)
	}
}

func (gs *GeometrySystem) destroyGeometry(ref *metadata.GeometryReference) {
	gs.renderer.DestroyGeometry(ref.Geometry)
	generation := ref.Geometry.Generation
	ref.Geometry.Invalidate()
	// Keep the generation so a reused slot can be told apart.
	ref.Geometry.Generation = generation
	ref.ReferenceCount = 0
	ref.AutoRelease = false
}
