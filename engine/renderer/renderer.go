package renderer

import (
	"fmt"

	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

type RendererType uint8

const (
	OpenGL RendererType = iota
	Software
)

func (t RendererType) String() string {
	if t == Software {
		return "software"
	}
	return "opengl"
}

type Renderer struct {
	backend     RendererBackend
	kind        RendererType
	frameNumber uint64
}

func New(kind RendererType, backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
		kind:    kind,
	}
}

func (r *Renderer) Type() RendererType {
	return r.kind
}

func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := r.backend.Initialize(appName, appWidth, appHeight); err != nil {
		return fmt.Errorf("%s renderer: %w", r.kind, err)
	}
	core.LogInfo("%s renderer initialized (%dx%d)", r.kind, appWidth, appHeight)
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResized(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) FrameNumber() uint64 {
	return r.frameNumber
}

// DrawFrame clears the target, binds the packet's shader and issues every
// draw command in order.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.ClearColour); err != nil {
		core.LogError("BeginFrame failed: %s", err)
		return err
	}

	if packet.Shader != nil {
		if err := r.backend.ShaderUse(packet.Shader); err != nil {
			// A broken shader still lets the loop run; the GPU just draws nothing useful.
			core.LogDebug("shader %s not usable: %s", packet.Shader.Name, err)
		}
	}
	for _, cmd := range packet.Commands {
		if !cmd.Geometry.IsValid() {
			continue
		}
		r.backend.DrawGeometry(cmd)
	}

	if err := r.backend.EndFrame(); err != nil {
		core.LogError("EndFrame failed. Application shutting down...")
		return err
	}
	r.frameNumber++
	return nil
}

func (r *Renderer) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vec3) error {
	return r.backend.CreateGeometry(geometry, vertices)
}

func (r *Renderer) DestroyGeometry(geometry *metadata.Geometry) {
	r.backend.DestroyGeometry(geometry)
}

func (r *Renderer) ShaderCreate(shader *metadata.Shader) error {
	return r.backend.ShaderCreate(shader)
}

func (r *Renderer) ShaderDestroy(shader *metadata.Shader) {
	r.backend.ShaderDestroy(shader)
}
