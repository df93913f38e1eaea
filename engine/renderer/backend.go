package renderer

import (
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(clearColour math.Colour) error
	EndFrame() error
	// ShaderCreate compiles and links the pair described by shader.Config.
	// On failure the shader is left in SHADER_STATE_BROKEN and the error
	// describes the compiler output.
	ShaderCreate(shader *metadata.Shader) error
	ShaderDestroy(shader *metadata.Shader)
	ShaderUse(shader *metadata.Shader) error
	CreateGeometry(geometry *metadata.Geometry, vertices []math.Vec3) error
	DestroyGeometry(geometry *metadata.Geometry)
	DrawGeometry(cmd metadata.DrawCommand)
}
