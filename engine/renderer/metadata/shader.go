package metadata

import "github.com/spaghettifunk/glshapes/engine/math"

/**
 * @brief Represents the current state of a given shader.
 */
type ShaderState int

const (
	/** @brief The shader has not yet gone through the creation process, and is unusable.*/
	SHADER_STATE_NOT_CREATED ShaderState = iota
	/** @brief Compilation or linking failed. The program exists but draws nothing useful. */
	SHADER_STATE_BROKEN
	/** @brief The shader is created and linked, and is ready for use.*/
	SHADER_STATE_INITIALIZED
)

/**
 * @brief Configuration for a vertex/fragment shader pair.
 */
type ShaderConfig struct {
	Name string
	/** @brief Asset paths the sources were read from, empty for generated sources. */
	VertexPath   string
	FragmentPath string
	/** @brief GLSL sources. */
	VertexSource   string
	FragmentSource string
	/** @brief The fixed output colour, used by backends that cannot run GLSL. */
	Colour math.Colour
}

/**
 * @brief Represents a shader on the frontend.
 */
type Shader struct {
	/** @brief The shader identifier */
	ID uint32
	Name  string
	State ShaderState
	/** @brief The backend program handle. */
	InternalID uint32
	Config     *ShaderConfig
}
