package resources

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Unknown file, ignored by the asset manager. */
	ResourceTypeNone ResourceType = iota
	/** @brief Text resource type. */
	ResourceTypeText
	/** @brief GLSL shader source. */
	ResourceTypeShader
	/** @brief Scene description (TOML or YAML). */
	ResourceTypeScene
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeText:
		return "text"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeScene:
		return "scene"
	}
	return "none"
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The resource type. */
	Type ResourceType
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. string for shaders, *Scene for scenes. */
	Data interface{}
}
