package systems

import (
	"errors"
	"fmt"
	"path"

	"github.com/spaghettifunk/glshapes/engine/assets"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
	"github.com/spaghettifunk/glshapes/engine/resources"
)

const builtinVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;

void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const builtinFragmentTemplate = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(%.4f, %.4f, %.4f, %.4f);
}
`

// BuiltinShaderSources returns the vertex/fragment pair that passes
// positions through and paints every fragment with colour.
func BuiltinShaderSources(colour math.Colour) (string, string) {
	c := math.ClampColour(colour)
	return builtinVertexSource, fmt.Sprintf(builtinFragmentTemplate, c.X, c.Y, c.Z, c.W)
}

/** @brief Configuration for the shader system. */
type ShaderSystemConfig struct {
	/** @brief The maximum number of shaders held in the system. */
	MaxShaderCount uint16
}

type ShaderSystem struct {
	// This system's configuration.
	Config *ShaderSystemConfig
	// A lookup table for shader name->id
	Lookup map[string]uint32
	// A collection of created shaders.
	Shaders []*metadata.Shader
	// sub systems
	assetManager *assets.AssetManager
	renderer     *renderer.Renderer
}

func NewShaderSystem(config *ShaderSystemConfig, am *assets.AssetManager, r *renderer.Renderer) (*ShaderSystem, error) {
	if config.MaxShaderCount == 0 {
		err := fmt.Errorf("NewShaderSystem - config.MaxShaderCount must be greater than 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &ShaderSystem{
		Config:       config,
		Lookup:       make(map[string]uint32),
		Shaders:      make([]*metadata.Shader, 0, config.MaxShaderCount),
		assetManager: am,
		renderer:     r,
	}, nil
}

/**
 * @brief Shuts down the shader system, destroying every shader it created.
 */
func (ss *ShaderSystem) Shutdown() error {
	for _, s := range ss.Shaders {
		if s.State != metadata.SHADER_STATE_NOT_CREATED {
			ss.renderer.ShaderDestroy(s)
		}
	}
	ss.Shaders = ss.Shaders[:0]
	ss.Lookup = make(map[string]uint32)
	return nil
}

/**
 * @brief Creates a shader from the given description.
 * Missing source files are an error. A pair that fails to compile or link
 * is logged and returned in SHADER_STATE_BROKEN so the application keeps
 * running.
 */
func (ss *ShaderSystem) Create(name string, src resources.ShaderSpec) (*metadata.Shader, error) {
	if _, exists := ss.Lookup[name]; exists {
		return nil, fmt.Errorf("shader %s already exists", name)
	}
	if len(ss.Shaders) >= int(ss.Config.MaxShaderCount) {
		return nil, fmt.Errorf("shader system is full (%d shaders)", ss.Config.MaxShaderCount)
	}

	config := &metadata.ShaderConfig{
		Name:         name,
		VertexPath:   src.Vertex,
		FragmentPath: src.Fragment,
		Colour:       src.FixedColour(),
	}
	if err := ss.loadSources(config); err != nil {
		return nil, err
	}

	shader := &metadata.Shader{
		ID:     uint32(len(ss.Shaders)),
		Name:   name,
		Config: config,
	}
	ss.compile(shader)

	ss.Lookup[name] = shader.ID
	ss.Shaders = append(ss.Shaders, shader)
	return shader, nil
}

func (ss *ShaderSystem) Get(name string) *metadata.Shader {
	id, ok := ss.Lookup[name]
	if !ok {
		return nil
	}
	return ss.Shaders[id]
}

/**
 * @brief Recompiles every shader built from the asset at the given path.
 * @return The number of shaders that were rebuilt.
 */
func (ss *ShaderSystem) Reload(assetPath string) int {
	assetPath = path.Clean(assetPath)
	reloaded := 0
	for _, s := range ss.Shaders {
		c := s.Config
		if c.VertexPath == "" || (path.Clean(c.VertexPath) != assetPath && path.Clean(c.FragmentPath) != assetPath) {
			continue
		}
		if err := ss.loadSources(c); err != nil {
			core.LogError("shader %s: reload failed: %s", s.Name, err)
			continue
		}
		ss.renderer.ShaderDestroy(s)
		ss.compile(s)
		if s.State == metadata.SHADER_STATE_INITIALIZED {
			core.LogInfo("shader %s reloaded from %s", s.Name, assetPath)
		}
		reloaded++
	}
	return reloaded
}

func (ss *ShaderSystem) compile(shader *metadata.Shader) {
	if err := ss.renderer.ShaderCreate(shader); err != nil {
		if errors.Is(err, core.ErrShaderCompile) || errors.Is(err, core.ErrShaderLink) {
			core.LogError("shader %s: %s", shader.Name, err)
			return
		}
		core.LogError("shader %s could not be created: %s", shader.Name, err)
	}
}

func (ss *ShaderSystem) loadSources(config *metadata.ShaderConfig) error {
	if config.VertexPath == "" && config.FragmentPath == "" {
		config.VertexSource, config.FragmentSource = BuiltinShaderSources(config.Colour)
		return nil
	}
	if ss.assetManager == nil {
		return fmt.Errorf("%w: no asset manager to load %s", core.ErrAssetNotFound, config.VertexPath)
	}
	vs, err := ss.loadText(config.VertexPath)
	if err != nil {
		return err
	}
	fs, err := ss.loadText(config.FragmentPath)
	if err != nil {
		return err
	}
	config.VertexSource, config.FragmentSource = vs, fs
	return nil
}

func (ss *ShaderSystem) loadText(p string) (string, error) {
	res, err := ss.assetManager.LoadAsset(p)
	if err != nil {
		return "", err
	}
	defer ss.assetManager.UnloadAsset(res)
	src, ok := res.Data.(string)
	if !ok || res.Type != resources.ResourceTypeShader {
		return "", fmt.Errorf("%w: %s is not a shader source", core.ErrUnknownAssetType, p)
	}
	return src, nil
}
