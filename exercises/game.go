package exercises

import (
	"fmt"
	"io/fs"

	"github.com/spaghettifunk/glshapes/engine"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/math"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
	"github.com/spaghettifunk/glshapes/engine/resources"
)

// SceneGame draws the static geometry of one scene every frame.
type SceneGame struct {
	*engine.Game
}

type gameState struct {
	scene       *resources.Scene
	clearColour math.Colour
	shader      *metadata.Shader
	geometries  []*metadata.Geometry
	commands    []metadata.DrawCommand

	width  uint32
	height uint32
}

// NewSceneGame prepares a game for the scene. Shader files are resolved
// against assetPath when it is a directory, otherwise against fallback.
func NewSceneGame(scene *resources.Scene, assetPath string, fallback fs.FS) (*SceneGame, error) {
	level, err := core.ParseLogLevel(scene.LogLevel)
	if err != nil {
		return nil, err
	}
	sg := &SceneGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  scene.Width,
				StartHeight: scene.Height,
				Name:        scene.Title,
				LogLevel:    level,
				AssetPath:   assetPath,
				Assets:      fallback,
			},
			State: &gameState{
				scene:       scene,
				clearColour: scene.ClearColourValue(),
			},
		},
	}

	sg.FnInitialize = sg.Initialize
	sg.FnUpdate = sg.Update
	sg.FnRender = sg.Render
	sg.FnOnResize = sg.OnResize
	sg.FnShutdown = sg.Shutdown

	return sg, nil
}

// Initialize builds the shader and uploads every shape once.
func (g *SceneGame) Initialize() error {
	if g.SystemManager == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}
	state := g.State.(*gameState)
	scene := state.scene
	core.LogDebug("initializing scene %s (%d shapes)", scene.Name, len(scene.Shapes))

	shader, err := g.SystemManager.ShaderSystem.Create(scene.Name, scene.Shader)
	if err != nil {
		return err
	}
	state.shader = shader

	for i := range scene.Shapes {
		shape := &scene.Shapes[i]
		config, err := shape.Config()
		if err != nil {
			return fmt.Errorf("shape %s: %w", shape.Name, err)
		}
		geometry, err := g.SystemManager.GeometrySystem.AcquireFromConfig(config, true)
		if err != nil {
			return fmt.Errorf("shape %s: %w", shape.Name, err)
		}
		state.geometries = append(state.geometries, geometry)

		passes, err := shape.DrawCommands(geometry.VertexCount)
		if err != nil {
			return fmt.Errorf("shape %s: %w", shape.Name, err)
		}
		for _, p := range passes {
			state.commands = append(state.commands, metadata.DrawCommand{
				Geometry:    geometry,
				Mode:        p.Mode,
				PolygonMode: p.PolygonMode,
				First:       p.First,
				Count:       p.Count,
				PointSize:   p.PointSize,
			})
		}
	}
	core.LogInfo("scene %s ready: %d buffers, %d draw calls per frame", scene.Name, len(state.geometries), len(state.commands))
	return nil
}

// Update does nothing; the geometry never changes after upload.
func (g *SceneGame) Update(deltaTime float64) error {
	return nil
}

func (g *SceneGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)
	packet.ClearColour = state.clearColour
	packet.Shader = state.shader
	packet.Commands = state.commands
	return nil
}

func (g *SceneGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *SceneGame) Shutdown() error {
	state := g.State.(*gameState)
	for _, geometry := range state.geometries {
		g.SystemManager.GeometrySystem.Release(geometry)
	}
	state.geometries = nil
	state.commands = nil
	return nil
}

// Commands returns the draw calls issued each frame.
func (g *SceneGame) Commands() []metadata.DrawCommand {
	return g.State.(*gameState).commands
}
