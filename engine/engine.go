package engine

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/glshapes/engine/assets"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/platform"
	"github.com/spaghettifunk/glshapes/engine/renderer"
	"github.com/spaghettifunk/glshapes/engine/renderer/metadata"
	"github.com/spaghettifunk/glshapes/engine/renderer/opengl"
	"github.com/spaghettifunk/glshapes/engine/renderer/software"
	"github.com/spaghettifunk/glshapes/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// How long a suspended engine waits for window events between checks.
const suspendedWait = 100 * time.Millisecond

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	stopRequested atomic.Bool
	// nil when running headless
	platform      *platform.Platform
	renderer      *renderer.Renderer
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.Metrics
	lastTime      float64
}

// New creates an engine that renders to a window through OpenGL.
func New(g *Game) (*Engine, error) {
	p := platform.New()
	return newEngine(g, p, renderer.New(renderer.OpenGL, opengl.New(p)))
}

// NewHeadless creates an engine that renders into an in-memory image. It
// opens no window and needs no GPU.
func NewHeadless(g *Game) (*Engine, error) {
	return newEngine(g, nil, renderer.New(renderer.Software, software.New()))
}

func newEngine(g *Game, p *platform.Platform, r *renderer.Renderer) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("engine: game and application config are required")
	}
	if g.FnInitialize == nil || g.FnUpdate == nil || g.FnRender == nil || g.FnOnResize == nil {
		return nil, fmt.Errorf("engine: game %s is missing callbacks", g.ApplicationConfig.Name)
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		platform:     p,
		renderer:     r,
		assetManager: assets.NewAssetManager(),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig
	core.SetLogLevel(config.LogLevel)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, e.onAssetChanged)

	if e.platform != nil {
		if err := e.platform.Startup(config.Name,
			config.StartPosX,
			config.StartPosY,
			config.StartWidth,
			config.StartHeight); err != nil {
			return err
		}
		// The drawable may be larger than the window on high-DPI displays.
		e.width, e.height = e.platform.FramebufferSize()
	}

	if err := e.renderer.Initialize(config.Name, e.width, e.height); err != nil {
		return err
	}

	// initialize subsystems
	if err := e.assetManager.Initialize(config.AssetPath, config.Assets); err != nil {
		return err
	}

	sm, err := systems.NewSystemManager(e.renderer, e.assetManager)
	if err != nil {
		return err
	}
	e.systemManager = sm
	e.gameInstance.SystemManager = sm

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.isRunning = true
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	maxFrames := e.gameInstance.ApplicationConfig.MaxFrames

	for e.isRunning {
		if !e.pumpMessages() {
			e.isRunning = false
			break
		}
		if e.stopRequested.Load() {
			core.LogInfo("stop requested, shutting down.")
			e.isRunning = false
			break
		}

		e.processAssetChanges()

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if err := e.frame(delta); err != nil {
			e.isRunning = false
			return err
		}

		e.metrics.Update(delta)
		if e.renderer.FrameNumber()%600 == 0 {
			fps, frameTime := e.metrics.Frame()
			core.LogDebug("%.1f fps, %.2f ms/frame", fps, frameTime)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate(delta)

		// Update last time
		e.lastTime = currentTime

		if maxFrames > 0 && e.renderer.FrameNumber() >= maxFrames {
			e.isRunning = false
		}
	}
	return nil
}

// pumpMessages polls the window. While suspended it waits up to
// suspendedWait instead, so a minimised window does not spin the loop.
func (e *Engine) pumpMessages() bool {
	if e.platform == nil {
		if e.isSuspended {
			time.Sleep(suspendedWait)
		}
		return true
	}
	if e.isSuspended {
		return e.platform.WaitMessages(suspendedWait.Seconds())
	}
	return e.platform.PumpMessages()
}

// frame runs one update/render/draw cycle.
func (e *Engine) frame(delta float64) error {
	if err := e.gameInstance.FnUpdate(delta); err != nil {
		core.LogError("Game update failed, shutting down.")
		return err
	}

	packet := &metadata.RenderPacket{DeltaTime: delta}
	if err := e.gameInstance.FnRender(packet, delta); err != nil {
		core.LogError("Game render failed, shutting down.")
		return err
	}

	return e.renderer.DrawFrame(packet)
}

// RenderSnapshot draws a single frame and writes it to path as a PNG. Only
// engines created with NewHeadless can take snapshots.
func (e *Engine) RenderSnapshot(path string) error {
	backend, ok := e.renderer.Backend().(*software.SoftwareRenderer)
	if !ok {
		return fmt.Errorf("%w: %s renderer cannot take snapshots", core.ErrHeadlessOnly, e.renderer.Type())
	}
	if err := e.frame(0); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := backend.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	core.LogInfo("snapshot written to %s (%dx%d)", path, e.width, e.height)
	return nil
}

// Stop asks the main loop to exit after the current frame. Safe to call
// from any goroutine.
func (e *Engine) Stop() {
	e.stopRequested.Store(true)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown: %s", err)
		}
	}
	if e.systemManager != nil {
		if err := e.systemManager.Shutdown(); err != nil {
			return err
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if e.platform != nil {
		if err := e.platform.Shutdown(); err != nil {
			return err
		}
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// processAssetChanges drains the watcher queue without blocking and
// announces each change on the main thread, where GL calls are legal.
func (e *Engine) processAssetChanges() {
	for {
		select {
		case p := <-e.assetManager.Changes():
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_ASSET_CHANGED,
				Data: &core.AssetEvent{Path: p},
			})
		default:
			return
		}
	}
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		if e.platform != nil {
			e.platform.SetShouldClose()
		}
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED {
		if ke.KeyCode == core.KEY_ESCAPE {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_APPLICATION_QUIT,
			})
			// Block anything else from processing this.
			return true
		}
		core.LogDebug("'%c' key pressed in window.", rune(ke.KeyCode))
	} else {
		core.LogDebug("'%c' key released in window.", rune(ke.KeyCode))
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.renderer.OnResized(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return true
}

func (e *Engine) onAssetChanged(context core.EventContext) bool {
	ae, ok := context.Data.(*core.AssetEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if n := e.systemManager.ShaderSystem.Reload(ae.Path); n > 0 {
		core.LogDebug("%s changed, %d shader(s) rebuilt", ae.Path, n)
	}
	return false
}
