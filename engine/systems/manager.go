package systems

import (
	"github.com/spaghettifunk/glshapes/engine/assets"
	"github.com/spaghettifunk/glshapes/engine/renderer"
)

type SystemManager struct {
	GeometrySystem *GeometrySystem
	ShaderSystem   *ShaderSystem
}

func NewSystemManager(r *renderer.Renderer, am *assets.AssetManager) (*SystemManager, error) {
	ssys, err := NewShaderSystem(&ShaderSystemConfig{
		MaxShaderCount: 16,
	}, am, r)
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&GeometrySystemConfig{
		MaxGeometryCount: 256,
	}, r)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		GeometrySystem: gs,
		ShaderSystem:   ssys,
	}, nil
}

// Shutdown releases GPU resources in reverse creation order.
func (sm *SystemManager) Shutdown() error {
	if err := sm.GeometrySystem.Shutdown(); err != nil {
		return err
	}
	return sm.ShaderSystem.Shutdown()
}
