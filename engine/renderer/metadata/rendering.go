package metadata

import "github.com/spaghettifunk/glshapes/engine/math"

/**
 * @brief Everything the renderer needs to draw one frame.
 */
type RenderPacket struct {
	DeltaTime   float64
	ClearColour math.Colour
	Shader      *Shader
	Commands    []DrawCommand
}
