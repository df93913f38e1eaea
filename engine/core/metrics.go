package core

import "github.com/spaghettifunk/glshapes/engine/containers"

const AVG_COUNT = 30

// Metrics keeps a rolling frame-time average and a frames-per-second count.
type Metrics struct {
	frameTimes         *containers.RingQueue[float64]
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		frameTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records one frame that took frameElapsedTime seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	m.frameTimes.Push(frameMS)

	m.frames++
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS >= 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds over the last AVG_COUNT frames.
func (m *Metrics) FrameTime() float64 {
	return containers.Average(m.frameTimes)
}

func (m *Metrics) Frame() (float64, float64) {
	return m.FPS(), m.FrameTime()
}
