package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, for a custom interval or logger.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithCamera sets the camera the engine keeps in step with the window and controller.
// The controller may be nil for a fixed camera.
//
// Parameters:
//   - cam: the camera
//   - controller: the input-handling collaborator driving cam
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(cam camera.Camera, controller camera.Controller) EngineBuilderOption {
	return func(e *engine) {
		e.camera = cam
		e.controller = controller
	}
}

// WithCameraBuffer sets the uniform buffer the camera block is uploaded to whenever
// the camera is dirty at the start of a frame.
//
// Parameters:
//   - b: a uniform buffer bound at camera.GPUCameraUniformBinding
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameraBuffer(b renderer.Buffer) EngineBuilderOption {
	return func(e *engine) {
		e.cameraBuffer = b
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.frameLimit = 0
			return
		}
		e.frameLimit = time.Duration(float64(time.Second) / fps)
	}
}
